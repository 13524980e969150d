package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFromIsValueCopy(t *testing.T) {
	s := NewState()
	s.ArtefactMaterial.Set(ChannelDiffuse, Color{0.1, 0.2, 0.3})
	s.ArtefactMaterial.SetShininess(77)

	require.NoError(t, s.CopyMaterialToFloor())
	assert.Equal(t, *s.ArtefactMaterial, *s.FloorMaterial)

	s.ArtefactMaterial.Set(ChannelDiffuse, Color{1, 1, 1})
	s.ArtefactMaterial.SetShininess(3)
	assert.Equal(t, Color{0.1, 0.2, 0.3}, s.FloorMaterial.Diffuse)
	assert.Equal(t, float32(77), s.FloorMaterial.Shininess)
}

func TestMaterialChannels(t *testing.T) {
	m := NewFloorMaterial()
	for _, ch := range []Channel{ChannelAmbient, ChannelDiffuse, ChannelSpecular} {
		c := Color{0.4, 0.5, float32(ch) / 10}
		m.Set(ch, c)
		assert.Equal(t, c, m.Get(ch))
		assert.Equal(t, c, *m.ChannelRef(ch))
	}
	assert.Nil(t, m.ChannelRef(Channel(9)))
	assert.Equal(t, "Ks", ChannelSpecular.String())
}

func TestAdvanceOnlyWhileAnimating(t *testing.T) {
	s := NewState()
	s.Advance()
	assert.InDelta(t, s.Speed, s.Time, 1e-9)

	s.Options.Animation = false
	s.Advance()
	assert.InDelta(t, s.Speed, s.Time, 1e-9)
}

func TestSelectArtefact(t *testing.T) {
	s := NewState()
	s.SelectArtefact(ArtefactTorus)
	assert.Equal(t, ArtefactTorus, s.Artefact)
	s.SelectArtefact(ArtefactCount)
	assert.Equal(t, ArtefactTorus, s.Artefact)
}

func TestParseArtefact(t *testing.T) {
	a, err := ParseArtefact("pyramid")
	require.NoError(t, err)
	assert.Equal(t, ArtefactPyramid, a)
	assert.Equal(t, "pyramid", a.String())

	_, err = ParseArtefact("teapot")
	assert.Error(t, err)
}

func TestNewStateStartsWithOneLight(t *testing.T) {
	s := NewState()
	assert.Equal(t, 1, s.Lights.Len())
}
