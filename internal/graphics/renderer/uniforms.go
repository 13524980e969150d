package renderer

import (
	"fmt"

	"lightstudio/internal/graphics"
	"lightstudio/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a stable handle for one uniform of the lighting program
type Uniform int

const (
	UProjection Uniform = iota
	UView
	UModelView
	UNormalMatrix
	UShowNormals
	UUnlit
	UMaterialKa
	UMaterialKd
	UMaterialKs
	UMaterialShininess
	UNLights
	uLightsBase
)

// LightField is one member of the shader's light struct
type LightField int

const (
	LightPos LightField = iota
	LightIa
	LightId
	LightIs
	LightIsDirectional
	LightIsActive
	lightFieldCount
)

var lightFieldNames = [lightFieldCount]string{"pos", "Ia", "Id", "Is", "isDirectional", "isActive"}

// UniformCount is the number of handles, including every light slot
const UniformCount = uLightsBase + Uniform(scene.MaxLights*int(lightFieldCount))

// LightUniform returns the handle of field f of light slot i
func LightUniform(i int, f LightField) Uniform {
	return uLightsBase + Uniform(i*int(lightFieldCount)+int(f))
}

var uniformNames = buildUniformNames()

func buildUniformNames() []string {
	names := make([]string, UniformCount)
	names[UProjection] = "mProjection"
	names[UView] = "mView"
	names[UModelView] = "mModelView"
	names[UNormalMatrix] = "mNormalMatrix"
	names[UShowNormals] = "uNormals"
	names[UUnlit] = "uUnlit"
	names[UMaterialKa] = "uMaterial.Ka"
	names[UMaterialKd] = "uMaterial.Kd"
	names[UMaterialKs] = "uMaterial.Ks"
	names[UMaterialShininess] = "uMaterial.shininess"
	names[UNLights] = "uNLights"
	for i := 0; i < scene.MaxLights; i++ {
		for f := LightField(0); f < lightFieldCount; f++ {
			names[LightUniform(i, f)] = fmt.Sprintf("uLights[%d].%s", i, lightFieldNames[f])
		}
	}
	return names
}

// Name returns the GLSL name of the uniform
func (u Uniform) Name() string {
	if u < 0 || u >= UniformCount {
		return ""
	}
	return uniformNames[u]
}

// GLProgram binds the handle table to a linked shader
type GLProgram struct {
	shader *graphics.Shader
	locs   []int32
}

// NewGLProgram resolves every uniform location of shader up front
func NewGLProgram(shader *graphics.Shader) *GLProgram {
	return &GLProgram{shader: shader, locs: shader.Resolve(uniformNames)}
}

func (p *GLProgram) loc(u Uniform) int32 {
	if u < 0 || int(u) >= len(p.locs) {
		return -1
	}
	return p.locs[u]
}

func (p *GLProgram) Use()                            { p.shader.Use() }
func (p *GLProgram) SetMat4(u Uniform, m mgl32.Mat4) { graphics.SetMat4At(p.loc(u), m) }
func (p *GLProgram) SetMat3(u Uniform, m mgl32.Mat3) { graphics.SetMat3At(p.loc(u), m) }
func (p *GLProgram) SetVec3(u Uniform, v mgl32.Vec3) { graphics.SetVec3At(p.loc(u), v) }
func (p *GLProgram) SetFloat(u Uniform, v float32)   { graphics.SetFloatAt(p.loc(u), v) }
func (p *GLProgram) SetInt(u Uniform, v int32)       { graphics.SetIntAt(p.loc(u), v) }
func (p *GLProgram) SetBool(u Uniform, v bool)       { graphics.SetBoolAt(p.loc(u), v) }

// Dispose deletes the underlying program
func (p *GLProgram) Dispose() { p.shader.Dispose() }
