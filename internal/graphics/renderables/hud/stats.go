package hud

import "time"

const historyLen = 60

// FrameStats keeps a rolling window of frame durations and a once-per-second FPS count
type FrameStats struct {
	history []time.Duration
	min     time.Duration
	max     time.Duration
	avg     time.Duration

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// Record adds one frame that took d and finished at now
func (s *FrameStats) Record(d time.Duration, now time.Time) {
	if len(s.history) >= historyLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))

	s.frames++
	if s.lastFPSCheck.IsZero() {
		s.lastFPSCheck = now
		return
	}
	if elapsed := now.Sub(s.lastFPSCheck); elapsed >= time.Second {
		s.currentFPS = int(float64(s.frames) / elapsed.Seconds())
		s.frames = 0
		s.lastFPSCheck = now
	}
}

// FPS returns the frame rate measured over the last full second
func (s *FrameStats) FPS() int { return s.currentFPS }

// Last returns the most recent frame duration
func (s *FrameStats) Last() time.Duration {
	if len(s.history) == 0 {
		return 0
	}
	return s.history[len(s.history)-1]
}

// Window returns min, average and max over the rolling window
func (s *FrameStats) Window() (lo, avg, hi time.Duration) { return s.min, s.avg, s.max }
