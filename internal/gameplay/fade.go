package gameplay

import "github.com/gen2brain/raylib-go/easings"

// Fade linearly interpolates an opacity from one value to another over a
// fixed duration, sampled once per tick.
type Fade struct {
	from     float32
	to       float32
	duration float32
	elapsed  float32
}

func NewFade(from, to, duration float32) Fade {
	return Fade{from: from, to: to, duration: duration}
}

// FadeOut goes from clear (0) to opaque (1).
func FadeOut(duration float32) Fade { return NewFade(0, 1, duration) }

// FadeIn goes from opaque (1) to clear (0).
func FadeIn(duration float32) Fade { return NewFade(1, 0, duration) }

// Opacity is the value for the current elapsed time.
func (f *Fade) Opacity() float32 {
	if f.elapsed >= f.duration {
		return f.to
	}
	return easings.LinearNone(f.elapsed, f.from, f.to-f.from, f.duration)
}

func (f *Fade) Done() bool {
	return f.elapsed >= f.duration
}

// Step advances by deltaTime. The end value is returned exactly once the
// elapsed time reaches the duration.
func (f *Fade) Step(deltaTime float32) (opacity float32, done bool) {
	if deltaTime > 0 {
		f.elapsed += deltaTime
	}
	return f.Opacity(), f.Done()
}
