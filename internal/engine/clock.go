package engine

// Clock scales frame time for everything driven by the scene. A time scale
// of 0 freezes all actors while the window keeps rendering.
type Clock struct {
	timeScale float32
	elapsed   float64
}

func NewClock() *Clock {
	return &Clock{timeScale: 1}
}

func (c *Clock) TimeScale() float32 {
	return c.timeScale
}

// SetTimeScale clamps negative scales to 0.
func (c *Clock) SetTimeScale(scale float32) {
	if scale < 0 {
		scale = 0
	}
	c.timeScale = scale
}

func (c *Clock) Paused() bool {
	return c.timeScale == 0
}

// Tick converts a real frame delta into scaled game time and accumulates it.
func (c *Clock) Tick(realDelta float32) float32 {
	scaled := realDelta * c.timeScale
	c.elapsed += float64(scaled)
	return scaled
}

// Elapsed is the total scaled time since the clock was created.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
