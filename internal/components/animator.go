package components

import (
	"math"

	"bookhunt/internal/engine"
)

// Animator holds named float parameters and plays a procedural walk bob
// driven by the "Speed" parameter.
type Animator struct {
	engine.BaseComponent

	StrideRate  float32 // bob cycles per unit of distance
	BobHeight   float32
	MaxBobSpeed float32 // speed at which the bob reaches full height

	params map[string]float32
	phase  float32
}

func NewAnimator() *Animator {
	return &Animator{
		StrideRate:  0.8,
		BobHeight:   0.12,
		MaxBobSpeed: 5,
		params:      make(map[string]float32),
	}
}

func (a *Animator) SetFloat(name string, value float32) {
	if a.params == nil {
		a.params = make(map[string]float32)
	}
	a.params[name] = value
}

func (a *Animator) GetFloat(name string) float32 {
	return a.params[name]
}

func (a *Animator) Update(deltaTime float32) {
	speed := a.GetFloat("Speed")
	if speed <= 0 {
		a.phase = 0
		return
	}
	a.phase += speed * a.StrideRate * deltaTime * 2 * math.Pi
	if a.phase > 2*math.Pi {
		a.phase -= 2 * math.Pi
	}
}

// BodyOffset is the vertical offset renderers add for the current pose.
func (a *Animator) BodyOffset() float32 {
	speed := a.GetFloat("Speed")
	if speed <= 0 || a.MaxBobSpeed <= 0 {
		return 0
	}
	weight := min(speed/a.MaxBobSpeed, 1)
	return float32(math.Abs(math.Sin(float64(a.phase)))) * a.BobHeight * weight
}
