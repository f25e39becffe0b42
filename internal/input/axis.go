package input

// Axis turns a digital key pair into a smoothed value in [-1, 1], the way
// Unity's GetAxis ramps keyboard input.
type Axis struct {
	Sensitivity float32 // units per second toward the pressed direction
	Gravity     float32 // units per second back to rest when released
	Snap        bool    // jump to zero when the direction reverses

	value float32
}

func NewAxis() Axis {
	return Axis{Sensitivity: 3, Gravity: 3, Snap: true}
}

func (a *Axis) Value() float32 { return a.value }

func (a *Axis) Reset() { a.value = 0 }

// Update moves the value toward raw (-1, 0 or 1) and returns it.
func (a *Axis) Update(raw, deltaTime float32) float32 {
	switch {
	case raw == 0:
		a.value = approach(a.value, 0, a.Gravity*deltaTime)
	default:
		if a.Snap && a.value*raw < 0 {
			a.value = 0
		}
		a.value = approach(a.value, raw, a.Sensitivity*deltaTime)
	}
	return a.value
}

func approach(current, target, maxStep float32) float32 {
	if maxStep <= 0 {
		return target
	}
	if current < target {
		return min(current+maxStep, target)
	}
	return max(current-maxStep, target)
}

// Raw combines a positive and negative key into -1, 0 or 1.
func Raw(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
