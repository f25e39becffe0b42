package scripts

import "bookhunt/internal/engine"

// Rotator spins an object around the Y axis, e.g. a book waiting to be picked up.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func init() {
	engine.RegisterScriptWithApplier("Rotator", rotatorFactory, rotatorSerializer, rotatorApplier)
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{Speed: floatProp(props, "speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}

func rotatorApplier(c engine.Component, propName string, value any) bool {
	r, ok := c.(*Rotator)
	if !ok || propName != "speed" {
		return false
	}
	v, ok := asFloat(value)
	if ok {
		r.Speed = v
	}
	return ok
}
