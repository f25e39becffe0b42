package scripts

import (
	"bookhunt/internal/engine"
	"bookhunt/internal/gameplay"
	"bookhunt/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AxisReader supplies the vertical and horizontal movement axes.
type AxisReader interface {
	Read(deltaTime float32) (vertical, horizontal float32)
}

// PlayerController moves the player from keyboard axes: vertical walks along
// the facing direction, horizontal strafes and turns.
type PlayerController struct {
	engine.BaseComponent
	Speed         float32
	RotationSpeed float32
	Input         AxisReader

	mover engine.Mover
}

func (p *PlayerController) Start() {
	if p.Input == nil {
		p.Input = input.NewKeyboard()
	}
	if g := p.GetGameObject(); g != nil {
		p.mover = engine.FindComponent[engine.Mover](g)
	}
}

func (p *PlayerController) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Input == nil || deltaTime <= 0 {
		return
	}

	vertical, horizontal := p.Input.Read(deltaTime)
	loco := gameplay.Locomotion{Speed: p.Speed, RotationSpeed: p.RotationSpeed}
	velocity, yawDelta := loco.Step(deltaTime, g.Transform.Forward(), g.Transform.Right(), vertical, horizontal)

	g.Transform.Rotation.Y += yawDelta
	if p.mover != nil {
		p.mover.SimpleMove(velocity, deltaTime)
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(velocity, deltaTime))
}

func init() {
	engine.RegisterScriptWithApplier("PlayerController", playerControllerFactory, playerControllerSerializer, playerControllerApplier)
}

func playerControllerFactory(props map[string]any) engine.Component {
	return &PlayerController{
		Speed:         floatProp(props, "speed", 5),
		RotationSpeed: floatProp(props, "rotationSpeed", 120),
	}
}

func playerControllerSerializer(c engine.Component) map[string]any {
	p, ok := c.(*PlayerController)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":         p.Speed,
		"rotationSpeed": p.RotationSpeed,
	}
}

func playerControllerApplier(c engine.Component, propName string, value any) bool {
	p, ok := c.(*PlayerController)
	if !ok {
		return false
	}
	v, ok := asFloat(value)
	if !ok {
		return false
	}
	switch propName {
	case "speed":
		p.Speed = v
	case "rotationSpeed":
		p.RotationSpeed = v
	default:
		return false
	}
	return true
}
