package components

import (
	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera trails a target from behind and above, relative to the
// target's facing.
type FollowCamera struct {
	engine.BaseComponent

	Target     *engine.GameObject
	Distance   float32 // behind the target
	Height     float32 // above the target
	LookHeight float32 // aim point above the target's origin
	Smoothing  float32 // per second, 0 snaps
	FOV        float32

	position rl.Vector3
	placed   bool
}

func NewFollowCamera(target *engine.GameObject) *FollowCamera {
	return &FollowCamera{
		Target:     target,
		Distance:   7,
		Height:     4,
		LookHeight: 1,
		Smoothing:  6,
		FOV:        60,
	}
}

// Desired is where the camera wants to be this frame.
func (c *FollowCamera) Desired() rl.Vector3 {
	if c.Target == nil {
		return c.position
	}
	t := c.Target.WorldPosition()
	back := rl.Vector3Scale(c.Target.Transform.Forward(), -c.Distance)
	return rl.Vector3Add(t, rl.Vector3{X: back.X, Y: c.Height, Z: back.Z})
}

func (c *FollowCamera) Update(deltaTime float32) {
	desired := c.Desired()
	if !c.placed || c.Smoothing <= 0 {
		c.position = desired
		c.placed = true
		return
	}
	c.position = rl.Vector3Lerp(c.position, desired, min(c.Smoothing*deltaTime, 1))
}

// Snap jumps to the desired position, e.g. after a teleport.
func (c *FollowCamera) Snap() {
	c.position = c.Desired()
	c.placed = true
}

func (c *FollowCamera) Position() rl.Vector3 { return c.position }

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	target := rl.Vector3{}
	if c.Target != nil {
		target = c.Target.WorldPosition()
		target.Y += c.LookHeight
	}
	if !c.placed {
		c.Snap()
	}
	return rl.Camera3D{
		Position:   c.position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
