package gameplay

import rl "github.com/gen2brain/raylib-go/raylib"

// Locomotion turns two input axes into a planar velocity and a yaw change.
type Locomotion struct {
	Speed         float32 // units per second
	RotationSpeed float32 // degrees per second at full strafe input
}

// Step composes the move vector from the actor's facing axes weighted by the
// inputs and scales it by Speed. Strafe input also turns the actor.
func (l Locomotion) Step(deltaTime float32, forward, right rl.Vector3, inputForward, inputStrafe float32) (velocity rl.Vector3, yawDelta float32) {
	direction := rl.Vector3Add(rl.Vector3Scale(forward, inputForward), rl.Vector3Scale(right, inputStrafe))
	velocity = rl.Vector3Scale(direction, l.Speed)
	yawDelta = inputStrafe * l.RotationSpeed * deltaTime
	return velocity, yawDelta
}
