package components

import (
	"math"

	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NavAgent walks its GameObject toward a destination on the ground plane in
// a straight line, turning to face the direction of travel. If the object
// has an engine.Mover the move goes through it.
type NavAgent struct {
	engine.BaseComponent

	Speed            float32 // units per second
	AngularSpeed     float32 // degrees per second, 0 turns instantly
	StoppingDistance float32

	destination rl.Vector3
	hasPath     bool
	stopped     bool
	velocity    rl.Vector3
}

func NewNavAgent(speed float32) *NavAgent {
	return &NavAgent{Speed: speed, AngularSpeed: 360}
}

func (n *NavAgent) SetDestination(destination rl.Vector3) {
	n.destination = destination
	n.hasPath = true
}

func (n *NavAgent) Destination() rl.Vector3 { return n.destination }

func (n *NavAgent) HasPath() bool { return n.hasPath }

func (n *NavAgent) SetSpeed(speed float32) { n.Speed = speed }

// SetStopped halts or resumes the agent without dropping its destination.
func (n *NavAgent) SetStopped(stopped bool) {
	n.stopped = stopped
	if stopped {
		n.velocity = rl.Vector3{}
	}
}

func (n *NavAgent) IsStopped() bool { return n.stopped }

// Velocity is the agent's velocity over the last update.
func (n *NavAgent) Velocity() rl.Vector3 { return n.velocity }

// RemainingDistance is the planar distance left to the destination, or 0
// when the agent has none.
func (n *NavAgent) RemainingDistance() float32 {
	g := n.GetGameObject()
	if g == nil || !n.hasPath {
		return 0
	}
	d := planar(rl.Vector3Subtract(n.destination, g.Transform.Position))
	return rl.Vector3Length(d)
}

func (n *NavAgent) Update(deltaTime float32) {
	g := n.GetGameObject()
	if g == nil || n.stopped || !n.hasPath || deltaTime <= 0 {
		n.velocity = rl.Vector3{}
		return
	}

	toGoal := planar(rl.Vector3Subtract(n.destination, g.Transform.Position))
	dist := rl.Vector3Length(toGoal)
	if dist <= n.StoppingDistance || dist < 1e-4 {
		n.velocity = rl.Vector3{}
		return
	}

	dir := rl.Vector3Scale(toGoal, 1/dist)
	n.turnToward(g, dir, deltaTime)

	speed := n.Speed
	if step := speed * deltaTime; step > dist {
		// Land exactly on the destination instead of overshooting.
		speed = dist / deltaTime
	}
	n.velocity = rl.Vector3Scale(dir, speed)

	if mover := engine.FindComponent[engine.Mover](g); mover != nil {
		mover.SimpleMove(n.velocity, deltaTime)
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(n.velocity, deltaTime))
}

func (n *NavAgent) turnToward(g *engine.GameObject, dir rl.Vector3, deltaTime float32) {
	target := float32(math.Atan2(float64(dir.X), float64(dir.Z)) * 180 / math.Pi)
	if n.AngularSpeed <= 0 {
		g.Transform.Rotation.Y = target
		return
	}
	delta := wrapAngle(target - g.Transform.Rotation.Y)
	maxTurn := n.AngularSpeed * deltaTime
	delta = min(max(delta, -maxTurn), maxTurn)
	g.Transform.Rotation.Y = wrapAngle(g.Transform.Rotation.Y + delta)
}

func planar(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Z: v.Z}
}

// wrapAngle maps degrees into (-180, 180].
func wrapAngle(deg float32) float32 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}
