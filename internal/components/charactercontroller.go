package components

import (
	"bookhunt/internal/engine"
	"bookhunt/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterController handles character movement with collision detection,
// gravity, and stair stepping. Similar to Unity's CharacterController.
type CharacterController struct {
	engine.BaseComponent

	Height     float32 // Total height of the box
	Radius     float32 // Half-width of the character
	StepHeight float32 // Max height of steps to climb

	UseGravity bool
	Gravity    float32 // positive = down

	velocity   rl.Vector3
	isGrounded bool
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
		UseGravity: true,
		Gravity:    20.0,
	}
}

// Move moves the character by the given motion vector, resolving overlaps
// with solid box colliders. Returns the actual displacement.
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	if len(colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		return motion
	}

	originalPos := g.Transform.Position

	// Horizontal first so walls don't eat the gravity step.
	if motion.X != 0 || motion.Z != 0 {
		c.moveWithCollision(g, rl.Vector3{X: motion.X, Z: motion.Z}, colliders)
	}
	if motion.Y != 0 {
		c.moveWithCollision(g, rl.Vector3{Y: motion.Y}, colliders)
	}

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

func (c *CharacterController) bounds(g *engine.GameObject) physics.AABB {
	return physics.NewAABBFromCenter(g.Transform.Position, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)

	for _, other := range colliders {
		if other == g {
			continue
		}
		box := engine.GetComponent[*BoxCollider](other)
		if box == nil || box.IsTrigger {
			continue
		}

		solid := box.GetAABB()
		self := c.bounds(g)
		if !self.Intersects(solid) {
			continue
		}
		pushOut := self.Resolve(solid)

		if pushOut.Y == 0 && motion.Y == 0 && c.tryStep(g, solid) {
			continue
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		if pushOut.Y > 0 {
			c.isGrounded = true
			c.velocity.Y = 0
		}
	}
}

// tryStep lifts the character onto a low obstacle if the space above is clear.
func (c *CharacterController) tryStep(g *engine.GameObject, solid physics.AABB) bool {
	feetY := g.Transform.Position.Y - c.Height/2
	rise := solid.Max.Y - feetY
	if rise <= 0 || rise > c.StepHeight {
		return false
	}

	stepped := g.Transform.Position
	stepped.Y += rise + 0.01
	test := physics.NewAABBFromCenter(stepped, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
	if test.Intersects(solid) {
		return false
	}
	g.Transform.Position = stepped
	c.isGrounded = true
	return true
}

// SimpleMove moves the character with gravity applied automatically
func (c *CharacterController) SimpleMove(speed rl.Vector3, deltaTime float32) {
	if c.UseGravity {
		if !c.isGrounded || c.velocity.Y > 0 {
			c.velocity.Y -= c.Gravity * deltaTime
		} else {
			// Small downward velocity keeps ground contact detectable.
			c.velocity.Y = -0.1
		}
	}

	motion := rl.Vector3{
		X: speed.X * deltaTime,
		Y: c.velocity.Y * deltaTime,
		Z: speed.Z * deltaTime,
	}

	c.isGrounded = false
	c.Move(motion)
}

// Teleport places the character without collision and clears its velocity.
func (c *CharacterController) Teleport(position rl.Vector3) {
	if g := c.GetGameObject(); g != nil {
		g.Transform.Position = position
	}
	c.velocity = rl.Vector3{}
	c.isGrounded = false
}

func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

func (c *CharacterController) GetVelocity() rl.Vector3 {
	return c.velocity
}
