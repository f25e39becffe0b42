package components

import (
	"bookhunt/internal/engine"
	"bookhunt/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box around its GameObject. Solid boxes block
// character controllers; trigger boxes only raise enter/exit callbacks.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func NewTriggerCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size, IsTrigger: true}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	scale := g.WorldScale()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	size := rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
	return physics.NewAABBFromCenter(center, size)
}
