package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 0}, box.Min)
	assert.Equal(t, rl.Vector3{X: 2, Y: 4, Z: 6}, box.Max)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, box.Center())
	assert.Equal(t, rl.Vector3{X: 2, Y: 4, Z: 6}, box.Size())
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	assert.True(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})))
	assert.True(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 2}, rl.Vector3{X: 2, Y: 2, Z: 2})), "touching counts")
	assert.False(t, a.Intersects(NewAABBFromCenter(rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})))
}

func TestAABBContains(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	assert.True(t, a.Contains(rl.Vector3{X: 1}))
	assert.False(t, a.Contains(rl.Vector3{Y: 1.5}))
}

func TestAABBResolvePicksShallowestAxis(t *testing.T) {
	wall := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 10, Z: 10})
	player := NewAABBFromCenter(rl.Vector3{X: 1.25}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := player.Resolve(wall)
	assert.InDelta(t, 0.25, push.X, 1e-5)
	assert.Zero(t, push.Y)
	assert.Zero(t, push.Z)

	player = NewAABBFromCenter(rl.Vector3{X: -1.25}, rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.InDelta(t, -0.25, player.Resolve(wall).X, 1e-5)
}

func TestAABBResolveSeparated(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, rl.Vector3Zero(), a.Resolve(b))
}
