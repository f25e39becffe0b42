package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	// Destroy flags g immediately and removes it at the end of the frame.
	Destroy(g *GameObject)
	// DestroyTagged destroys every live object carrying tag and reports how many.
	DestroyTagged(tag string) int
	// Instantiate builds a named prefab at position facing yaw degrees.
	Instantiate(prefab string, position rl.Vector3, yaw float32) (*GameObject, error)
	Clock() *Clock
}
