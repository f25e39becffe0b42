package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// TriggerHandler is implemented by components that want overlap callbacks.
// The world raises OnTriggerEnter once when two colliders start overlapping
// (at least one of them a trigger) and OnTriggerExit once when they separate.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// Mover is implemented by components that move their GameObject with
// collision resolution. Speed is in units per second.
type Mover interface {
	SimpleMove(speed rl.Vector3, deltaTime float32)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// OnTriggerEnter is a no-op so scripts only override what they use.
func (b *BaseComponent) OnTriggerEnter(other *GameObject) {}

func (b *BaseComponent) OnTriggerExit(other *GameObject) {}
