// Package world owns the running scene: prefab instantiation, deferred
// destruction, trigger dispatch and drawing.
package world

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"bookhunt/internal/components"
	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownPrefab = errors.New("unknown prefab")

// Prefab builds a fresh object for Instantiate.
type Prefab func(position rl.Vector3, yaw float32) *engine.GameObject

type pairKey [2]uint64

type contact struct {
	a, b *engine.GameObject
}

type World struct {
	Scene *engine.Scene

	clock    *engine.Clock
	prefabs  map[string]Prefab
	pending  []*engine.GameObject
	contacts map[pairKey]contact
	started  bool
}

func New() *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		clock:    engine.NewClock(),
		prefabs:  make(map[string]Prefab),
		contacts: make(map[pairKey]contact),
	}
	w.Scene.World = w
	return w
}

func (w *World) Clock() *engine.Clock { return w.clock }

func (w *World) RegisterPrefab(name string, p Prefab) {
	w.prefabs[name] = p
}

// Start starts every object. Objects spawned from now on start immediately.
func (w *World) Start() {
	w.started = true
	w.Scene.Start()
}

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if w.started {
		g.Start()
	}
}

func (w *World) Instantiate(prefab string, position rl.Vector3, yaw float32) (*engine.GameObject, error) {
	build, ok := w.prefabs[prefab]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrefab, prefab)
	}
	g := build(position, yaw)
	g.Transform.Position = position
	g.Transform.Rotation.Y = yaw
	w.SpawnObject(g)
	return g, nil
}

// Destroy flags g now; it leaves the scene at the end of the frame.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || g.Destroyed() {
		return
	}
	g.MarkDestroyed()
	w.pending = append(w.pending, g)
}

func (w *World) DestroyTagged(tag string) int {
	n := 0
	for _, g := range w.Scene.FindByTag(tag) {
		w.Destroy(g)
		n++
	}
	return n
}

// GetCollidableObjects returns all live GameObjects that have BoxColliders
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if !live(g) {
			continue
		}
		if collider := engine.GetComponent[*components.BoxCollider](g); collider != nil {
			result = append(result, g)
		}
	}
	return result
}

// Update advances the scene by the clock-scaled delta, raises trigger
// callbacks and then removes destroyed objects.
func (w *World) Update(realDelta float32) {
	dt := w.clock.Tick(realDelta)
	w.Scene.Update(dt)
	w.dispatchTriggers()
	w.flushDestroyed()
}

func (w *World) flushDestroyed() {
	for _, g := range w.pending {
		w.Scene.RemoveGameObject(g)
	}
	w.pending = w.pending[:0]
}

func live(g *engine.GameObject) bool {
	return g != nil && !g.Destroyed() && g.ActiveInHierarchy()
}

func keyOf(a, b *engine.GameObject) pairKey {
	if a.UID > b.UID {
		a, b = b, a
	}
	return pairKey{a.UID, b.UID}
}

// dispatchTriggers raises OnTriggerEnter for pairs that started overlapping
// this frame and OnTriggerExit for pairs that stopped. A pair counts when at
// least one of its colliders is a trigger.
func (w *World) dispatchTriggers() {
	objs := w.GetCollidableObjects()
	boxes := make([]*components.BoxCollider, len(objs))
	for i, g := range objs {
		boxes[i] = engine.GetComponent[*components.BoxCollider](g)
	}

	current := make(map[pairKey]contact)
	for i := range objs {
		for j := i + 1; j < len(objs); j++ {
			if !boxes[i].IsTrigger && !boxes[j].IsTrigger {
				continue
			}
			if boxes[i].GetAABB().Intersects(boxes[j].GetAABB()) {
				current[keyOf(objs[i], objs[j])] = contact{objs[i], objs[j]}
			}
		}
	}

	var exited []pairKey
	for k := range w.contacts {
		if _, ok := current[k]; !ok {
			exited = append(exited, k)
		}
	}
	slices.SortFunc(exited, comparePairs)
	for _, k := range exited {
		c := w.contacts[k]
		delete(w.contacts, k)
		notify(c.a, c.b, false)
		notify(c.b, c.a, false)
	}

	var entered []pairKey
	for k := range current {
		if _, ok := w.contacts[k]; !ok {
			entered = append(entered, k)
		}
	}
	slices.SortFunc(entered, comparePairs)
	for _, k := range entered {
		c := current[k]
		w.contacts[k] = c
		notify(c.a, c.b, true)
		notify(c.b, c.a, true)
	}
}

func comparePairs(x, y pairKey) int {
	if c := cmp.Compare(x[0], y[0]); c != 0 {
		return c
	}
	return cmp.Compare(x[1], y[1])
}

// notify delivers a callback to target unless it has been destroyed.
func notify(target, other *engine.GameObject, enter bool) {
	for _, h := range engine.FindComponents[engine.TriggerHandler](target) {
		if target.Destroyed() {
			return
		}
		if enter {
			h.OnTriggerEnter(other)
		} else {
			h.OnTriggerExit(other)
		}
	}
}

// Draw3D renders every visible mesh inside the camera frustum. Call between
// BeginMode3D and EndMode3D.
func (w *World) Draw3D(camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect)
	for _, g := range w.Scene.GameObjects {
		if !live(g) {
			continue
		}
		for _, m := range engine.FindComponents[*components.MeshRenderer](g) {
			if box := engine.GetComponent[*components.BoxCollider](g); box != nil && !frustum.ContainsAABB(box.GetAABB()) {
				continue
			}
			m.Draw()
		}
	}
}

// DrawUI renders canvases in SortOrder.
func (w *World) DrawUI() {
	var canvases []*components.UICanvas
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*components.UICanvas](g); c != nil && live(g) {
			canvases = append(canvases, c)
		}
	}
	slices.SortStableFunc(canvases, func(a, b *components.UICanvas) int {
		return a.SortOrder - b.SortOrder
	})
	for _, c := range canvases {
		c.Draw()
	}
}
