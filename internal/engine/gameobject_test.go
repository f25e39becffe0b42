package engine

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	if a.UID == 0 || a.UID == b.UID {
		t.Errorf("UIDs not unique: %d %d", a.UID, b.UID)
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Guard")
	obj.Tags = []string{"Enemy", "Patrol"}

	if !obj.HasTag("Enemy") || obj.HasTag("Player") {
		t.Error("HasTag mismatch")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	c := &countingComponent{}
	obj.AddComponent(c)

	obj.Start()
	obj.Start()
	if c.starts != 1 {
		t.Errorf("Start ran %d times", c.starts)
	}
}

func TestGameObjectInactiveOrDestroyedSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	c := &countingComponent{}
	obj.AddComponent(c)

	obj.Update(0.1)
	obj.SetActive(false)
	obj.Update(0.1)
	obj.SetActive(true)
	obj.MarkDestroyed()
	obj.Update(0.1)

	if c.updates != 1 {
		t.Errorf("updates = %d, want 1", c.updates)
	}
}

func TestFindComponentByCapability(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&countingComponent{})
	trigger := &triggerRecorder{}
	obj.AddComponent(trigger)

	if FindComponent[TriggerHandler](obj) == nil {
		t.Fatal("expected a TriggerHandler")
	}
	// BaseComponent carries no-op trigger methods, so both qualify.
	if n := len(FindComponents[TriggerHandler](obj)); n != 2 {
		t.Errorf("FindComponents = %d, want 2", n)
	}
	if GetComponent[*triggerRecorder](obj) != trigger {
		t.Error("GetComponent failed")
	}
	if GetComponent[*triggerRecorder](nil) != nil {
		t.Error("nil object should yield zero value")
	}
}

func TestTransformAxes(t *testing.T) {
	var tr Transform
	f, r := tr.Forward(), tr.Right()
	if !near(f.Z, 1) || !near(f.X, 0) || !near(r.X, 1) || !near(r.Z, 0) {
		t.Errorf("yaw 0: forward %v right %v", f, r)
	}

	tr.Rotation.Y = 90
	f, r = tr.Forward(), tr.Right()
	if !near(f.X, 1) || !near(f.Z, 0) || !near(r.X, 0) || !near(r.Z, -1) {
		t.Errorf("yaw 90: forward %v right %v", f, r)
	}
}

func TestWorldPositionFollowsParentYaw(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position.X = 10
	parent.Transform.Rotation.Y = 90
	child := NewGameObject("Child")
	child.Transform.Position.Z = 2
	parent.AddChild(child)

	pos := child.WorldPosition()
	if !near(pos.X, 12) || !near(pos.Z, 0) {
		t.Errorf("WorldPosition = %v", pos)
	}
}

func TestActiveInHierarchy(t *testing.T) {
	parent := NewGameObject("Panel")
	child := NewGameObject("Label")
	parent.AddChild(child)

	parent.SetActive(false)
	if child.ActiveInHierarchy() {
		t.Error("child of inactive parent should be inactive in hierarchy")
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()            { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }

type triggerRecorder struct {
	BaseComponent
	entered []*GameObject
}

func (r *triggerRecorder) OnTriggerEnter(other *GameObject) {
	r.entered = append(r.entered, other)
}
