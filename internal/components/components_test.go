package components

import (
	"errors"
	"testing"

	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWorld exposes a fixed set of collidable objects.
type stubWorld struct {
	colliders []*engine.GameObject
	clock     *engine.Clock
}

func (w *stubWorld) GetCollidableObjects() []*engine.GameObject { return w.colliders }
func (w *stubWorld) SpawnObject(g *engine.GameObject)           {}
func (w *stubWorld) Destroy(g *engine.GameObject)               { g.MarkDestroyed() }
func (w *stubWorld) DestroyTagged(tag string) int               { return 0 }
func (w *stubWorld) Clock() *engine.Clock                       { return w.clock }
func (w *stubWorld) Instantiate(string, rl.Vector3, float32) (*engine.GameObject, error) {
	return nil, errors.New("no prefabs")
}

func newTestScene(colliders ...*engine.GameObject) *engine.Scene {
	scene := engine.NewScene("test")
	scene.World = &stubWorld{colliders: colliders, clock: engine.NewClock()}
	for _, c := range colliders {
		scene.AddGameObject(c)
	}
	return scene
}

func wall(name string, center, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = center
	g.AddComponent(NewBoxCollider(size))
	return g
}

func TestBoxColliderAABBUsesOffsetAndScale(t *testing.T) {
	g := engine.NewGameObject("box")
	g.Transform.Position = rl.Vector3{X: 1}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Offset = rl.Vector3{Y: 1}
	g.AddComponent(box)

	aabb := box.GetAABB()
	assert.Equal(t, rl.Vector3{X: 0, Y: 0.5, Z: -0.5}, aabb.Min)
	assert.Equal(t, rl.Vector3{X: 2, Y: 1.5, Z: 0.5}, aabb.Max)
}

func TestCharacterControllerStopsAtWall(t *testing.T) {
	blocker := wall("wall", rl.Vector3{X: 2, Y: 1}, rl.Vector3{X: 1, Y: 4, Z: 4})
	scene := newTestScene(blocker)

	player := engine.NewGameObject("player")
	player.Transform.Position = rl.Vector3{Y: 1}
	cc := NewCharacterController()
	cc.UseGravity = false
	player.AddComponent(cc)
	scene.AddGameObject(player)

	cc.Move(rl.Vector3{X: 1.5})
	// Wall face is at x=1.5, player half width 0.4.
	assert.InDelta(t, 1.1, player.Transform.Position.X, 1e-4)
}

func TestCharacterControllerIgnoresTriggers(t *testing.T) {
	trigger := engine.NewGameObject("zone")
	trigger.Transform.Position = rl.Vector3{X: 2, Y: 1}
	trigger.AddComponent(NewTriggerCollider(rl.Vector3{X: 1, Y: 4, Z: 4}))
	scene := newTestScene(trigger)

	player := engine.NewGameObject("player")
	player.Transform.Position = rl.Vector3{Y: 1}
	cc := NewCharacterController()
	cc.UseGravity = false
	player.AddComponent(cc)
	scene.AddGameObject(player)

	cc.Move(rl.Vector3{X: 3})
	assert.InDelta(t, 3, player.Transform.Position.X, 1e-4)
}

func TestCharacterControllerLandsOnFloor(t *testing.T) {
	floor := wall("floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20})
	scene := newTestScene(floor)

	player := engine.NewGameObject("player")
	player.Transform.Position = rl.Vector3{Y: 2}
	cc := NewCharacterController()
	player.AddComponent(cc)
	scene.AddGameObject(player)

	for range 120 {
		cc.SimpleMove(rl.Vector3{}, 1.0/60)
	}
	assert.True(t, cc.IsGrounded())
	assert.InDelta(t, cc.Height/2, player.Transform.Position.Y, 0.05)
}

func TestCharacterControllerTeleport(t *testing.T) {
	player := engine.NewGameObject("player")
	cc := NewCharacterController()
	player.AddComponent(cc)
	cc.SimpleMove(rl.Vector3{}, 0.5)
	require.NotZero(t, cc.GetVelocity().Y)

	cc.Teleport(rl.Vector3{X: 4, Y: 1, Z: 4})
	assert.Equal(t, rl.Vector3{X: 4, Y: 1, Z: 4}, player.Transform.Position)
	assert.Zero(t, cc.GetVelocity().Y)
}

func TestNavAgentWalksToDestination(t *testing.T) {
	g := engine.NewGameObject("guard")
	agent := NewNavAgent(2)
	agent.AngularSpeed = 0
	g.AddComponent(agent)

	assert.Zero(t, agent.RemainingDistance(), "no destination yet")

	agent.SetDestination(rl.Vector3{X: 4, Y: 7})
	assert.InDelta(t, 4, agent.RemainingDistance(), 1e-5, "height is ignored")

	agent.Update(0.5)
	assert.InDelta(t, 1, g.Transform.Position.X, 1e-5)
	assert.InDelta(t, 2, rl.Vector3Length(agent.Velocity()), 1e-5)
	assert.InDelta(t, 90, g.Transform.Rotation.Y, 1e-3)

	for range 10 {
		agent.Update(0.5)
	}
	assert.InDelta(t, 4, g.Transform.Position.X, 1e-4, "does not overshoot")
	assert.InDelta(t, 0, agent.RemainingDistance(), 1e-4)
	assert.Zero(t, rl.Vector3Length(agent.Velocity()))
}

func TestNavAgentStopAndResume(t *testing.T) {
	g := engine.NewGameObject("guard")
	agent := NewNavAgent(1)
	g.AddComponent(agent)
	agent.SetDestination(rl.Vector3{Z: 10})

	agent.SetStopped(true)
	agent.Update(1)
	assert.Zero(t, g.Transform.Position.Z)
	assert.Equal(t, rl.Vector3{}, agent.Velocity())

	agent.SetStopped(false)
	agent.Update(1)
	assert.InDelta(t, 1, g.Transform.Position.Z, 1e-5)
}

func TestNavAgentTurnsAtAngularSpeed(t *testing.T) {
	g := engine.NewGameObject("guard")
	agent := NewNavAgent(1)
	agent.AngularSpeed = 90
	g.AddComponent(agent)
	agent.SetDestination(rl.Vector3{X: -10})

	agent.Update(0.5)
	assert.InDelta(t, -45, g.Transform.Rotation.Y, 1e-3)
}

type recordingMover struct {
	engine.BaseComponent
	speed rl.Vector3
}

func (m *recordingMover) SimpleMove(speed rl.Vector3, deltaTime float32) { m.speed = speed }

func TestNavAgentMovesThroughMover(t *testing.T) {
	g := engine.NewGameObject("guard")
	mover := &recordingMover{}
	g.AddComponent(mover)
	agent := NewNavAgent(3)
	g.AddComponent(agent)
	agent.SetDestination(rl.Vector3{Z: 10})

	agent.Update(0.1)
	assert.InDelta(t, 3, mover.speed.Z, 1e-5)
	assert.Zero(t, g.Transform.Position.Z, "mover owns the position")
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, float32(-90), wrapAngle(270))
	assert.Equal(t, float32(180), wrapAngle(-180))
	assert.Equal(t, float32(10), wrapAngle(370))
}

func TestAnimatorBobFollowsSpeed(t *testing.T) {
	a := NewAnimator()
	assert.Zero(t, a.BodyOffset())

	a.SetFloat("Speed", 5)
	assert.Equal(t, float32(5), a.GetFloat("Speed"))
	a.Update(0.1)
	assert.Greater(t, a.BodyOffset(), float32(0))
	assert.LessOrEqual(t, a.BodyOffset(), a.BobHeight)

	a.SetFloat("Speed", 0)
	a.Update(0.1)
	assert.Zero(t, a.BodyOffset())
}

func TestFollowCameraTrailsBehindTarget(t *testing.T) {
	target := engine.NewGameObject("player")
	target.Transform.Position = rl.Vector3{X: 1, Z: 1}
	cam := NewFollowCamera(target)
	cam.Distance = 5
	cam.Height = 3

	cam.Update(0.016)
	assert.InDelta(t, 1, cam.Position().X, 1e-4)
	assert.InDelta(t, 3, cam.Position().Y, 1e-4)
	assert.InDelta(t, -4, cam.Position().Z, 1e-4)

	target.Transform.Position.X = 11
	cam.Update(0.05)
	assert.Greater(t, cam.Position().X, float32(1))
	assert.Less(t, cam.Position().X, float32(11), "smoothed")

	cam.Snap()
	assert.InDelta(t, 11, cam.Position().X, 1e-4)

	rc := cam.GetRaylibCamera()
	assert.InDelta(t, 1, rc.Target.Y, 1e-4)
}

func TestUIPanelOpacityClamps(t *testing.T) {
	p := NewUIPanel()
	p.SetOpacity(1.5)
	assert.Equal(t, float32(1), p.Opacity)
	p.SetOpacity(-1)
	assert.Equal(t, float32(0), p.Opacity)
}

func TestUITextSetText(t *testing.T) {
	text := NewUIText("0 / 3")
	text.SetText("1 / 3")
	assert.Equal(t, "1 / 3", text.Text)
}

func TestRectTransformLayout(t *testing.T) {
	screen := rl.Rectangle{Width: 800, Height: 600}

	g := engine.NewGameObject("score")
	g.AddComponent(NewAnchoredRect(AnchorTopRight, rl.Vector2{X: -10, Y: 10}, rl.Vector2{X: 100, Y: 30}))
	assert.Equal(t, rl.Rectangle{X: 690, Y: 10, Width: 100, Height: 30}, Layout(g, screen))

	full := engine.NewGameObject("fade")
	full.AddComponent(NewStretchRect())
	assert.Equal(t, screen, Layout(full, screen))

	bare := engine.NewGameObject("group")
	assert.Equal(t, screen, Layout(bare, screen))
}
