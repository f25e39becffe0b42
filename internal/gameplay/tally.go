package gameplay

import (
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextSink receives display text, e.g. a UI label.
type TextSink interface {
	SetText(text string)
}

// SpawnPoint is where a pickup is recreated.
type SpawnPoint struct {
	Position rl.Vector3
	Yaw      float32
}

// PickupSpawner removes and recreates pickups in the scene.
type PickupSpawner interface {
	// DestroyPickups removes every remaining pickup and reports how many.
	DestroyPickups() int
	SpawnPickup(prefab string, at SpawnPoint) error
}

type TallyDeps struct {
	Display TextSink
	Spawner PickupSpawner
	// OnSuccess runs once when the last book is collected.
	OnSuccess func()
}

// Tally counts collected books toward a goal.
type Tally struct {
	max       int
	count     int
	succeeded bool
	prefabs   []string
	points    []SpawnPoint
	deps      TallyDeps
}

func NewTally(max int, prefabs []string, points []SpawnPoint, deps TallyDeps) (*Tally, error) {
	if max < 1 {
		return nil, fmt.Errorf("tally: max collectibles %d: %w", max, ErrConfigurationMismatch)
	}
	return &Tally{
		max:     max,
		prefabs: append([]string(nil), prefabs...),
		points:  append([]SpawnPoint(nil), points...),
		deps:    deps,
	}, nil
}

func (t *Tally) Count() int          { return t.count }
func (t *Tally) Max() int            { return t.max }
func (t *Tally) Succeeded() bool     { return t.succeeded }
func (t *Tally) SetDeps(d TallyDeps) { t.deps = d }

// Text is the display string, "<count> / <max>".
func (t *Tally) Text() string {
	return fmt.Sprintf("%d / %d", t.count, t.max)
}

// SetMax changes the goal; the count is clamped so it never exceeds it.
// Lowering the goal to the current count completes the round.
func (t *Tally) SetMax(max int) {
	if max < 1 {
		return
	}
	t.max = max
	if t.count > t.max {
		t.count = t.max
	}
	t.updateDisplay()
	t.checkSuccess()
}

// Start shows the initial count and fills the level with pickups.
func (t *Tally) Start() error {
	t.updateDisplay()
	return t.RespawnAll()
}

// Collect counts one book. It is a no-op once the goal is reached and
// reports whether the count changed.
func (t *Tally) Collect() bool {
	if t.count >= t.max {
		return false
	}
	t.count++
	t.updateDisplay()
	log.Printf("tally: book collected, %s", t.Text())

	t.checkSuccess()
	return true
}

func (t *Tally) checkSuccess() {
	if t.count < t.max || t.succeeded {
		return
	}
	t.succeeded = true
	log.Printf("tally: all books collected")
	if t.deps.OnSuccess != nil {
		t.deps.OnSuccess()
	}
}

// Reset zeroes the count and recreates every pickup.
func (t *Tally) Reset() error {
	t.count = 0
	t.succeeded = false
	t.updateDisplay()
	log.Printf("tally: reset, respawning books")
	return t.RespawnAll()
}

// RespawnAll destroys the remaining pickups and creates one per spawn point.
// Mismatched or empty prefab and spawn point lists abort before anything is
// destroyed.
func (t *Tally) RespawnAll() error {
	if len(t.prefabs) != len(t.points) || len(t.prefabs) == 0 {
		err := fmt.Errorf("tally: %d pickup prefabs for %d spawn points: %w",
			len(t.prefabs), len(t.points), ErrConfigurationMismatch)
		log.Printf("%v", err)
		return err
	}
	if t.deps.Spawner == nil {
		err := fmt.Errorf("tally: no pickup spawner: %w", ErrMissingDependency)
		log.Printf("%v", err)
		return err
	}

	t.deps.Spawner.DestroyPickups()

	var errs []error
	for i, point := range t.points {
		if t.prefabs[i] == "" {
			continue
		}
		if err := t.deps.Spawner.SpawnPickup(t.prefabs[i], point); err != nil {
			errs = append(errs, fmt.Errorf("tally: spawn point %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Printf("%v", err)
		return err
	}
	return nil
}

func (t *Tally) updateDisplay() {
	if t.deps.Display != nil {
		t.deps.Display.SetText(t.Text())
	}
}
