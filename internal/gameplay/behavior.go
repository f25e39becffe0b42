package gameplay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BehaviorState is the guard's current mode.
type BehaviorState int

const (
	Idle BehaviorState = iota
	Patrolling
	Chasing
)

func (s BehaviorState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Patrolling:
		return "Patrolling"
	case Chasing:
		return "Chasing"
	}
	return fmt.Sprintf("BehaviorState(%d)", int(s))
}

// DefaultArrivalThreshold is how close the agent must get to a waypoint
// before it counts as reached.
const DefaultArrivalThreshold = 0.2

type BehaviorConfig struct {
	ChaseRange       float32
	PatrolSpeed      float32
	ChaseSpeed       float32
	WaitAtPoint      float32 // seconds idling at each waypoint
	SuspiciousTime   float32 // seconds the guard keeps chasing after losing sight
	ArrivalThreshold float32
}

// Action tells the navigation agent what to do this tick.
type Action int

const (
	// ActionStop halts the agent and keeps its destination.
	ActionStop Action = iota
	// ActionResume keeps moving toward the current destination.
	ActionResume
	// ActionMoveTo sets a new destination and moves toward it.
	ActionMoveTo
)

// Command is the output of one behavior tick.
type Command struct {
	Action      Action
	Destination rl.Vector3
	// Speed is the agent speed to apply; 0 leaves the current speed unchanged.
	Speed float32
}

// Observation is what the behavior sees each tick.
type Observation struct {
	Self   rl.Vector3
	Target rl.Vector3
	// RemainingDistance is the navigation agent's distance to its destination.
	RemainingDistance float32
	// NoTarget means there is nothing to chase; the target is never in range.
	NoTarget bool
}

// Behavior is the Idle/Patrolling/Chasing loop. It is advanced once per frame
// by Tick and holds no references to the scene.
type Behavior struct {
	cfg       BehaviorConfig
	waypoints []rl.Vector3

	state         BehaviorState
	waypoint      int
	waitCounter   float32
	timeSinceSeen float32

	// suspended > 0 while the guard is frozen after catching the target.
	suspended float32
}

// NewBehavior validates the config and starts in Idle with full timers.
func NewBehavior(cfg BehaviorConfig, waypoints []rl.Vector3) (*Behavior, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("behavior: no waypoints: %w", ErrMissingDependency)
	}
	if cfg.ArrivalThreshold <= 0 {
		cfg.ArrivalThreshold = DefaultArrivalThreshold
	}
	b := &Behavior{
		cfg:       cfg,
		waypoints: append([]rl.Vector3(nil), waypoints...),
	}
	b.Reset()
	return b, nil
}

// Reset returns the behavior to its spawn state: Idle at waypoint 0.
func (b *Behavior) Reset() {
	b.state = Idle
	b.waypoint = 0
	b.waitCounter = b.cfg.WaitAtPoint
	b.timeSinceSeen = b.cfg.SuspiciousTime
	b.suspended = 0
}

func (b *Behavior) State() BehaviorState      { return b.state }
func (b *Behavior) Waypoint() int             { return b.waypoint }
func (b *Behavior) WaitCounter() float32      { return b.waitCounter }
func (b *Behavior) TimeSinceSeen() float32    { return b.timeSinceSeen }
func (b *Behavior) Suspended() bool           { return b.suspended > 0 }
func (b *Behavior) Config() BehaviorConfig    { return b.cfg }
func (b *Behavior) CurrentTarget() rl.Vector3 { return b.waypoints[b.waypoint] }
func (b *Behavior) SetConfig(cfg BehaviorConfig) {
	if cfg.ArrivalThreshold <= 0 {
		cfg.ArrivalThreshold = DefaultArrivalThreshold
	}
	b.cfg = cfg
}

// Suspend freezes the guard for delay seconds. When it elapses the guard
// resumes Patrolling toward its current waypoint with a full suspicion timer.
func (b *Behavior) Suspend(delay float32) Command {
	b.suspended = delay
	if b.suspended <= 0 {
		return b.resumePatrol()
	}
	return Command{Action: ActionStop}
}

func (b *Behavior) resumePatrol() Command {
	b.suspended = 0
	b.state = Patrolling
	b.timeSinceSeen = b.cfg.SuspiciousTime
	return Command{Action: ActionMoveTo, Destination: b.waypoints[b.waypoint], Speed: b.cfg.PatrolSpeed}
}

// Tick advances the loop by deltaTime and returns the movement command.
func (b *Behavior) Tick(deltaTime float32, obs Observation) Command {
	if b.suspended > 0 {
		b.suspended -= deltaTime
		if b.suspended > 0 {
			return Command{Action: ActionStop}
		}
		return b.resumePatrol()
	}

	distance := rl.Vector3Distance(obs.Self, obs.Target)
	inRange := !obs.NoTarget && distance <= b.cfg.ChaseRange

	var speed float32
	if inRange {
		if b.state != Chasing {
			b.state = Chasing
			speed = b.cfg.ChaseSpeed
		}
		b.timeSinceSeen = b.cfg.SuspiciousTime
	}

	switch b.state {
	case Idle:
		cmd := Command{Action: ActionStop, Speed: speed}
		if b.waitCounter > 0 {
			b.waitCounter -= deltaTime
		} else {
			b.state = Patrolling
			cmd = Command{Action: ActionMoveTo, Destination: b.waypoints[b.waypoint], Speed: b.cfg.PatrolSpeed}
		}
		// Redundant with the check above; kept as an idempotent re-assignment.
		if inRange {
			b.state = Chasing
		}
		return cmd

	case Patrolling:
		cmd := Command{Action: ActionResume, Speed: speed}
		if obs.RemainingDistance <= b.cfg.ArrivalThreshold {
			b.waypoint = (b.waypoint + 1) % len(b.waypoints)
			b.state = Idle
			b.waitCounter = b.cfg.WaitAtPoint
			cmd = Command{Action: ActionStop, Speed: speed}
		}
		if inRange {
			b.state = Chasing
		}
		return cmd

	case Chasing:
		if !inRange {
			b.timeSinceSeen -= deltaTime
			if b.timeSinceSeen <= 0 {
				b.state = Idle
				b.timeSinceSeen = b.cfg.SuspiciousTime
			}
			return Command{Action: ActionStop}
		}
		return Command{Action: ActionMoveTo, Destination: obs.Target, Speed: b.cfg.ChaseSpeed}
	}

	return Command{Action: ActionStop}
}
