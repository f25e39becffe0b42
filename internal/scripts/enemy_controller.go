package scripts

import (
	"log"

	"bookhunt/internal/components"
	"bookhunt/internal/engine"
	"bookhunt/internal/gameplay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitReceiver is the player's health as seen by an enemy.
type HitReceiver interface {
	TakeHit() bool
	IsInvulnerable() bool
}

// EnemyController patrols waypoints, chases the target when it comes within
// range and hits it on contact. Movement goes through a NavAgent on the same
// object; an Animator, if present, gets the agent's speed.
type EnemyController struct {
	engine.BaseComponent
	Config          gameplay.BehaviorConfig
	Waypoints       []rl.Vector3
	ContactCooldown float32

	Target *engine.GameObject
	Health HitReceiver

	behavior *gameplay.Behavior
	agent    *components.NavAgent
	animator *components.Animator
	spawn    rl.Vector3
	spawnYaw float32
}

func (e *EnemyController) Start() {
	g := e.GetGameObject()
	if g == nil {
		return
	}
	e.spawn = g.Transform.Position
	e.spawnYaw = g.Transform.Rotation.Y

	e.agent = engine.GetComponent[*components.NavAgent](g)
	if e.agent == nil {
		log.Printf("EnemyController: %s has no NavAgent: %v", g.Name, gameplay.ErrMissingDependency)
	}
	e.animator = engine.GetComponent[*components.Animator](g)
	if e.Target == nil {
		log.Printf("EnemyController: %s has no target: %v", g.Name, gameplay.ErrMissingDependency)
	}

	b, err := gameplay.NewBehavior(e.Config, e.Waypoints)
	if err != nil {
		log.Printf("EnemyController: %s: %v", g.Name, err)
		return
	}
	e.behavior = b
	if e.agent != nil {
		e.agent.SetSpeed(e.Config.PatrolSpeed)
	}
}

func (e *EnemyController) Update(deltaTime float32) {
	g := e.GetGameObject()
	if g == nil || e.behavior == nil {
		return
	}

	obs := gameplay.Observation{Self: g.Transform.Position, NoTarget: true}
	if e.Target != nil && !e.Target.Destroyed() {
		obs.Target = e.Target.WorldPosition()
		obs.NoTarget = false
	}
	if e.agent != nil {
		obs.RemainingDistance = e.agent.RemainingDistance()
	}

	e.apply(e.behavior.Tick(deltaTime, obs))

	if e.animator != nil && e.agent != nil {
		e.animator.SetFloat("Speed", rl.Vector3Length(e.agent.Velocity()))
	}
}

func (e *EnemyController) apply(cmd gameplay.Command) {
	if e.agent == nil {
		return
	}
	if cmd.Speed > 0 {
		e.agent.SetSpeed(cmd.Speed)
	}
	switch cmd.Action {
	case gameplay.ActionStop:
		e.agent.SetStopped(true)
	case gameplay.ActionResume:
		e.agent.SetStopped(false)
	case gameplay.ActionMoveTo:
		e.agent.SetDestination(cmd.Destination)
		e.agent.SetStopped(false)
	}
}

// OnTriggerEnter hits the target on contact, then freezes the enemy for the
// contact cooldown.
func (e *EnemyController) OnTriggerEnter(other *engine.GameObject) {
	if other == nil || other != e.Target || e.behavior == nil {
		return
	}
	if e.Health == nil {
		log.Printf("EnemyController: touched the player but no health is assigned: %v", gameplay.ErrMissingDependency)
		return
	}
	if e.Health.IsInvulnerable() {
		return
	}
	if e.Health.TakeHit() {
		e.apply(e.behavior.Suspend(e.ContactCooldown))
	}
}

// ResetBehavior sends the enemy back to its spawn point in Idle.
func (e *EnemyController) ResetBehavior() {
	if e.behavior != nil {
		e.behavior.Reset()
	}
	if g := e.GetGameObject(); g != nil {
		g.Transform.Position = e.spawn
		g.Transform.Rotation.Y = e.spawnYaw
	}
	if e.agent != nil {
		e.agent.SetStopped(true)
		e.agent.SetSpeed(e.Config.PatrolSpeed)
	}
	if e.animator != nil {
		e.animator.SetFloat("Speed", 0)
	}
}

func (e *EnemyController) State() gameplay.BehaviorState {
	if e.behavior == nil {
		return gameplay.Idle
	}
	return e.behavior.State()
}

func (e *EnemyController) applyConfig(cfg gameplay.BehaviorConfig) {
	e.Config = cfg
	if e.behavior != nil {
		e.behavior.SetConfig(cfg)
	}
}

func init() {
	engine.RegisterScriptWithApplier("EnemyController", enemyControllerFactory, enemyControllerSerializer, enemyControllerApplier)
}

func enemyControllerFactory(props map[string]any) engine.Component {
	return &EnemyController{
		Config: gameplay.BehaviorConfig{
			ChaseRange:       floatProp(props, "chaseRange", 10),
			PatrolSpeed:      floatProp(props, "patrolSpeed", 2),
			ChaseSpeed:       floatProp(props, "chaseSpeed", 5),
			WaitAtPoint:      floatProp(props, "waitAtPoint", 2),
			SuspiciousTime:   floatProp(props, "suspiciousTime", 5),
			ArrivalThreshold: floatProp(props, "arrivalThreshold", gameplay.DefaultArrivalThreshold),
		},
		ContactCooldown: floatProp(props, "contactCooldown", 1),
	}
}

func enemyControllerSerializer(c engine.Component) map[string]any {
	e, ok := c.(*EnemyController)
	if !ok {
		return nil
	}
	return map[string]any{
		"chaseRange":       e.Config.ChaseRange,
		"patrolSpeed":      e.Config.PatrolSpeed,
		"chaseSpeed":       e.Config.ChaseSpeed,
		"waitAtPoint":      e.Config.WaitAtPoint,
		"suspiciousTime":   e.Config.SuspiciousTime,
		"arrivalThreshold": e.Config.ArrivalThreshold,
		"contactCooldown":  e.ContactCooldown,
		"waypoints":        len(e.Waypoints),
	}
}

func enemyControllerApplier(c engine.Component, propName string, value any) bool {
	e, ok := c.(*EnemyController)
	if !ok {
		return false
	}
	v, ok := asFloat(value)
	if !ok {
		return false
	}
	cfg := e.Config
	switch propName {
	case "chaseRange":
		cfg.ChaseRange = v
	case "patrolSpeed":
		cfg.PatrolSpeed = v
	case "chaseSpeed":
		cfg.ChaseSpeed = v
	case "waitAtPoint":
		cfg.WaitAtPoint = v
	case "suspiciousTime":
		cfg.SuspiciousTime = v
	case "arrivalThreshold":
		cfg.ArrivalThreshold = v
	case "contactCooldown":
		e.ContactCooldown = v
		return true
	default:
		return false
	}
	e.applyConfig(cfg)
	return true
}
