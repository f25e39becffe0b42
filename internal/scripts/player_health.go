package scripts

import (
	"fmt"
	"log"

	"bookhunt/internal/components"
	"bookhunt/internal/engine"
	"bookhunt/internal/gameplay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	HeartFull = rl.NewColor(220, 40, 60, 255)
	HeartLost = rl.NewColor(70, 70, 80, 160)
)

// PlayerHealth owns the player's hearts and runs the respawn and game over
// sequences. The UI objects and the respawn anchor are assigned when the
// level is built.
type PlayerHealth struct {
	engine.BaseComponent
	Config gameplay.HealthConfig

	Hearts        []*components.UIPanel
	FadePanel     *engine.GameObject
	GameOverPanel *engine.GameObject
	RespawnPoint  *engine.GameObject
	Collectibles  gameplay.CollectibleResetter

	// OnReset fires whenever the player is returned to a fresh start, after a
	// game over or a restart.
	OnReset engine.Event
	// OnRespawned fires after every teleport to the respawn point.
	OnRespawned engine.Event

	seq *gameplay.HealthSequencer
}

func (p *PlayerHealth) Start() {
	deps := p.deps()
	for _, name := range deps.Missing() {
		log.Printf("PlayerHealth: %s is not assigned: %v", name, gameplay.ErrMissingDependency)
	}

	seq, err := gameplay.NewHealthSequencer(p.Config, deps)
	if err != nil {
		log.Printf("PlayerHealth: %v", err)
		return
	}
	p.seq = seq
	p.seq.Initialize()
}

func (p *PlayerHealth) deps() gameplay.HealthDeps {
	var d gameplay.HealthDeps
	if len(p.Hearts) > 0 {
		d.Display = heartsView(p.Hearts)
	}
	if p.FadePanel != nil {
		d.Fader = &panelFader{obj: p.FadePanel, panel: engine.GetComponent[*components.UIPanel](p.FadePanel)}
	}
	if p.GameOverPanel != nil {
		d.GameOver = panelToggle{obj: p.GameOverPanel}
	}
	if p.RespawnPoint != nil {
		d.Respawner = &anchorRespawner{health: p}
	}
	if p.Collectibles != nil {
		d.Collectibles = p.Collectibles
	}
	d.OnReset = p.OnReset.Invoke
	return d
}

func (p *PlayerHealth) Update(deltaTime float32) {
	if p.seq != nil {
		p.seq.Tick(deltaTime)
	}
}

// TakeHit removes a heart unless the player is invulnerable or already down.
func (p *PlayerHealth) TakeHit() bool {
	if p.seq == nil {
		return false
	}
	return p.seq.TakeHit()
}

func (p *PlayerHealth) IsInvulnerable() bool {
	return p.seq != nil && p.seq.IsInvulnerable()
}

func (p *PlayerHealth) Health() int {
	if p.seq == nil {
		return 0
	}
	return p.seq.Health()
}

func (p *PlayerHealth) Phase() gameplay.Phase {
	if p.seq == nil {
		return gameplay.PhaseAlive
	}
	return p.seq.Phase()
}

// Reset drops any running sequence and puts the player back at full health
// on the respawn point.
func (p *PlayerHealth) Reset() {
	if p.seq == nil {
		return
	}
	p.seq.Initialize()
	p.OnReset.Invoke()
}

func (p *PlayerHealth) applyConfig(cfg gameplay.HealthConfig) {
	p.Config = cfg
	if p.seq != nil {
		p.seq.SetConfig(cfg)
	}
}

// heartsView shows one panel per heart; slot i is lost when i >= current.
type heartsView []*components.UIPanel

func (h heartsView) ShowHealth(current, max int) {
	for i, heart := range h {
		if heart == nil {
			continue
		}
		if i >= current {
			heart.Color = HeartLost
		} else {
			heart.Color = HeartFull
		}
	}
}

type panelFader struct {
	obj   *engine.GameObject
	panel *components.UIPanel
}

func (f *panelFader) SetFadeVisible(visible bool) { f.obj.SetActive(visible) }

func (f *panelFader) SetFadeOpacity(opacity float32) {
	if f.panel != nil {
		f.panel.SetOpacity(opacity)
	}
}

type panelToggle struct{ obj *engine.GameObject }

func (t panelToggle) SetGameOverVisible(visible bool) { t.obj.SetActive(visible) }

type anchorRespawner struct{ health *PlayerHealth }

func (r *anchorRespawner) Respawn() error {
	p := r.health
	anchor := p.RespawnPoint
	if anchor == nil || anchor.Destroyed() {
		return fmt.Errorf("respawn point: %w", gameplay.ErrMissingDependency)
	}
	g := p.GetGameObject()
	if g == nil {
		return fmt.Errorf("player object: %w", gameplay.ErrMissingDependency)
	}

	pos := anchor.WorldPosition()
	if cc := engine.GetComponent[*components.CharacterController](g); cc != nil {
		cc.Teleport(pos)
	} else {
		g.Transform.Position = pos
	}
	g.Transform.Rotation.Y = anchor.WorldRotation().Y
	p.OnRespawned.Invoke()
	return nil
}

func init() {
	engine.RegisterScriptWithApplier("PlayerHealth", playerHealthFactory, playerHealthSerializer, playerHealthApplier)
}

func playerHealthFactory(props map[string]any) engine.Component {
	return &PlayerHealth{Config: gameplay.HealthConfig{
		MaxHealth:               intProp(props, "maxHealth", 3),
		FadeDuration:            floatProp(props, "fadeDuration", 1),
		InvulnerabilityDuration: floatProp(props, "invulnerabilityDuration", 2),
		GameOverDelay:           floatProp(props, "gameOverDelay", gameplay.DefaultGameOverDelay),
	}}
}

func playerHealthSerializer(c engine.Component) map[string]any {
	p, ok := c.(*PlayerHealth)
	if !ok {
		return nil
	}
	return map[string]any{
		"maxHealth":               p.Config.MaxHealth,
		"fadeDuration":            p.Config.FadeDuration,
		"invulnerabilityDuration": p.Config.InvulnerabilityDuration,
		"gameOverDelay":           p.Config.GameOverDelay,
	}
}

func playerHealthApplier(c engine.Component, propName string, value any) bool {
	p, ok := c.(*PlayerHealth)
	if !ok {
		return false
	}
	v, ok := asFloat(value)
	if !ok {
		return false
	}
	cfg := p.Config
	switch propName {
	case "maxHealth":
		// The heart row is laid out when the level is built.
		if int(v) != cfg.MaxHealth {
			return false
		}
	case "fadeDuration":
		cfg.FadeDuration = v
	case "invulnerabilityDuration":
		cfg.InvulnerabilityDuration = v
	case "gameOverDelay":
		cfg.GameOverDelay = v
	default:
		return false
	}
	p.applyConfig(cfg)
	return true
}
