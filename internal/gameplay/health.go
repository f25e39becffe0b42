package gameplay

import (
	"fmt"
	"log"
)

// Phase is the externally visible stage of the player's health sequence.
type Phase int

const (
	PhaseAlive Phase = iota
	PhaseInvulnerable
	PhaseFadingOut
	PhaseFadingIn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "Alive"
	case PhaseInvulnerable:
		return "Invulnerable"
	case PhaseFadingOut:
		return "FadingOut"
	case PhaseFadingIn:
		return "FadingIn"
	case PhaseGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Sequence identifies which timed sequence is running.
type Sequence int

const (
	SequenceNone Sequence = iota
	SequenceRespawn
	SequenceGameOver
)

type HealthConfig struct {
	MaxHealth               int
	FadeDuration            float32
	InvulnerabilityDuration float32
	GameOverDelay           float32
}

// DefaultGameOverDelay is how long the game over screen stays up.
const DefaultGameOverDelay = 3

// HealthDisplay shows current health, e.g. as hearts.
type HealthDisplay interface {
	ShowHealth(current, max int)
}

// ScreenFader drives a full-screen overlay.
type ScreenFader interface {
	SetFadeVisible(visible bool)
	SetFadeOpacity(opacity float32)
}

type GameOverScreen interface {
	SetGameOverVisible(visible bool)
}

// Respawner moves the player to the respawn anchor.
type Respawner interface {
	Respawn() error
}

// CollectibleResetter is the book counter as seen from the health sequence.
type CollectibleResetter interface {
	ResetCollectedItems()
}

// HealthDeps are the collaborators of a HealthSequencer. Any of them may be
// nil; the dependent effect is then skipped.
type HealthDeps struct {
	Display      HealthDisplay
	Fader        ScreenFader
	GameOver     GameOverScreen
	Respawner    Respawner
	Collectibles CollectibleResetter
	// OnReset runs after a game over has reinitialized the player.
	OnReset func()
}

// Missing lists the nil collaborators by name.
func (d HealthDeps) Missing() []string {
	var missing []string
	if d.Display == nil {
		missing = append(missing, "health display")
	}
	if d.Fader == nil {
		missing = append(missing, "fade panel")
	}
	if d.GameOver == nil {
		missing = append(missing, "game over panel")
	}
	if d.Respawner == nil {
		missing = append(missing, "respawn point")
	}
	if d.Collectibles == nil {
		missing = append(missing, "collectible counter")
	}
	return missing
}

type step int

const (
	stepBeginInvulnerable step = iota
	stepFadeOut
	stepTeleport
	stepFadeIn
	stepInvulnerableWait
	stepEndInvulnerable
	stepResetCollectibles
	stepShowGameOver
	stepGameOverWait
	stepReinitialize
)

var (
	respawnSteps = []step{
		stepBeginInvulnerable,
		stepFadeOut,
		stepTeleport,
		stepFadeIn,
		stepInvulnerableWait,
		stepEndInvulnerable,
	}
	gameOverSteps = []step{
		stepFadeOut,
		stepTeleport,
		stepResetCollectibles,
		stepShowGameOver,
		stepGameOverWait,
		stepReinitialize,
		stepFadeIn,
	}
)

// HealthSequencer owns the player's health and the timed respawn and game
// over sequences. Sequences advance only through Tick and cannot be
// interrupted by further hits: invulnerability or zero health masks them.
type HealthSequencer struct {
	cfg  HealthConfig
	deps HealthDeps

	health       int
	invulnerable bool

	sequence Sequence
	steps    []step
	index    int
	entered  bool
	fade     Fade
	timer    float32
}

func NewHealthSequencer(cfg HealthConfig, deps HealthDeps) (*HealthSequencer, error) {
	if cfg.MaxHealth < 1 {
		return nil, fmt.Errorf("health: max health %d: %w", cfg.MaxHealth, ErrConfigurationMismatch)
	}
	if cfg.GameOverDelay <= 0 {
		cfg.GameOverDelay = DefaultGameOverDelay
	}
	return &HealthSequencer{cfg: cfg, deps: deps, health: cfg.MaxHealth}, nil
}

func (h *HealthSequencer) Health() int             { return h.health }
func (h *HealthSequencer) MaxHealth() int          { return h.cfg.MaxHealth }
func (h *HealthSequencer) IsInvulnerable() bool    { return h.invulnerable }
func (h *HealthSequencer) Sequence() Sequence      { return h.sequence }
func (h *HealthSequencer) Config() HealthConfig    { return h.cfg }
func (h *HealthSequencer) SetDeps(deps HealthDeps) { h.deps = deps }

// SetConfig retunes durations immediately; a new max health applies at the
// next reinitialization.
func (h *HealthSequencer) SetConfig(cfg HealthConfig) {
	if cfg.MaxHealth < 1 {
		cfg.MaxHealth = h.cfg.MaxHealth
	}
	if cfg.GameOverDelay <= 0 {
		cfg.GameOverDelay = DefaultGameOverDelay
	}
	h.cfg = cfg
}

// Phase reports the visible stage derived from the running step.
func (h *HealthSequencer) Phase() Phase {
	if h.sequence == SequenceNone {
		if h.invulnerable {
			return PhaseInvulnerable
		}
		return PhaseAlive
	}
	switch h.steps[h.index] {
	case stepFadeOut:
		return PhaseFadingOut
	case stepFadeIn:
		return PhaseFadingIn
	case stepShowGameOver, stepGameOverWait, stepReinitialize, stepResetCollectibles:
		return PhaseGameOver
	case stepTeleport:
		if h.sequence == SequenceGameOver {
			return PhaseGameOver
		}
	}
	if h.invulnerable {
		return PhaseInvulnerable
	}
	return PhaseAlive
}

// Initialize puts the player back at full health at the respawn anchor with
// every overlay hidden. Any running sequence is dropped.
func (h *HealthSequencer) Initialize() {
	h.sequence = SequenceNone
	h.steps = nil
	h.index = 0
	h.entered = false
	h.reinitialize()
}

func (h *HealthSequencer) reinitialize() {
	h.health = h.cfg.MaxHealth
	h.showHealth()
	if h.deps.GameOver != nil {
		h.deps.GameOver.SetGameOverVisible(false)
	}
	if h.deps.Fader != nil {
		h.deps.Fader.SetFadeVisible(false)
	}
	h.invulnerable = false
	h.respawn()
}

// TakeHit removes one heart and starts the respawn or game over sequence.
// It reports whether the hit landed.
func (h *HealthSequencer) TakeHit() bool {
	if h.health <= 0 || h.invulnerable {
		return false
	}
	h.health--
	log.Printf("health: player hit, %d/%d left", h.health, h.cfg.MaxHealth)
	h.showHealth()

	if h.health <= 0 {
		h.start(SequenceGameOver, gameOverSteps)
	} else {
		h.start(SequenceRespawn, respawnSteps)
	}
	return true
}

func (h *HealthSequencer) start(seq Sequence, steps []step) {
	h.sequence = seq
	h.steps = steps
	h.index = 0
	h.entered = false
	h.Tick(0)
}

// Tick advances the running sequence. Instant steps run back to back in the
// same tick; a timed step consumes the tick's time and yields until done.
func (h *HealthSequencer) Tick(deltaTime float32) {
	for h.sequence != SequenceNone {
		s := h.steps[h.index]
		if !h.entered {
			h.entered = true
			h.enter(s)
		} else {
			h.advance(s, deltaTime)
			deltaTime = 0
		}
		if !h.finished(s) {
			return
		}
		h.complete(s)
		h.next()
	}
}

func (h *HealthSequencer) next() {
	h.index++
	h.entered = false
	if h.index >= len(h.steps) {
		h.sequence = SequenceNone
		h.steps = nil
		h.index = 0
	}
}

func (h *HealthSequencer) finished(s step) bool {
	switch s {
	case stepFadeOut, stepFadeIn:
		return h.deps.Fader == nil || h.fade.Done()
	case stepInvulnerableWait, stepGameOverWait:
		return h.timer <= 0
	}
	return true
}

func (h *HealthSequencer) enter(s step) {
	switch s {
	case stepBeginInvulnerable:
		h.invulnerable = true
	case stepFadeOut:
		h.beginFade(FadeOut(h.cfg.FadeDuration))
	case stepFadeIn:
		h.beginFade(FadeIn(h.cfg.FadeDuration))
	case stepTeleport:
		h.respawn()
	case stepInvulnerableWait:
		h.timer = h.cfg.InvulnerabilityDuration
	case stepEndInvulnerable:
		h.invulnerable = false
		log.Printf("health: invulnerability ended")
	case stepResetCollectibles:
		if h.deps.Collectibles == nil {
			log.Printf("health: cannot reset collectibles: %v", ErrMissingDependency)
			return
		}
		h.deps.Collectibles.ResetCollectedItems()
	case stepShowGameOver:
		if h.deps.GameOver != nil {
			if h.deps.Fader != nil {
				h.deps.Fader.SetFadeVisible(false)
			}
			h.deps.GameOver.SetGameOverVisible(true)
		}
	case stepGameOverWait:
		h.timer = h.cfg.GameOverDelay
	case stepReinitialize:
		h.reinitialize()
		if h.deps.OnReset != nil {
			h.deps.OnReset()
		}
	}
}

func (h *HealthSequencer) advance(s step, deltaTime float32) {
	switch s {
	case stepFadeOut, stepFadeIn:
		if h.deps.Fader == nil {
			return
		}
		opacity, _ := h.fade.Step(deltaTime)
		h.deps.Fader.SetFadeOpacity(opacity)
	case stepInvulnerableWait, stepGameOverWait:
		h.timer -= deltaTime
	}
}

// complete pins a finished fade to its end value; a finished fade in also
// hides the overlay.
func (h *HealthSequencer) complete(s step) {
	if h.deps.Fader == nil {
		return
	}
	switch s {
	case stepFadeOut:
		h.deps.Fader.SetFadeOpacity(1)
	case stepFadeIn:
		h.deps.Fader.SetFadeOpacity(0)
		h.deps.Fader.SetFadeVisible(false)
	}
}

func (h *HealthSequencer) beginFade(f Fade) {
	h.fade = f
	if h.deps.Fader == nil {
		return
	}
	h.deps.Fader.SetFadeVisible(true)
	h.deps.Fader.SetFadeOpacity(h.fade.Opacity())
}

func (h *HealthSequencer) showHealth() {
	if h.deps.Display != nil {
		h.deps.Display.ShowHealth(h.health, h.cfg.MaxHealth)
	}
}

func (h *HealthSequencer) respawn() {
	if h.deps.Respawner == nil {
		log.Printf("health: respawn point is not set: %v", ErrMissingDependency)
		return
	}
	if err := h.deps.Respawner.Respawn(); err != nil {
		log.Printf("health: respawn: %v", err)
	}
}
