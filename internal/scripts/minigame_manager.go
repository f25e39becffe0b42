package scripts

import (
	"fmt"
	"log"

	"bookhunt/internal/components"
	"bookhunt/internal/engine"
	"bookhunt/internal/gameplay"
)

const (
	PlayerTag      = "Player"
	CollectibleTag = "Collectible"
)

// Restartable is anything the success screen's restart puts back to start.
type Restartable interface {
	Reset()
}

// MinigameManager counts collected books, shows "<count> / <max>" and stops
// time when every book is found.
type MinigameManager struct {
	engine.BaseComponent
	MaxCollectibles int
	Pickups         []string
	SpawnPoints     []gameplay.SpawnPoint

	ScoreText    *components.UIText
	SuccessPanel *engine.GameObject
	Health       Restartable

	OnSuccess engine.Event

	tally *gameplay.Tally
}

func (m *MinigameManager) Start() {
	deps := gameplay.TallyDeps{OnSuccess: m.succeed}
	if m.ScoreText != nil {
		deps.Display = m.ScoreText
	} else {
		log.Printf("MinigameManager: score text is not assigned: %v", gameplay.ErrMissingDependency)
	}
	if w := m.world(); w != nil {
		deps.Spawner = worldSpawner{world: w}
	}

	tally, err := gameplay.NewTally(m.MaxCollectibles, m.Pickups, m.SpawnPoints, deps)
	if err != nil {
		log.Printf("MinigameManager: %v", err)
		return
	}
	m.tally = tally

	m.setSuccessVisible(false)
	m.setTimeScale(1)
	if err := m.tally.Start(); err != nil {
		log.Printf("MinigameManager: %v", err)
	}
}

// Collect counts one book.
func (m *MinigameManager) Collect() bool {
	if m.tally == nil {
		return false
	}
	return m.tally.Collect()
}

// ResetCollectedItems zeroes the count and puts every book back.
func (m *MinigameManager) ResetCollectedItems() {
	if m.tally == nil {
		return
	}
	if err := m.tally.Reset(); err != nil {
		log.Printf("MinigameManager: reset: %v", err)
	}
}

// Restart leaves the success screen and starts a fresh round.
func (m *MinigameManager) Restart() {
	log.Printf("MinigameManager: restarting")
	m.setSuccessVisible(false)
	m.setTimeScale(1)
	m.ResetCollectedItems()
	if m.Health != nil {
		m.Health.Reset()
	}
}

func (m *MinigameManager) Count() int {
	if m.tally == nil {
		return 0
	}
	return m.tally.Count()
}

func (m *MinigameManager) Text() string {
	if m.tally == nil {
		return ""
	}
	return m.tally.Text()
}

func (m *MinigameManager) succeed() {
	log.Printf("MinigameManager: all %d books found", m.MaxCollectibles)
	m.setSuccessVisible(true)
	m.setTimeScale(0)
	m.OnSuccess.Invoke()
}

func (m *MinigameManager) world() engine.WorldAccess {
	g := m.GetGameObject()
	if g == nil || g.Scene == nil {
		return nil
	}
	return g.Scene.World
}

func (m *MinigameManager) setSuccessVisible(visible bool) {
	if m.SuccessPanel != nil {
		m.SuccessPanel.SetActive(visible)
	}
}

func (m *MinigameManager) setTimeScale(scale float32) {
	if w := m.world(); w != nil && w.Clock() != nil {
		w.Clock().SetTimeScale(scale)
	}
}

// worldSpawner places pickups through the world's prefab table.
type worldSpawner struct{ world engine.WorldAccess }

func (s worldSpawner) DestroyPickups() int {
	return s.world.DestroyTagged(CollectibleTag)
}

func (s worldSpawner) SpawnPickup(prefab string, at gameplay.SpawnPoint) error {
	if _, err := s.world.Instantiate(prefab, at.Position, at.Yaw); err != nil {
		return fmt.Errorf("pickup %q: %w", prefab, err)
	}
	return nil
}

func init() {
	engine.RegisterScriptWithApplier("MinigameManager", minigameManagerFactory, minigameManagerSerializer, minigameManagerApplier)
}

func minigameManagerFactory(props map[string]any) engine.Component {
	return &MinigameManager{MaxCollectibles: intProp(props, "maxCollectibles", 3)}
}

func minigameManagerSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MinigameManager)
	if !ok {
		return nil
	}
	return map[string]any{
		"maxCollectibles": m.MaxCollectibles,
		"collected":       m.Count(),
	}
}

func minigameManagerApplier(c engine.Component, propName string, value any) bool {
	m, ok := c.(*MinigameManager)
	if !ok || propName != "maxCollectibles" {
		return false
	}
	v, ok := asFloat(value)
	if !ok || v < 1 {
		return false
	}
	m.MaxCollectibles = int(v)
	if m.tally != nil {
		m.tally.SetMax(m.MaxCollectibles)
	}
	return true
}
