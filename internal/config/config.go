// Package config loads the authored game tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"slices"

	"bookhunt/internal/gameplay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Vec3 is authored as [x, y, z].
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 { return rl.Vector3{X: v[0], Y: v[1], Z: v[2]} }

// Color is authored as [r, g, b] or [r, g, b, a].
type Color []int

// RGBA converts the color, falling back when fewer than three channels are given.
func (c Color) RGBA(fallback rl.Color) rl.Color {
	if len(c) < 3 {
		return fallback
	}
	a := 255
	if len(c) > 3 {
		a = c[3]
	}
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), channel(a))
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

type Config struct {
	Window   WindowConfig            `yaml:"window"`
	Player   PlayerConfig            `yaml:"player"`
	Enemies  []EnemyConfig           `yaml:"enemies"`
	Minigame MinigameConfig          `yaml:"minigame"`
	Prefabs  map[string]PrefabConfig `yaml:"prefabs"`
	Walls    []WallConfig            `yaml:"walls"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type PlayerConfig struct {
	Spawn                   Vec3    `yaml:"spawn"`
	SpawnYaw                float32 `yaml:"spawn_yaw"`
	Speed                   float32 `yaml:"speed"`
	RotationSpeed           float32 `yaml:"rotation_speed"`
	MaxHealth               int     `yaml:"max_health"`
	FadeDuration            float32 `yaml:"fade_duration"`
	InvulnerabilityDuration float32 `yaml:"invulnerability_duration"`
	GameOverDelay           float32 `yaml:"game_over_delay"`
}

type EnemyConfig struct {
	Name             string  `yaml:"name"`
	Position         Vec3    `yaml:"position"`
	Color            Color   `yaml:"color"`
	ChaseRange       float32 `yaml:"chase_range"`
	PatrolSpeed      float32 `yaml:"patrol_speed"`
	ChaseSpeed       float32 `yaml:"chase_speed"`
	WaitAtPoint      float32 `yaml:"wait_at_point"`
	SuspiciousTime   float32 `yaml:"suspicious_time"`
	ArrivalThreshold float32 `yaml:"arrival_threshold"`
	ContactCooldown  float32 `yaml:"contact_cooldown"`
	Waypoints        []Vec3  `yaml:"waypoints"`
}

type MinigameConfig struct {
	MaxCollectibles int      `yaml:"max_collectibles"`
	Pickups         []string `yaml:"pickups"`
	SpawnPoints     []Vec3   `yaml:"spawn_points"`
}

type PrefabConfig struct {
	Color       Color   `yaml:"color"`
	Size        Vec3    `yaml:"size"`
	SpinSpeed   float32 `yaml:"spin_speed"`
	TriggerSize Vec3    `yaml:"trigger_size"`
}

type WallConfig struct {
	Position Vec3  `yaml:"position"`
	Size     Vec3  `yaml:"size"`
	Color    Color `yaml:"color"`
}

// ApplyDefaults fills in values left at zero.
func (c *Config) ApplyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.Window.Title == "" {
		c.Window.Title = "Book Hunt"
	}
	if c.Window.TargetFPS == 0 {
		c.Window.TargetFPS = 60
	}

	p := &c.Player
	if p.Speed == 0 {
		p.Speed = 5
	}
	if p.RotationSpeed == 0 {
		p.RotationSpeed = 120
	}
	if p.MaxHealth == 0 {
		p.MaxHealth = 3
	}
	if p.FadeDuration == 0 {
		p.FadeDuration = 1
	}
	if p.InvulnerabilityDuration == 0 {
		p.InvulnerabilityDuration = 2
	}
	if p.GameOverDelay == 0 {
		p.GameOverDelay = gameplay.DefaultGameOverDelay
	}

	for i := range c.Enemies {
		e := &c.Enemies[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("Enemy%d", i+1)
		}
		if e.ChaseRange == 0 {
			e.ChaseRange = 10
		}
		if e.PatrolSpeed == 0 {
			e.PatrolSpeed = 2
		}
		if e.ChaseSpeed == 0 {
			e.ChaseSpeed = 5
		}
		if e.WaitAtPoint == 0 {
			e.WaitAtPoint = 2
		}
		if e.SuspiciousTime == 0 {
			e.SuspiciousTime = 5
		}
		if e.ArrivalThreshold == 0 {
			e.ArrivalThreshold = gameplay.DefaultArrivalThreshold
		}
		if e.ContactCooldown == 0 {
			e.ContactCooldown = 1
		}
	}

	if c.Minigame.MaxCollectibles == 0 {
		c.Minigame.MaxCollectibles = len(c.Minigame.SpawnPoints)
	}

	for name, p := range c.Prefabs {
		if p.Size == (Vec3{}) {
			p.Size = Vec3{0.6, 0.8, 0.2}
		}
		if p.TriggerSize == (Vec3{}) {
			p.TriggerSize = Vec3{1, 1.5, 1}
		}
		c.Prefabs[name] = p
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d", c.Window.Width, c.Window.Height)
	}

	p := c.Player
	if p.MaxHealth < 1 {
		fail("player.max_health %d must be at least 1", p.MaxHealth)
	}
	if p.Speed <= 0 {
		fail("player.speed must be positive")
	}
	if p.FadeDuration < 0 || p.InvulnerabilityDuration < 0 || p.GameOverDelay < 0 {
		fail("player durations must not be negative")
	}

	for i, e := range c.Enemies {
		if len(e.Waypoints) == 0 {
			fail("enemies[%d] %q has no waypoints", i, e.Name)
		}
		if e.ChaseRange <= 0 || e.PatrolSpeed <= 0 || e.ChaseSpeed <= 0 {
			fail("enemies[%d] %q ranges and speeds must be positive", i, e.Name)
		}
		if e.WaitAtPoint < 0 || e.SuspiciousTime < 0 || e.ContactCooldown < 0 {
			fail("enemies[%d] %q durations must not be negative", i, e.Name)
		}
	}

	if c.Minigame.MaxCollectibles < 1 {
		fail("minigame.max_collectibles %d must be at least 1", c.Minigame.MaxCollectibles)
	}
	for _, name := range c.Minigame.Pickups {
		if _, ok := c.Prefabs[name]; !ok && name != "" {
			fail("minigame pickup prefab %q is not defined", name)
		}
	}

	return errors.Join(errs...)
}

// PrefabNames returns the defined prefab names in sorted order.
func (c *Config) PrefabNames() []string {
	names := make([]string, 0, len(c.Prefabs))
	for name := range c.Prefabs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Enemy finds an enemy by name.
func (c *Config) Enemy(name string) (EnemyConfig, bool) {
	for _, e := range c.Enemies {
		if e.Name == name {
			return e, true
		}
	}
	return EnemyConfig{}, false
}

func (e EnemyConfig) WaypointVectors() []rl.Vector3 {
	out := make([]rl.Vector3, len(e.Waypoints))
	for i, w := range e.Waypoints {
		out[i] = w.Vector3()
	}
	return out
}

// Points converts the authored pickup positions.
func (m MinigameConfig) Points() []gameplay.SpawnPoint {
	out := make([]gameplay.SpawnPoint, len(m.SpawnPoints))
	for i, p := range m.SpawnPoints {
		out[i] = gameplay.SpawnPoint{Position: p.Vector3()}
	}
	return out
}
