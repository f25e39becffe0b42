package world

import (
	"errors"
	"fmt"
	"log"

	"bookhunt/internal/components"
	"bookhunt/internal/config"
	"bookhunt/internal/engine"
	"bookhunt/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	floorColor  = rl.NewColor(70, 75, 70, 255)
	playerColor = rl.NewColor(230, 200, 120, 255)
	wallColor   = rl.NewColor(120, 100, 80, 255)
	enemyColor  = rl.NewColor(150, 40, 40, 255)
	bookColor   = rl.NewColor(200, 200, 200, 255)
	overlay     = rl.NewColor(0, 0, 0, 255)
)

const (
	floorSize    = 30
	playerHeight = 1.8
	playerWidth  = 0.8
	enemyHeight  = 2
	enemyWidth   = 1.2
	heartSize    = 28
	heartGap     = 8
)

// Level is the built book hunt scene with handles to the objects the game
// loop and hot reload need.
type Level struct {
	World *World

	Player     *engine.GameObject
	Camera     *components.FollowCamera
	Controller *scripts.PlayerController
	Health     *scripts.PlayerHealth
	Manager    *scripts.MinigameManager
	Enemies    map[string]*scripts.EnemyController
}

// BuildLevel creates every object described by cfg. Nothing is started, so
// callers may still swap collaborators (for example the player's input)
// before World.Start.
func BuildLevel(cfg *config.Config) (*Level, error) {
	w := New()
	lvl := &Level{World: w, Enemies: make(map[string]*scripts.EnemyController)}

	w.SpawnObject(newBox("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: floorSize, Y: 1, Z: floorSize}, floorColor))
	for i, wall := range cfg.Walls {
		w.SpawnObject(newBox(fmt.Sprintf("Wall%d", i+1), wall.Position.Vector3(), wall.Size.Vector3(), wall.Color.RGBA(wallColor)))
	}

	if err := lvl.buildPlayer(cfg.Player); err != nil {
		return nil, err
	}
	ui := lvl.buildUI(cfg)

	manager, err := newScript[*scripts.MinigameManager]("MinigameManager", cfg.Minigame.Props())
	if err != nil {
		return nil, err
	}
	manager.Pickups = cfg.Minigame.Pickups
	manager.SpawnPoints = cfg.Minigame.Points()
	manager.ScoreText = ui.score
	manager.SuccessPanel = ui.success
	manager.Health = lvl.Health
	mg := engine.NewGameObject("MinigameManager")
	mg.AddComponent(manager)
	w.SpawnObject(mg)
	lvl.Manager = manager
	lvl.Health.Collectibles = manager
	ui.successPanel.OnClick.AddListener(manager.Restart)

	lvl.registerPrefabs(cfg)

	for _, ec := range cfg.Enemies {
		if err := lvl.buildEnemy(ec); err != nil {
			return nil, err
		}
	}

	cam := engine.NewGameObject("Main Camera")
	lvl.Camera = components.NewFollowCamera(lvl.Player)
	cam.AddComponent(lvl.Camera)
	w.SpawnObject(cam)
	lvl.Health.OnRespawned.AddListener(lvl.Camera.Snap)

	return lvl, nil
}

func (l *Level) buildPlayer(pc config.PlayerConfig) error {
	w := l.World

	spawn := engine.NewGameObject("RespawnPoint")
	spawn.Transform.Position = pc.Spawn.Vector3()
	spawn.Transform.Rotation.Y = pc.SpawnYaw
	w.SpawnObject(spawn)

	player := engine.NewGameObject("Player")
	player.Tags = []string{scripts.PlayerTag}
	player.Transform.Position = pc.Spawn.Vector3()
	player.Transform.Rotation.Y = pc.SpawnYaw

	cc := components.NewCharacterController()
	cc.Height = playerHeight
	cc.Radius = playerWidth / 2
	player.AddComponent(cc)
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: playerWidth, Y: playerHeight, Z: playerWidth}))
	player.AddComponent(components.NewMeshRenderer(components.MeshCube, playerColor, rl.Vector3{X: playerWidth, Y: playerHeight, Z: playerWidth}))

	controller, err := newScript[*scripts.PlayerController]("PlayerController", pc.ControllerProps())
	if err != nil {
		return err
	}
	player.AddComponent(controller)

	health, err := newScript[*scripts.PlayerHealth]("PlayerHealth", pc.HealthProps())
	if err != nil {
		return err
	}
	health.RespawnPoint = spawn
	player.AddComponent(health)

	w.SpawnObject(player)
	l.Player = player
	l.Controller = controller
	l.Health = health
	return nil
}

func (l *Level) buildEnemy(ec config.EnemyConfig) error {
	enemy := engine.NewGameObject(ec.Name)
	enemy.Transform.Position = ec.Position.Vector3()

	controller, err := newScript[*scripts.EnemyController]("EnemyController", ec.Props())
	if err != nil {
		return fmt.Errorf("enemy %q: %w", ec.Name, err)
	}
	controller.Waypoints = ec.WaypointVectors()
	controller.Target = l.Player
	controller.Health = l.Health

	size := rl.Vector3{X: enemyWidth, Y: enemyHeight, Z: enemyWidth}
	enemy.AddComponent(controller)
	enemy.AddComponent(components.NewNavAgent(ec.PatrolSpeed))
	enemy.AddComponent(components.NewAnimator())
	enemy.AddComponent(components.NewTriggerCollider(size))
	enemy.AddComponent(components.NewMeshRenderer(components.MeshCube, ec.Color.RGBA(enemyColor), size))

	l.World.SpawnObject(enemy)
	l.Health.OnReset.AddListener(controller.ResetBehavior)
	l.Enemies[ec.Name] = controller
	return nil
}

type hud struct {
	score        *components.UIText
	success      *engine.GameObject
	successPanel *components.UIPanel
}

func (l *Level) buildUI(cfg *config.Config) hud {
	w := l.World
	canvas := engine.NewGameObject("Canvas")
	canvas.AddComponent(components.NewUICanvas())
	w.SpawnObject(canvas)

	add := func(name string, rect *components.RectTransform) *engine.GameObject {
		g := engine.NewGameObject(name)
		g.AddComponent(rect)
		canvas.AddChild(g)
		w.SpawnObject(g)
		return g
	}

	score := components.NewUIText("")
	score.FontSize = 32
	score.Shadow = true
	add("ScoreText", components.NewAnchoredRect(components.AnchorTopRight, rl.Vector2{X: -20, Y: 20}, rl.Vector2{X: 160, Y: 40})).AddComponent(score)

	help := components.NewUIText("W/S walk, A/D strafe and turn, find every book")
	help.FontSize = 18
	add("Help", components.NewAnchoredRect(components.AnchorBottomCenter, rl.Vector2{Y: -16}, rl.Vector2{X: 480, Y: 24})).AddComponent(help)

	hearts := make([]*components.UIPanel, cfg.Player.MaxHealth)
	for i := range hearts {
		heart := components.NewUIPanel()
		heart.Color = scripts.HeartFull
		heart.BorderRadius = heartSize / 2
		x := float32(20 + i*(heartSize+heartGap))
		add(fmt.Sprintf("Heart%d", i+1), components.NewAnchoredRect(components.AnchorTopLeft, rl.Vector2{X: x, Y: 20}, rl.Vector2{X: heartSize, Y: heartSize})).AddComponent(heart)
		hearts[i] = heart
	}
	l.Health.Hearts = hearts

	fade := components.NewUIPanel()
	fade.Color = overlay
	fade.BorderWidth = 0
	fadeObj := add("FadePanel", components.NewStretchRect())
	fadeObj.AddComponent(fade)
	fadeObj.SetActive(false)
	l.Health.FadePanel = fadeObj

	gameOver := components.NewUIPanel()
	gameOver.Title = "Game Over"
	gameOver.Message = "The staff caught you. Starting over..."
	gameOverObj := add("GameOverPanel", components.NewAnchoredRect(components.AnchorMiddleCenter, rl.Vector2{}, rl.Vector2{X: 360, Y: 140}))
	gameOverObj.AddComponent(gameOver)
	gameOverObj.SetActive(false)
	l.Health.GameOverPanel = gameOverObj

	success := components.NewUIPanel()
	success.Title = "Success"
	success.Message = "You found every book!"
	success.ButtonLabel = "Restart"
	successObj := add("SuccessPanel", components.NewAnchoredRect(components.AnchorMiddleCenter, rl.Vector2{}, rl.Vector2{X: 360, Y: 180}))
	successObj.AddComponent(success)
	successObj.SetActive(false)

	return hud{score: score, success: successObj, successPanel: success}
}

// registerPrefabs (re)binds every configured pickup prefab. Books spawned
// afterwards use the new definition.
func (l *Level) registerPrefabs(cfg *config.Config) {
	for _, name := range cfg.PrefabNames() {
		pc := cfg.Prefabs[name]
		l.World.RegisterPrefab(name, l.bookPrefab(name, pc))
	}
}

func (l *Level) bookPrefab(name string, pc config.PrefabConfig) Prefab {
	return func(position rl.Vector3, yaw float32) *engine.GameObject {
		book := engine.NewGameObject(name)
		book.Tags = []string{scripts.CollectibleTag}
		book.AddComponent(components.NewMeshRenderer(components.MeshCube, pc.Color.RGBA(bookColor), pc.Size.Vector3()))
		book.AddComponent(components.NewTriggerCollider(pc.TriggerSize.Vector3()))
		book.AddComponent(&scripts.Rotator{Speed: pc.SpinSpeed})
		book.AddComponent(&scripts.CollectibleItem{TargetTag: scripts.PlayerTag, Manager: l.Manager})
		return book
	}
}

// ApplyConfig retunes the running level from a reloaded config and returns
// the properties no script accepted. Layout changes (walls, spawn points,
// enemy roster) need a restart.
func (l *Level) ApplyConfig(cfg *config.Config) []string {
	var rejected []string
	note := func(who string, names []string) {
		for _, n := range names {
			rejected = append(rejected, who+"."+n)
		}
	}

	note("player", engine.ApplyScriptProps(l.Controller, cfg.Player.ControllerProps()))
	note("player", engine.ApplyScriptProps(l.Health, cfg.Player.HealthProps()))
	note("minigame", engine.ApplyScriptProps(l.Manager, cfg.Minigame.Props()))
	for name, enemy := range l.Enemies {
		ec, ok := cfg.Enemy(name)
		if !ok {
			log.Printf("Level: enemy %q is no longer configured, keeping its tuning", name)
			continue
		}
		note(name, engine.ApplyScriptProps(enemy, ec.Props()))
	}
	l.registerPrefabs(cfg)
	return rejected
}

func newBox(name string, position, size rl.Vector3, color rl.Color) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = position
	g.AddComponent(components.NewBoxCollider(size))
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
	return g
}

var errScriptType = errors.New("unexpected script type")

// newScript creates a registered script and checks its concrete type.
func newScript[T engine.Component](name string, props map[string]any) (T, error) {
	var zero T
	c := engine.CreateScript(name, props)
	if c == nil {
		return zero, fmt.Errorf("script %q is not registered, have %v", name, engine.GetRegisteredScripts())
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("script %q: %w %T", name, errScriptType, c)
	}
	return typed, nil
}
