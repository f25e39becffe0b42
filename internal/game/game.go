// Package game runs the window, the frame loop and config hot reload.
package game

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"time"

	"bookhunt/internal/config"
	"bookhunt/internal/engine"
	"bookhunt/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    *config.Config
	Level     *world.Level
	DebugMode bool

	loader  *config.Loader
	watcher *config.Watcher

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the config from dir and builds the level.
func New(dir string) (*Game, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	lvl, err := world.BuildLevel(cfg)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	return &Game{Config: cfg, Level: lvl, loader: loader}, nil
}

func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.TargetFPS)

	watcher, err := config.NewWatcher(g.loader.Dir())
	if err != nil {
		log.Printf("Game: config hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
		defer watcher.Close()
	}

	g.Level.World.Start()
	g.Level.Camera.Snap()

	for !rl.WindowShouldClose() {
		g.pollConfig()
		g.Update()
		g.Draw()
	}
}

// pollConfig applies pending reloads on the frame loop so scripts are never
// touched from the watcher goroutine.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: config watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	cfg, err := g.loader.Load()
	if err != nil {
		log.Printf("Game: keeping previous config, %s: %v", path, err)
		return
	}
	g.Config = cfg
	if rejected := g.Level.ApplyConfig(cfg); len(rejected) > 0 {
		log.Printf("Game: reloaded %s, ignored %v", path, rejected)
		return
	}
	log.Printf("Game: reloaded %s", path)
}

func (g *Game) Update() {
	updateStart := time.Now()

	g.Level.World.Update(rl.GetFrameTime())

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		for _, l := range scriptDump(g.Level.World.Scene) {
			log.Print(l)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.Level.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.Level.World.Draw3D(camera, aspect)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.Level.World.DrawUI()
	g.DrawDebug()
	rl.EndDrawing()
}

func (g *Game) DrawDebug() {
	if !g.DebugMode {
		return
	}
	rl.DrawFPS(10, 60)

	y := int32(85)
	line := func(format string, args ...any) {
		rl.DrawText(fmt.Sprintf(format, args...), 10, y, 16, rl.Green)
		y += 20
	}
	line("Update:  %.2f ms", g.updateMs)
	line("Draw:    %.2f ms", g.drawMs)
	clock := g.Level.World.Clock()
	line("Time scale: %.2f, game time %.1f s", clock.TimeScale(), clock.Elapsed())
	line("Health: %d (%s)", g.Level.Health.Health(), g.Level.Health.Phase())
	line("Books: %s", g.Level.Manager.Text())
	for _, name := range g.enemyNames() {
		line("%s: %s", name, g.Level.Enemies[name].State())
	}
}

func (g *Game) enemyNames() []string {
	names := make([]string, 0, len(g.Config.Enemies))
	for _, e := range g.Config.Enemies {
		if _, ok := g.Level.Enemies[e.Name]; ok {
			names = append(names, e.Name)
		}
	}
	return names
}

// scriptDump describes every registered script in the scene, one line per
// script, as "<object>/<script> key=value ...".
func scriptDump(scene *engine.Scene) []string {
	var lines []string
	for _, obj := range scene.GameObjects {
		for _, c := range obj.Components() {
			name, props, ok := engine.SerializeScript(c)
			if !ok {
				continue
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%s/%s", obj.Name, name)
			for _, key := range slices.Sorted(maps.Keys(props)) {
				fmt.Fprintf(&b, " %s=%v", key, props[key])
			}
			lines = append(lines, b.String())
		}
	}
	return lines
}
