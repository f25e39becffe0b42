package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard reads WASD and the arrow keys as a vertical and horizontal axis.
type Keyboard struct {
	Vertical   Axis
	Horizontal Axis
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Vertical: NewAxis(), Horizontal: NewAxis()}
}

// Read samples the keys and returns the smoothed axes.
func (k *Keyboard) Read(deltaTime float32) (vertical, horizontal float32) {
	v := Raw(rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp), rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown))
	h := Raw(rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight), rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft))
	return k.Vertical.Update(v, deltaTime), k.Horizontal.Update(h, deltaTime)
}
