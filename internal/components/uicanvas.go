package components

import (
	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root container for UI elements.
// Attach to a GameObject and add UI element children.
// The canvas handles layout calculation and drawing order.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw() {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	screenRect := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
	c.drawUIElement(g, screenRect)
}

// drawUIElement recursively draws a UI element and its children. Panels go
// under text on the same object.
func (c *UICanvas) drawUIElement(g *engine.GameObject, parentRect rl.Rectangle) {
	if g == nil || !g.Active || g.Destroyed() {
		return
	}

	currentRect := Layout(g, parentRect)

	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(currentRect)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(currentRect)
	}

	for _, child := range g.Children {
		c.drawUIElement(child, currentRect)
	}
}

// Layout computes g's screen rect inside parentRect. Objects without a
// RectTransform fill their parent.
func Layout(g *engine.GameObject, parentRect rl.Rectangle) rl.Rectangle {
	rt := engine.GetComponent[*RectTransform](g)
	if rt == nil {
		return parentRect
	}
	rt.CalculateRect(parentRect)
	return rt.GetScreenRect()
}
