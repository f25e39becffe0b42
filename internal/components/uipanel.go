package components

import (
	"bookhunt/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel is a background panel. With a Title it is drawn as a raygui panel;
// with a ButtonLabel it also shows a raygui button that raises OnClick.
type UIPanel struct {
	engine.BaseComponent

	Color        rl.Color
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // Rounded corners (0 = sharp)

	// Opacity scales the alpha of everything the panel draws.
	Opacity float32

	Title       string
	Message     string
	ButtonLabel string
	OnClick     engine.Event
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:        rl.NewColor(30, 30, 40, 200),
		BorderColor:  rl.NewColor(60, 60, 75, 255),
		BorderWidth:  1,
		BorderRadius: 0,
		Opacity:      1,
	}
}

// SetOpacity clamps to [0, 1].
func (p *UIPanel) SetOpacity(opacity float32) {
	p.Opacity = min(max(opacity, 0), 1)
}

// Draw renders the panel background
func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.Opacity <= 0 {
		return
	}
	if p.Title != "" {
		p.drawGui(rect)
		return
	}

	fill := rl.Fade(p.Color, float32(p.Color.A)/255*p.Opacity)
	border := rl.Fade(p.BorderColor, float32(p.BorderColor.A)/255*p.Opacity)
	if p.BorderRadius > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, fill)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), border)
		}
	} else {
		rl.DrawRectangleRec(rect, fill)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), border)
		}
	}
}

func (p *UIPanel) drawGui(rect rl.Rectangle) {
	gui.SetAlpha(p.Opacity)
	defer gui.SetAlpha(1)

	gui.Panel(rect, p.Title)

	const pad = 16
	const header = 24
	if p.Message != "" {
		gui.Label(rl.Rectangle{
			X:      rect.X + pad,
			Y:      rect.Y + header + pad,
			Width:  rect.Width - 2*pad,
			Height: 30,
		}, p.Message)
	}
	if p.ButtonLabel != "" {
		bounds := rl.Rectangle{
			X:      rect.X + (rect.Width-140)/2,
			Y:      rect.Y + rect.Height - 40 - pad,
			Width:  140,
			Height: 40,
		}
		if gui.Button(bounds, p.ButtonLabel) {
			p.OnClick.Invoke()
		}
	}
}
