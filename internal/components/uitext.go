package components

import (
	"bookhunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText displays text on screen
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
	Shadow    bool
}

func NewUIText(text string) *UIText {
	return &UIText{
		Text:      text,
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
	}
}

func (t *UIText) SetText(text string) { t.Text = text }

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}

	textWidth := float32(rl.MeasureText(t.Text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	// Vertically center text in rect
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	if t.Shadow {
		rl.DrawText(t.Text, int32(x)+2, int32(y)+2, t.FontSize, rl.Fade(rl.Black, 0.6))
	}
	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
