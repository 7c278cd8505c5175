// Package demo provides the screens of the navstack demo application.
package demo

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Screen kinds understood by Factory.
const (
	KindColor  = "color"
	KindNumber = "number"
)

// RandomLevel asks NewColorScreen for a random RGB color instead of a grey.
const RandomLevel = -1

// ColorScreen fills the container with a single color.
type ColorScreen struct {
	R, G, B int32
	view    *tview.Box
}

// NewColorScreen returns a grey screen of the given level (0..255, clamped),
// or a random color for RandomLevel.
func NewColorScreen(level int) *ColorScreen {
	if level == RandomLevel {
		return &ColorScreen{R: rand.Int31n(256), G: rand.Int31n(256), B: rand.Int31n(256)}
	}
	l := int32(min(max(level, 0), 255))
	return &ColorScreen{R: l, G: l, B: l}
}

func (s *ColorScreen) Name() string {
	return fmt.Sprintf("Color #%02x%02x%02x", s.R, s.G, s.B)
}

func (s *ColorScreen) Descriptor() domain.Descriptor {
	return domain.Descriptor{Kind: KindColor, Args: map[string]any{"r": s.R, "g": s.G, "b": s.B}}
}

// Primitive returns the view, building it on first use.
func (s *ColorScreen) Primitive() tview.Primitive {
	if s.view == nil {
		s.view = tview.NewBox().
			SetBorder(true).
			SetTitle(" " + s.Name() + " ").
			SetBackgroundColor(tcell.NewRGBColor(s.R, s.G, s.B))
	}
	return s.view
}

// NumberScreen shows its position in the demo's counting sequence.
type NumberScreen struct {
	Value int
	view  *tview.TextView
}

func NewNumberScreen(value int) *NumberScreen {
	return &NumberScreen{Value: value}
}

func (s *NumberScreen) Name() string {
	return fmt.Sprintf("Number %d", s.Value)
}

func (s *NumberScreen) Descriptor() domain.Descriptor {
	return domain.Descriptor{Kind: KindNumber, Args: map[string]any{"value": s.Value}}
}

func (s *NumberScreen) Primitive() tview.Primitive {
	if s.view == nil {
		s.view = tview.NewTextView().
			SetTextAlign(tview.AlignCenter).
			SetText(fmt.Sprintf("\n\n%s\n\n[n] number  [c] color  [r] reset  [esc] back", s.Name()))
		s.view.SetBorder(true)
	}
	return s.view
}
