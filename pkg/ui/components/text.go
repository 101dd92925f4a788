package components

import (
	"strings"

	"github.com/alexisbeaulieu97/tabs/pkg/view"
	"github.com/mattn/go-runewidth"
)

// Text is a primitive component for rendering styled, possibly multi-line text.
type Text struct {
	BaseComponent
	view.Base
	content string
	lines   []string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	t := &Text{BaseComponent: NewBaseComponent()}
	t.SetContent(content)
	return t
}

// Draw prints the lines that fit, cropping the rest.
func (t *Text) Draw(p *view.Printer) {
	style := t.ComputeStyle(t.Theme())
	for y, line := range t.lines {
		if y >= p.Size().Y {
			break
		}
		p.PrintStyled(view.Vec2{Y: y}, line, style)
	}
}

// RequiredSize is the widest line by the number of lines.
func (t *Text) RequiredSize(view.Vec2) view.Vec2 {
	width := 0
	for _, line := range t.lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return view.Vec2{X: width, Y: len(t.lines)}
}

// NeedsRelayout is false; content only changes through SetContent.
func (t *Text) NeedsRelayout() bool {
	return false
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	t.lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// WithTheme sets the theme used to style the text.
func (t *Text) WithTheme(theme Theme) *Text {
	t.SetTheme(theme)
	return t
}

// BoldText creates bold text.
func BoldText(content string) *Text {
	return NewText(content).WithAppliers(Bold())
}

// MutedText creates text in the neutral palette colour.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteNeutral))
}
