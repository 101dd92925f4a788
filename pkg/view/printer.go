package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer draws into a region of a Screen. Coordinates passed to its methods
// are relative to the region, and anything outside the region is clipped.
type Printer struct {
	screen  *Screen
	offset  Vec2
	size    Vec2
	focused bool
	enabled bool
	style   Style
}

// NewPrinter returns a focused, enabled printer covering the whole screen.
func NewPrinter(s *Screen) *Printer {
	return &Printer{
		screen:  s,
		size:    s.Size(),
		focused: true,
		enabled: true,
	}
}

// Size returns the drawable size of the region.
func (p *Printer) Size() Vec2 {
	return p.size
}

// Origin returns the absolute position of the region's top-left cell.
func (p *Printer) Origin() Vec2 {
	return p.offset
}

// IsFocused reports whether the view being drawn holds focus.
func (p *Printer) IsFocused() bool {
	return p.focused
}

// IsEnabled reports whether the view being drawn is enabled.
func (p *Printer) IsEnabled() bool {
	return p.enabled
}

// Offset returns a printer for the region starting at off. The size shrinks
// accordingly.
func (p *Printer) Offset(off Vec2) *Printer {
	sub := *p
	sub.offset = p.offset.Add(off)
	sub.size = p.size.SaturatingSub(off)
	return &sub
}

// Cropped returns a printer whose region is at most size.
func (p *Printer) Cropped(size Vec2) *Printer {
	sub := *p
	sub.size = p.size.Min(size.Max(Vec2{}))
	return &sub
}

// Sub is Offset followed by Cropped.
func (p *Printer) Sub(off, size Vec2) *Printer {
	return p.Offset(off).Cropped(size)
}

// WithFocus returns a printer that is focused only if both p and focused are.
func (p *Printer) WithFocus(focused bool) *Printer {
	sub := *p
	sub.focused = p.focused && focused
	return &sub
}

// WithEnabled returns a printer that is enabled only if both p and enabled are.
func (p *Printer) WithEnabled(enabled bool) *Printer {
	sub := *p
	sub.enabled = p.enabled && enabled
	return &sub
}

// WithStyle returns a printer that layers st over the current style.
func (p *Printer) WithStyle(st Style) *Printer {
	sub := *p
	sub.style = p.style.Merge(st)
	return &sub
}

// Print writes text starting at pos using the printer's style.
func (p *Printer) Print(pos Vec2, text string) {
	p.PrintStyled(pos, text, Style{})
}

// PrintStyled writes text starting at pos with st layered over the printer's
// style. Text is cut at the region's right edge; a wide character that would
// straddle it is dropped.
func (p *Printer) PrintStyled(pos Vec2, text string, st Style) {
	if pos.Y < 0 || pos.Y >= p.size.Y || pos.X >= p.size.X {
		return
	}
	style := p.style.Merge(st)
	x := pos.X
	var last Vec2
	hasLast := false
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if hasLast {
				c := p.screen.Cell(last)
				p.screen.Set(last, c.Text+string(r), c.Style)
			}
			continue
		}
		if x+w > p.size.X {
			return
		}
		if x >= 0 {
			abs := p.offset.Add(Vec2{X: x, Y: pos.Y})
			p.screen.Set(abs, string(r), style)
			for i := 1; i < w; i++ {
				p.screen.Set(abs.Add(Vec2{X: i}), "", style)
			}
			last, hasLast = abs, true
		}
		x += w
	}
}

// PrintHLine draws length copies of glyph to the right of pos.
func (p *Printer) PrintHLine(pos Vec2, length int, glyph string) {
	if length <= 0 {
		return
	}
	p.Print(pos, strings.Repeat(glyph, length))
}

// PrintVLine draws length copies of glyph below pos.
func (p *Printer) PrintVLine(pos Vec2, length int, glyph string) {
	for i := 0; i < length; i++ {
		p.Print(pos.Add(Vec2{Y: i}), glyph)
	}
}

// Fill paints every cell of the region with glyph.
func (p *Printer) Fill(glyph string) {
	for y := 0; y < p.size.Y; y++ {
		p.PrintHLine(Vec2{Y: y}, p.size.X, glyph)
	}
}
