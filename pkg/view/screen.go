package view

import "strings"

// Cell is one terminal cell. The second half of a wide character holds an
// empty Text.
type Cell struct {
	Text  string
	Style Style
}

var blankCell = Cell{Text: " "}

// Screen is a fixed-size grid of cells that views draw into.
type Screen struct {
	size  Vec2
	lines [][]Cell
}

// NewScreen returns a blank screen. Negative dimensions are treated as zero.
func NewScreen(size Vec2) *Screen {
	size = size.Max(Vec2{})
	lines := make([][]Cell, size.Y)
	for y := range lines {
		line := make([]Cell, size.X)
		for x := range line {
			line[x] = blankCell
		}
		lines[y] = line
	}
	return &Screen{size: size, lines: lines}
}

// Size returns the screen dimensions.
func (s *Screen) Size() Vec2 {
	return s.size
}

// Set writes a cell. Positions outside the screen are ignored.
func (s *Screen) Set(p Vec2, text string, st Style) {
	if !RectFromSize(s.size).Contains(p) {
		return
	}
	s.lines[p.Y][p.X] = Cell{Text: text, Style: st}
}

// Cell returns the cell at p, or a blank cell outside the screen.
func (s *Screen) Cell(p Vec2) Cell {
	if !RectFromSize(s.size).Contains(p) {
		return blankCell
	}
	return s.lines[p.Y][p.X]
}

// Line returns row y as plain text.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.size.Y {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.lines[y] {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

// Lines returns every row as plain text.
func (s *Screen) Lines() []string {
	out := make([]string, s.size.Y)
	for y := range out {
		out[y] = s.Line(y)
	}
	return out
}

// String returns the plain text content, rows separated by newlines.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Render returns the content with styles applied, grouping runs of equally
// styled cells.
func (s *Screen) Render() string {
	rows := make([]string, s.size.Y)
	for y, line := range s.lines {
		var sb, run strings.Builder
		var cur Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.IsZero() {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(cur.Lipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range line {
			if c.Text == "" {
				continue
			}
			if c.Style != cur {
				flush()
				cur = c.Style
			}
			run.WriteString(c.Text)
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
