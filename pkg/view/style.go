package view

import "github.com/charmbracelet/lipgloss"

// Style is the per-cell styling the screen buffer stores. Unlike
// lipgloss.Style it is comparable, so adjacent cells with equal styles can be
// rendered as a single run.
type Style struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Bold       bool
	Faint      bool
	Underline  bool
	Reverse    bool
}

// IsZero reports whether s leaves text unstyled.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge layers o on top of s. Colours set in o win; attributes accumulate.
func (s Style) Merge(o Style) Style {
	if o.Foreground != nil {
		s.Foreground = o.Foreground
	}
	if o.Background != nil {
		s.Background = o.Background
	}
	s.Bold = s.Bold || o.Bold
	s.Faint = s.Faint || o.Faint
	s.Underline = s.Underline || o.Underline
	s.Reverse = s.Reverse || o.Reverse
	return s
}

// Lipgloss converts s for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle().
		Bold(s.Bold).
		Faint(s.Faint).
		Underline(s.Underline).
		Reverse(s.Reverse)
	if s.Foreground != nil {
		ls = ls.Foreground(s.Foreground)
	}
	if s.Background != nil {
		ls = ls.Background(s.Background)
	}
	return ls
}
