package tabs

import (
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

type nopRunner struct{}

func (nopRunner) Quit()                                     {}
func (nopRunner) CallOn(view.Selector, func(view.View)) bool { return false }
func (nopRunner) Focus(view.Selector) error                 { return nil }

// layout runs one layout pass at size, the way a host would.
func layout(v view.View, size view.Vec2) {
	v.RequiredSize(size)
	v.Layout(size)
}

func draw(v view.View, size view.Vec2) *view.Screen {
	layout(v, size)
	screen := view.NewScreen(size)
	v.Draw(view.NewPrinter(screen))
	return screen
}

func focusable(label string) *components.Button {
	return components.NewButton(label, nil)
}

func text(content string) *components.Text {
	return components.NewText(content)
}
