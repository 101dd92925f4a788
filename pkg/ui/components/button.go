package components

import (
	"github.com/alexisbeaulieu97/tabs/pkg/view"
	"github.com/mattn/go-runewidth"
)

// Button is a focusable, clickable label. Pressing Enter while it has focus, or
// releasing the left mouse button over it, runs its callback.
type Button struct {
	BaseComponent
	view.Base
	label    string
	callback view.Callback
	variant  ButtonVariant
	disabled bool
	active   bool
	size     view.Vec2
}

// NewButton creates a new button with the given label and callback.
func NewButton(label string, callback view.Callback) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		callback:      callback,
		variant:       ButtonVariantPlain,
	}
}

// Draw renders the label, styled according to the button's state and whether
// the printer is focused.
func (b *Button) Draw(p *view.Printer) {
	p.PrintStyled(view.Vec2{}, b.label, b.computeStyle(p.IsFocused() && p.IsEnabled()))
}

func (b *Button) computeStyle(focused bool) view.Style {
	theme := b.Theme()
	style := b.ComputeStyle(theme)

	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	style = style.Merge(theme.Controls.Normal)

	if b.disabled {
		style = style.Merge(theme.Controls.Disabled)
	}
	if b.active {
		style = style.Merge(theme.Controls.Active)
	}
	if focused && !b.disabled {
		style = style.Merge(theme.Controls.Focused)
	}
	return style
}

// Layout records the size the button was given.
func (b *Button) Layout(size view.Vec2) {
	b.size = size
}

// RequiredSize is the label's display width on a single row.
func (b *Button) RequiredSize(view.Vec2) view.Vec2 {
	return view.Vec2{X: runewidth.StringWidth(b.label), Y: 1}
}

// OnEvent runs the callback on Enter or on a left release inside the label.
func (b *Button) OnEvent(ev view.Event) view.EventResult {
	if b.disabled {
		return view.Ignored()
	}
	if ev.IsKey(view.KeyEnter) {
		return view.ConsumedWith(b.callback)
	}
	if ev.IsMouse() && ev.Mouse.Action == view.MouseRelease && ev.Mouse.Button == view.MouseLeft {
		size := b.size
		if size.IsZero() {
			size = b.RequiredSize(size)
		}
		if pos, ok := ev.RelativePosition(); ok && view.RectFromSize(size).Contains(pos) {
			return view.ConsumedWith(b.callback)
		}
	}
	return view.Ignored()
}

// TakeFocus accepts focus unless the button is disabled.
func (b *Button) TakeFocus(view.Direction) (view.EventResult, error) {
	if b.disabled {
		return view.Ignored(), view.ErrCannotFocus
	}
	return view.Consumed(), nil
}

// NeedsRelayout is false; the size only changes through SetLabel.
func (b *Button) NeedsRelayout() bool {
	return false
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithTheme sets the theme used to style the button.
func (b *Button) WithTheme(theme Theme) *Button {
	b.SetTheme(theme)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// SetActive marks the button as the selected one of its group.
func (b *Button) SetActive(active bool) {
	b.active = active
}

// SetCallback replaces the callback.
func (b *Button) SetCallback(callback view.Callback) {
	b.callback = callback
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string, callback view.Callback) *Button {
	return NewButton(label, callback).WithVariant(ButtonVariantPrimary)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string, callback view.Callback) *Button {
	return NewButton(label, callback).WithVariant(ButtonVariantMuted)
}
