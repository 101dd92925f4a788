package components

import "github.com/alexisbeaulieu97/tabs/pkg/view"

// BaseComponent provides common styling for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    view.Style
	strategy StyleStrategy
	theme    *Theme
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base view.Style, theme Theme) view.Style
}

// StyleFunc applies a theme-aware transformation to a style.
type StyleFunc func(view.Style, Theme) view.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base view.Style, theme Theme) view.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{strategy: CompositeStrategy{}}
}

// Theme returns the component's theme, falling back to DefaultTheme.
func (b *BaseComponent) Theme() Theme {
	if b.theme == nil {
		return DefaultTheme()
	}
	return *b.theme
}

// SetTheme replaces the theme used when drawing.
func (b *BaseComponent) SetTheme(theme Theme) {
	b.theme = &theme
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) view.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw style.
func (b *BaseComponent) SetStyle(style view.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A custom strategy is kept and runs before the new appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	currentStrategy := b.strategy
	wrapper := func(base view.Style, theme Theme) view.Style {
		if currentStrategy != nil {
			base = currentStrategy.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Dummy is a blank placeholder view.
type Dummy struct {
	view.Base
}

// NewDummy returns a 1x1 view that draws nothing.
func NewDummy() *Dummy {
	return &Dummy{}
}
