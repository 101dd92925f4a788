package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

var borderVariantNames = []string{"normal", "thick", "rounded", "double"}

func (v BorderVariant) String() string {
	if int(v) >= 0 && int(v) < len(borderVariantNames) {
		return borderVariantNames[v]
	}
	return fmt.Sprintf("border(%d)", int(v))
}

// ParseBorderVariant accepts the names printed by String.
func ParseBorderVariant(s string) (BorderVariant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range borderVariantNames {
		if n == name {
			return BorderVariant(i), nil
		}
	}
	return BorderVariantNormal, fmt.Errorf("unknown border %q (want one of %s)", s, strings.Join(borderVariantNames, ", "))
}

type ButtonVariant int

const (
	// ButtonVariantPlain renders the label without colours. Tab bars use it.
	ButtonVariantPlain ButtonVariant = iota
	ButtonVariantPrimary
	ButtonVariantMuted
)

// ColourSet is one semantic slot: a base colour, the text colour readable on
// top of it, and a quieter variant.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette holds the colour slots widgets draw with. Accent marks active tabs
// and primary buttons, Neutral colours frames, Surface is the background.
type Palette struct {
	Accent  ColourSet
	Neutral ColourSet
	Surface ColourSet
}

// PaletteSlot picks one ColourSet out of a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
)

// BorderSet lists the glyph sets a theme can frame views with.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// ControlStyles are layered onto interactive controls according to their state.
type ControlStyles struct {
	Normal   view.Style
	Active   view.Style
	Focused  view.Style
	Disabled view.Style
}

// FrameStyles describe the lines drawn around and between views.
type FrameStyles struct {
	Border lipgloss.Border
	Style  view.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of colours, glyphs and control styles. Copy it to
// derive variants.
type Theme struct {
	Name     string
	Palette  Palette
	Borders  BorderSet
	Controls ControlStyles
	Frame    FrameStyles
	Variants *VariantRegistry
}

var (
	defaultTheme = sync.OnceValue(func() Theme { return newTheme("light", lightPalette()) })
	darkTheme    = sync.OnceValue(func() Theme { return newTheme("dark", darkPalette()) })
)

// DefaultTheme returns the shared light theme.
func DefaultTheme() Theme {
	return defaultTheme()
}

// DarkTheme returns the shared dark theme.
func DarkTheme() Theme {
	return darkTheme()
}

// ThemeNamed looks up a built-in theme; the empty name is the default.
func ThemeNamed(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func lightPalette() Palette {
	return Palette{
		Accent: ColourSet{
			Base:   ac("#0f766e", "#2dd4bf"),
			OnBase: ac("#f0fdfa", "#042f2e"),
			Muted:  ac("#5eead4", "#115e59"),
		},
		Neutral: ColourSet{
			Base:   ac("#57534e", "#a8a29e"),
			OnBase: ac("#fafaf9", "#1c1917"),
			Muted:  ac("#a8a29e", "#44403c"),
		},
		Surface: ColourSet{
			Base:   ac("#fafaf9", "#1c1917"),
			OnBase: ac("#1c1917", "#fafaf9"),
			Muted:  ac("#e7e5e4", "#292524"),
		},
	}
}

func darkPalette() Palette {
	p := lightPalette()
	p.Neutral = ColourSet{
		Base:   ac("#78716c", "#78716c"),
		OnBase: ac("#f5f5f4", "#f5f5f4"),
		Muted:  ac("#44403c", "#292524"),
	}
	p.Surface = ColourSet{
		Base:   ac("#1c1917", "#0c0a09"),
		OnBase: ac("#f5f5f4", "#e7e5e4"),
		Muted:  ac("#292524", "#1c1917"),
	}
	return p
}

func newTheme(name string, palette Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	variants := NewVariantRegistry()
	variants.Register(ButtonVariantPlain, NewCompositeStrategy())
	variants.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PaletteAccent)))
	variants.Register(ButtonVariantMuted, NewCompositeStrategy(Foreground(PaletteNeutral)))

	return Theme{
		Name:    name,
		Palette: palette,
		Borders: borders,
		Controls: ControlStyles{
			Active:   view.Style{Bold: true, Underline: true, Foreground: palette.Accent.Base},
			Focused:  view.Style{Reverse: true},
			Disabled: view.Style{Faint: true},
		},
		Frame: FrameStyles{
			Border: borders.Normal,
			Style:  view.Style{Foreground: palette.Neutral.Base},
		},
		Variants: variants,
	}
}

// WithBorder returns a copy of t whose frames use the given border variant.
func (t Theme) WithBorder(variant BorderVariant) Theme {
	t.Frame.Border = t.Border(variant)
	return t
}

// Border returns the glyph set for variant.
func (t Theme) Border(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantThick:
		return t.Borders.Thick
	case BorderVariantDouble:
		return t.Borders.Double
	case BorderVariantRounded:
		return t.Borders.Rounded
	default:
		return t.Borders.Normal
	}
}

// Background sets the slot's base colour as background and its OnBase colour
// as foreground.
//
//	button := NewButton("Save", nil).WithAppliers(Background(PaletteAccent))
func Background(slot PaletteSlot) StyleFunc {
	return func(base view.Style, theme Theme) view.Style {
		cs := slot(theme.Palette)
		base.Background = cs.Base
		base.Foreground = cs.OnBase
		return base
	}
}

// Foreground sets the slot's base colour as foreground.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base view.Style, theme Theme) view.Style {
		base.Foreground = slot(theme.Palette).Base
		return base
	}
}

func Bold() StyleFunc {
	return func(base view.Style, _ Theme) view.Style {
		base.Bold = true
		return base
	}
}

func Underline() StyleFunc {
	return func(base view.Style, _ Theme) view.Style {
		base.Underline = true
		return base
	}
}

func Faint() StyleFunc {
	return func(base view.Style, _ Theme) view.Style {
		base.Faint = true
		return base
	}
}
