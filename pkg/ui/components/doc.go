// Package components provides theme-aware primitive widgets implementing
// view.View.
//
// # Widgets
//
//   - Button: a clickable, focusable label firing a view.Callback
//   - Text: static multi-line text
//   - Stack: vertical or horizontal arrangement with optional gaps and growing children
//   - ModelView: adapts a bubbletea model, such as a bubbles textarea, into a view
//   - Dummy: a blank 1x1 placeholder
//
// # Themes
//
// A Theme is an immutable value carrying a palette, border glyphs and the
// control styles used for active, focused and disabled widgets:
//
//	theme := components.DefaultTheme().WithBorder(components.BorderVariantRounded)
//	button := components.NewButton("Save", save).WithAppliers(
//		components.Background(components.PaletteAccent),
//	)
//	button.SetTheme(theme)
//
// Style functions (Background, Foreground, Bold, Underline, Faint) compose
// through WithAppliers; button variants are looked up in the theme's
// VariantRegistry.
//
// # Composition
//
//	root := components.VStack().
//		AddGrow(panel).
//		Add(components.HStack(prev, next).WithGap(1))
package components
