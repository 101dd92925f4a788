package config

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/alexisbeaulieu97/tabs/pkg/host"
	"github.com/alexisbeaulieu97/tabs/pkg/logger"
	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

// Build turns the layout into a panel. Each tab's view is named after its
// key so hosts can find it with a selector. Without an explicit active tab
// the first one is shown.
func (l *Layout) Build(log *logger.Logger) (*tabs.TabPanel[string], error) {
	theme, err := l.theme()
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}

	panel := tabs.NewTabPanel[string]().
		WithLogger(log).
		WithTheme(theme).
		WithBarPlacement(l.Placement).
		WithBarAlignment(l.Align)

	for _, tab := range l.Tabs {
		panel.AddTab(tab.Key, view.Named(tab.Key, tab.View()))
	}

	active := l.Active
	if active == "" && len(l.Tabs) > 0 {
		active = l.Tabs[0].Key
	}
	if active != "" {
		if _, err := panel.WithActiveTab(active); err != nil {
			return nil, fmt.Errorf("build layout: %w", err)
		}
	}

	log.Debug("layout built", "tabs", len(l.Tabs), "placement", l.Placement.String(), "theme", theme.Name, "active", active)
	return panel, nil
}

func (l *Layout) theme() (components.Theme, error) {
	theme, err := components.ThemeNamed(l.Theme)
	if err != nil {
		return components.Theme{}, err
	}
	if l.Border == "" {
		return theme, nil
	}
	border, err := components.ParseBorderVariant(l.Border)
	if err != nil {
		return components.Theme{}, err
	}
	return theme.WithBorder(border), nil
}

// View returns the widget for the tab's kind.
func (t Tab) View() view.View {
	switch t.Kind {
	case KindTextarea:
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Placeholder = t.Placeholder
		ta.SetValue(t.Text)
		return components.NewModelView(ta).WithFill()
	default:
		return components.NewText(t.Text)
	}
}

// KeyMap returns base with the layout's key overrides applied.
func (l *Layout) KeyMap(base host.KeyMap) host.KeyMap {
	km := base
	for action, keys := range l.Bindings {
		switch action {
		case "up":
			km.Up.SetKeys(keys...)
		case "down":
			km.Down.SetKeys(keys...)
		case "left":
			km.Left.SetKeys(keys...)
		case "right":
			km.Right.SetKeys(keys...)
		case "enter":
			km.Enter.SetKeys(keys...)
		case "tab":
			km.Tab.SetKeys(keys...)
		case "shift_tab":
			km.BackTab.SetKeys(keys...)
		case "quit":
			km.Quit.SetKeys(keys...)
		}
	}
	return km
}
