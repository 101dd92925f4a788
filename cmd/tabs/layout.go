package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabs/internal/config"
	"github.com/alexisbeaulieu97/tabs/pkg/tabs"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

const builtinLayout = `placement: top
align: start
tabs:
  - key: about
    text: |
      A tab panel for terminal UIs.

      Arrow keys move between the tab bar and the content.
      Enter or a click on a tab shows it.
      n and p cycle tabs, q quits.
  - key: notes
    kind: textarea
    placeholder: Type something...
  - key: placement
    text: |
      Start with --placement top|bottom|left|right
      and --align start|center|end to move the bar,
      or --theme dark --border rounded to restyle it.
`

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("placement", "", "Bar placement: top, bottom, left or right")
	cmd.Flags().String("align", "", "Bar alignment: start, center or end")
	cmd.Flags().String("active", "", "Key of the tab shown first")
	cmd.Flags().String("theme", "", "Colour theme: light or dark")
	cmd.Flags().String("border", "", "Frame glyphs: normal, thick, rounded or double")
}

// loadLayout reads --config, or the built-in layout, and applies the layout
// flags on top.
func (a *app) loadLayout() (*config.Layout, error) {
	var (
		layout *config.Layout
		err    error
	)
	if path := a.v.GetString("config"); path != "" {
		layout, err = config.ParseLayout(path)
	} else {
		layout, err = config.Parse("built-in layout", []byte(builtinLayout))
	}
	if err != nil {
		return nil, err
	}

	if s := a.v.GetString("placement"); s != "" {
		if layout.Placement, err = tabs.ParsePlacement(s); err != nil {
			return nil, fmt.Errorf("--placement: %w", err)
		}
	}
	if s := a.v.GetString("align"); s != "" {
		if layout.Align, err = tabs.ParseAlign(s); err != nil {
			return nil, fmt.Errorf("--align: %w", err)
		}
	}
	if s := a.v.GetString("active"); s != "" {
		layout.Active = s
	}
	if s := a.v.GetString("theme"); s != "" {
		layout.Theme = s
	}
	if s := a.v.GetString("border"); s != "" {
		layout.Border = s
	}

	if err := config.ValidateLayout(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// buildRoot puts the panel above a row of Prev and Next buttons.
func (a *app) buildRoot(layout *config.Layout) (view.View, *tabs.TabPanel[string], error) {
	panel, err := layout.Build(a.log)
	if err != nil {
		return nil, nil, err
	}

	prev := components.MutedButton("Prev", func(view.Runner) { panel.Prev() })
	next := components.PrimaryButton("Next", func(view.Runner) { panel.Next() })

	root := components.VStack().
		AddGrow(panel).
		Add(components.HStack(prev, next).WithGap(1))
	return root, panel, nil
}
