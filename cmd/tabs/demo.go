package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabs/pkg/host"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive tab panel demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.loadLayout()
			if err != nil {
				return err
			}
			root, panel, err := a.buildRoot(layout)
			if err != nil {
				return err
			}
			defer panel.Close()

			a.log.Info("starting demo", "tabs", len(layout.Tabs), "placement", layout.Placement.String())
			prog := host.New(root,
				host.WithLogger(a.log),
				host.WithKeyMap(layout.KeyMap(host.DefaultKeyMap())),
				host.WithGlobal('q', func(r view.Runner) { r.Quit() }),
				host.WithGlobal('n', func(view.Runner) { panel.Next() }),
				host.WithGlobal('p', func(view.Runner) { panel.Prev() }),
			)
			if err := prog.Run(cmd.Context()); err != nil {
				a.log.Error(err, "demo failed")
				return err
			}
			return nil
		},
	}

	addLayoutFlags(cmd)
	return cmd
}
