package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tabs/pkg/host"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the panel after replaying input",
		Long: `Render lays the panel out at the given size, replays the --input script
(for example "down,enter,click:3:0") and prints the resulting frame.`,
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

			msgs, err := host.ParseInput(a.v.GetString("input"))
			if err != nil {
				return fmt.Errorf("--input: %w", err)
			}

			size := a.renderSize()
			prog := host.New(root,
				host.WithLogger(a.log),
				host.WithSize(size),
				host.WithKeyMap(layout.KeyMap(host.DefaultKeyMap())),
			)
			host.Feed(prog, msgs...)

			screen := prog.Screen()
			out := screen.String()
			if a.v.GetBool("styled") {
				out = screen.Render()
			}
			a.log.Debug("rendered frame", "width", size.X, "height", size.Y, "inputs", len(msgs))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	addLayoutFlags(cmd)
	cmd.Flags().Int("width", 0, "Frame width (defaults to the terminal width)")
	cmd.Flags().Int("height", 0, "Frame height (defaults to the terminal height)")
	cmd.Flags().String("input", "", "Comma separated keys and clicks to replay before rendering")
	cmd.Flags().Bool("styled", false, "Keep colours and text attributes")
	return cmd
}

// renderSize prefers explicit flags, then the terminal on stdout, then 80x24.
func (a *app) renderSize() view.Vec2 {
	width, height := fallbackWidth, fallbackHeight
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
	}
	if w := a.v.GetInt("width"); w > 0 {
		width = w
	}
	if h := a.v.GetInt("height"); h > 0 {
		height = h
	}
	return view.NewVec2(width, height)
}
