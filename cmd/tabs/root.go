package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/tabs/pkg/logger"
)

const envPrefix = "TABS"

// app carries what every command needs once flags are resolved.
type app struct {
	v      *viper.Viper
	log    *logger.Logger
	closer io.Closer
}

func newApp() *app {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	return a
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tabs",
		Short:         "Tab panel widget demo and renderer",
		Long:          `tabs shows a tab panel in the terminal. Tabs are switched with the arrow keys, Enter, or the mouse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.String("config", "", "Layout file (YAML)")
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newVersionCmd())

	for _, sub := range cmd.Commands() {
		a.closeAfter(sub)
	}
	return cmd
}

// closeAfter wraps the command's RunE so the log file is closed whether or not
// it fails. cobra skips post-run hooks after an error.
func (a *app) closeAfter(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := a.teardown(); err == nil && cerr != nil {
				err = fmt.Errorf("close log file: %w", cerr)
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	writer := cmd.ErrOrStderr()
	if path := a.v.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writer = f
		a.closer = f
	}

	log, err := logger.New(logger.Options{
		Level:         a.v.GetString("log-level"),
		HumanReadable: true,
		Writer:        writer,
	})
	if err != nil {
		_ = a.teardown()
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log.With("command", cmd.Name())
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
