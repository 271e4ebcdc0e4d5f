package main

import (
	"log/slog"
	"os"

	"hudmirror/cmd/hudmirror/hudsync"
	"hudmirror/cmd/hudmirror/list"
	"hudmirror/pkg/config"
	"hudmirror/pkg/registry"
	"hudmirror/pkg/version"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(hudsync.NewCommand())
		c.AddCommand(list.NewCommand())
	})
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("error", "err", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "hudmirror",
		Short:         "hudmirror - mirror game HUD packages from GitHub and plain URLs",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", config.DefaultPath(), "Path to config file (or set HUDMIRROR_CONFIG)")
	Registry.FillCommands(cmd)
	return cmd
}
