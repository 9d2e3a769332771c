package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brandshot",
		Short:         "Brandshot renders branded social images from HTML fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.logFormat {
			case "", "console", "json":
				return nil
			default:
				return fmt.Errorf("invalid --log-format %q: expected console or json", flags.logFormat)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log encoding: console or json (default from config)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newPlatformsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
