package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
	"github.com/alexisbeaulieu97/brandshot/internal/report"
)

func newPlatformsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the supported platform canvases",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			specs := platform.All()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(specs)
			}
			styled := out == os.Stdout && stdoutIsTerminal()
			_, err := fmt.Fprintln(out, report.Platforms(specs, styled))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the registry as JSON")

	return cmd
}
