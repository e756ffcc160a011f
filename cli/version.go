package cli

import (
	"fmt"
	"io"
	"maps"

	"github.com/amp-labs/amp-ordered/build"
	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/sortedmap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newVersionCommand() *cobra.Command {
	var (
		deps   bool
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := build.Current()
			if !deps {
				info.Dependencies = nil
			}

			out := cmd.OutOrStdout()

			if asYAML {
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(info); err != nil {
					return err
				}

				return enc.Close()
			}

			return writeVersion(out, info)
		},
	}

	cmd.Flags().BoolVar(&deps, "deps", false, "include module dependencies")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")

	return cmd
}

func writeVersion(w io.Writer, info build.Info) error {
	if _, err := fmt.Fprintf(w, "%s %s (%s)\n", appName, info.Version, info.GoVersion); err != nil {
		return err
	}

	if info.GitCommit != "" {
		dirty := ""
		if info.Modified {
			dirty = " dirty"
		}

		if _, err := fmt.Fprintf(w, "commit %s %s%s\n", info.GitCommit, info.GitDate, dirty); err != nil {
			return err
		}
	}

	deps, err := sortedmap.NewFrom(compare.Natural[string](), maps.All(info.Dependencies))
	if err != nil {
		return err
	}

	for path, version := range deps.All() {
		if _, err := fmt.Fprintf(w, "  %s %s\n", path, version); err != nil {
			return err
		}
	}

	return nil
}
