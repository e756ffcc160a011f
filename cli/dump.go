package cli

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/logger"
	"github.com/amp-labs/amp-ordered/sortedmap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCommand() *cobra.Command {
	var natural bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the top-level keys of a YAML mapping in sorted order (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bts, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			order := compare.Natural[string]()
			if natural {
				order = compare.NaturalStrings()
			}

			m, err := loadMapping(bts, order)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			logger.Get(cmd.Context()).Debug("loaded mapping", "file", args[0], "keys", m.Len())

			for k, v := range m.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, v); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&natural, "natural", false, "compare digit runs in keys as numbers")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path) // #nosec G304 -- reading the file named on the command line
}

// loadMapping decodes a YAML mapping into a sorted map keyed by order.
func loadMapping(bts []byte, order compare.Comparator[string]) (*sortedmap.Map[string, any], error) {
	var raw map[string]any

	if err := yaml.Unmarshal(bts, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return sortedmap.NewFrom(order, maps.All(raw))
}
