package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/hashing"
	"github.com/amp-labs/amp-ordered/logger"
	"github.com/amp-labs/amp-ordered/rbtree"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type sortOptions struct {
	unique  bool
	natural bool
	numeric bool
	reverse bool
	digest  bool
	lang    string
}

func newSortCommand() *cobra.Command {
	var opts sortOptions

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values given as arguments or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				var err error

				values, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			logger.Get(cmd.Context()).Debug("sorting", "values", len(values), "unique", opts.unique)

			return runSort(cmd.OutOrStdout(), values, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.unique, "unique", "u", false, "drop repeated values")
	flags.BoolVar(&opts.natural, "natural", false, "compare digit runs as numbers")
	flags.BoolVarP(&opts.numeric, "numeric", "n", false, "compare values as integers")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "sort descending")
	flags.BoolVar(&opts.digest, "digest", false, "print the xxh3 digest of the sorted output instead")
	flags.StringVar(&opts.lang, "lang", "", "collate by the rules of a BCP 47 language tag")

	cmd.MarkFlagsMutuallyExclusive("natural", "numeric", "lang")

	return cmd
}

func runSort(w io.Writer, values []string, opts sortOptions) error {
	switch {
	case opts.numeric:
		nums := make([]int64, 0, len(values))

		for _, v := range values {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, v)
			}

			nums = append(nums, n)
		}

		return writeSorted(w, compare.Natural[int64](), nums, opts)
	case opts.natural:
		return writeSorted(w, compare.NaturalStrings(), values, opts)
	case opts.lang != "":
		tag, err := language.Parse(opts.lang)
		if err != nil {
			return fmt.Errorf("%w: language %q: %w", ErrInvalidInput, opts.lang, err)
		}

		return writeSorted(w, compare.Collated(tag), values, opts)
	default:
		return writeSorted(w, compare.Natural[string](), values, opts)
	}
}

func writeSorted[T any](w io.Writer, order compare.Comparator[T], values []T, opts sortOptions) error {
	if opts.reverse {
		order = order.Reverse()
	}

	tree, err := rbtree.New(order)
	if err != nil {
		return err
	}

	mode := rbtree.AlwaysAdd
	if opts.unique {
		mode = rbtree.AddIfMissing
	}

	for _, v := range values {
		tree.Insert(v, mode)
	}

	if opts.digest {
		_, err := fmt.Fprintf(w, "%016x\n", hashing.Sequence(tree.All()))

		return err
	}

	bw := bufio.NewWriter(w)

	for v := range tree.All() {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
