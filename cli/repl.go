package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/optional"
	"github.com/amp-labs/amp-ordered/sortedmap"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ErrUnknownCommand is returned for repl input that names no command.
var ErrUnknownCommand = errors.New("unknown command")

const replHelp = `commands:
  set KEY VALUE   store VALUE under KEY
  add KEY VALUE   store VALUE unless KEY exists
  get KEY         print the value of KEY
  del KEY         remove KEY
  has KEY         print whether KEY exists
  keys            print all keys in order
  list            print all entries in order
  len             print the number of entries
  min | max       print the first or last entry
  pop             remove and print the first entry
  clear           remove every entry
  check           validate the tree
  stats           print tree activity counters
  quit            leave`

// session interprets repl commands against one sorted map.
type session struct {
	m *sortedmap.Map[string, string]
}

func newSession(natural bool) (*session, error) {
	order := compare.Natural[string]()
	if natural {
		order = compare.NaturalStrings()
	}

	m, err := sortedmap.New[string, string](order)
	if err != nil {
		return nil, err
	}

	return &session{m: m}, nil
}

// exec runs one input line and writes its output to w. It reports quit when
// the line asks to leave. Command errors are returned for the caller to print;
// they do not end the session.
func (s *session) exec(w io.Writer, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := fields[0], fields[1:]

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := fmt.Fprintln(w, replHelp)

		return false, err
	}

	cmd, ok := replCommands[name]
	if !ok {
		return false, fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, name)
	}

	if len(args) != cmd.args {
		return false, fmt.Errorf("%w: %s takes %d argument(s)", ErrInvalidInput, name, cmd.args)
	}

	return false, cmd.run(s, w, args)
}

type replCommand struct {
	args int
	run  func(s *session, w io.Writer, args []string) error
}

var replCommands = map[string]replCommand{ //nolint:gochecknoglobals
	"set": {2, func(s *session, _ io.Writer, args []string) error {
		s.m.Set(args[0], args[1])

		return nil
	}},
	"add": {2, func(s *session, _ io.Writer, args []string) error {
		return s.m.Add(args[0], args[1])
	}},
	"get": {1, func(s *session, w io.Writer, args []string) error {
		v, err := s.m.Get(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, v)

		return err
	}},
	"del": {1, func(s *session, w io.Writer, args []string) error {
		_, err := fmt.Fprintln(w, s.m.Remove(args[0]))

		return err
	}},
	"has": {1, func(s *session, w io.Writer, args []string) error {
		_, err := fmt.Fprintln(w, s.m.ContainsKey(args[0]))

		return err
	}},
	"keys": {0, func(s *session, w io.Writer, _ []string) error {
		_, err := fmt.Fprintln(w, strings.Join(s.m.Keys(), " "))

		return err
	}},
	"list": {0, func(s *session, w io.Writer, _ []string) error {
		for k, v := range s.m.All() {
			if _, err := fmt.Fprintf(w, "%s: %s\n", k, v); err != nil {
				return err
			}
		}

		return nil
	}},
	"len": {0, func(s *session, w io.Writer, _ []string) error {
		_, err := fmt.Fprintln(w, s.m.Len())

		return err
	}},
	"min": {0, func(s *session, w io.Writer, _ []string) error {
		return printEntry(w, s.m.Min())
	}},
	"max": {0, func(s *session, w io.Writer, _ []string) error {
		return printEntry(w, s.m.Max())
	}},
	"pop": {0, func(s *session, w io.Writer, _ []string) error {
		return printEntry(w, s.m.PopMin())
	}},
	"clear": {0, func(s *session, _ io.Writer, _ []string) error {
		s.m.Clear()

		return nil
	}},
	"check": {0, func(s *session, w io.Writer, _ []string) error {
		if err := s.m.Validate(); err != nil {
			return err
		}

		_, err := fmt.Fprintln(w, "ok")

		return err
	}},
	"stats": {0, func(s *session, w io.Writer, _ []string) error {
		st := s.m.Stats()
		_, err := fmt.Fprintf(w, "inserts=%d overwrites=%d removals=%d rotations=%d\n",
			st.Inserts, st.Overwrites, st.Removals, st.Rotations)

		return err
	}},
}

func printEntry(w io.Writer, entry optional.Value[sortedmap.Entry[string, string]]) error {
	e, ok := entry.Get()
	if !ok {
		_, err := fmt.Fprintln(w, "(empty)")

		return err
	}

	_, err := fmt.Fprintf(w, "%s: %s\n", e.First(), e.Second())

	return err
}

func newReplCommand() *cobra.Command {
	var (
		natural bool
		batch   bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Explore a sorted map interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(natural)
			if err != nil {
				return err
			}

			if batch {
				return runBatch(s, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			return runPrompt(s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&natural, "natural", false, "compare digit runs in keys as numbers")
	cmd.Flags().BoolVar(&batch, "batch", false, "read commands from stdin without prompting")

	return cmd
}

// runBatch executes one command per input line, printing errors inline.
func runBatch(s *session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		quit, err := s.exec(out, scanner.Text())
		if err != nil {
			if _, werr := fmt.Fprintln(out, "error:", err); werr != nil {
				return werr
			}
		}

		if quit {
			return nil
		}
	}

	return scanner.Err()
}

func runPrompt(s *session, in io.Reader, out io.Writer) error {
	prompt := promptui.Prompt{
		Label:  appName,
		Stdin:  io.NopCloser(in),
		Stdout: nopWriteCloser{out},
	}

	for {
		line, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}

			return err
		}

		quit, err := s.exec(out, line)
		if err != nil {
			_, _ = fmt.Fprintln(out, "error:", err)
		}

		if quit {
			return nil
		}
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
