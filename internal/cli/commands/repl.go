package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/roman/internal/convert"
	"github.com/spf13/cobra"
)

const replPrompt = "roman> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Convert values interactively",
		Long: `Start an interactive prompt that converts each line you enter.

Type .help for commands, .quit to exit. History is kept in ~/.roman_history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	AddConvertFlags(cmd, opts)
	return cmd
}

func runREPL(cmd *cobra.Command, opts *ConvertOptions) error {
	cc := NewCommandContextWithoutStore(cmd)

	session := &replSession{
		strict:   cc.Cfg.Convert.Strict,
		foldCase: cc.Cfg.Convert.FoldCase,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("strict") {
		session.strict = opts.Strict
	}
	if cmd.Flags().Changed("fold-case") {
		session.foldCase = opts.FoldCase
	}

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".roman_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newDotCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(session.out, "roman REPL")
	_, _ = fmt.Fprintln(session.out, "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		if session.eval(line) {
			return nil
		}
	}
}

// replSession evaluates REPL input one line at a time.
type replSession struct {
	strict   bool
	foldCase bool
	out      io.Writer
	errOut   io.Writer
}

// eval handles one line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(strings.Fields(line))
	}

	c := convert.New(convert.WithStrict(s.strict), convert.WithFoldCase(s.foldCase))
	res, err := c.Convert(line)
	if err != nil {
		s.errorf("%v", err)
		return false
	}
	_, _ = fmt.Fprintln(s.out, res.Output)
	return false
}

func (s *replSession) dotCommand(parts []string) bool {
	switch command := strings.ToLower(parts[0]); command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".strict":
		s.strict = s.toggle(parts, s.strict, "strict")

	case ".fold":
		s.foldCase = s.toggle(parts, s.foldCase, "fold-case")

	case ".table":
		if len(parts) != 3 {
			s.errorf("usage: .table <start> <end>")
			return false
		}
		start, err1 := strconv.Atoi(parts[1])
		end, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			s.errorf("usage: .table <start> <end>")
			return false
		}
		rows, err := convert.New().Table(start, end)
		if err != nil {
			s.errorf("%v", err)
			return false
		}
		for _, row := range rows {
			_, _ = fmt.Fprintf(s.out, "%6d  %s\n", row.Number, row.Numeral)
		}

	default:
		s.errorf("unknown command: %s (type .help for commands)", command)
	}
	return false
}

// toggle flips current, or sets it from an explicit on/off argument.
func (s *replSession) toggle(parts []string, current bool, name string) bool {
	next := !current
	if len(parts) > 1 {
		switch strings.ToLower(parts[1]) {
		case "on", "true":
			next = true
		case "off", "false":
			next = false
		default:
			s.errorf("usage: .%s [on|off]", strings.TrimSuffix(name, "-case"))
			return current
		}
	}
	state := "off"
	if next {
		state = "on"
	}
	_, _ = fmt.Fprintf(s.out, "%s %s\n", name, state)
	return next
}

func (s *replSession) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.errOut, "Error: "+format+"\n", args...)
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help                 Show this help message
  .strict [on|off]      Toggle canonical-only decoding
  .fold [on|off]        Toggle lower-case numerals
  .table <start> <end>  Print a conversion table
  .quit / .exit         Exit the REPL

Any other input is converted: integers become numerals, numerals become integers.
`
	_, _ = fmt.Fprintln(w, help)
}

// newDotCommandCompleter completes REPL dot-commands.
func newDotCommandCompleter() *readline.PrefixCompleter {
	onOff := []readline.PrefixCompleterInterface{readline.PcItem("on"), readline.PcItem("off")}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".strict", onOff...),
		readline.PcItem(".fold", onOff...),
		readline.PcItem(".table"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
