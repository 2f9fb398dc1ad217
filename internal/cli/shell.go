package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/service"
)

// errExit ends the interactive loop.
var errExit = errors.New("exit")

// Session is one interactive calculator: a form plus the product it was
// built for. Commands are applied with Exec.
type Session struct {
	opts *options
	form *service.Form
	out  io.Writer
}

// newSession creates a session that writes its output to out.
func newSession(opts *options, out io.Writer) *Session {
	return &Session{opts: opts, form: opts.newForm(), out: out}
}

// Exec parses and runs one shell line. It returns errExit for exit and quit.
func (s *Session) Exec(line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd, args := tokens[0], tokens[1:]
	switch cmd {
	case "exit", "quit":
		return errExit
	case "help":
		printShellHelp(s.out)
	case "show":
		printResult(s.out, s.form)
	case "fields":
		s.printFields()
	case "submit":
		return writeJSON(s.out, s.form.Submission())
	case "set":
		if len(args) != 2 {
			return errors.New("usage: set <field> <value>")
		}
		if _, err := s.form.Input(args[0], args[1]); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		printResult(s.out, s.form)
	case "inc", "dec":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <field>", cmd)
		}
		dir := service.Increment
		if cmd == "dec" {
			dir = service.Decrement
		}
		if _, err := s.form.Step(args[0], dir); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		printResult(s.out, s.form)
	case "product":
		return s.reconfigure(args)
	case "log":
		return s.setLogLevel(args)
	case "shell":
		fmt.Fprintln(s.out, "already in the shell; type 'exit' to leave")
	default:
		return fmt.Errorf("unknown command %q (type 'help')", cmd)
	}
	return nil
}

// reconfigure changes product flags and restarts the form from page load.
// Flags that are not given keep their current values.
func (s *Session) reconfigure(args []string) error {
	fs := pflag.NewFlagSet("product", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var next productFlags
	next.register(fs, s.opts.product)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s.opts.product = next
	s.form = s.opts.newForm()
	printResult(s.out, s.form)
	return nil
}

func (s *Session) setLogLevel(args []string) error {
	fs := pflag.NewFlagSet("log", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var vcount int
	fs.CountVarP(&vcount, "verbose", "v", "increase verbosity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s.opts.verbosity = vcount
	level := levelFor(vcount)
	logger.Init(level, true)
	fmt.Fprintf(s.out, "log level set to %s\n", level)
	return nil
}

func (s *Session) printFields() {
	for _, name := range []string{
		service.FieldLength, service.FieldWidth, service.FieldMargin,
		service.FieldMeasurement, service.FieldPackages,
		service.FieldMosaicQty, service.FieldMosaicMeasurement,
		service.FieldConfirmedQty,
	} {
		if v := s.form.Value(name); v != "" {
			fmt.Fprintf(s.out, "%-19s %s\n", name, v)
		}
	}
}

func newShellCmd(opts *options) *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit calculator fields interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveShell(newSession(opts, cmd.OutOrStdout()), prompt)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "walp> ", "shell prompt")
	return cmd
}

func runInteractiveShell(session *Session, prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(os.TempDir(), "walpctl-shell.history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(session.out, "Calculator shell. Type 'help' for commands, 'exit' to leave.")
	printResult(session.out, session.form)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = session.Exec(strings.TrimSpace(line))
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(session.out, "error: %v\n", err)
		}
	}
}

func printShellHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  set <field> <value>          type a value (length, width, margin, measurement,
                               packages, mosaic_qty, mosaic_measurement)
  inc <field> / dec <field>    press a stepper button
  show                         print the summary
  fields                       print the field values
  submit                       print the add-to-cart fields
  product --mode length ...    change the product and start over
  log -vv                      change log verbosity
  exit / quit                  leave the shell`)
}
