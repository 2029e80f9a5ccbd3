package core

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/clinterp/clinterp/commands"
	"github.com/clinterp/clinterp/core/config"
	"github.com/clinterp/clinterp/core/shell"
	"github.com/clinterp/clinterp/core/vos"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// ExitCommand ends the session when it is the entire input line.
// "exit now" is an unknown verb, not a termination signal.
const ExitCommand = "exit"

var promptColor = color.New(color.FgCyan, color.Bold)

// Interpreter executes input lines against one session.
type Interpreter struct {
	Session *vos.Session
	History *HistorySink
}

// Execute runs one input line: split on ';', tokenize each fragment and
// dispatch on the first token. Empty fragments and unknown verbs are
// ignored. Fragments run strictly in order; `rm -rf` blocks on its
// child before the next fragment starts.
func (i *Interpreter) Execute(line string) {
	i.History.Record(line)

	for _, fragment := range shell.Split(line) {
		tokens := shell.Fields(fragment)
		if len(tokens) == 0 {
			continue
		}

		cmd := commands.Lookup(tokens[0])
		if cmd == nil {
			continue
		}

		cmd(i.Session.StartProcess(tokens))
	}
}

// Shell is the interactive read-eval-print loop.
type Shell struct {
	Interpreter

	Readline *readline.Instance

	configuration *config.Configuration
	stdout        io.Writer
	stderr        io.Writer
	toClose       listCloser
}

// NewShell builds an interactive shell over the real filesystem,
// rooted in the process's current directory.
func NewShell(configuration *config.Configuration, stdin io.ReadCloser, stdout, stderr io.Writer) (*Shell, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	session := vos.NewSession(afero.NewOsFs(), vos.SessionConfig{
		Dir:           cwd,
		RemoveUtility: configuration.RemoveUtility,
		Stdin:         stdin,
		Stdout:        stdout,
		Stderr:        stderr,
	})

	var toClose listCloser
	var history *HistorySink
	if configuration.HistoryFile != "" {
		fd, err := os.OpenFile(configuration.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		toClose = append(toClose, fd)
		history = NewHistorySink(fd, stderr)
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}
	if err := cfg.Init(); err != nil {
		toClose.Close()
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		toClose.Close()
		return nil, err
	}
	toClose = append(toClose, rl)

	return &Shell{
		Interpreter: Interpreter{
			Session: session,
			History: history,
		},
		Readline:      rl,
		configuration: configuration,
		stdout:        stdout,
		stderr:        stderr,
		toClose:       toClose,
	}, nil
}

// Run reads and executes lines until `exit` or end of input.
func (s *Shell) Run() error {
	for {
		s.Readline.SetPrompt(promptColor.Sprint(s.configuration.Prompt))
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// Input closed; leave like `exit`.
			fmt.Fprintln(s.stdout, s.configuration.Farewell)
			return nil

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			s.readError(err)
			continue

		default:
			if s.handleLine(line) {
				return nil
			}
		}
	}
}

// readError reports a failed line read on the session's stderr; the
// loop keeps running.
func (s *Shell) readError(err error) {
	fmt.Fprintf(s.stderr, "Error readline: %v\n", err)
}

// handleLine processes one raw input line, reporting whether the
// session should end. The exit check applies to the raw line before
// splitting, so "mkdir a;exit" doesn't terminate.
func (s *Shell) handleLine(line string) (done bool) {
	if line == ExitCommand {
		fmt.Fprintln(s.stdout, s.configuration.Farewell)
		return true
	}

	s.Execute(line)
	return false
}

func (s *Shell) Close() error {
	return s.toClose.Close()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
