// Package interp runs parsed command lines: here-document collection,
// process and pipe plumbing, builtin dispatch, signal regimes, and the
// top-level prompt loop.
package interp

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"josephlewis.net/minishell/core/config"
	"josephlewis.net/minishell/core/env"
	"josephlewis.net/minishell/core/shell"
)

// Shell is the REPL driver. It owns the environment and the
// last-exit-status; everything else is per-line.
type Shell struct {
	Config   *config.Configuration
	Env      *env.Table
	Readline *readline.Instance

	lastStatus int
	quitStatus int

	// interactive controls the behaviors tied to a terminal: the
	// colored prompt and `exit` printing its name.
	interactive bool

	// Quit is set by the exit builtin and by EOF at the prompt.
	Quit bool
}

// New builds a shell over the real terminal, inheriting the parent
// process's environment.
func New(cfg *config.Configuration, interactive bool) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:      cfg,
		Env:         env.NewFromEnviron(os.Environ()),
		Readline:    rl,
		interactive: interactive,
	}, nil
}

// Close releases the line editor.
func (s *Shell) Close() error {
	return s.Readline.Close()
}

// LastStatus returns the integer exposed as $?.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

func (s *Shell) prompt() string {
	p := s.Config.Prompt
	if s.Config.ColorPrompt && s.interactive {
		p = color.New(color.FgGreen, color.Bold).Sprint(p)
	}
	return p
}

// errorf writes a shell diagnostic to stderr.
func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "minishell: "+format+"\n", args...)
}

// Run is the interactive loop: read, lex, parse, expand, execute,
// record the exit status. It returns the status the process should
// exit with.
func (s *Shell) Run() int {
	awaitInputSignals()

	for !s.Quit {
		ClearLastSignal()
		s.Readline.SetPrompt(s.prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// Ctrl-D on an empty prompt quits like exit.
			fmt.Fprintln(os.Stderr, "exit")
			return s.lastStatus

		case err == readline.ErrInterrupt:
			if len(line) > 0 {
				s.lastStatus = 130
			}
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		s.RunLine(line)
	}

	return s.quitStatus
}

// RunLine pushes one line through the whole pipeline and returns its
// status. Tokens, tree and here-document fds are released before it
// returns, on every path.
func (s *Shell) RunLine(line string) int {
	tokens, err := shell.Lex(line)
	if err != nil {
		s.errorf("%v", err)
		s.lastStatus = 2
		return s.lastStatus
	}

	pipeline, err := shell.Parse(tokens)
	if err != nil {
		s.errorf("%v", err)
		s.lastStatus = 2
		return s.lastStatus
	}
	if pipeline == nil {
		return s.lastStatus
	}
	defer closeHeredocs(pipeline)

	if err := s.collectHeredocs(pipeline); err != nil {
		if err == errHeredocInterrupt {
			s.lastStatus = 130
		} else {
			s.errorf("%v", err)
			s.lastStatus = 1
		}
		return s.lastStatus
	}

	ex := &shell.Expander{Lookup: s.Env.LookupEnv, LastStatus: s.lastStatus}
	ex.ExpandPipeline(pipeline)

	s.lastStatus = s.execPipeline(pipeline)
	return s.lastStatus
}
