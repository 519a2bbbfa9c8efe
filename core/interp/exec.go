package interp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"josephlewis.net/minishell/core/shell"
)

// stage is one command of a running pipeline.
type stage struct {
	proc   *exec.Cmd // external command, nil otherwise
	done   chan int  // builtin result, nil otherwise
	status int       // preset for failed, empty-argv and skipped stages
}

// execPipeline realizes the pipeline as processes connected by pipes.
// Children are spawned left to right; the parent closes its pipe
// copies before reaping, and reaps in spawn order. The pipeline's
// status is the rightmost command's status.
func (s *Shell) execPipeline(p *shell.Pipeline) int {
	cmds := p.Commands

	// A singleton builtin runs in the parent so cd, export, unset and
	// exit survive the line.
	if len(cmds) == 1 && len(cmds[0].Args) > 0 {
		if b, ok := LookupBuiltin(cmds[0].Args[0].Text); ok {
			return s.runParentBuiltin(cmds[0], b)
		}
	}

	restore := childRunningSignals()
	defer restore()

	var stages []*stage
	var prevRead *os.File
	fatal := false

	for i, cmd := range cmds {
		var pr, pw *os.File
		if i < len(cmds)-1 {
			var err error
			pr, pw, err = os.Pipe()
			if err != nil {
				s.errorf("pipe: %v", err)
				fatal = true
				closeFile(prevRead)
				break
			}
		}

		stages = append(stages, s.startStage(cmd, prevRead, pw))
		prevRead = pr
	}

	sawInt := false
	status := 1
	for _, st := range stages {
		switch {
		case st.proc != nil:
			var isInt bool
			st.status, isInt = waitStatus(st.proc.Wait())
			sawInt = sawInt || isInt
		case st.done != nil:
			st.status = <-st.done
		}
		status = st.status
	}

	if sawInt {
		fmt.Fprintln(os.Stdout)
	}
	if fatal {
		return 1
	}
	return status
}

// startStage launches one command with the given pipe ends. It always
// leaves the parent's copies of stdinPipe and stdoutPipe on a path to
// being closed: directly for external and failed stages, by the
// builtin goroutine otherwise.
func (s *Shell) startStage(cmd *shell.Command, stdinPipe, stdoutPipe *os.File) *stage {
	st := &stage{}

	var stdin io.Reader = os.Stdin
	var stdout io.Writer = os.Stdout
	if stdinPipe != nil {
		stdin = stdinPipe
	}
	if stdoutPipe != nil {
		stdout = stdoutPipe
	}

	// Redirections apply in declaration order; later ones win.
	var opened []*os.File
	redirFailed := false
	for _, r := range cmd.Redirs {
		f, isInput, err := openRedirection(r)
		if err != nil {
			s.errorf("%s: %s", r.Target.Text, errnoReason(err))
			redirFailed = true
			break
		}
		if r.Op != shell.RedirHeredoc {
			opened = append(opened, f)
		}
		if isInput {
			stdin = f
		} else {
			stdout = f
		}
	}

	argv := argvStrings(cmd.Args)

	closeAll := func() {
		closeFile(stdinPipe)
		closeFile(stdoutPipe)
		for _, f := range opened {
			f.Close()
		}
	}

	switch {
	case redirFailed:
		st.status = 1
		closeAll()

	case len(argv) == 0:
		// Redirection-only command: the opens were the work.
		st.status = 0
		closeAll()

	default:
		if b, ok := LookupBuiltin(argv[0]); ok {
			// Builtins inside a pipeline act on a cloned environment;
			// their side effects die with the stage.
			fr := &Frame{
				Shell:  s,
				Env:    s.Env.Clone(),
				Stdin:  stdin,
				Stdout: stdout,
				Stderr: os.Stderr,
			}
			st.done = make(chan int, 1)
			go func() {
				ret := b.Main(fr, argv)
				closeAll()
				st.done <- ret
			}()
			return st
		}

		path, execErr := s.resolveCommand(argv[0])
		if execErr != nil {
			s.errorf("%s", execErr.msg)
			st.status = execErr.status
			closeAll()
			return st
		}

		proc := &exec.Cmd{
			Path:   path,
			Args:   argv,
			Env:    s.Env.Environ(),
			Stdin:  stdin,
			Stdout: stdout,
			Stderr: os.Stderr,
		}
		if err := proc.Start(); err != nil {
			s.errorf("%s: %v", argv[0], err)
			st.status = 126
			closeAll()
			return st
		}
		st.proc = proc
		closeAll()
	}

	return st
}

// runParentBuiltin runs a singleton-pipeline builtin in the shell
// process with its redirections applied.
func (s *Shell) runParentBuiltin(cmd *shell.Command, b Builtin) int {
	var stdin io.Reader = os.Stdin
	var stdout io.Writer = os.Stdout

	var opened []*os.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, r := range cmd.Redirs {
		f, isInput, err := openRedirection(r)
		if err != nil {
			s.errorf("%s: %s", r.Target.Text, errnoReason(err))
			return 1
		}
		if r.Op != shell.RedirHeredoc {
			opened = append(opened, f)
		}
		if isInput {
			stdin = f
		} else {
			stdout = f
		}
	}

	fr := &Frame{
		Shell:    s,
		Env:      s.Env,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   os.Stderr,
		InParent: true,
	}
	return b.Main(fr, argvStrings(cmd.Args))
}

// openRedirection opens the file a redirection names, or hands back
// the precomputed here-document fd.
func openRedirection(r *shell.Redirection) (f *os.File, isInput bool, err error) {
	switch r.Op {
	case shell.RedirInput:
		f, err = os.Open(r.Target.Text)
		return f, true, err
	case shell.RedirHeredoc:
		return r.HeredocFile, true, nil
	case shell.RedirAppendOut:
		f, err = os.OpenFile(r.Target.Text, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		return f, false, err
	default:
		f, err = os.OpenFile(r.Target.Text, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		return f, false, err
	}
}

func argvStrings(words []*shell.Word) []string {
	var out []string
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

func closeFile(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// waitStatus decodes a child's wait result into a shell exit status:
// 128+N for a signal-terminated child. The bool reports death by
// SIGINT, which makes the shell print a newline.
func waitStatus(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			uws := unix.WaitStatus(ws)
			if uws.Signaled() {
				return 128 + int(uws.Signal()), uws.Signal() == unix.SIGINT
			}
			return uws.ExitStatus(), false
		}
		return ee.ExitCode(), false
	}
	return 126, false
}

// errnoReason renders a syscall failure the way the shell reports it.
func errnoReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	case errors.Is(err, unix.ENOTDIR):
		return "Not a directory"
	case errors.Is(err, unix.EISDIR):
		return "Is a directory"
	}
	return err.Error()
}
