package interp

import (
	"errors"
	"io"
	"io/ioutil"
	"os"

	"github.com/abiosoft/readline"

	"josephlewis.net/minishell/core/shell"
)

// errHeredocInterrupt aborts the whole line when Ctrl-C arrives while
// a here-document is being read.
var errHeredocInterrupt = errors.New("here-document interrupted")

// collectHeredocs gathers every here-document of the pipeline before
// any command starts, so the reader is the shell itself under the
// awaiting-input signal regime. Bodies of heredocs whose delimiter was
// quoted are taken verbatim; others get $NAME and $? substitution.
func (s *Shell) collectHeredocs(p *shell.Pipeline) error {
	for _, cmd := range p.Commands {
		for _, r := range cmd.Redirs {
			if r.Op != shell.RedirHeredoc {
				continue
			}
			f, err := s.readHeredoc(r.Target.Text, !r.Target.Quoted)
			if err != nil {
				return err
			}
			r.HeredocFile = f
		}
	}
	return nil
}

// readHeredoc reads lines with the secondary prompt until one equals
// delim, and returns a readable fd over the collected bytes. EOF ends
// the body with a warning, like bash.
func (s *Shell) readHeredoc(delim string, expand bool) (*os.File, error) {
	s.Readline.SetPrompt(s.Config.HeredocPrompt)

	ex := &shell.Expander{Lookup: s.Env.LookupEnv, LastStatus: s.lastStatus}

	var body []byte
	for {
		line, err := s.Readline.Readline()
		switch {
		case err == readline.ErrInterrupt:
			return nil, errHeredocInterrupt
		case err == io.EOF:
			s.errorf("warning: here-document delimited by end-of-file (wanted '%s')", delim)
		case err != nil:
			return nil, err
		case line != delim:
			if expand {
				line = ex.ExpandBody(line)
			}
			body = append(body, line...)
			body = append(body, '\n')
			continue
		}
		break
	}

	f, err := ioutil.TempFile("", "minishell-heredoc")
	if err != nil {
		return nil, err
	}
	// Unlink immediately; the fd keeps the bytes alive.
	os.Remove(f.Name())
	if _, err := f.Write(body); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// closeHeredocs releases any collected here-document fds, on success
// and error paths alike.
func closeHeredocs(p *shell.Pipeline) {
	for _, cmd := range p.Commands {
		for _, r := range cmd.Redirs {
			if r.HeredocFile != nil {
				r.HeredocFile.Close()
				r.HeredocFile = nil
			}
		}
	}
}
