package shell

import "fmt"

// SyntaxError is a parse failure. Tok holds the offending token's text,
// or "newline" when the line ended where a token was required.
type SyntaxError struct {
	Tok string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error near unexpected token '%s'", e.Tok)
}

// Parse builds the pipeline tree from a token sequence.
//
//	pipeline := command ( '|' command )*
//	command  := (redir | WORD)*
//	redir    := ('<' | '>' | '>>' | '<<') WORD
//
// Pipes with a missing side and redirections without a word target are
// rejected. An empty token list yields a nil pipeline.
func Parse(tokens []Token) (*Pipeline, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	p := &Pipeline{}
	cmd := &Command{}
	sawAny := false // any word or redir in the current command

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case TokWord:
			cmd.Args = append(cmd.Args, &Word{Text: tok.Text, Quoting: tok.Quoting, Quoted: tok.Quoted})
			sawAny = true

		case TokPipe:
			if !sawAny {
				return nil, &SyntaxError{Tok: tok.Text}
			}
			p.Commands = append(p.Commands, cmd)
			cmd = &Command{}
			sawAny = false

		default: // redirection operators
			if i+1 >= len(tokens) {
				return nil, &SyntaxError{Tok: "newline"}
			}
			next := tokens[i+1]
			if next.Kind != TokWord {
				return nil, &SyntaxError{Tok: next.Text}
			}
			cmd.Redirs = append(cmd.Redirs, &Redirection{
				Op:     redirOpFor(tok.Kind),
				Target: &Word{Text: next.Text, Quoting: next.Quoting, Quoted: next.Quoted},
			})
			sawAny = true
			i++
		}
	}

	if !sawAny {
		// Line ended right after a pipe.
		return nil, &SyntaxError{Tok: "newline"}
	}
	p.Commands = append(p.Commands, cmd)
	return p, nil
}

func redirOpFor(kind TokenKind) RedirOp {
	switch kind {
	case TokRedirIn:
		return RedirInput
	case TokAppend:
		return RedirAppendOut
	case TokHeredoc:
		return RedirHeredoc
	default:
		return RedirOutput
	}
}
