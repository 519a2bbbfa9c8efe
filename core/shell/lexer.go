package shell

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote reports a line whose quoting never closed. The
// whole line is discarded.
var ErrUnterminatedQuote = errors.New("syntax error: unterminated quoted string")

type lexState int

const (
	stateDefault lexState = iota
	stateSingle
	stateDouble
)

type lexer struct {
	tokens []Token

	// current word under construction
	text    strings.Builder
	quoting []QuoteClass
	quoted  bool
	open    bool
}

func (l *lexer) put(c byte, q QuoteClass) {
	l.text.WriteByte(c)
	l.quoting = append(l.quoting, q)
	l.open = true
}

// flushWord emits the word under construction, if any. A word exists
// once any byte or any quote region was seen, so `""` still becomes an
// (empty) word.
func (l *lexer) flushWord() {
	if !l.open {
		return
	}
	l.tokens = append(l.tokens, Token{
		Kind:    TokWord,
		Text:    l.text.String(),
		Quoting: l.quoting,
		Quoted:  l.quoted,
	})
	l.text.Reset()
	l.quoting = nil
	l.quoted = false
	l.open = false
}

func (l *lexer) operator(kind TokenKind) {
	l.flushWord()
	l.tokens = append(l.tokens, Token{Kind: kind, Text: kind.String()})
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Lex splits line into tokens, tagging every word byte with its quote
// context. Operators use maximal munch, so `<<` wins over `<`.
func Lex(line string) ([]Token, error) {
	var l lexer
	state := stateDefault

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch state {
		case stateSingle:
			if c == '\'' {
				state = stateDefault
				continue
			}
			l.put(c, SingleQuoted)

		case stateDouble:
			if c == '"' {
				state = stateDefault
				continue
			}
			l.put(c, DoubleQuoted)

		default:
			switch {
			case isBlank(c):
				l.flushWord()
			case c == '|':
				l.operator(TokPipe)
			case c == '<':
				if i+1 < len(line) && line[i+1] == '<' {
					l.operator(TokHeredoc)
					i++
				} else {
					l.operator(TokRedirIn)
				}
			case c == '>':
				if i+1 < len(line) && line[i+1] == '>' {
					l.operator(TokAppend)
					i++
				} else {
					l.operator(TokRedirOut)
				}
			case c == '\'':
				state = stateSingle
				l.quoted = true
				l.open = true
			case c == '"':
				state = stateDouble
				l.quoted = true
				l.open = true
			default:
				l.put(c, Unquoted)
			}
		}
	}

	if state != stateDefault {
		return nil, ErrUnterminatedQuote
	}

	l.flushWord()
	return l.tokens, nil
}
