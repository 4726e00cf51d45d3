package calc

import (
	"errors"
	"io"
	"strings"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// unreadRune unreads a rune from the src. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
}

// next scans the next token from the input. A run of digits is one token;
// every other rune is a token by itself, whether or not it means anything to
// the converter. At the end of the input, the result is the empty string with
// io.EOF.
func (l *lexer) next() (string, error) {
	defer l.buf.Reset()
	r, _, err := l.src.ReadRune()
	if err != nil {
		return "", err
	}
	if !isDigit(r) {
		return string(r), nil
	}
	l.buf.WriteRune(r)
	if err := l.scanNum(); err != nil {
		return "", err
	}
	return l.buf.String(), nil
}

func (l *lexer) scanNum() error {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenize splits an infix expression into tokens. Each maximal run of decimal
// digits becomes one numeric token, and every other rune, including
// whitespace, becomes a token by itself. Tokenize does not check that the
// tokens form a valid expression; invalid tokens are reported by
// InfixToPostfix or EvalPostfix. The result for an empty expression is empty.
func Tokenize(expr string) []string {
	var toks []string
	scan := lex(strings.NewReader(expr))
	for {
		tok, err := scan.next()
		if err != nil {
			// A strings.Reader only fails at EOF.
			return toks
		}
		toks = append(toks, tok)
	}
}
