package gml

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokKey tokenKind = iota
	tokInt
	tokReal
	tokString
	tokOpen
	tokClose
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokKey:
		return "key"
	case tokInt:
		return "integer"
	case tokReal:
		return "real"
	case tokString:
		return "string"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	default:
		return "end of input"
	}
}

type token struct {
	kind  tokenKind
	text  string
	value any
	line  int
}

// lexer splits GML source into tokens. Comments run from '#' to end of line.
type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", l.line, fmt.Sprintf(format, args...), ErrSyntax)
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '[':
		l.pos++
		return token{kind: tokOpen, text: "[", line: l.line}, nil
	case c == ']':
		l.pos++
		return token{kind: tokClose, text: "]", line: l.line}, nil
	case c == '"':
		return l.lexString()
	case isLetter(c) || c == '_':
		start := l.pos
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos]) || l.src[l.pos] == '_') {
			l.pos++
		}
		word := l.src[start:l.pos]
		switch word {
		case "INF":
			return token{kind: tokReal, text: word, value: math.Inf(1), line: l.line}, nil
		case "NAN":
			return token{kind: tokReal, text: word, value: math.NaN(), line: l.line}, nil
		}
		return token{kind: tokKey, text: word, line: l.line}, nil
	case c == '+' || c == '-' || c == '.' || isDigit(c):
		return l.lexNumber()
	}
	return token{}, l.errorf("unexpected character %q", c)
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) lexString() (token, error) {
	line := l.line
	end := strings.IndexByte(l.src[l.pos+1:], '"')
	if end < 0 {
		return token{}, l.errorf("unterminated string")
	}
	raw := l.src[l.pos+1 : l.pos+1+end]
	l.line += strings.Count(raw, "\n")
	l.pos += end + 2
	return token{kind: tokString, text: raw, value: html.UnescapeString(raw), line: line}, nil
}

func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	if c := l.src[l.pos]; c == '+' || c == '-' {
		l.pos++
		if strings.HasPrefix(l.src[l.pos:], "INF") || strings.HasPrefix(l.src[l.pos:], "NAN") {
			l.pos += 3
			text := l.src[start:l.pos]
			v := math.NaN()
			if strings.HasSuffix(text, "INF") {
				v = math.Inf(1)
				if text[0] == '-' {
					v = math.Inf(-1)
				}
			}
			return token{kind: tokReal, text: text, value: v, line: l.line}, nil
		}
	}

	isReal := false
scan:
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isDigit(c):
		case c == '.':
			isReal = true
		case c == 'e' || c == 'E':
			isReal = true
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '+' || l.src[l.pos+1] == '-') {
				l.pos++
			}
		default:
			break scan
		}
		l.pos++
	}
	text := l.src[start:l.pos]
	if isReal {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, l.errorf("invalid real %q", text)
		}
		return token{kind: tokReal, text: text, value: v, line: l.line}, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Integers beyond int64 degrade to reals rather than failing.
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return token{}, l.errorf("invalid integer %q", text)
		}
		return token{kind: tokReal, text: text, value: f, line: l.line}, nil
	}
	return token{kind: tokInt, text: text, value: v, line: l.line}, nil
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
