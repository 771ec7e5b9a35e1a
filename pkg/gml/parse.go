package gml

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every tokenizer and grammar error.
var ErrSyntax = errors.New("gml syntax error")

// Pair is one key/value entry of a GML list. Value is int64, float64,
// string, or List.
type Pair struct {
	Key   string
	Value any
}

// List is an ordered GML list. Keys may repeat.
type List []Pair

// Get returns the first value stored under key.
func (l List) Get(key string) (any, bool) {
	for _, p := range l {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// All returns every value stored under key, in order.
func (l List) All(key string) []any {
	var out []any
	for _, p := range l {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// Parse tokenizes and parses GML source into its top-level list.
func Parse(src string) (List, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	list, err := p.list(false)
	if err != nil {
		return nil, err
	}
	return list, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// list parses key/value pairs until ']' (nested) or end of input (top level).
func (p *parser) list(nested bool) (List, error) {
	var out List
	for {
		switch p.tok.kind {
		case tokEOF:
			if nested {
				return nil, fmt.Errorf("line %d: unclosed list: %w", p.tok.line, ErrSyntax)
			}
			return out, nil
		case tokClose:
			if !nested {
				return nil, fmt.Errorf("line %d: unexpected ']': %w", p.tok.line, ErrSyntax)
			}
			return out, nil
		case tokKey:
		default:
			return nil, fmt.Errorf("line %d: expected key, got %s %q: %w", p.tok.line, p.tok.kind, p.tok.text, ErrSyntax)
		}

		key := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.value(key)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{Key: key, Value: value})
	}
}

func (p *parser) value(key string) (any, error) {
	switch p.tok.kind {
	case tokInt, tokReal, tokString:
		v := p.tok.value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil
	case tokOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.list(true)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("line %d: key %q: expected value, got %s: %w", p.tok.line, key, p.tok.kind, ErrSyntax)
}
