package config

import (
	"errors"
	"fmt"
)

// ErrBadConfig tags every configuration decoding failure, including
// invalid enum values and out-of-range widths.
var ErrBadConfig = errors.New("bad config")

type IndentStyle int

const (
	SpaceIndent IndentStyle = iota
	TabIndent
)

func ParseIndentStyle(v string) (IndentStyle, error) {
	s, ok := map[string]IndentStyle{
		"space": SpaceIndent,
		"tab":   TabIndent,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: indent_style %q", ErrBadConfig, v)
}

func (s IndentStyle) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s IndentStyle) MarshalText() ([]byte, error) {
	switch s {
	case SpaceIndent:
		return []byte("space"), nil
	case TabIndent:
		return []byte("tab"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an indent style>", s)
	}
}

func (s *IndentStyle) UnmarshalText(d []byte) error {
	ps, err := ParseIndentStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func (s IndentStyle) IsTab() bool { return s == TabIndent }

type LineEnding int

const (
	LFEnding LineEnding = iota
	CRLFEnding
)

func ParseLineEnding(v string) (LineEnding, error) {
	e, ok := map[string]LineEnding{
		"lf":   LFEnding,
		"crlf": CRLFEnding,
	}[v]
	if ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: line_ending %q", ErrBadConfig, v)
}

func (e LineEnding) String() string {
	d, err := e.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (e LineEnding) MarshalText() ([]byte, error) {
	switch e {
	case LFEnding:
		return []byte("lf"), nil
	case CRLFEnding:
		return []byte("crlf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a line ending>", e)
	}
}

func (e *LineEnding) UnmarshalText(d []byte) error {
	pe, err := ParseLineEnding(string(d))
	if err != nil {
		return err
	}
	*e = pe
	return nil
}

// Text returns the line terminator itself.
func (e LineEnding) Text() string {
	if e == CRLFEnding {
		return "\r\n"
	}
	return "\n"
}

type QuoteStyle int

const (
	DoubleQuote QuoteStyle = iota
	SingleQuote
)

func ParseQuoteStyle(v string) (QuoteStyle, error) {
	q, ok := map[string]QuoteStyle{
		"double": DoubleQuote,
		"single": SingleQuote,
	}[v]
	if ok {
		return q, nil
	}
	return 0, fmt.Errorf("%w: quote_style %q", ErrBadConfig, v)
}

func (q QuoteStyle) String() string {
	d, err := q.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (q QuoteStyle) MarshalText() ([]byte, error) {
	switch q {
	case DoubleQuote:
		return []byte("double"), nil
	case SingleQuote:
		return []byte("single"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a quote style>", q)
	}
}

func (q *QuoteStyle) UnmarshalText(d []byte) error {
	pq, err := ParseQuoteStyle(string(d))
	if err != nil {
		return err
	}
	*q = pq
	return nil
}

type TrailingComma int

const (
	RespectTrailingComma TrailingComma = iota
	IgnoreTrailingComma
)

func ParseTrailingComma(v string) (TrailingComma, error) {
	c, ok := map[string]TrailingComma{
		"respect": RespectTrailingComma,
		"ignore":  IgnoreTrailingComma,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: magic_trailing_comma %q", ErrBadConfig, v)
}

func (c TrailingComma) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c TrailingComma) MarshalText() ([]byte, error) {
	switch c {
	case RespectTrailingComma:
		return []byte("respect"), nil
	case IgnoreTrailingComma:
		return []byte("ignore"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a trailing comma mode>", c)
	}
}

func (c *TrailingComma) UnmarshalText(d []byte) error {
	pc, err := ParseTrailingComma(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}
