package reed

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner turns source text into blocks of values. This is the load half of
// the system; the evaluator itself only ever walks already-loaded arrays.
type scanner struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newScanner(input string) *scanner {
	s := &scanner{input: input, line: 1, column: 0}
	s.readRune()
	return s
}

// scanSource loads a whole script into a flat slice of values.
func scanSource(input string) ([]Value, error) {
	s := newScanner(input)
	return s.scanUntil(0)
}

func (s *scanner) readRune() {
	if s.offset >= len(s.input) {
		s.width = 0
		s.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(s.input[s.offset:])
	s.width = w
	s.offset += w

	if r == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}

	s.ch = r
}

func (s *scanner) peekRune() rune {
	if s.offset >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.offset:])
	return r
}

func (s *scanner) errorf(format string, args ...any) error {
	return &RuntimeError{
		Message: fmt.Sprintf("scan error at line %d: %s", s.line, fmt.Sprintf(format, args...)),
	}
}

// scanUntil collects values up to the closing delimiter; 0 means end of
// input.
func (s *scanner) scanUntil(term rune) ([]Value, error) {
	var vals []Value
	for {
		s.skipWhitespaceAndComments()
		if s.ch == 0 {
			if term != 0 {
				return nil, s.errorf("unexpected end of input, expected %q", term)
			}
			return vals, nil
		}
		if s.ch == term {
			s.readRune()
			return vals, nil
		}
		if s.ch == ']' || s.ch == ')' {
			return nil, s.errorf("unexpected %q", s.ch)
		}

		val, err := s.scanValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
}

func (s *scanner) scanValue() (Value, error) {
	switch {
	case s.ch == '[':
		s.readRune()
		inner, err := s.scanUntil(']')
		if err != nil {
			return Value{}, err
		}
		return NewBlock(inner), nil

	case s.ch == '(':
		s.readRune()
		inner, err := s.scanUntil(')')
		if err != nil {
			return Value{}, err
		}
		return NewGroup(inner), nil

	case s.ch == '"':
		return s.scanString()

	case s.ch == '|' && isDelimiter(s.peekRune()):
		s.readRune()
		return NewBar(), nil

	case s.ch == '_' && isDelimiter(s.peekRune()):
		s.readRune()
		return NewBlank(), nil

	case s.ch == '<' && isTagStart(s.peekRune()):
		return s.scanTag()

	case s.ch == '\'':
		s.readRune()
		name, err := s.scanWordText()
		if err != nil {
			return Value{}, err
		}
		return NewLitWord(name), nil

	case s.ch == ':':
		s.readRune()
		name, err := s.scanWordText()
		if err != nil {
			return Value{}, err
		}
		return NewGetWord(name), nil

	case s.ch == '/':
		s.readRune()
		if isDelimiter(s.ch) {
			return NewWord("/"), nil
		}
		name, err := s.scanWordText()
		if err != nil {
			return Value{}, err
		}
		return NewRefinement(name), nil

	case unicode.IsDigit(s.ch),
		(s.ch == '-' || s.ch == '+') && unicode.IsDigit(s.peekRune()):
		return s.scanNumber()

	default:
		return s.scanWordOrPath()
	}
}

func (s *scanner) skipWhitespaceAndComments() {
	for {
		for s.ch != 0 && unicode.IsSpace(s.ch) {
			s.readRune()
		}
		if s.ch != ';' {
			return
		}
		for s.ch != 0 && s.ch != '\n' {
			s.readRune()
		}
	}
}

// isDelimiter reports a rune that ends a token.
func isDelimiter(r rune) bool {
	if r == 0 || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '[', ']', '(', ')', '"', ';':
		return true
	}
	return false
}

// isWordRune spans the liberal word charset: letters, digits, and the
// operator symbols, with the structural characters excluded.
func isWordRune(r rune) bool {
	if isDelimiter(r) {
		return false
	}
	switch r {
	case '/', ':', '\'':
		return false
	}
	return true
}

func isTagStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

func (s *scanner) scanWordText() (string, error) {
	if !isWordRune(s.ch) {
		return "", s.errorf("expected a word, found %q", s.ch)
	}
	var b strings.Builder
	for isWordRune(s.ch) {
		b.WriteRune(s.ch)
		s.readRune()
	}
	return b.String(), nil
}

// scanWordOrPath reads a word and, when segments follow separated by
// slashes, widens it into a path. A trailing colon makes the result a
// set-word or set-path.
func (s *scanner) scanWordOrPath() (Value, error) {
	name, err := s.scanWordText()
	if err != nil {
		return Value{}, err
	}

	if s.ch != '/' {
		if s.ch == ':' {
			s.readRune()
			return NewSetWord(name), nil
		}
		return NewWord(name), nil
	}

	segments := []Value{NewWord(name)}
	for s.ch == '/' {
		s.readRune()
		seg, err := s.scanPathSegment()
		if err != nil {
			return Value{}, err
		}
		segments = append(segments, seg)
	}
	if s.ch == ':' {
		s.readRune()
		return NewSetPath(segments), nil
	}
	return NewPath(segments), nil
}

// scanPathSegment reads one element after a slash: a word, an index, or a
// group evaluated at pick time.
func (s *scanner) scanPathSegment() (Value, error) {
	switch {
	case s.ch == '(':
		s.readRune()
		inner, err := s.scanUntil(')')
		if err != nil {
			return Value{}, err
		}
		return NewGroup(inner), nil
	case unicode.IsDigit(s.ch):
		var b strings.Builder
		for unicode.IsDigit(s.ch) {
			b.WriteRune(s.ch)
			s.readRune()
		}
		n, err := strconv.ParseInt(b.String(), 10, 64)
		if err != nil {
			return Value{}, s.errorf("invalid path index %q", b.String())
		}
		return NewInteger(n), nil
	default:
		name, err := s.scanWordText()
		if err != nil {
			return Value{}, err
		}
		return NewWord(name), nil
	}
}

func (s *scanner) scanNumber() (Value, error) {
	var b strings.Builder
	if s.ch == '-' || s.ch == '+' {
		b.WriteRune(s.ch)
		s.readRune()
	}
	decimal := false
	for unicode.IsDigit(s.ch) || (s.ch == '.' && !decimal && unicode.IsDigit(s.peekRune())) {
		if s.ch == '.' {
			decimal = true
		}
		b.WriteRune(s.ch)
		s.readRune()
	}
	if !isDelimiter(s.ch) && s.ch != '/' {
		return Value{}, s.errorf("invalid number near %q", b.String()+string(s.ch))
	}

	if decimal {
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return Value{}, s.errorf("invalid decimal %q", b.String())
		}
		return NewDecimal(f), nil
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return Value{}, s.errorf("invalid integer %q", b.String())
	}
	return NewInteger(n), nil
}

// scanString reads a double-quoted string with caret escapes: ^/ newline,
// ^- tab, ^" quote, ^^ caret.
func (s *scanner) scanString() (Value, error) {
	s.readRune() // opening quote
	var b strings.Builder
	for {
		switch s.ch {
		case 0:
			return Value{}, s.errorf("unterminated string")
		case '"':
			s.readRune()
			return NewText(b.String()), nil
		case '^':
			s.readRune()
			switch s.ch {
			case '/':
				b.WriteByte('\n')
			case '-':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '^':
				b.WriteByte('^')
			case 0:
				return Value{}, s.errorf("unterminated string")
			default:
				return Value{}, s.errorf("unknown string escape ^%c", s.ch)
			}
			s.readRune()
		default:
			b.WriteRune(s.ch)
			s.readRune()
		}
	}
}

func (s *scanner) scanTag() (Value, error) {
	s.readRune() // opening angle
	var b strings.Builder
	for s.ch != '>' {
		if s.ch == 0 {
			return Value{}, s.errorf("unterminated tag")
		}
		b.WriteRune(s.ch)
		s.readRune()
	}
	s.readRune()
	return NewTag(b.String()), nil
}
