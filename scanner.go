package svgpath

import (
	"fmt"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseError describes malformed path data.
type ParseError struct {
	// Offset is the byte offset in the input at which the problem was found.
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("svgpath: %s (at pos %d)", err.Msg, err.Offset)
}

func isSpace(r rune) bool {
	switch r {
	case '\n', '\r', 0x2028, 0x2029, // line terminators
		' ', '\t', '\v', '\f', 0xA0, 0xFEFF,
		0x1680, 0x180E, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigitStart(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

// scanner tokenizes SVG path data. It stops at the first error, which is
// kept in err.
type scanner struct {
	src string
	pos int
	err *ParseError
}

func (s *scanner) errorf(off int, format string, args ...any) {
	s.err = &ParseError{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

// peek returns the byte at the cursor, or 0 at the end of input.
func (s *scanner) peek() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c < utf8.RuneSelf {
			if !isSpace(rune(c)) {
				return
			}
			s.pos++
			continue
		}
		r, n := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isSpace(r) {
			return
		}
		s.pos += n
	}
}

// skipComma consumes an optional comma and the spaces after it, reporting
// whether a comma was present.
func (s *scanner) skipComma() bool {
	if s.peek() != ',' {
		return false
	}
	s.pos++
	s.skipSpaces()
	return true
}

// scanFlag reads an arc flag. Flags are a single 0 or 1 and never part of a
// longer number, so "11" is two flags.
func (s *scanner) scanFlag() float64 {
	switch s.peek() {
	case '0':
		s.pos++
		return 0
	case '1':
		s.pos++
		return 1
	}
	s.errorf(s.pos, "arc flag can be 0 or 1 only")
	return 0
}

// scanParam reads one number:
//
//	[+-]? (digits ('.' digits?)? | '.' digits) ([eE] [+-]? digits)?
//
// A leading zero can't be followed by another digit, as "09" would otherwise
// be ambiguous with the two numbers "0" and "9".
func (s *scanner) scanParam() float64 {
	start := s.pos
	i := start
	src := s.src
	at := func(i int) byte {
		if i < len(src) {
			return src[i]
		}
		return 0
	}

	if i >= len(src) {
		s.errorf(i, "missed param")
		return 0
	}
	c := at(i)
	if c == '+' || c == '-' {
		i++
		c = at(i)
	}
	if !isDigit(c) && c != '.' {
		s.errorf(i, "param should start with 0..9 or `.`")
		return 0
	}

	var intDigits, fracDigits int
	if c != '.' {
		if c == '0' && isDigit(at(i+1)) {
			s.errorf(start, "numbers started with `0` such as `09` are illegal")
			return 0
		}
		for isDigit(at(i)) {
			i++
			intDigits++
		}
		c = at(i)
	}
	if c == '.' {
		i++
		for isDigit(at(i)) {
			i++
			fracDigits++
		}
		c = at(i)
	}
	if intDigits+fracDigits == 0 {
		s.errorf(i, "param should contain digits")
		return 0
	}
	if c == 'e' || c == 'E' {
		i++
		if c := at(i); c == '+' || c == '-' {
			i++
		}
		if !isDigit(at(i)) {
			s.errorf(i, "invalid float exponent")
			return 0
		}
		for isDigit(at(i)) {
			i++
		}
	}

	lit := src[start:i]
	f, n := strconv.ParseFloat([]byte(lit))
	if n != len(lit) {
		s.errorf(start, "invalid number %q", lit)
		return 0
	}
	s.pos = i
	return f
}

// scanCommand reads a command letter.
func (s *scanner) scanCommand() (k Kind, relative bool, ok bool) {
	k, relative, ok = kindForLetter(s.peek())
	if !ok {
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		s.errorf(s.pos, "bad command %c", r)
		return 0, false, false
	}
	s.pos++
	return k, relative, true
}
