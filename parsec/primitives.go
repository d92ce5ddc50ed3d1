package parsec

import (
	"fmt"
	"strings"
	"unicode"
)

// Satisfy matches any single character for which pred holds, returning it.
// It is the primitive every other character-class parser in this file is
// built from.
func Satisfy(label string, pred func(rune) bool) Parser[string] {
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		if s.IsEOF() {
			s.Rollback()
			return Failed[string](label, s.snapshot())
		}
		c := s.Peek1()
		r := []rune(c)[0]
		if !pred(r) {
			s.Rollback()
			return Failed[string](label, s.snapshot())
		}
		_, _ = s.Take1()
		s.Commit()
		return Succeeded(c, s)
	})
}

// Char matches exactly the rune c.
func Char(c rune) Parser[string] {
	return Satisfy(fmt.Sprintf("%q", c), func(r rune) bool { return r == c })
}

// CharI matches c case-insensitively and returns the actually consumed
// character (case-preserving), per spec §4.4/§9.
func CharI(c rune) Parser[string] {
	lower := unicode.ToLower(c)
	return Satisfy(fmt.Sprintf("%q (case-insensitive)", c), func(r rune) bool {
		return unicode.ToLower(r) == lower
	})
}

// AnySingle matches any single character, failing only at EOF.
var AnySingle = Satisfy("any character", func(rune) bool { return true })

// AnySingleBut matches any character except c.
func AnySingleBut(c rune) Parser[string] {
	return Satisfy(fmt.Sprintf("any character but %q", c), func(r rune) bool { return r != c })
}

// String matches s verbatim. It is atomic: on failure the stream is left
// exactly where it was found, even if a prefix of s matched (spec §8.7).
// An empty s is a configuration error, since there is no meaningful atom
// to match.
func String(s string) Parser[string] {
	if s == "" {
		panic("parsec: String called with an empty string")
	}
	label := fmt.Sprintf("%q", s)
	return Make(label, func(stream *Stream) ParseResult[string] {
		stream.BeginTransaction()
		n := len([]rune(s))
		got := stream.PeekN(n)
		if got != s {
			stream.Rollback()
			return Failed[string](label, stream.snapshot())
		}
		_, _ = stream.TakeN(n)
		stream.Commit()
		return Succeeded(got, stream)
	})
}

// StringI matches s case-insensitively and returns the actually consumed
// text, case-preserved.
func StringI(s string) Parser[string] {
	if s == "" {
		panic("parsec: StringI called with an empty string")
	}
	label := fmt.Sprintf("%q (case-insensitive)", s)
	return Make(label, func(stream *Stream) ParseResult[string] {
		stream.BeginTransaction()
		n := len([]rune(s))
		got := stream.PeekN(n)
		if !strings.EqualFold(got, s) || len([]rune(got)) != n {
			stream.Rollback()
			return Failed[string](label, stream.snapshot())
		}
		_, _ = stream.TakeN(n)
		stream.Commit()
		return Succeeded(got, stream)
	})
}

// DigitChar matches a single ASCII digit.
var DigitChar = Satisfy("digit", func(r rune) bool { return r >= '0' && r <= '9' })

// HexDigitChar matches a single hexadecimal digit.
var HexDigitChar = Satisfy("hex digit", func(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
})

// AlphaChar matches a single Unicode letter.
var AlphaChar = Satisfy("letter", unicode.IsLetter)

// AlphaNumChar matches a single Unicode letter or digit.
var AlphaNumChar = Satisfy("letter or digit", func(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
})

// Space matches a single space or tab character.
var Space = Satisfy("space", func(r rune) bool { return r == ' ' || r == '\t' })

// Tab matches a single tab character.
var Tab = Char('\t')

// Newline matches a single '\n'.
var Newline = Char('\n')

// EOL matches a line ending: "\r\n" or "\n".
var EOL = Make("end of line", func(s *Stream) ParseResult[string] {
	return Either(String("\r\n"), String("\n")).Run(s)
})

// EOF succeeds with Unit{} iff the stream has no remaining characters, and
// consumes nothing either way.
var EOF = Make("end of input", func(s *Stream) ParseResult[Unit] {
	if s.IsEOF() {
		return Succeeded(Unit{}, s)
	}
	return Failed[Unit]("end of input", s.snapshot())
})

// OneOfS matches any single character that occurs in chars.
func OneOfS(chars string) Parser[string] {
	set := []rune(chars)
	return Satisfy(fmt.Sprintf("one of %q", chars), func(r rune) bool {
		for _, c := range set {
			if c == r {
				return true
			}
		}
		return false
	})
}

// NoneOfS matches any single character that does not occur in chars.
func NoneOfS(chars string) Parser[string] {
	set := []rune(chars)
	return Satisfy(fmt.Sprintf("none of %q", chars), func(r rune) bool {
		for _, c := range set {
			if c == r {
				return false
			}
		}
		return true
	})
}

// Pure always succeeds with v, consuming no input.
func Pure[T any](v T) Parser[T] {
	return Make("pure value", func(s *Stream) ParseResult[T] {
		return Succeeded(v, s)
	})
}

// Succeed always succeeds with the empty string, consuming no input.
var Succeed = Make("empty", func(s *Stream) ParseResult[string] {
	return Succeeded("", s)
})

// Fail always fails with the given label, consuming no input.
func Fail[T any](label string) Parser[T] {
	return Make(label, func(s *Stream) ParseResult[T] {
		return Failed[T](label, s.snapshot())
	})
}
