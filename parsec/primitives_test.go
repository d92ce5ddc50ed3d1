package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharMatchesExactRune(t *testing.T) {
	r := Char('a').Run(NewStream("abc", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "a", r.Value())
	assert.Equal(t, uint32(2), r.Remaining().Position().Column)
}

func TestCharFailsWithoutConsuming(t *testing.T) {
	s := NewStream("xbc", "")
	r := Char('a').Run(s)
	assert.True(t, r.IsFailure())
	assert.Equal(t, `'a'`, r.Expected())
	assert.Equal(t, 0, s.offset)
}

func TestCharIPreservesCase(t *testing.T) {
	r := CharI('A').Run(NewStream("aZ", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "a", r.Value())
}

func TestAnySingleFailsOnlyAtEOF(t *testing.T) {
	r := AnySingle.Run(NewStream("", ""))
	assert.True(t, r.IsFailure())

	r = AnySingle.Run(NewStream("x", ""))
	assert.True(t, r.IsSuccess())
	assert.Equal(t, "x", r.Value())
}

func TestAnySingleButExcludesOneRune(t *testing.T) {
	r := AnySingleBut(',').Run(NewStream(",", ""))
	assert.True(t, r.IsFailure())

	r = AnySingleBut(',').Run(NewStream("a", ""))
	assert.True(t, r.IsSuccess())
}

func TestStringIsAtomic(t *testing.T) {
	s := NewStream("hel", "")
	r := String("hello").Run(s)
	assert.True(t, r.IsFailure())
	assert.Equal(t, 0, s.offset, "a partially-matching String must roll back entirely")
}

func TestStringMatchesWholeLiteral(t *testing.T) {
	r := String("hello").Run(NewStream("hello world", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "hello", r.Value())
	assert.True(t, r.Remaining().PeekWhile(func(rune) bool { return true })[0] == ' ')
}

func TestStringRejectsEmptyLiteral(t *testing.T) {
	assert.Panics(t, func() { String("") })
}

func TestStringICaseInsensitiveAndAtomic(t *testing.T) {
	r := StringI("HELLO").Run(NewStream("HeLLo!", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "HeLLo", r.Value())

	s := NewStream("HELP", "")
	r = StringI("HELLO").Run(s)
	assert.True(t, r.IsFailure())
	assert.Equal(t, 0, s.offset)
}

func TestDigitAndHexDigitChar(t *testing.T) {
	assert.True(t, DigitChar.Run(NewStream("5", "")).IsSuccess())
	assert.True(t, DigitChar.Run(NewStream("f", "")).IsFailure())
	assert.True(t, HexDigitChar.Run(NewStream("f", "")).IsSuccess())
	assert.True(t, HexDigitChar.Run(NewStream("g", "")).IsFailure())
}

func TestAlphaAndAlphaNumChar(t *testing.T) {
	assert.True(t, AlphaChar.Run(NewStream("x", "")).IsSuccess())
	assert.True(t, AlphaChar.Run(NewStream("9", "")).IsFailure())
	assert.True(t, AlphaNumChar.Run(NewStream("9", "")).IsSuccess())
}

func TestEOLMatchesBothStyles(t *testing.T) {
	r := EOL.Run(NewStream("\r\nrest", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "\r\n", r.Value())

	r = EOL.Run(NewStream("\nrest", ""))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "\n", r.Value())
}

func TestEOFSucceedsOnlyAtEndWithoutConsuming(t *testing.T) {
	s := NewStream("", "")
	r := EOF.Run(s)
	assert.True(t, r.IsSuccess())

	s = NewStream("x", "")
	r = EOF.Run(s)
	assert.True(t, r.IsFailure())
	assert.Equal(t, 0, s.offset)
}

func TestOneOfSAndNoneOfS(t *testing.T) {
	assert.True(t, OneOfS("abc").Run(NewStream("b", "")).IsSuccess())
	assert.True(t, OneOfS("abc").Run(NewStream("z", "")).IsFailure())
	assert.True(t, NoneOfS("abc").Run(NewStream("z", "")).IsSuccess())
	assert.True(t, NoneOfS("abc").Run(NewStream("a", "")).IsFailure())
}

func TestPureAlwaysSucceedsWithoutConsuming(t *testing.T) {
	s := NewStream("anything", "")
	r := Pure(99).Run(s)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 99, r.Value())
	assert.Equal(t, 0, s.offset)
}

func TestFailAlwaysFailsWithoutConsuming(t *testing.T) {
	s := NewStream("anything", "")
	r := Fail[int]("nope").Run(s)
	assert.True(t, r.IsFailure())
	assert.Equal(t, "nope", r.Expected())
	assert.Equal(t, 0, s.offset)
}
