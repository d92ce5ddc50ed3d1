package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamTake1AdvancesAndFailsAtEOF(t *testing.T) {
	s := NewStream("ab", "")
	c, err := s.Take1()
	require.NoError(t, err)
	assert.Equal(t, "a", c)
	assert.False(t, s.IsEOF())

	c, err = s.Take1()
	require.NoError(t, err)
	assert.Equal(t, "b", c)
	assert.True(t, s.IsEOF())

	_, err = s.Take1()
	assert.ErrorIs(t, err, ErrEndOfStream)
}

func TestStreamTakeNBehavior(t *testing.T) {
	s := NewStream("abcdef", "")

	chunk, err := s.TakeN(0)
	require.NoError(t, err)
	assert.Equal(t, "", chunk)
	assert.Equal(t, 0, s.offset)

	chunk, err = s.TakeN(3)
	require.NoError(t, err)
	assert.Equal(t, "abc", chunk)

	chunk, err = s.TakeN(10)
	require.NoError(t, err)
	assert.Equal(t, "def", chunk)
	assert.True(t, s.IsEOF())

	_, err = s.TakeN(1)
	assert.ErrorIs(t, err, ErrEndOfStream)
}

func TestStreamTakeWhileNeverFails(t *testing.T) {
	s := NewStream("aaabbb", "")
	chunk := s.TakeWhile(func(r rune) bool { return r == 'a' })
	assert.Equal(t, "aaa", chunk)

	chunk = s.TakeWhile(func(r rune) bool { return r == 'z' })
	assert.Equal(t, "", chunk)
}

func TestStreamPeeksDoNotAdvance(t *testing.T) {
	s := NewStream("hello", "")
	assert.Equal(t, "h", s.Peek1())
	assert.Equal(t, "hel", s.PeekN(3))
	assert.Equal(t, "hello", s.PeekWhile(func(rune) bool { return true }))
	assert.Equal(t, 0, s.offset)
}

func TestStreamPeekBack(t *testing.T) {
	s := NewStream("hi", "")
	assert.Equal(t, "", s.PeekBack())
	_, _ = s.Take1()
	assert.Equal(t, "h", s.PeekBack())
}

func TestStreamUnicodeCodepointBoundaries(t *testing.T) {
	s := NewStream("héllo", "")
	c, err := s.Take1()
	require.NoError(t, err)
	assert.Equal(t, "h", c)
	c, err = s.Take1()
	require.NoError(t, err)
	assert.Equal(t, "é", c)
}

func TestStreamTransactionLIFO(t *testing.T) {
	s := NewStream("abcdef", "")
	_, _ = s.TakeN(2)
	startOffset, startPos := s.checkpoint()

	s.BeginTransaction()
	_, _ = s.TakeN(2)
	s.Rollback()

	offset, pos := s.checkpoint()
	assert.Equal(t, startOffset, offset)
	assert.Equal(t, startPos, pos)
}

func TestStreamTransactionCommitDiscardsCheckpoint(t *testing.T) {
	s := NewStream("abcdef", "")
	s.BeginTransaction()
	_, _ = s.TakeN(2)
	s.Commit()
	assert.Equal(t, 2, s.offset)
}

func TestStreamMismatchedRollbackPanics(t *testing.T) {
	s := NewStream("abc", "")
	assert.Panics(t, func() { s.Rollback() })
}

func TestStreamMismatchedCommitPanics(t *testing.T) {
	s := NewStream("abc", "")
	assert.Panics(t, func() { s.Commit() })
}

func TestStreamNestedTransactions(t *testing.T) {
	s := NewStream("abcdef", "")
	s.BeginTransaction()
	_, _ = s.TakeN(1)
	s.BeginTransaction()
	_, _ = s.TakeN(1)
	s.Rollback()
	assert.Equal(t, 1, s.offset)
	s.Commit()
	assert.Equal(t, 1, s.offset)
}

func TestStreamSourceLine(t *testing.T) {
	s := NewStream("one\ntwo\nthree", "")
	assert.Equal(t, "one", s.SourceLine(1))
	assert.Equal(t, "two", s.SourceLine(2))
	assert.Equal(t, "three", s.SourceLine(3))
	assert.Equal(t, "", s.SourceLine(4))
	assert.Equal(t, "", s.SourceLine(0))
}
