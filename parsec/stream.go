package parsec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEndOfStream is returned by Take1/TakeN when the stream is already
// empty and at least one character was required.
var ErrEndOfStream = fmt.Errorf("EOF")

// Stream is a cursor over a sequence of Unicode code points. It owns a
// current byte offset and a stack of saved offsets used for transactional
// backtracking. A Stream is mutated in place by its own methods; combinators
// that need to try-and-undo a read use BeginTransaction/Rollback/Commit
// around it rather than copying it.
type Stream struct {
	input    string
	filename string
	offset   int
	pos      Position
	marks    []mark
}

type mark struct {
	offset int
	pos    Position
}

// NewStream builds a Stream over input. filename is used only for error
// presentation; pass "" when there is no source file to name.
func NewStream(input string, filename string) *Stream {
	return &Stream{
		input:    input,
		filename: filename,
		offset:   0,
		pos:      StartPosition,
	}
}

// Filename returns the name the Stream was constructed with.
func (s *Stream) Filename() string {
	return s.filename
}

// Position returns the Stream's current position.
func (s *Stream) Position() Position {
	return s.pos
}

// IsEOF reports whether the stream has no remaining characters.
func (s *Stream) IsEOF() bool {
	return s.offset >= len(s.input)
}

func (s *Stream) advance(consumed string) {
	s.offset += len(consumed)
	s.pos = s.pos.Advance(consumed)
}

// Take1 consumes and returns the next character. It fails with
// ErrEndOfStream if the stream is empty.
func (s *Stream) Take1() (string, error) {
	if s.IsEOF() {
		return "", ErrEndOfStream
	}
	_, w := utf8.DecodeRuneInString(s.input[s.offset:])
	chunk := s.input[s.offset : s.offset+w]
	s.advance(chunk)
	return chunk, nil
}

// TakeN consumes up to n characters (fewer if the stream runs out first)
// and returns them. TakeN(0) or a negative n returns "" without advancing
// and never fails. TakeN(n) with n > 0 on an empty stream fails with
// ErrEndOfStream.
func (s *Stream) TakeN(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	if s.IsEOF() {
		return "", ErrEndOfStream
	}
	chunk := s.peekN(n)
	s.advance(chunk)
	return chunk, nil
}

// TakeWhile consumes the maximal prefix for which pred holds. It never
// fails; the result may be empty.
func (s *Stream) TakeWhile(pred func(rune) bool) string {
	chunk := s.peekWhile(pred)
	s.advance(chunk)
	return chunk
}

// Peek1 returns the next character without advancing. It returns "" at EOF.
func (s *Stream) Peek1() string {
	if s.IsEOF() {
		return ""
	}
	_, w := utf8.DecodeRuneInString(s.input[s.offset:])
	return s.input[s.offset : s.offset+w]
}

// PeekN returns up to n characters without advancing.
func (s *Stream) PeekN(n int) string {
	if n <= 0 {
		return ""
	}
	return s.peekN(n)
}

// PeekWhile returns the maximal prefix for which pred holds, without
// advancing.
func (s *Stream) PeekWhile(pred func(rune) bool) string {
	return s.peekWhile(pred)
}

// PeekBack returns the character immediately before the cursor, or "" at
// offset 0.
func (s *Stream) PeekBack() string {
	if s.offset == 0 {
		return ""
	}
	r, w := utf8.DecodeLastRuneInString(s.input[:s.offset])
	if r == utf8.RuneError && w == 0 {
		return ""
	}
	return s.input[s.offset-w : s.offset]
}

func (s *Stream) peekN(n int) string {
	end := s.offset
	for i := 0; i < n && end < len(s.input); i++ {
		_, w := utf8.DecodeRuneInString(s.input[end:])
		end += w
	}
	return s.input[s.offset:end]
}

func (s *Stream) peekWhile(pred func(rune) bool) string {
	end := s.offset
	for end < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[end:])
		if !pred(r) {
			break
		}
		end += w
	}
	return s.input[s.offset:end]
}

// BeginTransaction pushes the current offset/position onto the transaction
// stack.
func (s *Stream) BeginTransaction() {
	s.marks = append(s.marks, mark{offset: s.offset, pos: s.pos})
}

// Rollback restores the offset/position saved by the most recent
// BeginTransaction and pops it. Calling Rollback with no matching
// BeginTransaction is a programming error and panics, mirroring the
// mismatched-commit/rollback invariant from the stream contract.
func (s *Stream) Rollback() {
	m := s.popMark("Rollback")
	s.offset = m.offset
	s.pos = m.pos
}

// Commit discards the checkpoint saved by the most recent BeginTransaction
// without restoring it. Calling Commit with no matching BeginTransaction is
// a programming error and panics.
func (s *Stream) Commit() {
	s.popMark("Commit")
}

func (s *Stream) popMark(op string) mark {
	if len(s.marks) == 0 {
		panic(fmt.Sprintf("parsec: %s called with no matching BeginTransaction", op))
	}
	m := s.marks[len(s.marks)-1]
	s.marks = s.marks[:len(s.marks)-1]
	return m
}

// SourceLine returns the text of the given 1-based line number, without
// its trailing newline, or "" if line is out of range. It exists for error
// presentation (spec §4.7), which renders a line excerpt and a caret.
func (s *Stream) SourceLine(line uint32) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(s.input, "\n")
	idx := int(line) - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

// checkpoint and restore are lightweight internal save/restore points used
// by combinators to detect whether a failed attempt consumed input (the
// no-consume backtracking rule, spec §4.5/§8.6). They bypass the
// BeginTransaction/Commit/Rollback stack entirely: that stack is the
// public, LIFO-checked API; this is plumbing private to the combinators in
// this package.
func (s *Stream) checkpoint() (int, Position) {
	return s.offset, s.pos
}

func (s *Stream) restore(offset int, pos Position) {
	s.offset = offset
	s.pos = pos
}

// snapshot captures enough of the stream to reconstruct a Failure's "got"
// view without mutating s. It is cheap because Stream is small and the
// underlying input string is shared.
func (s *Stream) snapshot() *Stream {
	cp := *s
	cp.marks = nil
	return &cp
}
