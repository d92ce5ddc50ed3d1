package parsec

import (
	"fmt"

	"github.com/pkg/errors"
)

// recursionState tracks the lifecycle of a Parser's forward-reference
// binding (spec §3, Parser<T> invariants).
type recursionState int

const (
	nonRecursive recursionState = iota
	awaitingRecurse
	recursionWasSetUp
)

// Parser is a named, typed parsing function: Stream -> ParseResult[T]. Its
// label, given at construction and read back with Label, is shown in error
// messages. Parsers built with Make are immutable from
// construction; parsers built with Recursive start in an "awaiting
// recurse" state and become immutable the moment Recurse binds their body.
type Parser[T any] struct {
	label string
	fn    func(*Stream) ParseResult[T]
	state recursionState
	cell  *parserCell[T]
}

// parserCell is the late-bound reference cell behind Recursive/Recurse
// (spec §9: "recursive parser placeholder with later mutation" reframed as
// an interior-mutable cell filled at most once).
type parserCell[T any] struct {
	bound bool
	inner Parser[T]
}

// Make wraps fn as a non-recursive Parser with the given label.
func Make[T any](label string, fn func(*Stream) ParseResult[T]) Parser[T] {
	return Parser[T]{label: label, fn: fn, state: nonRecursive}
}

// Recursive returns a Parser in the "awaiting recurse" state: a forward
// reference that must be completed with exactly one call to Recurse before
// it is run. It exists so mutually- or self-recursive grammars can be
// declared before their bodies are fully built.
func Recursive[T any](label string) Parser[T] {
	return Parser[T]{label: label, state: awaitingRecurse, cell: &parserCell[T]{}}
}

// Recurse binds inner as the body of a Parser previously returned by
// Recursive. It may be called at most once, and only on a Parser still
// awaiting recursion; either violation is a fatal configuration error,
// because it means the grammar itself is malformed (spec §7).
func (p Parser[T]) Recurse(inner Parser[T]) {
	if p.state != awaitingRecurse {
		panic(fmt.Sprintf("parsec: Recurse called on parser %q not awaiting recursion", p.label))
	}
	if p.cell.bound {
		panic(fmt.Sprintf("parsec: Recurse called more than once on parser %q", p.label))
	}
	p.cell.inner = inner
	p.cell.bound = true
}

// Label returns the parser's human-readable name.
func (p Parser[T]) Label() string {
	return p.label
}

// Run invokes the parser against stream. Running a parser still awaiting
// Recurse is a fatal configuration error, since the grammar has not
// finished being built.
func (p Parser[T]) Run(stream *Stream) ParseResult[T] {
	switch p.state {
	case awaitingRecurse:
		if p.cell == nil || !p.cell.bound {
			panic(fmt.Sprintf("parsec: parser %q run before Recurse was called", p.label))
		}
		return p.cell.inner.Run(stream)
	default:
		return p.fn(stream)
	}
}

// ParserFailure is the exception-flavored face of a Failure ParseResult,
// raised by TryRun for callers who would rather receive a Go error than
// discriminate a ParseResult by hand.
type ParserFailure struct {
	Expected string
	Got      *Stream
	Pos      Position
}

func (e *ParserFailure) Error() string {
	return fmt.Sprintf("parse failure at %s: expected %s", e.Pos, e.Expected)
}

// TryRun wraps input in a fresh Stream (named filename, for error
// presentation) and runs p against it. On Failure it returns a non-nil
// error wrapping a *ParserFailure; on Success it returns the value and a
// nil error.
func (p Parser[T]) TryRun(input string, filename string) (T, error) {
	stream := NewStream(input, filename)
	result := p.Run(stream)
	if result.IsFailure() {
		var zero T
		return zero, errors.WithStack(&ParserFailure{
			Expected: result.Expected(),
			Got:      result.Got(),
			Pos:      result.Position(),
		})
	}
	return result.Value(), nil
}
