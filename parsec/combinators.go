package parsec

import (
	"fmt"
	"strings"
)

// Sequence runs p, then q on the remainder, and returns q's value. A
// Failure from either side propagates labeled with whichever side failed
// (spec §4.5). FollowedBy is its conventional alias.
func Sequence[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Make(fmt.Sprintf("%s then %s", p.Label(), q.Label()), func(s *Stream) ParseResult[U] {
		r1 := p.Run(s)
		if r1.IsFailure() {
			return Failed[U](r1.Expected(), r1.Got())
		}
		return q.Run(s)
	})
}

// FollowedBy is Sequence under its other spec name.
func FollowedBy[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Sequence(p, q)
}

// KeepFirst runs both p and q in order and returns p's value; it fails if
// either fails. ThenIgnore is its conventional alias.
func KeepFirst[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Make(fmt.Sprintf("%s (ignoring %s)", p.Label(), q.Label()), func(s *Stream) ParseResult[T] {
		r1 := p.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := q.Run(s)
		if r2.IsFailure() {
			return Failed[T](r2.Expected(), r2.Got())
		}
		return Succeeded(r1.Value(), s)
	})
}

// ThenIgnore is KeepFirst under its other spec name.
func ThenIgnore[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return KeepFirst(p, q)
}

// Collect runs ps in order and returns their values as a slice. It is
// atomic: on any failure the stream is rolled back to where p1 started
// (spec §4.5, "atomic on failure: full rollback to start of p1").
func Collect[T any](ps ...Parser[T]) Parser[[]T] {
	return Make("sequence of parsers", func(s *Stream) ParseResult[[]T] {
		startOffset, startPos := s.checkpoint()
		vals := make([]T, 0, len(ps))
		for _, p := range ps {
			r := p.Run(s)
			if r.IsFailure() {
				s.restore(startOffset, startPos)
				return Failed[[]T](r.Expected(), s.snapshot())
			}
			vals = append(vals, r.Value())
		}
		return Succeeded(vals, s)
	})
}

// Pair is the value produced by Collect2: the ordered result of two
// differently-typed parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Collect2 runs p then q and returns both values as a Pair, atomically.
func Collect2[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Make(fmt.Sprintf("%s then %s", p.Label(), q.Label()), func(s *Stream) ParseResult[Pair[A, B]] {
		startOffset, startPos := s.checkpoint()
		ra := p.Run(s)
		if ra.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[Pair[A, B]](ra.Expected(), s.snapshot())
		}
		rb := q.Run(s)
		if rb.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[Pair[A, B]](rb.Expected(), s.snapshot())
		}
		return Succeeded(Pair[A, B]{ra.Value(), rb.Value()}, s)
	})
}

// Triple is the value produced by Collect3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Collect3 runs p, q, then r in order and returns all three values as a
// Triple, atomically.
func Collect3[A, B, C any](p Parser[A], q Parser[B], r Parser[C]) Parser[Triple[A, B, C]] {
	return Make(fmt.Sprintf("%s then %s then %s", p.Label(), q.Label(), r.Label()), func(s *Stream) ParseResult[Triple[A, B, C]] {
		startOffset, startPos := s.checkpoint()
		ra := p.Run(s)
		if ra.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[Triple[A, B, C]](ra.Expected(), s.snapshot())
		}
		rb := q.Run(s)
		if rb.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[Triple[A, B, C]](rb.Expected(), s.snapshot())
		}
		rc := r.Run(s)
		if rc.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[Triple[A, B, C]](rc.Expected(), s.snapshot())
		}
		return Succeeded(Triple[A, B, C]{ra.Value(), rb.Value(), rc.Value()}, s)
	})
}

// Choice tries each parser in order and returns the first success. Per the
// no-consume backtracking rule (spec §4.5/§8.6), it only tries the next
// alternative if the previous one failed without consuming input; an
// alternative that consumes input and then fails commits the overall
// failure. When every alternative fails without consuming, the combined
// expected label is "(exp1 or exp2 or ...)" reported at the original
// input position.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.Label()
	}
	label := "(" + strings.Join(labels, " or ") + ")"
	return Make(label, func(s *Stream) ParseResult[T] {
		startOffset, _ := s.checkpoint()
		var last ParseResult[T]
		for _, p := range ps {
			last = p.Run(s)
			if last.IsSuccess() {
				return last
			}
			if curOffset, _ := s.checkpoint(); curOffset != startOffset {
				return last
			}
		}
		return Failed[T](label, s.snapshot())
	})
}

// Either is Choice specialized to two alternatives.
func Either[T any](p, q Parser[T]) Parser[T] {
	return Choice(p, q)
}

// Optional yields Some(p's value) on success and None on a failure that
// consumed no input; a failure that did consume input still propagates
// (spec §4.5, and the non-string horn of the Open Question at spec §9 — a
// sum type is used here instead of a type-specific neutral value). See
// OptionalString for the string-typed convenience that returns "" instead.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	label := "optional " + p.Label()
	return Make(label, func(s *Stream) ParseResult[Option[T]] {
		startOffset, _ := s.checkpoint()
		r := p.Run(s)
		if r.IsSuccess() {
			return Succeeded(Some(r.Value()), s)
		}
		if curOffset, _ := s.checkpoint(); curOffset != startOffset {
			return Failed[Option[T]](r.Expected(), r.Got())
		}
		return Succeeded(None[T](), s)
	})
}

// OptionalString is Optional specialized so that a failed, non-consuming
// attempt yields "" directly instead of an Option[string].
func OptionalString(p Parser[string]) Parser[string] {
	label := "optional " + p.Label()
	return Make(label, func(s *Stream) ParseResult[string] {
		startOffset, _ := s.checkpoint()
		r := p.Run(s)
		if r.IsSuccess() {
			return r
		}
		if curOffset, _ := s.checkpoint(); curOffset != startOffset {
			return Failed[string](r.Expected(), r.Got())
		}
		return Succeeded("", s)
	})
}

// Many collects zero or more successive matches of p, stopping at the
// first failure. A failure that consumed input is a hard error (spec
// §4.5: "stops at first failure, which must consume no input -- if it
// consumes, that is a hard failure").
func Many[T any](p Parser[T]) Parser[[]T] {
	label := "zero or more " + p.Label()
	return Make(label, func(s *Stream) ParseResult[[]T] {
		var vals []T
		for {
			startOffset, _ := s.checkpoint()
			r := p.Run(s)
			if r.IsFailure() {
				if curOffset, _ := s.checkpoint(); curOffset != startOffset {
					return Failed[[]T](r.Expected(), r.Got())
				}
				break
			}
			vals = append(vals, r.Value())
		}
		return Succeeded(vals, s)
	})
}

// ZeroOrMore is Many under its other spec name.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Many(p)
}

// Many1 is Many requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	label := "one or more " + p.Label()
	return Make(label, func(s *Stream) ParseResult[[]T] {
		r := Many(p).Run(s)
		if r.IsFailure() {
			return r
		}
		if len(r.Value()) == 0 {
			return Failed[[]T](label, s.snapshot())
		}
		return r
	})
}

// AtLeastOne is Many1 under its other spec name.
func AtLeastOne[T any](p Parser[T]) Parser[[]T] {
	return Many1(p)
}

// ManyString is Many specialized to concatenate a run of string-valued
// matches into one string, which is how most grammars actually want to use
// Many over character-class primitives (digits, whitespace, identifiers).
func ManyString(p Parser[string]) Parser[string] {
	label := "zero or more " + p.Label()
	return Make(label, func(s *Stream) ParseResult[string] {
		var sb strings.Builder
		for {
			startOffset, _ := s.checkpoint()
			r := p.Run(s)
			if r.IsFailure() {
				if curOffset, _ := s.checkpoint(); curOffset != startOffset {
					return Failed[string](r.Expected(), r.Got())
				}
				break
			}
			sb.WriteString(r.Value())
		}
		return Succeeded(sb.String(), s)
	})
}

// Many1String is ManyString requiring at least one match.
func Many1String(p Parser[string]) Parser[string] {
	label := "one or more " + p.Label()
	return Make(label, func(s *Stream) ParseResult[string] {
		r := ManyString(p).Run(s)
		if r.IsFailure() {
			return r
		}
		if r.Value() == "" {
			return Failed[string](label, s.snapshot())
		}
		return r
	})
}

// Between runs open, then p, then close, and returns p's value.
func Between[O, T, C any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	label := fmt.Sprintf("%s between %s and %s", p.Label(), open.Label(), close.Label())
	return Make(label, func(s *Stream) ParseResult[T] {
		r0 := open.Run(s)
		if r0.IsFailure() {
			return Failed[T](r0.Expected(), r0.Got())
		}
		r1 := p.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := close.Run(s)
		if r2.IsFailure() {
			return Failed[T](r2.Expected(), r2.Got())
		}
		return Succeeded(r1.Value(), s)
	})
}

// RepeatN runs p exactly n times and collects the results.
func RepeatN[T any](n int, p Parser[T]) Parser[[]T] {
	label := fmt.Sprintf("%d repetitions of %s", n, p.Label())
	return Make(label, func(s *Stream) ParseResult[[]T] {
		startOffset, startPos := s.checkpoint()
		vals := make([]T, 0, n)
		for i := 0; i < n; i++ {
			r := p.Run(s)
			if r.IsFailure() {
				s.restore(startOffset, startPos)
				return Failed[[]T](r.Expected(), s.snapshot())
			}
			vals = append(vals, r.Value())
		}
		return Succeeded(vals, s)
	})
}

// MapC transforms a successful value through f. Fmap is its conventional
// alias.
func MapC[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Make(p.Label(), func(s *Stream) ParseResult[U] {
		return MapResult(p.Run(s), f)
	})
}

// Fmap is MapC under its other spec name.
func Fmap[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return MapC(p, f)
}

// Bind is monadic sequencing: it runs p, feeds its value to f to obtain the
// next parser, and runs that on the remainder.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return Make(p.Label(), func(s *Stream) ParseResult[U] {
		r := p.Run(s)
		if r.IsFailure() {
			return Failed[U](r.Expected(), r.Got())
		}
		return f(r.Value()).Run(s)
	})
}

// Apply is applicative application: pf must produce a function of one
// argument, which is applied to px's value.
func Apply[T, U any](pf Parser[func(T) U], px Parser[T]) Parser[U] {
	label := fmt.Sprintf("%s applied to %s", pf.Label(), px.Label())
	return Make(label, func(s *Stream) ParseResult[U] {
		rf := pf.Run(s)
		if rf.IsFailure() {
			return Failed[U](rf.Expected(), rf.Got())
		}
		rx := px.Run(s)
		if rx.IsFailure() {
			return Failed[U](rx.Expected(), rx.Got())
		}
		return Succeeded(rf.Value()(rx.Value()), s)
	})
}

// Labeled replaces p's expected-label with name on failure; on success it
// passes the result through unchanged. It is the free-function form of the
// spec's label(p, name), kept separate from the Parser.Label() getter.
func Labeled[T any](p Parser[T], name string) Parser[T] {
	return Make(name, func(s *Stream) ParseResult[T] {
		r := p.Run(s)
		if r.IsFailure() {
			return Failed[T](name, r.Got())
		}
		return r
	})
}

// NotFollowedBy succeeds, consuming nothing, iff p would fail. It always
// restores the stream, regardless of how much p consumed before failing or
// succeeding.
func NotFollowedBy[T any](p Parser[T]) Parser[Unit] {
	label := "not followed by " + p.Label()
	return Make(label, func(s *Stream) ParseResult[Unit] {
		startOffset, startPos := s.checkpoint()
		r := p.Run(s)
		s.restore(startOffset, startPos)
		if r.IsSuccess() {
			return Failed[Unit](label, s.snapshot())
		}
		return Succeeded(Unit{}, s)
	})
}

// LookAhead runs p for its value or failure, but always restores the
// stream when p succeeds (so the match is observed without being
// consumed).
func LookAhead[T any](p Parser[T]) Parser[T] {
	label := "lookahead " + p.Label()
	return Make(label, func(s *Stream) ParseResult[T] {
		startOffset, startPos := s.checkpoint()
		r := p.Run(s)
		if r.IsSuccess() {
			s.restore(startOffset, startPos)
			return Succeeded(r.Value(), s)
		}
		return r
	})
}

// AppendC runs p then q, both string-valued, and returns their
// concatenation.
func AppendC(p, q Parser[string]) Parser[string] {
	label := p.Label() + " ++ " + q.Label()
	return Make(label, func(s *Stream) ParseResult[string] {
		r1 := p.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := q.Run(s)
		if r2.IsFailure() {
			return Failed[string](r2.Expected(), r2.Got())
		}
		return Succeeded(r1.Value()+r2.Value(), s)
	})
}

// Assemble is the n-ary form of AppendC.
func Assemble(ps ...Parser[string]) Parser[string] {
	if len(ps) == 0 {
		return Succeed
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = AppendC(acc, p)
	}
	return acc
}

// VoidLeft replaces a successful value with the constant v.
func VoidLeft[T, U any](p Parser[T], v U) Parser[U] {
	return MapC(p, func(T) U { return v })
}

// Emit is the identity on p's result, but calls sink with each successful
// value as an observation hook.
func Emit[T any](p Parser[T], sink func(T)) Parser[T] {
	return Make(p.Label(), func(s *Stream) ParseResult[T] {
		r := p.Run(s)
		if r.IsSuccess() {
			sink(r.Value())
		}
		return r
	})
}

// Construct is MapC specialized for AST node construction: shorthand for
// MapC(p, ctor).
func Construct[T, U any](p Parser[T], ctor func(T) U) Parser[U] {
	return MapC(p, ctor)
}

// Try opts a branch into full backtracking: unlike the default no-consume
// rule, it restores the stream even when p consumed input before failing.
func Try[T any](p Parser[T]) Parser[T] {
	return Make("try "+p.Label(), func(s *Stream) ParseResult[T] {
		startOffset, startPos := s.checkpoint()
		r := p.Run(s)
		if r.IsFailure() {
			s.restore(startOffset, startPos)
			return Failed[T](r.Expected(), s.snapshot())
		}
		return r
	})
}
