package parsec

// LevelKind identifies which precedence-climbing shape an OperatorLevel
// wraps its inner parser with (spec §3, Operator / §4.6).
type LevelKind int

const (
	// InfixLeft folds a op b op c as (a op b) op c.
	InfixLeft LevelKind = iota
	// InfixRight folds a op b op c as a op (b op c).
	InfixRight
	// InfixNone allows at most one application of an operator at this
	// level; a second chained application is a parse failure.
	InfixNone
	// Prefix folds zero or more unary operators right-to-left before the
	// inner term.
	Prefix
	// Postfix folds zero or more unary operators left-to-right after the
	// inner term.
	Postfix
)

// UnaryOp is a Prefix or Postfix operator: a symbol parser and the
// transform it applies to the value it wraps.
type UnaryOp[V any] struct {
	Symbol    Parser[string]
	Transform func(V) V
}

// BinaryOp is an infix operator: a symbol parser and the transform that
// combines its two operands.
type BinaryOp[V any] struct {
	Symbol    Parser[string]
	Transform func(V, V) V
}

// OperatorLevel is one precedence level: a Kind plus the operators that
// share it. Exactly one of Unary/Binary is populated, matching Kind.
type OperatorLevel[V any] struct {
	Kind   LevelKind
	Unary  []UnaryOp[V]
	Binary []BinaryOp[V]
}

// PrefixLevel builds a Prefix OperatorLevel.
func PrefixLevel[V any](ops ...UnaryOp[V]) OperatorLevel[V] {
	return OperatorLevel[V]{Kind: Prefix, Unary: ops}
}

// PostfixLevel builds a Postfix OperatorLevel.
func PostfixLevel[V any](ops ...UnaryOp[V]) OperatorLevel[V] {
	return OperatorLevel[V]{Kind: Postfix, Unary: ops}
}

// InfixLeftLevel builds an InfixLeft OperatorLevel.
func InfixLeftLevel[V any](ops ...BinaryOp[V]) OperatorLevel[V] {
	return OperatorLevel[V]{Kind: InfixLeft, Binary: ops}
}

// InfixRightLevel builds an InfixRight OperatorLevel.
func InfixRightLevel[V any](ops ...BinaryOp[V]) OperatorLevel[V] {
	return OperatorLevel[V]{Kind: InfixRight, Binary: ops}
}

// InfixNoneLevel builds an InfixNone OperatorLevel.
func InfixNoneLevel[V any](ops ...BinaryOp[V]) OperatorLevel[V] {
	return OperatorLevel[V]{Kind: InfixNone, Binary: ops}
}

// nonAssocLabel is the failure label spec §4.6/§8-S6 specifies verbatim for
// a non-associative operator chained with itself.
const nonAssocLabel = "non-associative operator used associatively"

// Expression builds a single Parser for expressions, given a parser for
// terms (atoms: literals, identifiers, parenthesized sub-expressions) and
// an ordered list of operator levels. It builds bottom-up: the term parser
// is level L0, and each level wraps the previous one according to its Kind
// (spec §4.6). The first level in table therefore binds tightest (highest
// precedence) and the last level binds loosest.
func Expression[V any](term Parser[V], table []OperatorLevel[V]) Parser[V] {
	current := term
	for _, level := range table {
		switch level.Kind {
		case Prefix:
			current = buildPrefix(current, level.Unary)
		case Postfix:
			current = buildPostfix(current, level.Unary)
		case InfixLeft:
			current = buildInfixLeft(current, level.Binary)
		case InfixRight:
			current = buildInfixRight(current, level.Binary)
		case InfixNone:
			current = buildInfixNone(current, level.Binary)
		}
	}
	return current
}

func choiceUnary[V any](ops []UnaryOp[V]) Parser[func(V) V] {
	ps := make([]Parser[func(V) V], len(ops))
	for i, op := range ops {
		transform := op.Transform
		ps[i] = MapC(op.Symbol, func(string) func(V) V { return transform })
	}
	return Choice(ps...)
}

func choiceBinary[V any](ops []BinaryOp[V]) Parser[func(V, V) V] {
	ps := make([]Parser[func(V, V) V], len(ops))
	for i, op := range ops {
		transform := op.Transform
		ps[i] = MapC(op.Symbol, func(string) func(V, V) V { return transform })
	}
	return Choice(ps...)
}

func buildPrefix[V any](inner Parser[V], ops []UnaryOp[V]) Parser[V] {
	manyOps := Many(choiceUnary(ops))
	return Make("prefix expression", func(s *Stream) ParseResult[V] {
		r1 := manyOps.Run(s)
		if r1.IsFailure() {
			return Failed[V](r1.Expected(), r1.Got())
		}
		r2 := inner.Run(s)
		if r2.IsFailure() {
			return Failed[V](r2.Expected(), r2.Got())
		}
		value := r2.Value()
		fs := r1.Value()
		for i := len(fs) - 1; i >= 0; i-- {
			value = fs[i](value)
		}
		return Succeeded(value, s)
	})
}

func buildPostfix[V any](inner Parser[V], ops []UnaryOp[V]) Parser[V] {
	manyOps := Many(choiceUnary(ops))
	return Make("postfix expression", func(s *Stream) ParseResult[V] {
		r1 := inner.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := manyOps.Run(s)
		if r2.IsFailure() {
			return Failed[V](r2.Expected(), r2.Got())
		}
		value := r1.Value()
		for _, f := range r2.Value() {
			value = f(value)
		}
		return Succeeded(value, s)
	})
}

func buildInfixLeft[V any](inner Parser[V], ops []BinaryOp[V]) Parser[V] {
	rhs := Collect2(choiceBinary(ops), inner)
	manyRhs := Many(rhs)
	return Make("left-associative infix expression", func(s *Stream) ParseResult[V] {
		r1 := inner.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := manyRhs.Run(s)
		if r2.IsFailure() {
			return Failed[V](r2.Expected(), r2.Got())
		}
		value := r1.Value()
		for _, application := range r2.Value() {
			value = application.First(value, application.Second)
		}
		return Succeeded(value, s)
	})
}

func buildInfixRight[V any](inner Parser[V], ops []BinaryOp[V]) Parser[V] {
	rhs := Collect2(choiceBinary(ops), inner)
	manyRhs := Many(rhs)
	return Make("right-associative infix expression", func(s *Stream) ParseResult[V] {
		r1 := inner.Run(s)
		if r1.IsFailure() {
			return r1
		}
		r2 := manyRhs.Run(s)
		if r2.IsFailure() {
			return Failed[V](r2.Expected(), r2.Got())
		}
		pairs := r2.Value()
		if len(pairs) == 0 {
			return Succeeded(r1.Value(), s)
		}
		values := make([]V, 0, len(pairs)+1)
		values = append(values, r1.Value())
		ops := make([]func(V, V) V, 0, len(pairs))
		for _, p := range pairs {
			ops = append(ops, p.First)
			values = append(values, p.Second)
		}
		acc := values[len(values)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			acc = ops[i](values[i], acc)
		}
		return Succeeded(acc, s)
	})
}

func buildInfixNone[V any](inner Parser[V], ops []BinaryOp[V]) Parser[V] {
	opParser := choiceBinary(ops)
	return Make("non-associative infix expression", func(s *Stream) ParseResult[V] {
		r1 := inner.Run(s)
		if r1.IsFailure() {
			return r1
		}
		startOffset, _ := s.checkpoint()
		rOp := opParser.Run(s)
		if rOp.IsFailure() {
			if curOffset, _ := s.checkpoint(); curOffset != startOffset {
				return Failed[V](rOp.Expected(), rOp.Got())
			}
			return Succeeded(r1.Value(), s)
		}
		r2 := inner.Run(s)
		if r2.IsFailure() {
			return Failed[V](r2.Expected(), r2.Got())
		}
		value := rOp.Value()(r1.Value(), r2.Value())
		if peek := LookAhead(opParser).Run(s); peek.IsSuccess() {
			return Failed[V](nonAssocLabel, s.snapshot())
		}
		return Succeeded(value, s)
	})
}
