// Package errfmt renders a parsec parse failure into a human-readable,
// end-user-facing error message: file name, line, column, a source
// excerpt, and a caret under the offending column (spec §4.7). Rendering
// happens here, at presentation time, rather than while the parse itself
// is running.
package errfmt

import (
	"fmt"
	"strings"

	"github.com/parsec-go/parsec/parsec"
)

// Format renders f as a multi-line error message suitable for printing to
// a terminal.
func Format(f *parsec.ParserFailure) string {
	var b strings.Builder

	loc := fmt.Sprintf("%d:%d", f.Pos.Line, f.Pos.Column)
	if name := f.Got.Filename(); name != "" {
		loc = name + ":" + loc
	}
	fmt.Fprintf(&b, "%s: %s\n", loc, expectedClause(f.Expected))

	line := f.Got.SourceLine(f.Pos.Line)
	if line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
		column := int(f.Pos.Column)
		if column < 1 {
			column = 1
		}
		b.WriteString(strings.Repeat(" ", column-1))
		b.WriteByte('^')
	}
	return b.String()
}

// expectedClause turns a Choice/Either combined label of the form
// "(a or b or c)" into the end-user phrasing "expected one of: a, b, c"
// (spec §4.7); any other label is rendered as "expected <label>".
func expectedClause(expected string) string {
	if alts, ok := splitAlternatives(expected); ok {
		return "expected one of: " + strings.Join(alts, ", ")
	}
	return "expected " + expected
}

func splitAlternatives(label string) ([]string, bool) {
	if !strings.HasPrefix(label, "(") || !strings.HasSuffix(label, ")") {
		return nil, false
	}
	inner := label[1 : len(label)-1]
	parts := strings.Split(inner, " or ")
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}
