package errfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/errfmt"
)

func TestFormatRendersLocationSourceLineAndCaret(t *testing.T) {
	p := parsec.Sequence(
		parsec.Sequence(parsec.Many1String(parsec.DigitChar), parsec.Newline),
		parsec.Many1String(parsec.DigitChar),
	)
	_, err := p.TryRun("12\nabc", "input.txt")
	require.Error(t, err)

	var failure *parsec.ParserFailure
	require.ErrorAs(t, err, &failure)

	out := errfmt.Format(failure)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "input.txt:2:1: expected one or more digit", lines[0])
	assert.Equal(t, "abc", lines[1])
	assert.Equal(t, "^", lines[2])
}

func TestFormatWithoutFilenameOmitsItFromLocation(t *testing.T) {
	_, err := parsec.Char('a').TryRun("z", "")
	require.Error(t, err)

	var failure *parsec.ParserFailure
	require.ErrorAs(t, err, &failure)

	out := errfmt.Format(failure)
	assert.True(t, strings.HasPrefix(out, "1:1: expected 'a'"))
}

func TestFormatCombinesChoiceAlternatives(t *testing.T) {
	p := parsec.Choice(parsec.Char('x'), parsec.Char('y'))
	_, err := p.TryRun("z", "")
	require.Error(t, err)

	var failure *parsec.ParserFailure
	require.ErrorAs(t, err, &failure)

	out := errfmt.Format(failure)
	assert.Contains(t, out, "expected one of: 'x', 'y'")
}
