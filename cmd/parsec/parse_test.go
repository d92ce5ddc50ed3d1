package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarForKnownNames(t *testing.T) {
	for _, name := range []string{"json", "dql", "calc"} {
		decode, err := grammarFor(name)
		require.NoError(t, err)
		assert.NotNil(t, decode)
	}
}

func TestGrammarForUnknownNameIsConfigError(t *testing.T) {
	_, err := grammarFor("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grammar")
}

func TestGrammarForCalcStringsTheResult(t *testing.T) {
	decode, err := grammarFor("calc")
	require.NoError(t, err)
	v, err := decode("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestRenderFailureFormatsParserFailure(t *testing.T) {
	decode, err := grammarFor("calc")
	require.NoError(t, err)
	_, err = decode("1 + ")
	require.Error(t, err)
	out := renderFailure(err)
	assert.Contains(t, out, "expected")
}
