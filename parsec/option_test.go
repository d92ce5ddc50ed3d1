package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSomeAndNone(t *testing.T) {
	some := Some(42)
	assert.True(t, some.Present())
	assert.Equal(t, 42, some.Value())
	assert.Equal(t, 42, some.Or(0))

	none := None[int]()
	assert.False(t, none.Present())
	assert.Equal(t, 7, none.Or(7))
	assert.Panics(t, func() { none.Value() })
}
