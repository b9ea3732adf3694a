package automaton

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterMap(t *testing.T) {
	cm, err := NewCharacterMap([]rune("xa.é"))
	require.NoError(t, err)

	assert.Equal(t, 4, cm.Len())
	for i, r := range []rune("xa.é") {
		idx, ok := cm.Index(r)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Equal(t, r, cm.Symbol(i))
	}

	_, ok := cm.Index('b')
	assert.False(t, ok)

	symbols := cm.Symbols()
	symbols[0] = 'z'
	assert.Equal(t, 'x', cm.Symbol(0))
	assert.Equal(t, "{x:0, a:1, .:2, é:3}", cm.String())
}

func TestCharacterMapDuplicate(t *testing.T) {
	_, err := NewCharacterMap([]rune("abca"))
	require.Error(t, err)

	var dup *DuplicateSymbolError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 'a', dup.Symbol)
}

func TestCharacterMapEmpty(t *testing.T) {
	cm, err := NewCharacterMap(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Len())
	assert.Equal(t, "{}", cm.String())
}
