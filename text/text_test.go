package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dawnliving/SuffixTree-S-and-C/text"
)

func TestSeal(t *testing.T) {
	txt, err := text.Seal("banana")
	require.NoError(t, err)

	assert.Equal(t, 7, txt.Len())
	assert.Equal(t, 6, txt.TextLen())
	assert.Equal(t, 'b', txt.At(0))
	assert.Equal(t, rune(text.Sentinel), txt.At(6))
}

func TestSealRejectsEmpty(t *testing.T) {
	_, err := text.Seal("")
	assert.ErrorIs(t, err, text.ErrEmptyText)
}

func TestSealRejectsSentinel(t *testing.T) {
	for _, s := range []string{"$", "a$b", "ab$"} {
		_, err := text.Seal(s)
		assert.ErrorIs(t, err, text.ErrSentinelInText, "Seal(%q)", s)
	}
}

func TestSealMultibyteSymbols(t *testing.T) {
	txt, err := text.Seal("héllo")
	require.NoError(t, err)

	assert.Equal(t, 5, txt.TextLen())
	assert.Equal(t, 'é', txt.At(1))
}

func TestCheckPattern(t *testing.T) {
	assert.NoError(t, text.CheckPattern("banana"))
	assert.NoError(t, text.CheckPattern(""))
	assert.ErrorIs(t, text.CheckPattern("na$"), text.ErrSentinelInPattern)
	assert.ErrorIs(t, text.CheckPattern("$"), text.ErrSentinelInPattern)
}

func TestSliceIsACopy(t *testing.T) {
	txt, err := text.Seal("banana")
	require.NoError(t, err)

	got := txt.Slice(1, 4)
	assert.Equal(t, []rune("ana"), got)

	got[0] = 'x'
	assert.Equal(t, 'a', txt.At(1))
}

func TestLabel(t *testing.T) {
	txt, err := text.Seal("banana")
	require.NoError(t, err)

	assert.Equal(t, "ban", txt.Label(0, 2))
	assert.Equal(t, "a", txt.Label(1, 1))
	assert.Equal(t, "banana$", txt.Label(0, 6))
}
