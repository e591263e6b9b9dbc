package numfmt

import (
	"testing"

	"github.com/go-cldr/dtfmt/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadZeroPadsShortValues(t *testing.T) {
	assert.Equal(t, "04", Pad(4, 2))
	assert.Equal(t, "1999", Pad(1999, 2))
	assert.Equal(t, "9", Pad(9, 1))
}

func TestGroupAppliesLocaleSeparators(t *testing.T) {
	assert.Equal(t, "1,234", Group("en", 1234))
	// French groups with a (non-ASCII) space rather than a comma; assert
	// the shape rather than the exact separator rune.
	assert.NotEqual(t, "1234", Group("fr", 1234))
}

func TestTransliterateMapsLatinDigitsOnly(t *testing.T) {
	arabicDigits := [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}
	got := Transliterate("1,234", arabicDigits)
	assert.Equal(t, "١,٢٣٤", got)
}

func TestTransliterateZeroValueDigitsIsNoop(t *testing.T) {
	assert.Equal(t, "1,234", Transliterate("1,234", [10]rune{}))
}

func TestRenderUnknownNumberSystemFails(t *testing.T) {
	data, ok := locale.Default().Lookup("en")
	require.True(t, ok)
	_, ok = Render(data, "made-up-system", 42)
	assert.False(t, ok)
}

func TestRenderArabicNumberSystem(t *testing.T) {
	data, ok := locale.Default().Lookup("ar")
	require.True(t, ok)
	out, ok := Render(data, "arab", 1234)
	require.True(t, ok)
	assert.NotContains(t, out, "1")
}
