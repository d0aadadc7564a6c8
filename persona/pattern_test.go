package persona

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillPatternShape(t *testing.T) {
	out, err := fillPattern(12345, 0, "(###) ###-####", phoneDigitSlots)
	require.NoError(t, err)
	require.Regexp(t, `^\(\d{3}\) \d{3}-\d{4}$`, out)

	out, err = fillPattern(12345, 0, "#####", postalDigitSlots)
	require.NoError(t, err)
	require.Regexp(t, `^\d{5}$`, out)
}

// TestFillPatternSlotAddressing verifies that each placeholder reads its
// own slot in order: literals shift nothing, so two patterns with the
// same placeholder count produce the same digits at the same base.
func TestFillPatternSlotAddressing(t *testing.T) {
	bare, err := fillPattern(42, 512, "#####", postalDigitSlots)
	require.NoError(t, err)
	dressed, err := fillPattern(42, 512, "##-##/#", postalDigitSlots)
	require.NoError(t, err)

	stripped := make([]byte, 0, 5)
	for i := 0; i < len(dressed); i++ {
		if dressed[i] >= '0' && dressed[i] <= '9' {
			stripped = append(stripped, dressed[i])
		}
	}
	require.Equal(t, bare, string(stripped))
}

func TestFillPatternDeterministic(t *testing.T) {
	a, err := fillPattern(7, 64, "0#### ######", phoneDigitSlots)
	require.NoError(t, err)
	b, err := fillPattern(7, 64, "0#### ######", phoneDigitSlots)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFillPatternTooManyPlaceholders(t *testing.T) {
	_, err := fillPattern(1, 0, "#################", postalDigitSlots)
	require.ErrorIs(t, err, ErrBadPattern)
}

func TestFillPatternRejectsBadLiteral(t *testing.T) {
	_, err := fillPattern(1, 0, "##*##", postalDigitSlots)
	require.ErrorIs(t, err, ErrBadPattern)
}

func TestFillPatternRequiresPlaceholder(t *testing.T) {
	_, err := fillPattern(1, 0, "no digits here", postalDigitSlots)
	require.ErrorIs(t, err, ErrBadPattern)
}
