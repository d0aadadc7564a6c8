package persona

import (
	"fmt"
	"strings"

	"github.com/hlynes/personagen/rng"
)

// fillPattern renders a digit pattern such as "(###) ###-####" or
// "#####". Each '#' consumes one draw slot starting at digitsBase, so a
// pattern always burns positions digitsBase..digitsBase+n-1 for its n
// placeholders regardless of where the literals sit. width caps n at
// the number of slots reserved in the record layout.
//
// Dataset loading already validates stored patterns, so errors here
// only fire for hand-built providers that skipped validation.
func fillPattern(seed, digitsBase int64, pattern string, width int) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))

	slot := 0
	for _, r := range pattern {
		if r == '#' {
			if slot >= width {
				return "", fmt.Errorf("%w: %q exceeds %d digit slots", ErrBadPattern, pattern, width)
			}
			digit := rng.MixBetween(seed, digitsBase+int64(slot), 0, 9)
			b.WriteByte(byte('0' + digit))
			slot++
			continue
		}
		if !validPatternLiteral(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrBadPattern, pattern, r)
		}
		b.WriteRune(r)
	}
	if slot == 0 {
		return "", fmt.Errorf("%w: %q has no digit placeholders", ErrBadPattern, pattern)
	}
	return b.String(), nil
}

func validPatternLiteral(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '-', '(', ')', '+', '.', '/':
		return true
	}
	return false
}
