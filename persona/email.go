package persona

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

// emailVariants is the number of local-part layouts below.
const emailVariants = 6

func buildEmail(seed, base int64, b *locale.Bundle, n nameParts) (string, error) {
	variant := rng.MixBetween(seed, base+offEmailVariant, 0, emailVariants-1)
	digits := rng.IntBetween(seed, base+offEmailDigits, 1, 99)

	domain, err := pickWeighted(seed, base+offEmailDomain, b.EmailDomains, entryWeight)
	if err != nil {
		return "", fmt.Errorf("email domain: %w", err)
	}

	var local string
	switch variant {
	case 0:
		local = n.first + "." + n.last
	case 1:
		local = n.first + n.last
	case 2:
		local = firstRune(n.first) + "." + n.last
	case 3:
		local = n.first + strconv.Itoa(digits)
	case 4:
		local = n.last + strconv.Itoa(digits)
	default:
		local = n.first + "_" + n.last
	}

	local = sanitizeLocalPart(local)
	if local == "" {
		return "", fmt.Errorf("%w: %s %s", ErrEmptyLocalPart, n.first, n.last)
	}
	return local + "@" + domain.Text, nil
}

// sanitizeLocalPart lowercases the candidate local part and strips
// every rune outside [a-z0-9._-]. Accented characters are dropped
// rather than transliterated, so Müller yields mller.
func sanitizeLocalPart(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
