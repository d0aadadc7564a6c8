package persona

import (
	"fmt"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

const (
	countryCodeChance = 25
	extensionChance   = 15
)

func buildPhone(seed, base int64, b *locale.Bundle, pol policy) (string, error) {
	format, err := pickWeighted(seed, base+offPhoneFormat, b.PhoneFormats, entryWeight)
	if err != nil {
		return "", fmt.Errorf("phone format: %w", err)
	}

	number, err := fillPattern(seed, base+offPhoneDigits, format.Text, phoneDigitSlots)
	if err != nil {
		return "", fmt.Errorf("phone number: %w", err)
	}

	if rng.MixBetween(seed, base+offCountryGate, 0, 99) < countryCodeChance {
		number = pol.countryCode + " " + number
	}

	if rng.MixBetween(seed, base+offExtensionGate, 0, 99) < extensionChance {
		number = fmt.Sprintf("%s x%d", number, rng.IntBetween(seed, base+offExtensionValue, 1, 9999))
	}

	return number, nil
}
