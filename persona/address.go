package persona

import (
	"fmt"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

const (
	unitChance = 20
	zip4Chance = 25
)

var unitWords = [...]string{"Apt.", "Suite", "Unit"}

// addressParts holds the raw pieces of a street address before the
// locale policy assembles them into display order.
type addressParts struct {
	number int
	street string
	city   locale.City
	unit   string
	postal string
	zip4   string
}

func buildAddress(seed, base int64, b *locale.Bundle, pol policy) (string, error) {
	var a addressParts

	a.number = rng.IntBetween(seed, base+offStreetNumber, 1, 9999)

	name, err := pickWeighted(seed, base+offStreetName, b.StreetNames, entryWeight)
	if err != nil {
		return "", fmt.Errorf("street name: %w", err)
	}
	streetType, err := pickWeighted(seed, base+offStreetType, b.StreetTypes, entryWeight)
	if err != nil {
		return "", fmt.Errorf("street type: %w", err)
	}
	a.street = pol.street(name.Text, streetType.Text)

	a.city, err = pickWeighted(seed, base+offCity, b.Cities, cityWeight)
	if err != nil {
		return "", fmt.Errorf("city: %w", err)
	}

	if pol.unit && rng.MixBetween(seed, base+offUnitGate, 0, 99) < unitChance {
		word := unitWords[rng.MixBetween(seed, base+offUnitWord, 0, len(unitWords)-1)]
		a.unit = fmt.Sprintf("%s %d", word, rng.IntBetween(seed, base+offUnitNumber, 1, 999))
	}

	a.postal, err = fillPattern(seed, base+offPostalDigits, a.city.PostalPattern, postalDigitSlots)
	if err != nil {
		return "", fmt.Errorf("postal code for %s: %w", a.city.Name, err)
	}

	if pol.zip4 && rng.MixBetween(seed, base+offZip4Gate, 0, 99) < zip4Chance {
		a.zip4 = fmt.Sprintf("%04d", rng.IntBetween(seed, base+offZip4Value, 1, 9999))
	}

	return pol.address(a), nil
}
