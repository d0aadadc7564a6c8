package persona

import (
	"fmt"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

// Percentage gates for the optional name parts. Each gate reads its own
// slot, so toggling one part never shifts the draws of another.
const (
	middleNameChance = 20
	titleChance      = 15
	suffixChance     = 10
	lastFirstChance  = 50
)

var nameSuffixes = [...]string{"Jr.", "Sr.", "III"}

func buildName(seed, base int64, b *locale.Bundle, pol policy) (nameParts, error) {
	var n nameParts

	if rng.MixBetween(seed, base+offGender, 0, 1) == 0 {
		n.gender = locale.GenderMale
	} else {
		n.gender = locale.GenderFemale
	}

	firstNames := b.FirstNamesFor(n.gender)

	first, err := pickWeighted(seed, base+offFirstName, firstNames, entryWeight)
	if err != nil {
		return nameParts{}, fmt.Errorf("first name: %w", err)
	}
	n.first = first.Text

	last, err := pickWeighted(seed, base+offLastName, b.LastNames, entryWeight)
	if err != nil {
		return nameParts{}, fmt.Errorf("last name: %w", err)
	}
	n.last = last.Text

	if rng.MixBetween(seed, base+offMiddleGate, 0, 99) < middleNameChance {
		pool := make([]locale.Entry, 0, len(firstNames))
		for _, e := range firstNames {
			if e.Text != first.Text {
				pool = append(pool, e)
			}
		}
		// A single-name dataset has no distinct middle name to offer;
		// the gate simply stays closed.
		if len(pool) > 0 {
			middle, err := pickWeighted(seed, base+offMiddleName, pool, entryWeight)
			if err != nil {
				return nameParts{}, fmt.Errorf("middle name: %w", err)
			}
			n.middle = middle.Text
		}
	}

	if rng.MixBetween(seed, base+offTitleGate, 0, 99) < titleChance {
		title, err := pickWeighted(seed, base+offTitlePick, b.TitlesFor(n.gender), entryWeight)
		if err != nil {
			return nameParts{}, fmt.Errorf("title: %w", err)
		}
		n.title = title.Text
	}

	if rng.MixBetween(seed, base+offSuffixGate, 0, 99) < suffixChance {
		n.suffix = nameSuffixes[rng.MixBetween(seed, base+offSuffixPick, 0, len(nameSuffixes)-1)]
	}

	if pol.lastFirst && rng.MixBetween(seed, base+offLastFirstGate, 0, 99) < lastFirstChance {
		n.lastFirst = true
	}

	return n, nil
}
