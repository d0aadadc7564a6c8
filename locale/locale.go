// Package locale holds the lookup datasets that drive record generation:
// weighted name, street, city, phone-format and email-domain tables keyed
// by locale code. A Store loads complete per-locale bundles from Postgres,
// a bbolt file, or the compiled-in dataset; the generation engine only
// ever sees validated, id-ordered candidate lists.
package locale

import "errors"

var (
	// ErrNotFound is returned when a locale code has no dataset. Absence
	// is an error, never an empty bundle.
	ErrNotFound = errors.New("locale: not found")

	// ErrInvalidDataset is returned when a bundle fails validation on
	// load. Generation never repairs or defaults around bad data.
	ErrInvalidDataset = errors.New("locale: invalid dataset")
)

// Gender tags for weighted entries. Unisex entries match every filter.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderUnisex = "U"
)

// Entry is one weighted candidate in a lookup list. Gender is set only
// for the gendered lists (first names, titles); elsewhere it is empty.
type Entry struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Gender    string `json:"gender,omitempty"`
	Frequency int    `json:"frequency"`
}

// City is a weighted city candidate with its region and postal pattern.
// The pattern mixes literal characters with '#' placeholders, one per
// generated digit.
type City struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	PostalPattern string `json:"postal_pattern"`
	Frequency     int    `json:"frequency"`
}

// Info identifies an available locale.
type Info struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Bundle is the complete dataset for one locale. All lists are ordered
// by id ascending; Validate enforces that, so samplers can rely on it.
type Bundle struct {
	Code string `json:"code"`
	Name string `json:"name"`

	FirstNames   []Entry `json:"first_names"`
	LastNames    []Entry `json:"last_names"`
	Titles       []Entry `json:"titles"`
	EyeColors    []Entry `json:"eye_colors"`
	StreetNames  []Entry `json:"street_names"`
	StreetTypes  []Entry `json:"street_types"`
	Cities       []City  `json:"cities"`
	PhoneFormats []Entry `json:"phone_formats"`
	EmailDomains []Entry `json:"email_domains"`
}

// FirstNamesFor returns the first-name candidates matching gender,
// keeping id order. An entry matches when its gender equals the filter
// or is unisex.
func (b *Bundle) FirstNamesFor(gender string) []Entry {
	return filterGender(b.FirstNames, gender)
}

// TitlesFor returns the title candidates matching gender, keeping id order.
func (b *Bundle) TitlesFor(gender string) []Entry {
	return filterGender(b.Titles, gender)
}

func filterGender(entries []Entry, gender string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Gender == gender || e.Gender == GenderUnisex {
			out = append(out, e)
		}
	}
	return out
}
