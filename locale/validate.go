package locale

import "fmt"

// Pattern placeholders are drawn one digit per '#', so every pattern must
// fit inside the fixed draw range its field reserves. These bounds are
// far below the reserved widths; real postal codes and phone numbers use
// at most ten digits.
const (
	maxPostalPlaceholders = 16
	maxPhonePlaceholders  = 24
)

// Validate checks a bundle's structural integrity: every list non-empty
// with strictly ascending ids and positive frequencies, gender tags only
// where they belong, both genders covered where generation filters by
// gender, and all patterns well-formed. Stores run this on load so that
// a zero-weight candidate set at generation time can only mean the data
// changed underneath a running process.
func Validate(b *Bundle) error {
	if b.Code == "" {
		return fmt.Errorf("%w: empty locale code", ErrInvalidDataset)
	}
	if b.Name == "" {
		return fmt.Errorf("%w: %s: empty display name", ErrInvalidDataset, b.Code)
	}

	gendered := []struct {
		name string
		list []Entry
	}{
		{"first_names", b.FirstNames},
		{"titles", b.Titles},
	}
	for _, l := range gendered {
		if err := validateEntries(b.Code, l.name, l.list, true); err != nil {
			return err
		}
		for _, g := range []string{GenderMale, GenderFemale} {
			if len(filterGender(l.list, g)) == 0 {
				return fmt.Errorf("%w: %s %s: no entries for gender %s",
					ErrInvalidDataset, b.Code, l.name, g)
			}
		}
	}

	plain := []struct {
		name string
		list []Entry
	}{
		{"last_names", b.LastNames},
		{"eye_colors", b.EyeColors},
		{"street_names", b.StreetNames},
		{"street_types", b.StreetTypes},
		{"phone_formats", b.PhoneFormats},
		{"email_domains", b.EmailDomains},
	}
	for _, l := range plain {
		if err := validateEntries(b.Code, l.name, l.list, false); err != nil {
			return err
		}
	}

	for _, e := range b.PhoneFormats {
		if err := validatePattern(e.Text, maxPhonePlaceholders); err != nil {
			return fmt.Errorf("%w: %s phone_formats id %d: %v",
				ErrInvalidDataset, b.Code, e.ID, err)
		}
	}
	for _, e := range b.EmailDomains {
		if !validDomain(e.Text) {
			return fmt.Errorf("%w: %s email_domains id %d: invalid domain %q",
				ErrInvalidDataset, b.Code, e.ID, e.Text)
		}
	}

	if len(b.Cities) == 0 {
		return fmt.Errorf("%w: %s cities: empty list", ErrInvalidDataset, b.Code)
	}
	prev := -1
	for _, c := range b.Cities {
		if c.ID <= prev {
			return fmt.Errorf("%w: %s cities: ids not strictly ascending at id %d",
				ErrInvalidDataset, b.Code, c.ID)
		}
		prev = c.ID
		if c.Name == "" || c.Region == "" {
			return fmt.Errorf("%w: %s cities id %d: empty name or region",
				ErrInvalidDataset, b.Code, c.ID)
		}
		if c.Frequency <= 0 {
			return fmt.Errorf("%w: %s cities id %d: non-positive frequency",
				ErrInvalidDataset, b.Code, c.ID)
		}
		if err := validatePattern(c.PostalPattern, maxPostalPlaceholders); err != nil {
			return fmt.Errorf("%w: %s cities id %d: %v",
				ErrInvalidDataset, b.Code, c.ID, err)
		}
	}

	return nil
}

func validateEntries(code, list string, entries []Entry, gendered bool) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s %s: empty list", ErrInvalidDataset, code, list)
	}
	prev := -1
	for _, e := range entries {
		if e.ID <= prev {
			return fmt.Errorf("%w: %s %s: ids not strictly ascending at id %d",
				ErrInvalidDataset, code, list, e.ID)
		}
		prev = e.ID
		if e.Text == "" {
			return fmt.Errorf("%w: %s %s id %d: empty text",
				ErrInvalidDataset, code, list, e.ID)
		}
		if e.Frequency <= 0 {
			return fmt.Errorf("%w: %s %s id %d: non-positive frequency",
				ErrInvalidDataset, code, list, e.ID)
		}
		switch {
		case gendered && e.Gender != GenderMale && e.Gender != GenderFemale && e.Gender != GenderUnisex:
			return fmt.Errorf("%w: %s %s id %d: bad gender %q",
				ErrInvalidDataset, code, list, e.ID, e.Gender)
		case !gendered && e.Gender != "":
			return fmt.Errorf("%w: %s %s id %d: unexpected gender tag",
				ErrInvalidDataset, code, list, e.ID)
		}
	}
	return nil
}

// validatePattern accepts '#' placeholders plus the literal characters
// that appear in postal codes and phone formats.
func validatePattern(pattern string, maxPlaceholders int) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	placeholders := 0
	for _, r := range pattern {
		switch {
		case r == '#':
			placeholders++
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '/', r == '(', r == ')', r == '+', r == '.':
		default:
			return fmt.Errorf("unsupported pattern character %q", r)
		}
	}
	if placeholders == 0 {
		return fmt.Errorf("pattern %q has no placeholders", pattern)
	}
	if placeholders > maxPlaceholders {
		return fmt.Errorf("pattern %q has %d placeholders, limit %d",
			pattern, placeholders, maxPlaceholders)
	}
	return nil
}

func validDomain(domain string) bool {
	if domain == "" {
		return false
	}
	dot := false
	for _, r := range domain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		case r == '.':
			dot = true
		default:
			return false
		}
	}
	return dot
}
