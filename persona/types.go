package persona

import "strings"

// Record is one generated person. Records are ephemeral: they are
// produced on demand, never stored by this package, and identified
// entirely by (locale, seed, Position).
type Record struct {
	Position  int64   `json:"position"`
	FullName  string  `json:"full_name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	HeightCm  int     `json:"height_cm"`
	WeightKg  int     `json:"weight_kg"`
	EyeColor  string  `json:"eye_color"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
}

// nameParts carries the structured name through the pipeline. The email
// generator composes usernames from the clean first/last components
// rather than parsing them back out of the display string, and the body
// generator keys its height model off the drawn gender.
type nameParts struct {
	title  string
	first  string
	middle string
	last   string
	suffix string
	gender string

	// lastFirst renders the display form as "Last, First" with no
	// decorations, as German records sometimes do.
	lastFirst bool
}

func (p nameParts) display() string {
	if p.lastFirst {
		return p.last + ", " + p.first
	}
	parts := make([]string, 0, 5)
	for _, s := range []string{p.title, p.first, p.middle, p.last, p.suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
