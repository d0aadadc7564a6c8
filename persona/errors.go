package persona

import "errors"

var (
	// ErrInvalidSeed is returned for seeds outside [0, 2^31-1].
	ErrInvalidSeed = errors.New("persona: seed out of range")

	// ErrInvalidBatch is returned for batch or series shapes outside the
	// documented bounds. Out-of-bounds arguments are never clamped.
	ErrInvalidBatch = errors.New("persona: invalid batch parameters")

	// ErrZeroWeight is returned when a filtered candidate set has no
	// weight to draw from. It signals corrupted lookup data, never a
	// condition to default around.
	ErrZeroWeight = errors.New("persona: candidate set has zero total weight")

	// ErrBadPattern is returned when a format pattern cannot be filled;
	// no partially substituted string is ever produced.
	ErrBadPattern = errors.New("persona: malformed pattern")

	// ErrNoLayout is returned when a locale has lookup data but no
	// formatting rules. Layouts are explicit per locale, with no
	// fallback.
	ErrNoLayout = errors.New("persona: no formatting rules for locale")

	// ErrEmptyLocalPart is returned when a name sanitizes to an empty
	// email local part.
	ErrEmptyLocalPart = errors.New("persona: name sanitizes to empty email local part")
)
