package locale

import "fmt"

// Store provides locale datasets. Implementations validate bundles on
// load, so a non-error Bundle result is always safe to generate from.
type Store interface {
	// Locales lists the available locales ordered by code.
	Locales() ([]Info, error)

	// Bundle returns the complete dataset for a locale code.
	// Unknown codes return an error wrapping ErrNotFound.
	Bundle(code string) (*Bundle, error)

	// Ping reports whether the backing data source is reachable.
	Ping() error

	// Close releases the underlying resources.
	Close() error
}

// Open selects a Store implementation by kind. "builtin" (or empty)
// serves the compiled-in dataset, "postgres" opens dsn as a database
// URL, "bolt" opens dsn as a bbolt file path.
func Open(kind, dsn string) (Store, error) {
	switch kind {
	case "", "builtin":
		return NewMemoryStore(Builtin()...)
	case "postgres":
		return OpenPostgres(dsn)
	case "bolt":
		return OpenBolt(dsn)
	default:
		return nil, fmt.Errorf("locale: unknown store kind %q", kind)
	}
}
