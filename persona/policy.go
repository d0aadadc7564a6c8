package persona

import "fmt"

// policy collects the locale-conditional formatting rules for every
// field in one place. Supporting a new locale means adding a row to
// policies (plus its dataset); there is no implicit default layout, so
// a locale with data but no policy fails with ErrNoLayout instead of
// rendering something half right.
type policy struct {
	// countryCode is the phone prefix applied when the country-code
	// gate fires.
	countryCode string

	// lastFirst enables the "Last, First" display-name variant.
	lastFirst bool

	// unit and zip4 enable the optional unit designator and ZIP+4
	// suffix draws for addresses.
	unit bool
	zip4 bool

	street  func(name, streetType string) string
	address func(a addressParts) string
}

var policies = map[string]policy{
	"en_US": {
		countryCode: "+1",
		unit:        true,
		zip4:        true,
		street: func(name, streetType string) string {
			return name + " " + streetType
		},
		address: func(a addressParts) string {
			s := fmt.Sprintf("%d %s", a.number, a.street)
			if a.unit != "" {
				s += " " + a.unit
			}
			s = fmt.Sprintf("%s, %s, %s %s", s, a.city.Name, a.city.Region, a.postal)
			if a.zip4 != "" {
				s += "-" + a.zip4
			}
			return s
		},
	},
	"de_DE": {
		countryCode: "+49",
		lastFirst:   true,
		// German street types glue onto the name: Hauptstraße, Schulweg.
		street: func(name, streetType string) string {
			return name + streetType
		},
		address: func(a addressParts) string {
			return fmt.Sprintf("%s %d, %s %s", a.street, a.number, a.postal, a.city.Name)
		},
	},
}

func policyFor(code string) (policy, error) {
	pol, ok := policies[code]
	if !ok {
		return policy{}, fmt.Errorf("%w: %s", ErrNoLayout, code)
	}
	return pol, nil
}
