// Package persona generates deterministic synthetic person records.
// Every field of every record is a pure function of (locale data, seed,
// global index); the same inputs reproduce byte-identical records
// forever, and any record can be computed in isolation, in any order,
// from any number of goroutines.
package persona

// Position layout.
//
// Each record owns a block of recordStride consecutive draw positions
// starting at globalIndex*recordStride. Inside the block, every field
// generator holds a reserved sub-range and every logical decision reads
// its own fixed slot, so no two decisions ever share a draw and new
// decisions can claim free slots without touching existing output.
//
//	[  0,  16)  name        gender, first, last, middle gate/pick,
//	                        title gate/pick, suffix gate/pick,
//	                        last-first gate
//	[ 16,  32)  coordinates latitude/longitude pair
//	[ 32,  48)  reserved
//	[ 48, 112)  address     street number/name/type, city, unit
//	                        gate/word/number, zip4 gate/value,
//	                        postal digits from slot 64
//	[112, 176)  phone       format, country gate, extension
//	                        gate/value, digits from slot 122
//	[176, 192)  email       variant, digits, domain
//	[192, 208)  body        height pair, weight pair, eye color
//	[208,1024)  reserved
//
// The table is frozen. Changing any constant below reshuffles every
// draw and silently re-seeds all previously generated datasets, so new
// fields extend into the reserved tail instead of renumbering.
const recordStride = 1024

const (
	nameBase    = 0
	geoBase     = 16
	addressBase = 48
	phoneBase   = 112
	emailBase   = 176
	bodyBase    = 192
)

const (
	offGender        = nameBase + 0
	offFirstName     = nameBase + 1
	offLastName      = nameBase + 2
	offMiddleGate    = nameBase + 3
	offMiddleName    = nameBase + 4
	offTitleGate     = nameBase + 5
	offTitlePick     = nameBase + 6
	offSuffixGate    = nameBase + 7
	offSuffixPick    = nameBase + 8
	offLastFirstGate = nameBase + 9

	offCoordinates = geoBase + 0 // consumes two slots

	offStreetNumber = addressBase + 0
	offStreetName   = addressBase + 1
	offStreetType   = addressBase + 2
	offCity         = addressBase + 3
	offUnitGate     = addressBase + 4
	offUnitWord     = addressBase + 5
	offUnitNumber   = addressBase + 6
	offZip4Gate     = addressBase + 7
	offZip4Value    = addressBase + 8
	offPostalDigits = addressBase + 16 // one slot per '#'

	offPhoneFormat    = phoneBase + 0
	offCountryGate    = phoneBase + 1
	offExtensionGate  = phoneBase + 2
	offExtensionValue = phoneBase + 3
	offPhoneDigits    = phoneBase + 10 // one slot per '#'

	offEmailVariant = emailBase + 0
	offEmailDigits  = emailBase + 1
	offEmailDomain  = emailBase + 2

	offHeight   = bodyBase + 0 // consumes two slots
	offBodyMass = bodyBase + 2 // consumes two slots
	offEyeColor = bodyBase + 4
)

// Digit-slot capacities implied by the layout above. Dataset validation
// in the locale package caps patterns at the same sizes, so a validated
// bundle can never run a pattern off the end of its range.
const (
	postalDigitSlots = 16
	phoneDigitSlots  = 24
)

func recordBase(globalIndex int64) int64 {
	return globalIndex * recordStride
}
