package persona

import (
	"fmt"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

// MaxSeed is the largest accepted seed.
const MaxSeed = 2147483647

// Batch size bounds for the request-facing Batch API. Series has no
// upper bound and serves the bulk paths.
const (
	MinBatchSize = 1
	MaxBatchSize = 100
)

// Generator produces person records from the locale datasets behind a
// Store. It holds no mutable state, so a single Generator is safe for
// concurrent use.
type Generator struct {
	store locale.Store
}

func New(store locale.Store) *Generator {
	return &Generator{store: store}
}

// Batch returns batchSize records for the given page of the record
// sequence. Paging is transparent: Batch(locale, seed, i, n) returns
// exactly the records that a single larger batch would place at
// positions i*n through i*n+n-1, so consumers can re-page at will
// without changing any record.
func (g *Generator) Batch(localeCode string, seed int64, batchIndex, batchSize int) ([]Record, error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: size %d not in [%d, %d]", ErrInvalidBatch, batchSize, MinBatchSize, MaxBatchSize)
	}
	if batchIndex < 0 {
		return nil, fmt.Errorf("%w: index %d is negative", ErrInvalidBatch, batchIndex)
	}
	return g.Series(localeCode, seed, int64(batchIndex)*int64(batchSize), batchSize)
}

// Series returns count consecutive records starting at the given
// position of the record sequence. Unlike Batch it accepts any positive
// count, so exports can stream arbitrarily large runs.
func (g *Generator) Series(localeCode string, seed, start int64, count int) ([]Record, error) {
	if seed < 0 || seed > MaxSeed {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSeed, seed, MaxSeed)
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: start %d is negative", ErrInvalidBatch, start)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d is not positive", ErrInvalidBatch, count)
	}

	bundle, err := g.store.Bundle(localeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load locale %q: %w", localeCode, err)
	}
	pol, err := policyFor(localeCode)
	if err != nil {
		return nil, err
	}

	records := make([]Record, count)
	for i := range records {
		records[i], err = generateRecord(seed, start+int64(i), bundle, pol)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// At returns the single record at the given position.
func (g *Generator) At(localeCode string, seed, position int64) (Record, error) {
	records, err := g.Series(localeCode, seed, position, 1)
	if err != nil {
		return Record{}, err
	}
	return records[0], nil
}

func generateRecord(seed, globalIndex int64, b *locale.Bundle, pol policy) (Record, error) {
	base := recordBase(globalIndex)

	name, err := buildName(seed, base, b, pol)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", globalIndex, err)
	}

	lat, lon := rng.LatLon(seed, base+offCoordinates)

	heightCm, weightKg, eyeColor, err := buildPhysique(seed, base, b, name.gender)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", globalIndex, err)
	}

	address, err := buildAddress(seed, base, b, pol)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", globalIndex, err)
	}

	phone, err := buildPhone(seed, base, b, pol)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", globalIndex, err)
	}

	email, err := buildEmail(seed, base, b, name)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", globalIndex, err)
	}

	return Record{
		Position:  globalIndex,
		FullName:  name.display(),
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
		EyeColor:  eyeColor,
		Phone:     phone,
		Email:     email,
	}, nil
}
