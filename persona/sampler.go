package persona

import (
	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

// pickWeighted selects one item from an already-filtered, id-ordered
// candidate list with probability proportional to its frequency, using
// the single mixed draw at (seed, position). The caller owns filtering
// and ordering; sampling is just the cumulative-range walk, so the
// result depends only on the list contents and never on how the backing
// store iterated.
func pickWeighted[T any](seed, position int64, items []T, frequency func(T) int) (T, error) {
	var zero T
	total := 0
	for _, item := range items {
		total += frequency(item)
	}
	if total <= 0 {
		return zero, ErrZeroWeight
	}

	draw := rng.MixBetween(seed, position, 0, total-1)
	cum := 0
	for _, item := range items {
		cum += frequency(item)
		if draw < cum {
			return item, nil
		}
	}
	// Unreachable: draw < total and the ranges cover [0, total).
	return zero, ErrZeroWeight
}

func entryWeight(e locale.Entry) int { return e.Frequency }
func cityWeight(c locale.City) int   { return c.Frequency }
