package persona

import (
	"fmt"
	"math"

	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/rng"
)

const (
	maleHeightMean     = 175.0
	maleHeightStddev   = 7.0
	femaleHeightMean   = 162.0
	femaleHeightStddev = 6.5

	bodyMassIndexMean   = 22.0
	bodyMassIndexStddev = 3.0

	minHeightCm = 150
	maxHeightCm = 210
	minWeightKg = 45
	maxWeightKg = 150
)

func buildPhysique(seed, base int64, b *locale.Bundle, gender string) (heightCm, weightKg int, eyeColor string, err error) {
	mean, stddev := maleHeightMean, maleHeightStddev
	if gender == locale.GenderFemale {
		mean, stddev = femaleHeightMean, femaleHeightStddev
	}

	height := rng.Normal(seed, base+offHeight, mean, stddev)
	bmi := rng.Normal(seed, base+offBodyMass, bodyMassIndexMean, bodyMassIndexStddev)

	// Weight derives from the raw height draw, not the clamped value.
	weight := bmi * (height / 100) * (height / 100)

	heightCm = clampInt(int(math.Round(height)), minHeightCm, maxHeightCm)
	weightKg = clampInt(int(math.Round(weight)), minWeightKg, maxWeightKg)

	eye, err := pickWeighted(seed, base+offEyeColor, b.EyeColors, entryWeight)
	if err != nil {
		return 0, 0, "", fmt.Errorf("eye color: %w", err)
	}
	return heightCm, weightKg, eye.Text, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
