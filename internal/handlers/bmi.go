package handlers

import (
	"math"

	"backend/internal/models"
)

const (
	cmPerFoot   = 30.48
	kgPerPound  = 0.45359237
	cmPerMeter  = 100.0
	bmiRounding = 10.0
)

func heightToCM(value float64, unit string) float64 {
	if unit == models.HeightUnitFT {
		return value * cmPerFoot
	}
	return value
}

func weightToKG(value float64, unit string) float64 {
	if unit == models.WeightUnitLBS {
		return value * kgPerPound
	}
	return value
}

// computeBMI normalizes the raw height/weight to cm/kg and derives the BMI,
// rounded to one decimal place. A non-positive height yields 0 rather than an
// error, so an unfilled record reads as "not computable" instead of blowing
// up the write. Inputs are not range-checked here.
func computeBMI(heightValue float64, heightUnit string, weightValue float64, weightUnit string) float64 {
	heightCM := heightToCM(heightValue, heightUnit)
	weightKG := weightToKG(weightValue, weightUnit)

	if heightCM <= 0 {
		return 0
	}

	heightM := heightCM / cmPerMeter
	return math.Round(weightKG/(heightM*heightM)*bmiRounding) / bmiRounding
}
