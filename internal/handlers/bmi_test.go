package handlers

import (
	"math"
	"testing"

	"backend/internal/models"
)

func TestComputeBMIMetricUnits(t *testing.T) {
	got := computeBMI(170, models.HeightUnitCM, 70, models.WeightUnitKG)
	if got != 24.2 {
		t.Fatalf("expected BMI 24.2 for 170cm/70kg, got %v", got)
	}
}

func TestComputeBMIImperialUnits(t *testing.T) {
	got := computeBMI(5, models.HeightUnitFT, 150, models.WeightUnitLBS)
	if got != 29.3 {
		t.Fatalf("expected BMI 29.3 for 5ft/150lbs, got %v", got)
	}
}

func TestComputeBMIZeroHeightIsSentinel(t *testing.T) {
	tests := []string{models.HeightUnitCM, models.HeightUnitFT}
	for _, unit := range tests {
		if got := computeBMI(0, unit, 70, models.WeightUnitKG); got != 0 {
			t.Fatalf("expected BMI 0 for zero height (%s), got %v", unit, got)
		}
	}
}

func TestComputeBMINegativeHeightIsSentinel(t *testing.T) {
	if got := computeBMI(-170, models.HeightUnitCM, 70, models.WeightUnitKG); got != 0 {
		t.Fatalf("expected BMI 0 for negative height, got %v", got)
	}
}

func TestComputeBMIIsDeterministic(t *testing.T) {
	first := computeBMI(182.5, models.HeightUnitCM, 77.3, models.WeightUnitKG)
	second := computeBMI(182.5, models.HeightUnitCM, 77.3, models.WeightUnitKG)
	if first != second {
		t.Fatalf("expected identical BMI on recomputation, got %v and %v", first, second)
	}
}

func TestHeightToCM(t *testing.T) {
	if got := heightToCM(5, models.HeightUnitFT); math.Abs(got-152.4) > 1e-9 {
		t.Fatalf("expected 152.4cm for 5ft, got %v", got)
	}
	if got := heightToCM(170, models.HeightUnitCM); got != 170 {
		t.Fatalf("expected cm value to pass through, got %v", got)
	}
}

func TestWeightToKG(t *testing.T) {
	if got := weightToKG(150, models.WeightUnitLBS); math.Abs(got-68.0388555) > 1e-6 {
		t.Fatalf("expected ~68.04kg for 150lbs, got %v", got)
	}
	if got := weightToKG(70, models.WeightUnitKG); got != 70 {
		t.Fatalf("expected kg value to pass through, got %v", got)
	}
}
