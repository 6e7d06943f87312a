package costing_test

import (
	"testing"
	"time"

	"github.com/crewstack/staffing-api/internal/costing"
	"github.com/stretchr/testify/assert"
)

func TestShiftHours(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	t.Run("full range", func(t *testing.T) {
		assert.Equal(t, 4.0, costing.ShiftHours(&start, &end))
	})

	t.Run("half hours", func(t *testing.T) {
		e := start.Add(90 * time.Minute)
		assert.Equal(t, 1.5, costing.ShiftHours(&start, &e))
	})

	t.Run("nil start", func(t *testing.T) {
		assert.Zero(t, costing.ShiftHours(nil, &end))
	})

	t.Run("nil end", func(t *testing.T) {
		assert.Zero(t, costing.ShiftHours(&start, nil))
	})

	t.Run("both nil", func(t *testing.T) {
		assert.Zero(t, costing.ShiftHours(nil, nil))
	})
}

func TestComputeTravelExpense(t *testing.T) {
	shiftLoc := costing.Point{Lat: 3, Lng: 4}
	depot := costing.Point{Lat: 0, Lng: 0}

	exp := costing.ComputeTravelExpense(shiftLoc, depot, 2, 1.5)

	// planar distance 5 scaled by the fixed 100x factor
	assert.InDelta(t, 500.0, exp.DistanceKm, 1e-9)
	assert.Equal(t, 1.5, exp.RatePerKm)
	assert.InDelta(t, 1500.0, exp.Cost, 1e-9)
}

func TestComputeTravelExpense_SamePoint(t *testing.T) {
	loc := costing.Point{Lat: 12.5, Lng: -3.25}
	exp := costing.ComputeTravelExpense(loc, loc, 5, 2.0)
	assert.Zero(t, exp.DistanceKm)
	assert.Zero(t, exp.Cost)
}

func TestEffectiveDistanceRate(t *testing.T) {
	assert.Equal(t, 2.5, costing.EffectiveDistanceRate(0, 2.5), "falls back when unset")
	assert.Equal(t, 1.1, costing.EffectiveDistanceRate(1.1, 2.5), "keeps own rate")
}

func TestEquipmentLineCost(t *testing.T) {
	assert.Equal(t, 20.0, costing.EquipmentLineCost(10, 2))
	assert.Equal(t, 15.0, costing.EquipmentLineCost(5, 3))
	assert.Zero(t, costing.EquipmentLineCost(10, 0))
}

func TestEffectiveEquipmentCharge(t *testing.T) {
	assert.Equal(t, 7.5, costing.EffectiveEquipmentCharge(0, 7.5))
	assert.Equal(t, 9.0, costing.EffectiveEquipmentCharge(9, 7.5))
}

func TestQualificationLineCost(t *testing.T) {
	// charge_rate=20, hours=4, resources=2
	assert.Equal(t, 160.0, costing.QualificationLineCost(20, 4, 2))
	assert.Zero(t, costing.QualificationLineCost(20, 0, 2), "no hours, no cost")
	assert.Zero(t, costing.QualificationLineCost(0, 4, 2), "missing rate resolves to zero")
}

func TestChiefSurcharge(t *testing.T) {
	assert.Zero(t, costing.ChiefSurcharge(15, 4, 0), "no chiefs designated")
	assert.Zero(t, costing.ChiefSurcharge(15, 4, -1))
	assert.Equal(t, 120.0, costing.ChiefSurcharge(15, 4, 2))
}

func TestShiftTotal(t *testing.T) {
	assert.Equal(t, 60.0, costing.ShiftTotal(10, 20, 30))
	assert.Zero(t, costing.ShiftTotal(0, 0, 0))
}

func TestEventTotal(t *testing.T) {
	tests := []struct {
		name          string
		subTotal      float64
		discount      float64
		taxPercentage float64
		want          float64
	}{
		{"discount and tax", 1000, 50, 10, 1050},
		{"no adjustments", 500, 0, 0, 500},
		{"empty event keeps discount applied", 0, 50, 10, -50},
		{"tax only", 200, 0, 25, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, costing.EventTotal(tt.subTotal, tt.discount, tt.taxPercentage), 1e-9)
		})
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	first := costing.EventTotal(1234.56, 78.9, 12.5)
	second := costing.EventTotal(1234.56, 78.9, 12.5)
	assert.Equal(t, first, second)

	a := costing.ComputeTravelExpense(costing.Point{Lat: 1, Lng: 2}, costing.Point{Lat: 4, Lng: 6}, 3, 1.2)
	b := costing.ComputeTravelExpense(costing.Point{Lat: 1, Lng: 2}, costing.Point{Lat: 4, Lng: 6}, 3, 1.2)
	assert.Equal(t, a, b)
}
