// Package costing holds the pure cost computations for shifts and events.
// Every function is side-effect free: callers load the entity state and the
// tenant pricing defaults, pass them in, and persist the results themselves.
// Missing inputs (nil endpoints, absent catalog rows, empty aggregates)
// resolve to zero-valued costs rather than errors so one bad line can never
// abort a recalculation cascade.
package costing

import (
	"math"
	"time"
)

// distanceToKm converts a projected planar point distance to kilometers.
// The factor is inherited from the legacy pricing data and must stay
// bit-for-bit compatible with it, even though it is a unit shortcut rather
// than a true geodetic conversion.
const distanceToKm = 100.0

// Point is a projected planar coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// TravelExpense is the breakdown of a shift's travel cost.
type TravelExpense struct {
	DistanceKm float64
	RatePerKm  float64
	Cost       float64
}

// ShiftHours returns the duration between the two endpoints in hours.
// Either endpoint missing yields zero.
func ShiftHours(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	return end.Sub(*start).Hours()
}

// PointDistanceKm returns the distance between two projected points scaled
// to kilometers by the fixed legacy factor.
func PointDistanceKm(a, b Point) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng) * distanceToKm
}

// EffectiveDistanceRate returns the shift's own travel rate, falling back to
// the tenant-wide default only when the shift rate is unset (zero).
func EffectiveDistanceRate(shiftRate, defaultRate float64) float64 {
	if shiftRate == 0 {
		return defaultRate
	}
	return shiftRate
}

// ComputeTravelExpense prices the crew travel between the shift location and
// the department's home base: distance x rate x headcount.
func ComputeTravelExpense(shiftLoc, departmentLoc Point, resources int, ratePerKm float64) TravelExpense {
	km := PointDistanceKm(shiftLoc, departmentLoc)
	return TravelExpense{
		DistanceKm: km,
		RatePerKm:  ratePerKm,
		Cost:       km * ratePerKm * float64(resources),
	}
}

// EffectiveEquipmentCharge returns the line's own charge, falling back to the
// catalog charge rate when the line charge is unset (zero).
func EffectiveEquipmentCharge(lineCharge, catalogRate float64) float64 {
	if lineCharge == 0 {
		return catalogRate
	}
	return lineCharge
}

// EquipmentLineCost prices one equipment line: charge x count.
func EquipmentLineCost(charge float64, count int) float64 {
	return charge * float64(count)
}

// QualificationLineCost prices one qualification line from the parent
// shift's hours: rate x hours x resources.
func QualificationLineCost(chargeRate, shiftHours float64, resources int) float64 {
	return chargeRate * shiftHours * float64(resources)
}

// ChiefSurcharge prices the additional crew-chief charge on a qualification
// line. Zero unless the shift designates at least one crew chief.
func ChiefSurcharge(addChiefRate, shiftHours float64, chiefCount int) float64 {
	if chiefCount <= 0 {
		return 0
	}
	return addChiefRate * shiftHours * float64(chiefCount)
}

// ShiftTotal sums the three shift charge components.
func ShiftTotal(travel, equipmentCharges, qualificationCharges float64) float64 {
	return travel + equipmentCharges + qualificationCharges
}

// EventTotal derives an event's total cost from its shift subtotal:
// subTotal - discount + subTotal * taxPercentage / 100.
func EventTotal(subTotal, discount, taxPercentage float64) float64 {
	return subTotal - discount + subTotal*taxPercentage/100
}
