package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewstack/staffing-api/internal/costing"
	"github.com/crewstack/staffing-api/internal/domain"
)

// The helpers in this file implement the save cascade: a change to a line item
// rolls up into its shift's aggregates, and a change to a shift rolls up into
// its event's totals and status. Every caller runs them inside a transaction
// so a request either lands the whole cascade or none of it.

// recomputeShiftAggregates re-derives a shift's equipment, qualification and
// total cost columns from its line rows and persists them.
func recomputeShiftAggregates(tx *gorm.DB, shift *domain.Shift) error {
	var equipmentTotal float64
	err := tx.Model(&domain.ShiftEquipment{}).
		Where("shift_id = ?", shift.ID).
		Select("COALESCE(SUM(equipment_cost), 0)").
		Scan(&equipmentTotal).Error
	if err != nil {
		return fmt.Errorf("failed to sum equipment costs: %w", err)
	}

	var qual struct {
		LineTotal  float64
		ChiefTotal float64
	}
	err = tx.Model(&domain.ShiftQualification{}).
		Where("shift_id = ?", shift.ID).
		Select("COALESCE(SUM(qualification_cost), 0) as line_total, COALESCE(SUM(total_add_chief_charge), 0) as chief_total").
		Scan(&qual).Error
	if err != nil {
		return fmt.Errorf("failed to sum qualification costs: %w", err)
	}

	shift.EquipmentCharges = equipmentTotal
	shift.QualificationCharges = qual.LineTotal + qual.ChiefTotal
	shift.TotalShiftCost = costing.ShiftTotal(shift.TravelExpenses, shift.EquipmentCharges, shift.QualificationCharges)

	return tx.Model(&domain.Shift{}).
		Where("id = ?", shift.ID).
		Updates(map[string]interface{}{
			"equipment_charges":     shift.EquipmentCharges,
			"qualification_charges": shift.QualificationCharges,
			"total_shift_cost":      shift.TotalShiftCost,
		}).Error
}

// recomputeEventTotals re-derives an event's sub total from its shifts and its
// total cost from discount and tax, then persists both.
func recomputeEventTotals(tx *gorm.DB, eventID uuid.UUID) error {
	var event domain.Event
	if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
		return err
	}

	var subTotal float64
	err := tx.Model(&domain.Shift{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(total_shift_cost), 0)").
		Scan(&subTotal).Error
	if err != nil {
		return fmt.Errorf("failed to sum shift costs: %w", err)
	}

	totalCost := costing.EventTotal(subTotal, event.Discount, event.TaxPercentage)

	return tx.Model(&domain.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"sub_total":  subTotal,
			"total_cost": totalCost,
		}).Error
}

// reconcileEventStatus derives the event's status from its shifts by walking
// the precedence order and persists it when it changed. Declined, cancelled
// and deleted shifts are skipped; when every shift is skipped (or the event
// has none) the current status is kept. Returns the resulting status.
func reconcileEventStatus(tx *gorm.DB, eventID uuid.UUID) (domain.EventStatus, error) {
	var event domain.Event
	if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
		return "", err
	}

	var statuses []domain.ShiftStatus
	err := tx.Model(&domain.Shift{}).
		Where("event_id = ?", eventID).
		Distinct("status").
		Pluck("status", &statuses).Error
	if err != nil {
		return "", err
	}

	present := make(map[domain.ShiftStatus]bool, len(statuses))
	for _, s := range statuses {
		present[s] = true
	}

	for _, s := range domain.ShiftStatusPrecedence {
		if !present[s] {
			continue
		}
		derived, ok := domain.EventStatusFor(s)
		if !ok {
			continue
		}
		if derived == event.Status {
			return event.Status, nil
		}
		err := tx.Model(&domain.Event{}).
			Where("id = ?", eventID).
			Update("status", derived).Error
		if err != nil {
			return "", err
		}
		return derived, nil
	}

	// No shift maps to an event status; leave the event as it is
	return event.Status, nil
}
