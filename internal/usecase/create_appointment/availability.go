package create_appointment

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
)

// resolveStaffShift вычисляет эффективную смену мастера на дату
// Разовое правило перекрывает еженедельное; отсутствие правил - смены нет
// (интервал нулевой ширины); пустые границы дозаполняются часами салона
func resolveStaffShift(rules []*domain.AvailabilityRule, staffID int64, date time.Time, salonOpen domain.Interval) domain.Interval {
	var recurring, specific *domain.AvailabilityRule

	for _, rule := range rules {
		if rule.StaffID != staffID || !rule.MatchesDate(date) {
			continue
		}
		switch rule.RuleType {
		case domain.RuleSpecificDate:
			if specific == nil {
				specific = rule
			}
		case domain.RuleRecurring:
			if recurring == nil {
				recurring = rule
			}
		}
	}

	effective := specific
	if effective == nil {
		effective = recurring
	}
	if effective == nil {
		return domain.Interval{Start: salonOpen.Start, End: salonOpen.Start}
	}

	shift := domain.Interval{Start: salonOpen.Start, End: salonOpen.End}
	if effective.StartTime != nil {
		shift.Start = *effective.StartTime
	}
	if effective.EndTime != nil {
		shift.End = *effective.EndTime
	}

	if shift.End.IsBefore(shift.Start) {
		return domain.Interval{Start: salonOpen.Start, End: salonOpen.Start}
	}

	return shift
}

// isStaffFree проверяет, что слот целиком лежит в смене мастера
// и не пересекается ни с одной его блокирующей записью
func isStaffFree(slot, shift domain.Interval, appointments []*domain.Appointment, staffID int64) bool {
	if !shift.Contains(slot) {
		return false
	}

	for _, appt := range appointments {
		if !appt.IsBlocking() || !appt.InvolvesStaff(staffID) {
			continue
		}
		interval, err := appt.Interval()
		if err != nil {
			continue
		}
		if slot.Overlaps(interval) {
			return false
		}
	}

	return true
}
