package get_available_slots

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
)

// resolveShift вычисляет эффективную смену мастера на дату
//
// Порядок разрешения:
// 1. Разовое правило на конкретную дату, если есть - оно перекрывает еженедельное
// 2. Иначе еженедельное правило на день недели даты
// 3. Иначе смены нет: возвращается интервал нулевой ширины, привязанный
//    к открытию салона (start == end == salonOpen.Start)
//
// Отсутствие правила НЕ означает "работает по часам салона" - мастер без правила
// недоступен весь день. Интервал нулевой ширины - это сигнал "нет смены",
// а не ошибка: вызывающий код обязан различать эти случаи
//
// Пустые границы правила (nil start/end) дозаполняются из часов работы салона пополево:
// nil start -> открытие салона, nil end -> закрытие салона
func resolveShift(rules []*domain.AvailabilityRule, staffID int64, date time.Time, salonOpen domain.Interval) domain.Interval {
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
		// Нет ни одного правила - смены нет
		return domain.Interval{Start: salonOpen.Start, End: salonOpen.Start}
	}

	shift := domain.Interval{Start: salonOpen.Start, End: salonOpen.End}
	if effective.StartTime != nil {
		shift.Start = *effective.StartTime
	}
	if effective.EndTime != nil {
		shift.End = *effective.EndTime
	}

	// Правило с перепутанными границами трактуется как отсутствие смены
	if shift.End.IsBefore(shift.Start) {
		return domain.Interval{Start: salonOpen.Start, End: salonOpen.Start}
	}

	return shift
}
