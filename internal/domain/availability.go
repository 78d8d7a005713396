package domain

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// RuleType тип правила доступности мастера
type RuleType string

const (
	// RuleRecurring еженедельное правило, привязанное к дню недели
	RuleRecurring RuleType = "recurring"

	// RuleSpecificDate правило на конкретную дату, перекрывает еженедельное
	RuleSpecificDate RuleType = "specific_date"
)

// AvailabilityRule правило доступности мастера
// Либо еженедельное (Weekday задан), либо на конкретную дату (SpecificDate задана)
// StartTime/EndTime могут быть nil - тогда соответствующая граница
// берется из часов работы салона
type AvailabilityRule struct {
	ID           int64
	StaffID      int64
	RuleType     RuleType
	Weekday      *int       // 0-6, воскресенье = 0 (только для recurring)
	SpecificDate *time.Time // только для specific_date
	StartTime    *types.TimeString
	EndTime      *types.TimeString
}

// MatchesDate возвращает true, если правило действует на указанную дату
func (r *AvailabilityRule) MatchesDate(date time.Time) bool {
	switch r.RuleType {
	case RuleSpecificDate:
		if r.SpecificDate == nil {
			return false
		}
		return sameDate(*r.SpecificDate, date)
	case RuleRecurring:
		if r.Weekday == nil {
			return false
		}
		// time.Weekday: воскресенье = 0, совпадает с нумерацией правил
		return int(date.Weekday()) == *r.Weekday
	default:
		return false
	}
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
