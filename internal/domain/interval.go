package domain

import "github.com/m04kA/SPA-AvailabilityService/pkg/types"

// Interval полуоткрытый временной интервал [Start, End) в рамках одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// IsZeroWidth возвращает true для интервала нулевой длины (Start == End)
// Такой интервал означает "смены нет" и не содержит ни одного кандидата
func (i Interval) IsZeroWidth() bool {
	return i.Start.Equal(i.End)
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Граничащие интервалы (конец одного равен началу другого) пересечением НЕ считаются:
// занято [10:00, 11:00) и кандидат [11:00, 12:00) совместимы
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains возвращает true, если other целиком лежит внутри i
// Для интервала нулевой ширины всегда false
func (i Interval) Contains(other Interval) bool {
	if i.IsZeroWidth() {
		return false
	}
	return !other.Start.IsBefore(i.Start) && !other.End.IsAfter(i.End)
}
