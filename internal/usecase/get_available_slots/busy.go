package get_available_slots

import (
	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// collectBusyIntervals собирает занятые интервалы мастера из списка записей дня
//
// Мастер занят записью, если участвует в ней как основной исполнитель
// ИЛИ через назначение, и запись в блокирующем статусе (pending/confirmed/blocked)
// Запись, достижимая обоими путями, учитывается один раз (дедупликация по ID)
// Записи с некорректным временем пропускаются
func collectBusyIntervals(appointments []*domain.Appointment, staffID int64) []domain.Interval {
	busy := make([]domain.Interval, 0)
	seen := make(map[int64]struct{}, len(appointments))

	for _, appt := range appointments {
		if !appt.IsBlocking() || !appt.InvolvesStaff(staffID) {
			continue
		}
		if _, ok := seen[appt.ID]; ok {
			continue
		}
		seen[appt.ID] = struct{}{}

		interval, err := appt.Interval()
		if err != nil {
			continue
		}
		busy = append(busy, interval)
	}

	return busy
}

// overlapsAny возвращает true, если кандидат пересекается хотя бы с одним занятым интервалом
func overlapsAny(candidate domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// busyUntil возвращает самый поздний конец среди занятых интервалов,
// пересекающихся с кандидатом (для диагностики "занят до HH:MM")
// Второе значение false, если пересечений нет
func busyUntil(candidate domain.Interval, busy []domain.Interval) (types.TimeString, bool) {
	var latest types.TimeString
	found := false

	for _, b := range busy {
		if !candidate.Overlaps(b) {
			continue
		}
		if !found || b.End.IsAfter(latest) {
			latest = b.End
		}
		found = true
	}

	return latest, found
}
