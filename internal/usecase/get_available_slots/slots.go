package get_available_slots

import "github.com/m04kA/SPA-AvailabilityService/internal/domain"

// generateCandidates генерирует сетку кандидатов на день
//
// Кандидаты - полуоткрытые интервалы длиной durationMinutes, начиная с открытия
// салона с шагом stepMinutes. Последний кандидат обязан целиком помещаться
// в часы работы: как только конец кандидата выходит за закрытие, генерация
// останавливается (хвостовые неполные слоты исключаются)
//
// Если услуга длиннее всего рабочего дня, сетка пуста
// Детерминированно: одинаковый вход дает одинаковую последовательность
func generateCandidates(salonOpen domain.Interval, durationMinutes, stepMinutes int) ([]domain.Interval, error) {
	candidates := make([]domain.Interval, 0)

	if durationMinutes <= 0 || stepMinutes <= 0 || salonOpen.IsZeroWidth() {
		return candidates, nil
	}

	start := salonOpen.Start
	for {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			// Конец кандидата вышел за границы суток
			break
		}
		if end.IsAfter(salonOpen.End) {
			break
		}

		candidates = append(candidates, domain.Interval{Start: start, End: end})

		next, err := start.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		start = next
	}

	return candidates, nil
}
