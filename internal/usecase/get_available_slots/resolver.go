package get_available_slots

import "github.com/m04kA/SPA-AvailabilityService/internal/domain"

// staffAvailability предрассчитанные данные одного мастера на день
type staffAvailability struct {
	staffID int64
	shift   domain.Interval
	busy    []domain.Interval
}

// resolveAvailableSlots проверяет каждого кандидата против смен и занятости мастеров
//
// Мастер свободен в кандидате, если кандидат целиком лежит внутри его смены
// (смена нулевой ширины не содержит ничего) И не пересекается ни с одной его записью
// Кандидат становится слотом, только если свободных мастеров не меньше required;
// частичные слоты не выдаются. Порядок слотов повторяет порядок кандидатов
// (строго возрастающие начала), порядок мастеров в слоте - порядок списка staff
//
// При withDiagnostics дополнительно возвращается статус каждого мастера
// по каждому кандидату, включая отклоненных
func resolveAvailableSlots(
	candidates []domain.Interval,
	staff []staffAvailability,
	required int,
	withDiagnostics bool,
) ([]domain.AvailableSlot, []domain.SlotDiagnostics) {
	slots := make([]domain.AvailableSlot, 0, len(candidates))

	var diagnostics []domain.SlotDiagnostics
	if withDiagnostics {
		diagnostics = make([]domain.SlotDiagnostics, 0, len(candidates))
	}

	for _, candidate := range candidates {
		available := make([]int64, 0, len(staff))

		var slotDiag domain.SlotDiagnostics
		if withDiagnostics {
			slotDiag = domain.SlotDiagnostics{
				StartTime: candidate.Start,
				Staff:     make([]domain.StaffSlotStatus, 0, len(staff)),
			}
		}

		for _, sa := range staff {
			status := domain.StaffSlotStatus{StaffID: sa.staffID}

			switch {
			case !sa.shift.Contains(candidate):
				status.State = domain.StaffOutsideShift
			case overlapsAny(candidate, sa.busy):
				status.State = domain.StaffBusy
				if until, ok := busyUntil(candidate, sa.busy); ok {
					status.BusyUntil = &until
				}
			default:
				status.State = domain.StaffAvailable
				available = append(available, sa.staffID)
			}

			if withDiagnostics {
				slotDiag.Staff = append(slotDiag.Staff, status)
			}
		}

		if withDiagnostics {
			diagnostics = append(diagnostics, slotDiag)
		}

		if len(available) >= required {
			slots = append(slots, domain.AvailableSlot{
				StartTime:         candidate.Start,
				EndTime:           candidate.End,
				AvailableStaffIDs: available,
			})
		}
	}

	return slots, diagnostics
}
