package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/pkg/ptr"
)

func appt(id int64, status domain.AppointmentStatus, start string, duration int, primary *int64, assigned ...int64) *domain.Appointment {
	return &domain.Appointment{
		ID:               id,
		SalonID:          1,
		ServiceID:        1,
		ClientID:         100,
		AppointmentDate:  testDate,
		StartTime:        ts(start),
		DurationMinutes:  duration,
		Status:           status,
		StaffID:          primary,
		AssignedStaffIDs: assigned,
	}
}

func TestCollectBusyIntervals_PrimaryStaff(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(7))),
	}

	busy := collectBusyIntervals(appointments, 7)

	assert.Len(t, busy, 1)
	assert.Equal(t, ts("10:00"), busy[0].Start)
	assert.Equal(t, ts("11:00"), busy[0].End)
}

func TestCollectBusyIntervals_AssignedStaff(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(5)), 7, 8),
	}

	busy := collectBusyIntervals(appointments, 7)

	assert.Len(t, busy, 1)
}

func TestCollectBusyIntervals_OtherStaff_NotBusy(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(5)), 8),
	}

	busy := collectBusyIntervals(appointments, 7)

	assert.Empty(t, busy)
}

func TestCollectBusyIntervals_BlockingStatuses(t *testing.T) {
	tests := []struct {
		status   domain.AppointmentStatus
		blocking bool
	}{
		{domain.StatusPending, true},
		{domain.StatusConfirmed, true},
		{domain.StatusBlocked, true},
		{domain.StatusCompleted, false},
		{domain.StatusCancelled, false},
		{domain.StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appointments := []*domain.Appointment{
				appt(1, tt.status, "10:00", 60, ptr.Ptr(int64(7))),
			}

			busy := collectBusyIntervals(appointments, 7)

			if tt.blocking {
				assert.Len(t, busy, 1)
			} else {
				assert.Empty(t, busy)
			}
		})
	}
}

func TestCollectBusyIntervals_DeduplicatesPrimaryAndAssigned(t *testing.T) {
	// Мастер и основной исполнитель, и в списке назначений - интервал один
	appointments := []*domain.Appointment{
		appt(1, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(7)), 7, 8),
	}

	busy := collectBusyIntervals(appointments, 7)

	assert.Len(t, busy, 1)
}

func TestCollectBusyIntervals_SkipsInvalidInterval(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, domain.StatusConfirmed, "23:30", 90, ptr.Ptr(int64(7))), // выходит за границы суток
		appt(2, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(7))),
	}

	busy := collectBusyIntervals(appointments, 7)

	assert.Len(t, busy, 1)
	assert.Equal(t, ts("10:00"), busy[0].Start)
}

func TestOverlapsAny(t *testing.T) {
	busy := []domain.Interval{
		{Start: ts("10:00"), End: ts("11:00")},
		{Start: ts("14:00"), End: ts("15:00")},
	}

	assert.True(t, overlapsAny(domain.Interval{Start: ts("10:30"), End: ts("11:30")}, busy))
	assert.False(t, overlapsAny(domain.Interval{Start: ts("11:00"), End: ts("12:00")}, busy)) // касание границ
	assert.False(t, overlapsAny(domain.Interval{Start: ts("12:00"), End: ts("13:00")}, busy))
	assert.False(t, overlapsAny(domain.Interval{Start: ts("12:00"), End: ts("13:00")}, nil))
}

func TestBusyUntil(t *testing.T) {
	busy := []domain.Interval{
		{Start: ts("10:00"), End: ts("11:00")},
		{Start: ts("10:30"), End: ts("12:00")},
		{Start: ts("14:00"), End: ts("15:00")},
	}

	until, ok := busyUntil(domain.Interval{Start: ts("10:00"), End: ts("11:00")}, busy)

	assert.True(t, ok)
	assert.Equal(t, ts("12:00"), until) // самый поздний конец среди пересекающихся

	_, ok = busyUntil(domain.Interval{Start: ts("12:00"), End: ts("13:00")}, busy)
	assert.False(t, ok)
}
