package domain

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// AppointmentStatus статус записи на услугу
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusBlocked   AppointmentStatus = "blocked" // служебная блокировка слота (перерыв, уборка кабинета)
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment запись на услугу в салоне
// Поддерживает два способа привязки мастеров:
// - StaffID - единственный мастер (одиночные записи)
// - AssignedStaffIDs - несколько мастеров через таблицу назначений (парные услуги)
// Запись может иметь оба способа одновременно, если исторически создана по старой схеме
type Appointment struct {
	ID              int64
	SalonID         int64
	ServiceID       int64
	ClientID        int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Основной мастер (nil для записей, созданных только через назначения)
	StaffID *int64

	// Мастера, назначенные через таблицу appointment_staff
	AssignedStaffIDs []int64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking возвращает true, если запись занимает время мастера
// Отмененные записи и неявки время не занимают
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending ||
		a.Status == StatusConfirmed ||
		a.Status == StatusBlocked
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// InvolvesStaff возвращает true, если мастер участвует в записи
// как основной исполнитель или через назначение
func (a *Appointment) InvolvesStaff(staffID int64) bool {
	if a.StaffID != nil && *a.StaffID == staffID {
		return true
	}
	for _, id := range a.AssignedStaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// Interval возвращает временной интервал записи [start, end)
func (a *Appointment) Interval() (Interval, error) {
	end, err := a.StartTime.AddMinutes(a.DurationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: a.StartTime, End: end}, nil
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID         int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по мастеру (основной или назначенный)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и неявки
	OnlyBlocking    bool               // Только записи, занимающие время мастеров
}
