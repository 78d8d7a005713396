package domain

// Значения по умолчанию
const (
	DefaultSlotStepMinutes    = 15 // шаг сетки кандидатов, если салон не задал свой
	DefaultRequiredStaffCount = 1
)

// Бизнес-ограничения
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MinRequiredStaffCount     = 1
	MaxRequiredStaffCount     = 10
	MaxNotesLength            = 500
	MaxCancelReasonLength     = 500
	MaxAdvanceBookingDays     = 180 // горизонт записи наперед
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, при которых запись занимает время мастера
// Используется при сборе занятых интервалов
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusBlocked,
}

// InactiveStatuses статусы записей, не занимающих время мастера
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// EligibleRoles роли сотрудников, которые могут выполнять услуги
var EligibleRoles = []StaffRole{
	RoleTherapist,
	RoleManager,
	RoleAdmin,
}
