package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBySalonWithFilter получает записи салона (для движка - только блокирующие статусы)
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	// ListEligibleBySalon получает активных сотрудников салона с подходящими ролями
	ListEligibleBySalon(ctx context.Context, salonID int64, staffIDs []int64) ([]*domain.Staff, error)
}

// AvailabilityRuleRepository интерфейс репозитория правил доступности
type AvailabilityRuleRepository interface {
	// ListForDate получает правила, действующие на дату (еженедельные + разовые)
	ListForDate(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.AvailabilityRule, error)
}

// CatalogClient интерфейс клиента каталога салонов и услуг
type CatalogClient interface {
	GetSalon(ctx context.Context, salonID int64) (*catalogservice.Salon, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
