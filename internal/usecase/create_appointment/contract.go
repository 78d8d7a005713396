package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/smsgateway"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	AssignStaff(ctx context.Context, appointmentID int64, staffIDs []int64) error
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListEligibleBySalon(ctx context.Context, salonID int64, staffIDs []int64) ([]*domain.Staff, error)
}

// AvailabilityRuleRepository интерфейс репозитория правил доступности
type AvailabilityRuleRepository interface {
	ListForDate(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.AvailabilityRule, error)
}

// CatalogClient интерфейс клиента каталога салонов и услуг
type CatalogClient interface {
	GetSalon(ctx context.Context, salonID int64) (*catalogservice.Salon, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SMSSender интерфейс отправки SMS-уведомлений (может быть nil, если SMS выключены)
type SMSSender interface {
	Send(ctx context.Context, msg smsgateway.Message) error
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
