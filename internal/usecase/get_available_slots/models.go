package get_available_slots

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
)

// Reason машинно-читаемая причина пустого списка слотов
// Отличает "в этот день салон закрыт" и "не хватает мастеров" от "всё занято" -
// это продуктовое требование к пользовательским сообщениям
type Reason string

const (
	// ReasonNone слоты вычислялись штатно (список может быть пустым, если всё занято)
	ReasonNone Reason = ""

	// ReasonClosed салон закрыт в запрошенный день недели
	ReasonClosed Reason = "closed"

	// ReasonInsufficientStaff подходящих мастеров меньше, чем требует услуга
	ReasonInsufficientStaff Reason = "insufficient_staff"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID          int64     // ID услуги (обязательный)
	Date               time.Time // Дата для получения слотов (без времени)
	SalonID            *int64    // ID салона (опционально, сверяется с салоном услуги)
	StaffIDs           []int64   // Allow-list мастеров (опционально, пустой = все мастера салона)
	IncludeDiagnostics bool      // Включить ли диагностику по каждому кандидату
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ServiceID     int64                    // ID услуги
	SalonID       int64                    // ID салона услуги
	Date          time.Time                // Дата, на которую запрашивались слоты
	RequiredStaff int                      // Сколько мастеров одновременно требует услуга
	Slots         []domain.AvailableSlot   // Список доступных слотов
	Reason        Reason                   // Причина пустого списка (если применимо)
	Diagnostics   []domain.SlotDiagnostics // Диагностика по кандидатам (только при IncludeDiagnostics)
}
