package create_appointment

import (
	"time"

	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	SalonID     *int64           // ID салона (опционально, сверяется с салоном услуги)
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	StaffIDs    []int64          // Явный выбор мастеров (опционально; пустой = автоподбор)
	ClientPhone *string          // Телефон для SMS-подтверждения (опционально)
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	SalonID         int64            // ID салона
	ServiceID       int64            // ID услуги
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	StaffIDs        []int64          // Назначенные мастера
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
