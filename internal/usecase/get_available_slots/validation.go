package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SalonID != nil && *req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	for _, staffID := range req.StaffIDs {
		if staffID <= 0 {
			return fmt.Errorf("%w: staffIDs must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// validateService проверяет параметры услуги из каталога
func validateService(service *catalogservice.Service) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service id=%d has non-positive duration", ErrInvalidServiceConfig, service.ID)
	}
	if service.RequiredStaffCount < 0 || service.RequiredStaffCount > domain.MaxRequiredStaffCount {
		return fmt.Errorf("%w: service id=%d has invalid required staff count %d",
			ErrInvalidServiceConfig, service.ID, service.RequiredStaffCount)
	}
	return nil
}

// requiredStaffCount возвращает требуемое число мастеров услуги (минимум 1)
func requiredStaffCount(service *catalogservice.Service) int {
	if service.RequiredStaffCount < domain.MinRequiredStaffCount {
		return domain.DefaultRequiredStaffCount
	}
	return service.RequiredStaffCount
}

// weekdayKey возвращает ключ дня недели в формате каталога ("monday"..."sunday")
func weekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// parseOpeningInterval парсит часы работы салона в интервал
// Некорректные данные каталога - ошибка, а не тихий дефолт
func parseOpeningInterval(hours catalogservice.DayHours) (domain.Interval, error) {
	open, err := types.NewTimeStringFromString(hours.Open)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: open time %q: %v", ErrInvalidSalonHours, hours.Open, err)
	}

	closeTime, err := types.NewTimeStringFromString(hours.Close)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: close time %q: %v", ErrInvalidSalonHours, hours.Close, err)
	}

	if !open.IsBefore(closeTime) {
		return domain.Interval{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidSalonHours, open, closeTime)
	}

	return domain.Interval{Start: open, End: closeTime}, nil
}

// slotStepMinutes возвращает шаг сетки кандидатов салона (или дефолтный)
func slotStepMinutes(salon *catalogservice.Salon) int {
	if salon.SlotStepMinutes <= 0 {
		return domain.DefaultSlotStepMinutes
	}
	return salon.SlotStepMinutes
}
