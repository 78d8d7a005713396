package create_appointment

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
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.SalonID != nil && *req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if _, err := req.StartTime.TotalMinutes(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	seen := make(map[int64]struct{}, len(req.StaffIDs))
	for _, staffID := range req.StaffIDs {
		if staffID <= 0 {
			return fmt.Errorf("%w: staffIDs must be positive", ErrInvalidInput)
		}
		if _, ok := seen[staffID]; ok {
			return fmt.Errorf("%w: duplicate staff id=%d", ErrInvalidInput, staffID)
		}
		seen[staffID] = struct{}{}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта записи
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if dateOnly.After(nowOnly.AddDate(0, 0, domain.MaxAdvanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// validateStartTime отклоняет запись на уже прошедшее время сегодняшнего дня
func validateStartTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// validateService проверяет параметры услуги из каталога
func validateService(service *catalogservice.Service) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service id=%d has non-positive duration", ErrInternal, service.ID)
	}
	if service.RequiredStaffCount < 0 || service.RequiredStaffCount > domain.MaxRequiredStaffCount {
		return fmt.Errorf("%w: service id=%d has invalid required staff count %d",
			ErrInternal, service.ID, service.RequiredStaffCount)
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
func parseOpeningInterval(hours catalogservice.DayHours) (domain.Interval, error) {
	open, err := types.NewTimeStringFromString(hours.Open)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: malformed salon open time %q: %v", ErrInternal, hours.Open, err)
	}

	closeTime, err := types.NewTimeStringFromString(hours.Close)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: malformed salon close time %q: %v", ErrInternal, hours.Close, err)
	}

	if !open.IsBefore(closeTime) {
		return domain.Interval{}, fmt.Errorf("%w: salon open %s is not before close %s", ErrInternal, open, closeTime)
	}

	return domain.Interval{Start: open, End: closeTime}, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
