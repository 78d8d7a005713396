package get_salon_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
// Поддерживаемые query параметры: staffId, startDate, endDate, status, includeInactive
func ToServiceRequest(salonID, userID int64, query url.Values) (*models.GetSalonAppointmentsRequest, error) {
	req := &models.GetSalonAppointmentsRequest{
		UserID:  userID,
		SalonID: salonID,
	}

	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
