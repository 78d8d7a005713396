package get_salon_appointments

import (
	"context"

	"github.com/m04kA/SPA-AvailabilityService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetSalonAppointments(ctx context.Context, req *models.GetSalonAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
