package get_salon_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SPA-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SPA-AvailabilityService/internal/service/appointments"
)

const (
	msgUnauthorized   = "пользователь не аутентифицирован"
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidParams  = "некорректные параметры запроса"
	msgSalonNotFound  = "салон не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/appointments
// Query params: staffId, startDate, endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/appointments - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	req, err := ToServiceRequest(salonID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /salons/{id}/appointments - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetSalonAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/appointments - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /salons/{id}/appointments - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/appointments - Invalid filter: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/appointments - Failed to get appointments: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/appointments - Appointments retrieved successfully: salon_id=%d, count=%d",
		salonID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
