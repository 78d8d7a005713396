package get_client_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SPA-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SPA-AvailabilityService/internal/service/appointments"
	"github.com/m04kA/SPA-AvailabilityService/internal/service/appointments/models"
)

const (
	msgUnauthorized    = "пользователь не аутентифицирован"
	msgInvalidClientID = "некорректный ID клиента"
	msgForbidden       = "доступ запрещен"
	msgInvalidStatus   = "некорректный статус записи"
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

// Handle GET /api/v1/clients/{clientId}/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Клиент видит только свою историю
	if clientID != userID {
		h.logger.Warn("GET /clients/{id}/appointments - Access denied: client_id=%d, user_id=%d", clientID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetClientAppointmentsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/appointments - Invalid status: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{id}/appointments - Failed to get appointments: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/appointments - Appointments retrieved successfully: client_id=%d, count=%d",
		clientID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
