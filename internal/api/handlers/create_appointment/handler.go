package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPA-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SPA-AvailabilityService/internal/api/middleware"
	createAppointment "github.com/m04kA/SPA-AvailabilityService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized        = "пользователь не аутентифицирован"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable    = "выбранный временной слот недоступен"
	msgStaffNotAvailable   = "выбранный мастер недоступен в это время"
	msgStaffNotFound       = "мастер не найден"
	msgSalonNotFound       = "салон не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotInSalon   = "услуга недоступна в выбранном салоне"
	msgSalonClosed         = "салон закрыт в выбранную дату"
	msgOutsideWorkingHours = "слот выходит за часы работы салона"
	msgInvalidDate         = "некорректная дата записи"
	msgDateTooFar          = "дата записи слишком далеко в будущем"
	msgTooLateToBook       = "слишком поздно для записи на это время"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrStaffNotAvailable):
			h.logger.Warn("POST /appointments - Staff not available: client_id=%d, staff=%v", clientID, req.StaffIDs)
			handlers.RespondError(w, http.StatusConflict, msgStaffNotAvailable)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: client_id=%d, staff=%v", clientID, req.StaffIDs)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotInSalon):
			h.logger.Warn("POST /appointments - Service not in salon: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotInSalon)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: client_id=%d, date=%s", clientID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: client_id=%d, time=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", clientID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: client_id=%d, date=%s", clientID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: client_id=%d, time=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, service_id=%d, error=%v",
				clientID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, staff=%v",
		result.ID, clientID, result.StaffIDs)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
