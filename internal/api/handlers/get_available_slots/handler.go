package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SPA-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSalonID    = "некорректный ID салона"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingServiceID  = "ID услуги обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidParams     = "некорректные параметры запроса"
	msgSalonNotFound     = "салон не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotInSalon = "услуга недоступна в выбранном салоне"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// staffIds (optional, "1,2,3"), debug (optional, подробная диагностика)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonIDStr := vars["salonId"]
	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salons/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	debug := r.URL.Query().Get("debug") == "true"

	useCaseReq, err := ToUseCaseRequest(salonID, serviceID, dateStr, r.URL.Query().Get("staffIds"), debug)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/available-slots - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/available-slots - Service not found: salon_id=%d, service_id=%d",
				salonID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotInSalon):
			h.logger.Warn("GET /salons/{id}/available-slots - Service not in salon: salon_id=%d, service_id=%d",
				salonID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotInSalon)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/available-slots - Failed to get slots: salon_id=%d, service_id=%d, error=%v",
				salonID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/available-slots - Slots retrieved successfully: salon_id=%d, service_id=%d, slots_count=%d",
		salonID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
