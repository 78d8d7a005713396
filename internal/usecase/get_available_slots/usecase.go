package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	catalogClient "github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
)

// UseCase use case для вычисления доступных слотов услуги
//
// Движок считает слоты заново на каждый запрос по свежему снимку данных:
// никакого кеша и разделяемого состояния между вызовами нет
// Движок только ПРЕДЛАГАЕТ слоты - защита от одновременного бронирования
// одного слота живет в usecase создания записи (сериализуемая транзакция)
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	ruleRepo        AvailabilityRuleRepository
	catalog         CatalogClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	ruleRepo AvailabilityRuleRepository,
	catalog CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		ruleRepo:        ruleRepo,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, staff_filter=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StaffIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service); err != nil {
		uc.logger.Error("GetAvailableSlots: catalog returned invalid service: %v", err)
		return nil, err
	}

	// 3. Сверяем салон, если он передан явно
	if req.SalonID != nil && *req.SalonID != service.SalonID {
		uc.logger.Warn("GetAvailableSlots: service id=%d belongs to salon=%d, requested salon=%d",
			req.ServiceID, service.SalonID, *req.SalonID)
		return nil, ErrServiceNotInSalon
	}

	// 4. Получаем салон
	salon, err := uc.catalog.GetSalon(ctx, service.SalonID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", service.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", service.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	required := requiredStaffCount(service)

	// 5. Часы работы на день недели: нет записи - салон закрыт, это не ошибка
	hours, open := salon.HoursForWeekday(weekdayKey(req.Date))
	if !open {
		uc.logger.Info("GetAvailableSlots: salon id=%d is closed on %s", salon.ID, weekdayKey(req.Date))
		return uc.emptyResponse(req, service, required, ReasonClosed), nil
	}

	salonOpen, err := parseOpeningInterval(hours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: salon id=%d has malformed opening hours: %v", salon.ID, err)
		return nil, err
	}

	// 6. Подходящие мастера (активные, с ролью исполнителя, с учетом allow-list)
	staff, err := uc.staffRepo.ListEligibleBySalon(ctx, salon.ID, req.StaffIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff for salon=%d: %v", salon.ID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	// Мастеров меньше, чем требует услуга - слотов не будет, считать нечего
	// Причина отличается от "закрыто" и от "всё занято"
	if len(staff) < required {
		uc.logger.Info("GetAvailableSlots: not enough eligible staff for service=%d: have %d, need %d",
			req.ServiceID, len(staff), required)
		return uc.emptyResponse(req, service, required, ReasonInsufficientStaff), nil
	}

	staffIDs := make([]int64, len(staff))
	for i, s := range staff {
		staffIDs[i] = s.ID
	}

	// 7. Правила доступности на дату
	rules, err := uc.ruleRepo.ListForDate(ctx, staffIDs, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
	}

	// 8. Блокирующие записи салона на дату (основные исполнители + назначения)
	filter := domain.SalonAppointmentsFilter{
		SalonID:      salon.ID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
		OnlyBlocking: true,
	}

	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Смена и занятость каждого мастера
	availability := make([]staffAvailability, len(staff))
	for i, s := range staff {
		availability[i] = staffAvailability{
			staffID: s.ID,
			shift:   resolveShift(rules, s.ID, req.Date, salonOpen),
			busy:    collectBusyIntervals(appointments, s.ID),
		}
	}

	// 10. Сетка кандидатов и отбор слотов
	candidates, err := generateCandidates(salonOpen, service.DurationMinutes, slotStepMinutes(salon))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	slots, diagnostics := resolveAvailableSlots(candidates, availability, required, req.IncludeDiagnostics)

	uc.logger.Info("GetAvailableSlots: service=%d, date=%s: %d of %d candidates available",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(slots), len(candidates))

	return &Response{
		ServiceID:     service.ID,
		SalonID:       salon.ID,
		Date:          req.Date,
		RequiredStaff: required,
		Slots:         slots,
		Reason:        ReasonNone,
		Diagnostics:   diagnostics,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, service *catalogClient.Service, required int, reason Reason) *Response {
	return &Response{
		ServiceID:     service.ID,
		SalonID:       service.SalonID,
		Date:          req.Date,
		RequiredStaff: required,
		Slots:         []domain.AvailableSlot{},
		Reason:        reason,
	}
}
