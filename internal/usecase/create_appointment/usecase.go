package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	catalogClient "github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/smsgateway"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	ruleRepo        AvailabilityRuleRepository
	catalog         CatalogClient
	txManager       TransactionManager
	smsSender       SMSSender // может быть nil
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	ruleRepo AvailabilityRuleRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	smsSender SMSSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		ruleRepo:        ruleRepo,
		catalog:         catalog,
		txManager:       txManager,
		smsSender:       smsSender,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка идут в одной сериализуемой транзакции
// с блокировкой записей дня (FOR UPDATE) - две конкурирующие записи
// на один слот не могут пройти одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, date=%s, time=%s, staff=%v",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.StaffIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты и времени относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}
	if err := validateStartTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу из каталога
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(service); err != nil {
		uc.logger.Error("CreateAppointment: catalog returned invalid service: %v", err)
		return nil, err
	}

	// 4. Сверяем салон, если он передан явно
	if req.SalonID != nil && *req.SalonID != service.SalonID {
		uc.logger.Warn("CreateAppointment: service id=%d belongs to salon=%d, requested salon=%d",
			req.ServiceID, service.SalonID, *req.SalonID)
		return nil, ErrServiceNotInSalon
	}

	// 5. Получаем салон
	salon, err := uc.catalog.GetSalon(ctx, service.SalonID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", service.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", service.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	required := requiredStaffCount(service)

	// Явный выбор мастеров должен точно покрывать требование услуги
	if len(req.StaffIDs) > 0 && len(req.StaffIDs) != required {
		uc.logger.Warn("CreateAppointment: service id=%d requires %d staff, got %d",
			req.ServiceID, required, len(req.StaffIDs))
		return nil, fmt.Errorf("%w: service requires exactly %d staff members", ErrInvalidInput, required)
	}

	// 6. Часы работы салона на день записи
	hours, open := salon.HoursForWeekday(weekdayKey(req.Date))
	if !open {
		uc.logger.Warn("CreateAppointment: salon id=%d is closed on %s", salon.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	salonOpen, err := parseOpeningInterval(hours)
	if err != nil {
		uc.logger.Error("CreateAppointment: salon id=%d has malformed opening hours: %v", salon.ID, err)
		return nil, err
	}

	// 7. Слот должен целиком помещаться в часы работы
	slotEnd, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: slot end overflows the day: %v", err)
		return nil, ErrOutsideWorkingHours
	}

	slot := domain.Interval{Start: req.StartTime, End: slotEnd}
	if !salonOpen.Contains(slot) {
		uc.logger.Warn("CreateAppointment: slot %s-%s is outside salon hours %s-%s",
			slot.Start, slot.End, salonOpen.Start, salonOpen.End)
		return nil, ErrOutsideWorkingHours
	}

	// 8. Подходящие мастера (с учетом явного выбора)
	staff, err := uc.staffRepo.ListEligibleBySalon(ctx, salon.ID, req.StaffIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list staff for salon=%d: %v", salon.ID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	if len(req.StaffIDs) > 0 && len(staff) != len(req.StaffIDs) {
		uc.logger.Warn("CreateAppointment: some of requested staff %v not found or not eligible", req.StaffIDs)
		return nil, ErrStaffNotFound
	}

	if len(staff) < required {
		uc.logger.Warn("CreateAppointment: not enough eligible staff: have %d, need %d", len(staff), required)
		return nil, ErrSlotNotAvailable
	}

	staffIDs := make([]int64, len(staff))
	for i, s := range staff {
		staffIDs[i] = s.ID
	}

	// 9. Правила доступности на дату
	rules, err := uc.ruleRepo.ListForDate(ctx, staffIDs, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
	}

	var result *domain.Appointment
	var assigned []int64

	// 10. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Записи дня с блокировкой строк (FOR UPDATE)
		filter := domain.SalonAppointmentsFilter{
			SalonID:      salon.ID,
			StartDate:    &req.Date,
			EndDate:      &req.Date,
			OnlyBlocking: true,
		}

		appointments, err := uc.appointmentRepo.GetBySalonWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 10.2. Свободные мастера на запрошенный слот (порядок репозитория, id ASC)
		free := make([]int64, 0, len(staff))
		for _, s := range staff {
			shift := resolveStaffShift(rules, s.ID, req.Date, salonOpen)
			if isStaffFree(slot, shift, appointments, s.ID) {
				free = append(free, s.ID)
			}
		}

		// 10.3. Выбор мастеров: явный список целиком или автоподбор первых required
		if len(req.StaffIDs) > 0 {
			freeSet := make(map[int64]struct{}, len(free))
			for _, id := range free {
				freeSet[id] = struct{}{}
			}
			for _, id := range req.StaffIDs {
				if _, ok := freeSet[id]; !ok {
					uc.logger.Warn("CreateAppointment: staff id=%d is not available at %s", id, req.StartTime)
					return ErrStaffNotAvailable
				}
			}
			assigned = req.StaffIDs
		} else {
			if len(free) < required {
				uc.logger.Warn("CreateAppointment: slot %s not available, free staff %d/%d",
					req.StartTime, len(free), required)
				return ErrSlotNotAvailable
			}
			assigned = free[:required]
		}

		// 10.4. Создаем запись: первый мастер - основной, остальные через назначения
		appt := &domain.Appointment{
			SalonID:         salon.ID,
			ServiceID:       service.ID,
			ClientID:        req.ClientID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusConfirmed,
			StaffID:         &assigned[0],
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.AssignStaff(txCtx, created.ID, assigned); err != nil {
			uc.logger.Error("CreateAppointment: failed to assign staff: %v", err)
			return fmt.Errorf("%w: failed to assign staff: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, staff=%v", result.ID, assigned)

	// 11. SMS-подтверждение после коммита: отказ доставки не откатывает запись
	uc.notifyClient(req, service, result)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		SalonID:         result.SalonID,
		ServiceID:       result.ServiceID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		StaffIDs:        assigned,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// notifyClient отправляет SMS-подтверждение в фоне
// Повторы и failover живут внутри отправителя и могут занимать десятки секунд,
// поэтому запрос их не ждет
func (uc *UseCase) notifyClient(req *Request, service *catalogClient.Service, appt *domain.Appointment) {
	if uc.smsSender == nil || req.ClientPhone == nil || *req.ClientPhone == "" {
		return
	}

	msg := smsgateway.Message{
		Phone: *req.ClientPhone,
		Text: fmt.Sprintf("Вы записаны: %s, %s в %s",
			service.Name, appt.AppointmentDate.Format(domain.DateFormat), appt.StartTime),
	}

	go func() {
		if err := uc.smsSender.Send(context.Background(), msg); err != nil {
			uc.logger.Error("CreateAppointment: SMS confirmation for appointment id=%d failed: %v", appt.ID, err)
		}
	}()
}
