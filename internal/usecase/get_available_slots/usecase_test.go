package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/pkg/ptr"
)

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    *domain.SalonAppointmentsFilter
}

func (m *mockAppointmentRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	m.gotFilter = &filter
	return m.appointments, m.err
}

type mockStaffRepo struct {
	staff       []*domain.Staff
	err         error
	gotStaffIDs []int64
}

func (m *mockStaffRepo) ListEligibleBySalon(_ context.Context, _ int64, staffIDs []int64) ([]*domain.Staff, error) {
	m.gotStaffIDs = staffIDs
	return m.staff, m.err
}

type mockRuleRepo struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (m *mockRuleRepo) ListForDate(_ context.Context, _ []int64, _ time.Time) ([]*domain.AvailabilityRule, error) {
	return m.rules, m.err
}

type mockCatalogClient struct {
	salon      *catalogservice.Salon
	salonErr   error
	service    *catalogservice.Service
	serviceErr error
}

func (m *mockCatalogClient) GetSalon(_ context.Context, _ int64) (*catalogservice.Salon, error) {
	return m.salon, m.salonErr
}

func (m *mockCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	return m.service, m.serviceErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func eligibleStaff(ids ...int64) []*domain.Staff {
	staff := make([]*domain.Staff, 0, len(ids))
	for _, id := range ids {
		staff = append(staff, &domain.Staff{
			ID:      id,
			SalonID: 1,
			Role:    domain.RoleTherapist,
			Active:  true,
		})
	}
	return staff
}

func testSalon() *catalogservice.Salon {
	return &catalogservice.Salon{
		ID:              1,
		Name:            "SPA Центр",
		Timezone:        "Europe/Moscow",
		SlotStepMinutes: 60,
		OpeningHours: map[string]catalogservice.DayHours{
			"monday":  {Open: "09:00", Close: "19:00"},
			"tuesday": {Open: "09:00", Close: "19:00"},
		},
	}
}

func testService(required int) *catalogservice.Service {
	return &catalogservice.Service{
		ID:                 10,
		SalonID:            1,
		Name:               "Парное спа",
		DurationMinutes:    60,
		RequiredStaffCount: required,
	}
}

func fullDayRules(staffIDs ...int64) []*domain.AvailabilityRule {
	rules := make([]*domain.AvailabilityRule, 0, len(staffIDs))
	for _, id := range staffIDs {
		rules = append(rules, recurringRule(id, 1, tsPtr("09:00"), tsPtr("19:00")))
	}
	return rules
}

func newTestUseCase(
	apptRepo *mockAppointmentRepo,
	staffRepo *mockStaffRepo,
	ruleRepo *mockRuleRepo,
	catalog *mockCatalogClient,
) *UseCase {
	return NewUseCase(apptRepo, staffRepo, ruleRepo, catalog, noopLogger{})
}

func TestExecute_MultiStaffScenario(t *testing.T) {
	// Услуга на двоих, три мастера в полную смену,
	// мастер 1 занят с 10:00 до 11:00
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			appt(1, domain.StatusConfirmed, "10:00", 60, ptr.Ptr(int64(1))),
		},
	}
	staffRepo := &mockStaffRepo{staff: eligibleStaff(1, 2, 3)}
	ruleRepo := &mockRuleRepo{rules: fullDayRules(1, 2, 3)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(2)}

	uc := newTestUseCase(apptRepo, staffRepo, ruleRepo, catalog)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, ReasonNone, resp.Reason)
	assert.Equal(t, 2, resp.RequiredStaff)
	require.Len(t, resp.Slots, 10) // 09:00 ... 18:00 с шагом 60

	assert.Equal(t, ts("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, []int64{1, 2, 3}, resp.Slots[0].AvailableStaffIDs)

	assert.Equal(t, ts("10:00"), resp.Slots[1].StartTime)
	assert.Equal(t, []int64{2, 3}, resp.Slots[1].AvailableStaffIDs)

	// Фильтр по записям: только блокирующие статусы, день запроса
	require.NotNil(t, apptRepo.gotFilter)
	assert.True(t, apptRepo.gotFilter.OnlyBlocking)
	assert.Equal(t, testDate, *apptRepo.gotFilter.StartDate)
	assert.Equal(t, testDate, *apptRepo.gotFilter.EndDate)
}

func TestExecute_ClosedDay(t *testing.T) {
	// Воскресенья нет в часах работы - салон закрыт
	sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: sunday})

	require.NoError(t, err)
	assert.Equal(t, ReasonClosed, resp.Reason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InsufficientStaff(t *testing.T) {
	staffRepo := &mockStaffRepo{staff: eligibleStaff(1)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(2)}
	uc := newTestUseCase(&mockAppointmentRepo{}, staffRepo, &mockRuleRepo{}, catalog)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, ReasonInsufficientStaff, resp.Reason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StaffWithoutRules_NotAvailable(t *testing.T) {
	// У мастера 2 нет правил доступности - он недоступен весь день,
	// слоты держатся на одном мастере 1
	staffRepo := &mockStaffRepo{staff: eligibleStaff(1, 2)}
	ruleRepo := &mockRuleRepo{rules: fullDayRules(1)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	uc := newTestUseCase(&mockAppointmentRepo{}, staffRepo, ruleRepo, catalog)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.Equal(t, []int64{1}, slot.AvailableStaffIDs)
	}
}

func TestExecute_FullyBooked_EmptySlotsWithoutReason(t *testing.T) {
	// Единственный мастер занят весь день: слотов нет, но причина не выставляется
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			appt(1, domain.StatusConfirmed, "09:00", 600, ptr.Ptr(int64(1))),
		},
	}
	staffRepo := &mockStaffRepo{staff: eligibleStaff(1)}
	ruleRepo := &mockRuleRepo{rules: fullDayRules(1)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	uc := newTestUseCase(apptRepo, staffRepo, ruleRepo, catalog)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, ReasonNone, resp.Reason)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &mockCatalogClient{serviceErr: catalogservice.ErrServiceNotFound}
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SalonNotFound(t *testing.T) {
	catalog := &mockCatalogClient{service: testService(1), salonErr: catalogservice.ErrSalonNotFound}
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServiceNotInSalon(t *testing.T) {
	catalog := &mockCatalogClient{service: testService(1)}
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		Date:      testDate,
		SalonID:   ptr.Ptr(int64(99)),
	})

	assert.ErrorIs(t, err, ErrServiceNotInSalon)
}

func TestExecute_InvalidServiceConfig(t *testing.T) {
	catalog := &mockCatalogClient{service: testService(1)}
	catalog.service.DurationMinutes = 0
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	assert.ErrorIs(t, err, ErrInvalidServiceConfig)
}

func TestExecute_MalformedSalonHours(t *testing.T) {
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	catalog.salon.OpeningHours["monday"] = catalogservice.DayHours{Open: "9am", Close: "19:00"}
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, catalog)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 10, Date: testDate})

	assert.ErrorIs(t, err, ErrInvalidSalonHours)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, &mockRuleRepo{}, &mockCatalogClient{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero service id", &Request{ServiceID: 0, Date: testDate}},
		{"zero date", &Request{ServiceID: 10}},
		{"negative staff id", &Request{ServiceID: 10, Date: testDate, StaffIDs: []int64{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StaffFilterPassedToRepository(t *testing.T) {
	staffRepo := &mockStaffRepo{staff: eligibleStaff(2, 3)}
	ruleRepo := &mockRuleRepo{rules: fullDayRules(2, 3)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	uc := newTestUseCase(&mockAppointmentRepo{}, staffRepo, ruleRepo, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 10,
		Date:      testDate,
		StaffIDs:  []int64{2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, staffRepo.gotStaffIDs)
}

func TestExecute_Diagnostics(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			appt(1, domain.StatusConfirmed, "09:00", 60, ptr.Ptr(int64(1))),
		},
	}
	staffRepo := &mockStaffRepo{staff: eligibleStaff(1)}
	ruleRepo := &mockRuleRepo{rules: fullDayRules(1)}
	catalog := &mockCatalogClient{salon: testSalon(), service: testService(1)}
	uc := newTestUseCase(apptRepo, staffRepo, ruleRepo, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:          10,
		Date:               testDate,
		IncludeDiagnostics: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Diagnostics, 10)
	assert.Equal(t, domain.StaffBusy, resp.Diagnostics[0].Staff[0].State)
	assert.Equal(t, domain.StaffAvailable, resp.Diagnostics[1].Staff[0].State)
}
