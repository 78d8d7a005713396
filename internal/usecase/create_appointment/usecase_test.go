package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/smsgateway"
	"github.com/m04kA/SPA-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// Понедельник, 08:00 утра
var (
	testNow  = time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func tsPtr(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	assignedTo   int64
	assignedIDs  []int64
	createErr    error
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	appt.ID = 42
	appt.CreatedAt = testNow
	appt.UpdatedAt = testNow
	m.created = appt
	return appt, nil
}

func (m *mockAppointmentRepo) AssignStaff(_ context.Context, appointmentID int64, staffIDs []int64) error {
	m.assignedTo = appointmentID
	m.assignedIDs = staffIDs
	return nil
}

func (m *mockAppointmentRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.appointments, nil
}

type mockStaffRepo struct {
	staff []*domain.Staff
}

func (m *mockStaffRepo) ListEligibleBySalon(_ context.Context, _ int64, staffIDs []int64) ([]*domain.Staff, error) {
	if len(staffIDs) == 0 {
		return m.staff, nil
	}
	allowed := make(map[int64]struct{}, len(staffIDs))
	for _, id := range staffIDs {
		allowed[id] = struct{}{}
	}
	filtered := make([]*domain.Staff, 0, len(staffIDs))
	for _, s := range m.staff {
		if _, ok := allowed[s.ID]; ok {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

type mockRuleRepo struct {
	rules []*domain.AvailabilityRule
}

func (m *mockRuleRepo) ListForDate(_ context.Context, _ []int64, _ time.Time) ([]*domain.AvailabilityRule, error) {
	return m.rules, nil
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

type fakeTxManager struct {
	called bool
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.called = true
	return fn(ctx)
}

type mockSMSSender struct {
	mu   sync.Mutex
	sent []smsgateway.Message
	done chan struct{}
}

func newMockSMSSender() *mockSMSSender {
	return &mockSMSSender{done: make(chan struct{}, 1)}
}

func (m *mockSMSSender) Send(_ context.Context, msg smsgateway.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func eligibleStaff(ids ...int64) []*domain.Staff {
	staff := make([]*domain.Staff, 0, len(ids))
	for _, id := range ids {
		staff = append(staff, &domain.Staff{ID: id, SalonID: 1, Role: domain.RoleTherapist, Active: true})
	}
	return staff
}

func fullDayRules(staffIDs ...int64) []*domain.AvailabilityRule {
	rules := make([]*domain.AvailabilityRule, 0, len(staffIDs))
	for _, id := range staffIDs {
		rules = append(rules, &domain.AvailabilityRule{
			StaffID:   id,
			RuleType:  domain.RuleRecurring,
			Weekday:   ptr.Ptr(1),
			StartTime: tsPtr("09:00"),
			EndTime:   tsPtr("19:00"),
		})
	}
	return rules
}

func testSalon() *catalogservice.Salon {
	return &catalogservice.Salon{
		ID:   1,
		Name: "SPA Центр",
		OpeningHours: map[string]catalogservice.DayHours{
			"monday": {Open: "09:00", Close: "19:00"},
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

type testEnv struct {
	uc        *UseCase
	apptRepo  *mockAppointmentRepo
	txManager *fakeTxManager
	sms       *mockSMSSender
}

func newTestEnv(apptRepo *mockAppointmentRepo, staff []*domain.Staff, rules []*domain.AvailabilityRule, catalog *mockCatalogClient) *testEnv {
	txManager := &fakeTxManager{}
	sms := newMockSMSSender()

	uc := NewUseCase(apptRepo, &mockStaffRepo{staff: staff}, &mockRuleRepo{rules: rules}, catalog, txManager, sms, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}

	return &testEnv{uc: uc, apptRepo: apptRepo, txManager: txManager, sms: sms}
}

func validRequest() *Request {
	return &Request{
		ClientID:  100,
		ServiceID: 10,
		Date:      testDate,
		StartTime: ts("10:00"),
	}
}

func TestExecute_AutoSelectStaff(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1, 2, 3), fullDayRules(1, 2, 3),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, env.txManager.called)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, []int64{1, 2}, resp.StaffIDs) // первые свободные в порядке репозитория

	require.NotNil(t, env.apptRepo.created)
	assert.Equal(t, int64(1), *env.apptRepo.created.StaffID)
	assert.Equal(t, []int64{1, 2}, env.apptRepo.assignedIDs)
	assert.Equal(t, int64(42), env.apptRepo.assignedTo)
}

func TestExecute_AutoSelectSkipsBusyStaff(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				Status:          domain.StatusConfirmed,
				AppointmentDate: testDate,
				StartTime:       ts("10:00"),
				DurationMinutes: 60,
				StaffID:         ptr.Ptr(int64(1)),
			},
		},
	}
	env := newTestEnv(apptRepo, eligibleStaff(1, 2, 3), fullDayRules(1, 2, 3),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, resp.StaffIDs)
}

func TestExecute_ExplicitStaff(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1, 2, 3), fullDayRules(1, 2, 3),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	req := validRequest()
	req.StaffIDs = []int64{2, 3}

	resp, err := env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, resp.StaffIDs)
	assert.Equal(t, int64(2), *env.apptRepo.created.StaffID)
}

func TestExecute_ExplicitStaffBusy(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				Status:          domain.StatusConfirmed,
				AppointmentDate: testDate,
				StartTime:       ts("09:30"),
				DurationMinutes: 60,
				StaffID:         ptr.Ptr(int64(2)),
			},
		},
	}
	env := newTestEnv(apptRepo, eligibleStaff(1, 2, 3), fullDayRules(1, 2, 3),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	req := validRequest()
	req.StaffIDs = []int64{2, 3}

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStaffNotAvailable)
}

func TestExecute_ExplicitStaffWrongCount(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1, 2, 3), fullDayRules(1, 2, 3),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	req := validRequest()
	req.StaffIDs = []int64{2}

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ExplicitStaffNotEligible(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1, 2), fullDayRules(1, 2),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	req := validRequest()
	req.StaffIDs = []int64{99}

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_SlotNotAvailable_AllStaffBusy(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:               1,
				Status:           domain.StatusConfirmed,
				AppointmentDate:  testDate,
				StartTime:        ts("10:00"),
				DurationMinutes:  60,
				AssignedStaffIDs: []int64{1, 2},
			},
		},
	}
	env := newTestEnv(apptRepo, eligibleStaff(1, 2), fullDayRules(1, 2),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StaffWithoutShiftIsNotFree(t *testing.T) {
	// Правила есть только у мастера 1 - мастер 2 без смены, на двоих не набирается
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1, 2), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(2)})

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SalonClosed(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	req := validRequest()
	req.Date = time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC) // вторника нет в часах работы

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	tests := []struct {
		name      string
		startTime types.TimeString
	}{
		{"before opening", ts("08:30")},
		{"ends after closing", ts("18:30")},
		{"overflows the day", ts("23:30")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.startTime

			_, err := env.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	req := validRequest()
	req.Date = testDate.AddDate(0, 0, -1)

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayPastTime(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	req := validRequest()
	req.StartTime = ts("07:00") // сейчас 08:00

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, nil, nil,
		&mockCatalogClient{serviceErr: catalogservice.ErrServiceNotFound})

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceNotInSalon(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, nil, nil,
		&mockCatalogClient{service: testService(1)})

	req := validRequest()
	req.SalonID = ptr.Ptr(int64(99))

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotInSalon)
}

func TestExecute_SendsSMSConfirmation(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	req := validRequest()
	req.ClientPhone = ptr.Ptr("+79001234567")

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	select {
	case <-env.sms.done:
	case <-time.After(time.Second):
		t.Fatal("SMS confirmation was not sent")
	}

	env.sms.mu.Lock()
	defer env.sms.mu.Unlock()
	require.Len(t, env.sms.sent, 1)
	assert.Equal(t, "+79001234567", env.sms.sent[0].Phone)
	assert.Contains(t, env.sms.sent[0].Text, "10:00")
}

func TestExecute_NoPhone_NoSMS(t *testing.T) {
	env := newTestEnv(&mockAppointmentRepo{}, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	select {
	case <-env.sms.done:
		t.Fatal("unexpected SMS send")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExecute_BoundaryTouchingAppointmentDoesNotBlock(t *testing.T) {
	// Запись мастера заканчивается ровно в 10:00 - слот с 10:00 свободен
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				Status:          domain.StatusConfirmed,
				AppointmentDate: testDate,
				StartTime:       ts("09:00"),
				DurationMinutes: 60,
				StaffID:         ptr.Ptr(int64(1)),
			},
		},
	}
	env := newTestEnv(apptRepo, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.StaffIDs)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              1,
				Status:          domain.StatusCancelled,
				AppointmentDate: testDate,
				StartTime:       ts("10:00"),
				DurationMinutes: 60,
				StaffID:         ptr.Ptr(int64(1)),
			},
		},
	}
	env := newTestEnv(apptRepo, eligibleStaff(1), fullDayRules(1),
		&mockCatalogClient{salon: testSalon(), service: testService(1)})

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.StaffIDs)
}
