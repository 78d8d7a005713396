package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SPA-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string            `json:"date"`
	SalonID       int64             `json:"salonId"`
	ServiceID     int64             `json:"serviceId"`
	RequiredStaff int               `json:"requiredStaff"`
	Slots         []AvailableSlot   `json:"slots"`
	Reason        string            `json:"reason,omitempty"`
	Message       string            `json:"message,omitempty"`
	Diagnostics   []SlotDiagnostics `json:"diagnostics,omitempty"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	AvailableStaffIDs []int64 `json:"availableStaffIds"`
}

// SlotDiagnostics статус каждого мастера по кандидату (только при debug=true)
type SlotDiagnostics struct {
	StartTime string            `json:"startTime"`
	Staff     []StaffSlotStatus `json:"staff"`
}

// StaffSlotStatus статус одного мастера в кандидате
type StaffSlotStatus struct {
	StaffID   int64   `json:"staffId"`
	State     string  `json:"state"` // available / outside_shift / busy
	BusyUntil *string `json:"busyUntil,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			AvailableStaffIDs: slot.AvailableStaffIDs,
		}
	}

	var diagnostics []SlotDiagnostics
	if len(resp.Diagnostics) > 0 {
		diagnostics = make([]SlotDiagnostics, len(resp.Diagnostics))
		for i, diag := range resp.Diagnostics {
			staff := make([]StaffSlotStatus, len(diag.Staff))
			for j, status := range diag.Staff {
				staff[j] = StaffSlotStatus{
					StaffID: status.StaffID,
					State:   string(status.State),
				}
				if status.BusyUntil != nil {
					busyUntil := status.BusyUntil.String()
					staff[j].BusyUntil = &busyUntil
				}
			}
			diagnostics[i] = SlotDiagnostics{
				StartTime: diag.StartTime.String(),
				Staff:     staff,
			}
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		SalonID:       resp.SalonID,
		ServiceID:     resp.ServiceID,
		RequiredStaff: resp.RequiredStaff,
		Slots:         slots,
		Reason:        string(resp.Reason),
		Message:       reasonMessage(resp.Reason),
		Diagnostics:   diagnostics,
	}
}

// reasonMessage человекочитаемое пояснение причины пустого списка слотов
func reasonMessage(reason getAvailableSlots.Reason) string {
	switch reason {
	case getAvailableSlots.ReasonClosed:
		return "салон закрыт в выбранный день"
	case getAvailableSlots.ReasonInsufficientStaff:
		return "недостаточно мастеров для оказания услуги"
	default:
		return ""
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(salonID, serviceID int64, dateStr, staffIDsStr string, debug bool) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	staffIDs, err := parseStaffIDs(staffIDsStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID:          serviceID,
		Date:               date,
		SalonID:            &salonID,
		StaffIDs:           staffIDs,
		IncludeDiagnostics: debug,
	}, nil
}

// parseStaffIDs парсит список ID мастеров из query параметра "1,2,3"
func parseStaffIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
