package domain

import "github.com/m04kA/SPA-AvailabilityService/pkg/types"

// AvailableSlot слот, в который можно записаться на услугу
type AvailableSlot struct {
	StartTime         types.TimeString
	EndTime           types.TimeString
	AvailableStaffIDs []int64
}

// HasEnoughStaff возвращает true, если свободных мастеров хватает для услуги
func (s *AvailableSlot) HasEnoughStaff(required int) bool {
	return len(s.AvailableStaffIDs) >= required
}

// StaffSlotState причина включения/исключения мастера из слота
type StaffSlotState string

const (
	StaffAvailable    StaffSlotState = "available"
	StaffOutsideShift StaffSlotState = "outside_shift"
	StaffBusy         StaffSlotState = "busy"
)

// StaffSlotStatus диагностический статус мастера для конкретного кандидата
// Используется только в debug-режиме выдачи слотов
type StaffSlotStatus struct {
	StaffID   int64
	State     StaffSlotState
	BusyUntil *types.TimeString // заполнено для State == StaffBusy
}

// SlotDiagnostics диагностика по одному кандидату: статус каждого мастера
type SlotDiagnostics struct {
	StartTime types.TimeString
	Staff     []StaffSlotStatus
}
