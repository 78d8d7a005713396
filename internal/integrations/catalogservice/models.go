package catalogservice

// DayHours часы работы салона в конкретный день недели
type DayHours struct {
	Open  string `json:"open"`  // "HH:MM"
	Close string `json:"close"` // "HH:MM"
}

// Salon модель салона из каталога
// OpeningHours ключуется английским названием дня недели в нижнем регистре
// ("monday" ... "sunday"); отсутствие ключа означает выходной
type Salon struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Timezone        string              `json:"timezone"`
	SlotStepMinutes int                 `json:"slot_step_minutes"` // 0 = шаг по умолчанию
	OpeningHours    map[string]DayHours `json:"opening_hours"`
	ManagerIDs      []int64             `json:"manager_ids"`
}

// IsManager возвращает true, если пользователь - менеджер салона
func (s *Salon) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HoursForWeekday возвращает часы работы на день недели ("monday"..."sunday")
// Второе значение false, если салон в этот день закрыт
func (s *Salon) HoursForWeekday(weekday string) (DayHours, bool) {
	hours, ok := s.OpeningHours[weekday]
	return hours, ok
}

// Service модель услуги из каталога
type Service struct {
	ID                 int64   `json:"id"`
	SalonID            int64   `json:"salon_id"`
	Name               string  `json:"name"`
	DurationMinutes    int     `json:"duration_minutes"`
	RequiredStaffCount int     `json:"required_staff_count"` // 0 трактуется как 1
	Price              *float64 `json:"price"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
