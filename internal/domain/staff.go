package domain

// StaffRole роль сотрудника салона
type StaffRole string

const (
	RoleTherapist    StaffRole = "therapist"
	RoleManager      StaffRole = "manager"
	RoleAdmin        StaffRole = "admin"
	RoleReceptionist StaffRole = "receptionist"
)

// Staff сотрудник салона
type Staff struct {
	ID      int64
	SalonID int64
	Name    string
	Role    StaffRole
	Active  bool
}

// CanPerformServices возвращает true, если сотрудник может выполнять услуги
// Администраторы и менеджеры часто совмещают роли, поэтому тоже подходят
func (s *Staff) CanPerformServices() bool {
	switch s.Role {
	case RoleTherapist, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsEligible возвращает true, если сотрудник активен и может выполнять услуги
func (s *Staff) IsEligible() bool {
	return s.Active && s.CanPerformServices()
}
