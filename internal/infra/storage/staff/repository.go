package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AvailabilityService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с сотрудниками салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "salon_id", "name", "role", "active").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SalonID,
		&s.Name,
		&s.Role,
		&s.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListEligibleBySalon получает активных сотрудников салона, которые могут выполнять услуги
// Если staffIDs не пуст, дополнительно ограничивает выборку этим списком (allow-list из запроса)
func (r *Repository) ListEligibleBySalon(ctx context.Context, salonID int64, staffIDs []int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	eligibleRoleStrings := make([]string, len(domain.EligibleRoles))
	for i, role := range domain.EligibleRoles {
		eligibleRoleStrings[i] = string(role)
	}

	selectBuilder := psqlbuilder.Select("id", "salon_id", "name", "role", "active").
		From("staff").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"role": eligibleRoleStrings}).
		OrderBy("id ASC")

	if len(staffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": staffIDs})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.Role, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: ListEligibleBySalon - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEligibleBySalon - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}
