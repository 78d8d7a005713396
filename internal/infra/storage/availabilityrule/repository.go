package availabilityrule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

// DBExecutor интерфейс выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с правилами доступности мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForDate получает правила доступности мастеров, действующие на указанную дату:
// еженедельные правила на соответствующий день недели и разовые правила на саму дату
// Разрешение приоритетов (разовое правило перекрывает еженедельное) делает движок доступности
func (r *Repository) ListForDate(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.AvailabilityRule, error) {
	if len(staffIDs) == 0 {
		return []*domain.AvailabilityRule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekday := int(date.Weekday())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"rule_type",
		"weekday",
		"specific_date",
		"start_time",
		"end_time",
	).
		From("staff_availability").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"rule_type": domain.RuleRecurring},
				squirrel.Eq{"weekday": weekday},
			},
			squirrel.And{
				squirrel.Eq{"rule_type": domain.RuleSpecificDate},
				squirrel.Eq{"specific_date": dateOnly},
			},
		}).
		OrderBy("staff_id ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForDate - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDate - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func scanRule(rows *sql.Rows) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var weekday sql.NullInt64
	var specificDate sql.NullTime
	var startTime, endTime sql.Null[types.TimeString]

	err := rows.Scan(
		&rule.ID,
		&rule.StaffID,
		&rule.RuleType,
		&weekday,
		&specificDate,
		&startTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		w := int(weekday.Int64)
		rule.Weekday = &w
	}
	if specificDate.Valid {
		d := specificDate.Time
		rule.SpecificDate = &d
	}
	if startTime.Valid {
		rule.StartTime = &startTime.V
	}
	if endTime.Valid {
		rule.EndTime = &endTime.V
	}

	return &rule, nil
}
