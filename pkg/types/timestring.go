package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (например, "10:30")
// Используется для хранения времени начала слотов и смен без привязки к дате
// Поддерживает значение "24:00" как верхнюю границу конца дня
type TimeString string

// ErrInvalidTimeFormat возвращается при некорректном формате времени
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString валидирует строку и создает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.TotalMinutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала дня
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > 24*60 {
		return "", fmt.Errorf("%w: %d minutes out of range", ErrInvalidTimeFormat, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// TotalMinutes возвращает количество минут с начала дня (0..1440)
func (t TimeString) TotalMinutes() (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return hh*60 + mm, nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются равными (сравнение не падает)
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	a, err1 := t.TotalMinutes()
	b, err2 := other.TotalMinutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a == b
}

// AddMinutes возвращает новое время, сдвинутое на minutes вперёд
// Возвращает ошибку при выходе за границы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + minutes)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner
// Postgres возвращает колонки типа TIME как time.Time или строку "HH:MM:SS"
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Обрезаем секунды, если колонка TIME вернула "HH:MM:SS"
	if len(s) > 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if _, err := t.TotalMinutes(); err != nil {
		return nil, err
	}
	return string(t), nil
}
