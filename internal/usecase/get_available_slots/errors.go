package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrSalonNotFound возвращается, когда салон не найден в каталоге
	ErrSalonNotFound = errors.New("get_available_slots: salon not found")

	// ErrServiceNotInSalon возвращается, когда услуга принадлежит другому салону
	ErrServiceNotInSalon = errors.New("get_available_slots: service does not belong to this salon")

	// ErrInvalidServiceConfig возвращается, когда каталог вернул услугу
	// с некорректными параметрами (нулевая длительность и т.п.)
	ErrInvalidServiceConfig = errors.New("get_available_slots: invalid service configuration")

	// ErrInvalidSalonHours возвращается, когда часы работы салона не парсятся
	// Некорректные данные каталога отклоняются целиком, а не подменяются дефолтами
	ErrInvalidSalonHours = errors.New("get_available_slots: invalid salon opening hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
