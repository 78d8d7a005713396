package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSalonNotFound возвращается, когда салон не найден в каталоге
	ErrSalonNotFound = errors.New("create_appointment: salon not found")

	// ErrServiceNotInSalon возвращается, когда услуга принадлежит другому салону
	ErrServiceNotInSalon = errors.New("create_appointment: service does not belong to this salon")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в часы работы салона
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside salon working hours")

	// ErrStaffNotFound возвращается, когда запрошенный мастер не найден или не подходит
	ErrStaffNotFound = errors.New("create_appointment: staff member not found or not eligible")

	// ErrStaffNotAvailable возвращается, когда запрошенный мастер занят или вне смены
	ErrStaffNotAvailable = errors.New("create_appointment: staff member is not available at this time")

	// ErrSlotNotAvailable возвращается, когда на слот не набирается нужное число свободных мастеров
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrTooLateToBook возвращается при попытке записаться на уже прошедшее время
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
