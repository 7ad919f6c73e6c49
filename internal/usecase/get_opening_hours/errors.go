package get_opening_hours

import "errors"

var (
	// ErrConfiguration возвращается при некорректном расписании или разрешении слотов
	ErrConfiguration = errors.New("opening hours: invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("opening hours: invalid input data")

	// ErrNotFound возвращается, когда комната или область не найдена
	ErrNotFound = errors.New("opening hours: room not found")

	// ErrUpstreamUnavailable возвращается при ошибке источника расписаний или записей
	ErrUpstreamUnavailable = errors.New("opening hours: upstream unavailable")
)
