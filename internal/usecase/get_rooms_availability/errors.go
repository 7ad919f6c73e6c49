package get_rooms_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (в том числе метке времени)
	ErrInvalidInput = errors.New("rooms availability: invalid input data")

	// ErrNotFound возвращается, когда область или комната не найдена
	ErrNotFound = errors.New("rooms availability: not found")

	// ErrUpstreamUnavailable возвращается при ошибке чтения комнат или записей
	ErrUpstreamUnavailable = errors.New("rooms availability: upstream unavailable")
)
