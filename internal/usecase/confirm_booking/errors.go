package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при пустом коде подтверждения
	ErrInvalidInput = errors.New("confirm booking: invalid input data")

	// ErrNotFound возвращается, когда записи с кодом нет (в том числе после подтверждения)
	ErrNotFound = errors.New("confirm booking: confirmation code not found")

	// ErrOutsideConfirmationWindow возвращается, когда подтверждение раньше или позже окна вокруг начала
	ErrOutsideConfirmationWindow = errors.New("confirm booking: outside confirmation window")

	// ErrConcurrentModification возвращается, когда условное обновление изменило не одну строку
	ErrConcurrentModification = errors.New("confirm booking: concurrent modification")

	// ErrUpstreamUnavailable возвращается при ошибке хранилища записей
	ErrUpstreamUnavailable = errors.New("confirm booking: upstream unavailable")
)
