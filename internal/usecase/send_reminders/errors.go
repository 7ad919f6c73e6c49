package send_reminders

import "errors"

var (
	// ErrConfiguration возвращается при некорректных параметрах окна напоминаний
	ErrConfiguration = errors.New("send reminders: invalid configuration")

	// ErrUpstreamUnavailable возвращается, когда не удалось выбрать записи для напоминания
	ErrUpstreamUnavailable = errors.New("send reminders: upstream unavailable")
)
