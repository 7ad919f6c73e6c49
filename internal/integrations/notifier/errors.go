package notifier

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("notifier: failed to encode event")

	// ErrPublish возвращается, когда Redis не принял событие
	ErrPublish = errors.New("notifier: failed to publish event")

	// ErrConnect возвращается, когда Redis недоступен при запуске
	ErrConnect = errors.New("notifier: redis unavailable")
)
