package send_reminders

import "time"

// Config окно выбора записей: начало записи в [now+Lead, now+Lead+Window]
type Config struct {
	Lead   time.Duration
	Window time.Duration
}

// Result итог одного прохода
type Result struct {
	Selected int
	Sent     int
	Failed   int
}
