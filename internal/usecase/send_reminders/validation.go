package send_reminders

import "fmt"

// validateConfig проверяет окно выбора записей
func validateConfig(cfg Config) error {
	if cfg.Lead < 0 {
		return fmt.Errorf("%w: lead must not be negative", ErrConfiguration)
	}
	if cfg.Window <= 0 {
		return fmt.Errorf("%w: window must be positive", ErrConfiguration)
	}
	return nil
}
