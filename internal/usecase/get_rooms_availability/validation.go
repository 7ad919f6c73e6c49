package get_rooms_availability

import (
	"fmt"
	"strconv"
	"time"
)

// parseTimestamp разбирает unix-время в секундах
func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: timestamp is required", ErrInvalidInput)
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed timestamp %q", ErrInvalidInput, raw)
	}

	if seconds < 0 {
		return time.Time{}, fmt.Errorf("%w: timestamp must not be negative", ErrInvalidInput)
	}

	return time.Unix(seconds, 0).In(loc), nil
}

// validateArea проверяет ID области
func validateArea(areaID int64) error {
	if areaID <= 0 {
		return fmt.Errorf("%w: areaID must be positive", ErrInvalidInput)
	}
	return nil
}
