package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SecondsPerDay количество секунд в сутках
	SecondsPerDay = 24 * 60 * 60
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// SecondOfDay время суток в секундах от полуночи.
// Используется вместо дробной записи часов (8.30 = 8 часов 30 минут),
// которую легко сравнить неправильно.
type SecondOfDay int

// NewSecondOfDay создает время суток из часов и минут
func NewSecondOfDay(hour, minute int) SecondOfDay {
	return SecondOfDay((hour*60 + minute) * 60)
}

// SecondOfDayFromTime возвращает время суток для момента t в его локации
func SecondOfDayFromTime(t time.Time) SecondOfDay {
	return NewSecondOfDay(t.Hour(), t.Minute()) + SecondOfDay(t.Second())
}

// ParseSecondOfDay парсит строку вида "HH:MM"
func ParseSecondOfDay(s string) (SecondOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, ErrTimeOutOfRange
	}

	return NewSecondOfDay(hour, minute), nil
}

// Hour возвращает часы
func (s SecondOfDay) Hour() int {
	return int(s) / 3600
}

// Minute возвращает минуты внутри часа
func (s SecondOfDay) Minute() int {
	return (int(s) % 3600) / 60
}

// Add сдвигает время на указанное количество секунд
func (s SecondOfDay) Add(seconds int) SecondOfDay {
	return s + SecondOfDay(seconds)
}

// CapAtDayEnd ограничивает значение концом суток
func (s SecondOfDay) CapAtDayEnd() SecondOfDay {
	if s > SecondsPerDay {
		return SecondsPerDay
	}
	return s
}

// On возвращает абсолютный момент: дата date в это время суток в локации loc
func (s SecondOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	secs := int(s)
	return time.Date(y, m, d, secs/3600, (secs%3600)/60, secs%60, 0, loc)
}

// String возвращает время в формате "HH:MM"
func (s SecondOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour(), s.Minute())
}

// Fractional возвращает время в дробной записи для отображения: "8.30", "17.00"
func (s SecondOfDay) Fractional() string {
	return fmt.Sprintf("%d.%02d", s.Hour(), s.Minute())
}

// Short возвращает дробную запись без нулевых минут: "8.30", "17"
func (s SecondOfDay) Short() string {
	return strings.ReplaceAll(s.Fractional(), ".00", "")
}
