package get_opening_hours

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/config"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	getOpeningHours "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_opening_hours"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

const displayClosed = "closed"

// IntervalResponse часы работы одного расписания
type IntervalResponse struct {
	FirstOpen *string `json:"firstOpen"` // "08:30"
	LastOpen  *string `json:"lastOpen"`
}

// DayHoursResponse HTTP модель часов работы дня
type DayHoursResponse struct {
	Date           string           `json:"date"`
	Weekday        string           `json:"weekday"`
	FirstOpen      *string          `json:"firstOpen"`
	LastOpen       *string          `json:"lastOpen"`
	IsManned       bool             `json:"isManned"`
	IsExtendedOpen bool             `json:"isExtendedOpen"`
	IsClosed       bool             `json:"isClosed"`
	NeedsFootnote  bool             `json:"needsFootnote"`
	Regular        IntervalResponse `json:"regular"`
	Extended       IntervalResponse `json:"extended"`
	Display        string           `json:"display"`
}

// WeekResponse HTTP модель часов работы недели
type WeekResponse struct {
	RoomID         int64              `json:"roomId"`
	ExtendedRoomID int64              `json:"extendedRoomId"`
	Policy         string             `json:"policy"`
	WeekStart      string             `json:"weekStart"`
	WeekEnd        string             `json:"weekEnd"`
	PrevDate       *string            `json:"prevDate"`
	NextDate       string             `json:"nextDate"`
	Days           []DayHoursResponse `json:"days"`
	Today          DayHoursResponse   `json:"today"`
}

// ToUseCaseRequest создает запрос use case из параметров пути
func ToUseCaseRequest(dateStr, roomIDStr, extendedRoomIDStr string, loc *time.Location) (*getOpeningHours.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("room id: %w", err)
	}

	extendedRoomID, err := strconv.ParseInt(extendedRoomIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("extended room id: %w", err)
	}

	return &getOpeningHours.Request{
		RoomID:         roomID,
		ExtendedRoomID: extendedRoomID,
		Date:           date,
	}, nil
}

// FromUseCaseWeek конвертирует неделю use case в HTTP response
func FromUseCaseWeek(resp *getOpeningHours.WeekResponse, policy string) *WeekResponse {
	days := make([]DayHoursResponse, len(resp.Days))
	for i := range resp.Days {
		days[i] = FromUseCaseDay(&resp.Days[i], policy)
	}

	var prev *string
	if resp.PrevDate != nil {
		formatted := resp.PrevDate.Format(domain.DateFormat)
		prev = &formatted
	}

	return &WeekResponse{
		RoomID:         resp.RoomID,
		ExtendedRoomID: resp.ExtendedRoomID,
		Policy:         policy,
		WeekStart:      resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:        resp.WeekEnd.Format(domain.DateFormat),
		PrevDate:       prev,
		NextDate:       resp.NextDate.Format(domain.DateFormat),
		Days:           days,
		Today:          FromUseCaseDay(&resp.Today, policy),
	}
}

// FromUseCaseDay конвертирует день use case в HTTP response
func FromUseCaseDay(day *getOpeningHours.DayHours, policy string) DayHoursResponse {
	return DayHoursResponse{
		Date:           day.Date.Format(domain.DateFormat),
		Weekday:        day.Date.Weekday().String(),
		FirstOpen:      clock(day.Merged.FirstOpen),
		LastOpen:       clock(day.Merged.LastOpen),
		IsManned:       day.Merged.IsManned,
		IsExtendedOpen: day.Merged.IsExtendedOpen,
		IsClosed:       day.Merged.IsClosed,
		NeedsFootnote:  day.NeedsFootnote,
		Regular:        interval(day.Regular),
		Extended:       interval(day.Extended),
		Display:        Display(day, policy),
	}
}

// Display форматирует часы дня согласно политике отображения
func Display(day *getOpeningHours.DayHours, policy string) string {
	if day.Merged.IsClosed || !day.Merged.IsOpen() {
		return displayClosed
	}

	switch policy {
	case config.PolicyMannedSplit:
		if !day.Extended.IsOpen() {
			return span(day.Regular)
		}
		if day.Regular.IsOpen() {
			return fmt.Sprintf("%s (manned %s)", span(day.Extended), span(day.Regular))
		}
		return fmt.Sprintf("%s (unmanned)", span(day.Extended))

	case config.PolicyPlain:
		return span(day.Merged)

	default:
		marker := ""
		if day.NeedsFootnote {
			marker = "*"
		}
		return fmt.Sprintf("%s%s-%s", day.Merged.FirstOpen.Short(), marker, day.Merged.LastOpen.Short())
	}
}

func span(h domain.ResolvedDayHours) string {
	return fmt.Sprintf("%s-%s", h.FirstOpen.Short(), h.LastOpen.Short())
}

func interval(h domain.ResolvedDayHours) IntervalResponse {
	return IntervalResponse{
		FirstOpen: clock(h.FirstOpen),
		LastOpen:  clock(h.LastOpen),
	}
}

func clock(s *types.SecondOfDay) *string {
	if s == nil {
		return nil
	}
	formatted := s.String()
	return &formatted
}
