package domain

import "github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"

// ResolvedDayHours opening hours of one day, recomputed on every query
type ResolvedDayHours struct {
	FirstOpen      *types.SecondOfDay
	LastOpen       *types.SecondOfDay
	IsManned       bool
	IsExtendedOpen bool
	IsClosed       bool
}

// IsOpen returns true if the day has a derived interval
func (h ResolvedDayHours) IsOpen() bool {
	return h.FirstOpen != nil && h.LastOpen != nil
}

// SameInterval returns true if both days have equal boundaries (absent equals absent)
func (h ResolvedDayHours) SameInterval(other ResolvedDayHours) bool {
	return equalSeconds(h.FirstOpen, other.FirstOpen) && equalSeconds(h.LastOpen, other.LastOpen)
}

func equalSeconds(a, b *types.SecondOfDay) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// HourStatus visitor-facing status of a room at an hour
type HourStatus string

const (
	HourFree          HourStatus = "free"
	HourConfirmed     HourStatus = "confirmed"
	HourTentative     HourStatus = "tentative"
	HourToBeConfirmed HourStatus = "tobeconfirmed"
	HourUnavailable   HourStatus = "unavailable"
)
