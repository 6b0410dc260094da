package ratings

import "time"

// Timeframe is the reporting window a chart covers.
type Timeframe int32

const (
	TimeframeUnspecified Timeframe = iota
	TimeframeDay
	TimeframeWeek
	TimeframeMonth
)

// TimeframeFromRepr decodes a wire ordinal into a Timeframe. Unknown
// ordinals fall back to TimeframeUnspecified rather than failing; the
// unspecified window covers all recorded votes.
func TimeframeFromRepr(v int32) Timeframe {
	switch t := Timeframe(v); t {
	case TimeframeDay, TimeframeWeek, TimeframeMonth:
		return t
	default:
		return TimeframeUnspecified
	}
}

// Window returns the duration of votes the timeframe spans, and false if
// the timeframe is unbounded.
func (t Timeframe) Window() (time.Duration, bool) {
	switch t {
	case TimeframeDay:
		return 24 * time.Hour, true
	case TimeframeWeek:
		return 7 * 24 * time.Hour, true
	case TimeframeMonth:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

func (t Timeframe) String() string {
	switch t {
	case TimeframeDay:
		return "day"
	case TimeframeWeek:
		return "week"
	case TimeframeMonth:
		return "month"
	default:
		return "unspecified"
	}
}
