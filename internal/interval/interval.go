package interval

import (
	"strings"
	"time"
)

// Interval is the bucketing granularity for net-worth series.
type Interval string

const (
	Day   Interval = "day"
	Week  Interval = "week"
	Month Interval = "month"
)

// Parse maps a raw interval string to an Interval, case-insensitively.
// Anything unrecognized, including the empty string, falls back to Month.
func Parse(raw string) Interval {
	switch strings.ToLower(raw) {
	case "day":
		return Day
	case "week":
		return Week
	case "month":
		return Month
	default:
		return Month
	}
}

// BucketStart returns the first day of the bucket containing date.
//
// Day buckets are the date itself. Week buckets anchor to the most recent
// Monday (a Monday maps to itself, a Sunday maps six days back), not to ISO
// week numbering. Month buckets are the first of the month. The time-of-day
// and location of date are discarded; buckets are calendar dates at UTC
// midnight.
func BucketStart(date time.Time, iv Interval) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch iv {
	case Day:
		return d
	case Week:
		offset := int(d.Weekday()) - 1
		if d.Weekday() == time.Sunday {
			offset = 6
		}
		return d.AddDate(0, 0, -offset)
	default:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}
