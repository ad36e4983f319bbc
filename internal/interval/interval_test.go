package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -- Parse tests --

func TestParse_KnownValues(t *testing.T) {
	assert.Equal(t, Day, Parse("day"))
	assert.Equal(t, Week, Parse("week"))
	assert.Equal(t, Month, Parse("month"))
}

func TestParse_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Day, Parse("Day"))
	assert.Equal(t, Week, Parse("WEEK"))
	assert.Equal(t, Month, Parse("MoNtH"))
}

func TestParse_UnknownDefaultsToMonth(t *testing.T) {
	assert.Equal(t, Month, Parse(""))
	assert.Equal(t, Month, Parse("year"))
	assert.Equal(t, Month, Parse("fortnight"))
}

// -- BucketStart tests --

func TestBucketStart_Day(t *testing.T) {
	d := date(2025, time.June, 18)
	assert.Equal(t, d, BucketStart(d, Day))
}

func TestBucketStart_DayDiscardsTimeOfDay(t *testing.T) {
	d := time.Date(2025, time.June, 18, 23, 59, 12, 0, time.UTC)
	assert.Equal(t, date(2025, time.June, 18), BucketStart(d, Day))
}

func TestBucketStart_WeekMondayMapsToItself(t *testing.T) {
	monday := date(2025, time.June, 16)
	assert.Equal(t, time.Monday, monday.Weekday(), "fixture sanity")
	assert.Equal(t, monday, BucketStart(monday, Week))
}

func TestBucketStart_WeekSundayMapsSixDaysBack(t *testing.T) {
	sunday := date(2025, time.June, 22)
	assert.Equal(t, time.Sunday, sunday.Weekday(), "fixture sanity")
	assert.Equal(t, date(2025, time.June, 16), BucketStart(sunday, Week))
}

func TestBucketStart_WeekMidweek(t *testing.T) {
	wednesday := date(2025, time.June, 18)
	assert.Equal(t, time.Wednesday, wednesday.Weekday(), "fixture sanity")
	assert.Equal(t, date(2025, time.June, 16), BucketStart(wednesday, Week))
}

func TestBucketStart_WeekCrossesMonthBoundary(t *testing.T) {
	// Sunday 2025-06-01 belongs to the week starting Monday 2025-05-26.
	sunday := date(2025, time.June, 1)
	assert.Equal(t, time.Sunday, sunday.Weekday(), "fixture sanity")
	assert.Equal(t, date(2025, time.May, 26), BucketStart(sunday, Week))
}

func TestBucketStart_Month(t *testing.T) {
	assert.Equal(t, date(2025, time.June, 1), BucketStart(date(2025, time.June, 18), Month))
	assert.Equal(t, date(2025, time.June, 1), BucketStart(date(2025, time.June, 1), Month))
	assert.Equal(t, date(2025, time.December, 1), BucketStart(date(2025, time.December, 31), Month))
}

func TestBucketStart_StableAcrossRepeatedCalls(t *testing.T) {
	d := date(2025, time.March, 9)
	first := BucketStart(d, Week)
	second := BucketStart(d, Week)
	assert.Equal(t, first, second)
}
