// Package oadate converts OLE Automation dates to and from time.Time.
//
// An OLE Automation date is a floating-point count of days since midnight,
// 30 December 1899. For negative values the integer part counts days
// backwards while the fraction is still a positive time of day, so -1.25 is
// 29 December 1899, 06:00.
package oadate

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// MinValue and MaxValue are exclusive bounds of a legal OLE date.
	MinValue = -657435.0
	MaxValue = 2958466.0

	msPerDay    = 86400000.0
	msPerDayInt = 86400000
)

// ErrOutOfRange is returned for values outside (MinValue, MaxValue).
var ErrOutOfRange = errors.New("not a legal OLE Automation date")

var (
	epoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	// earliest instant FromTime can represent
	floor = time.Date(100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ToTime converts an OLE Automation date to a UTC timestamp, rounded to
// the nearest millisecond.
func ToTime(d float64) (time.Time, error) {
	if math.IsNaN(d) || d <= MinValue || d >= MaxValue {
		return time.Time{}, fmt.Errorf("%w: %v", ErrOutOfRange, d)
	}

	if d < 0 {
		days := math.Ceil(d)
		t := addMillis(epoch, roundedMillis(days*msPerDay))
		// the fraction is a positive time of day
		return addMillis(t, roundedMillis((days-d)*msPerDay)), nil
	}
	return addMillis(epoch, roundedMillis(d*msPerDay)), nil
}

// FromTime converts t to an OLE Automation date. The zero time maps to 0;
// instants outside the representable range are clamped just inside it.
func FromTime(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	if t.Before(floor) {
		return MinValue + 0.001
	}

	t = t.UTC()
	secs := t.Unix() - epoch.Unix()
	result := float64(secs)/86400.0 + float64(t.Nanosecond())/(86400.0*1e9)

	if t.Before(epoch) {
		// negative days but a positive fraction
		days := math.Floor(result)
		return days - (result - days)
	}
	if result >= MaxValue {
		return MaxValue - 0.00000001
	}
	return result
}

// roundedMillis rounds ms half away from zero.
func roundedMillis(ms float64) int64 {
	if ms > 0 {
		ms += 0.5
	} else {
		ms -= 0.5
	}
	return int64(ms)
}

// addMillis adds ms to t in whole days first; the full OLE range does not
// fit in a time.Duration.
func addMillis(t time.Time, ms int64) time.Time {
	days := ms / msPerDayInt
	rem := ms % msPerDayInt
	return t.AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Millisecond)
}
