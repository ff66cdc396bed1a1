// Package convert implements the timezone-aware conversion core: resolving a
// wall-clock reading in a named zone to an absolute instant, and deriving
// cross-zone offsets, day-boundary relations, and display strings from it.
package convert

import (
	"regexp"
	"time"

	"github.com/zonemeet/zonemeet/internal/errors"
	"github.com/zonemeet/zonemeet/server/timezone"
)

// WallClock is a calendar date plus time-of-day with no attached zone.
// It is only ever interpreted relative to an explicit zone id.
type WallClock struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// ISO returns the zero-padded "YYYY-MM-DDTHH:MM" form.
func (w WallClock) ISO() string {
	return timezone.Reading{
		Year: w.Year, Month: w.Month, Day: w.Day,
		Hour: w.Hour, Minute: w.Minute,
	}.ISO()
}

var isoWallClockPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})`)

// freeTextLayouts are the permissive layouts accepted on the secondary input
// path for copy-pasted text. Values parsed this way are read as UTC instants
// and re-anchored into the requested zone.
var freeTextLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04",
	"2006/01/02",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006 15:04",
	"January 2, 2006",
}

const (
	// searchHalfSpan bounds the binary search around the naive UTC reading.
	// Real-world UTC offsets span -12:00 to +14:00, so ±18h always covers
	// the target instant.
	searchHalfSpan = 18 * time.Hour

	// maxSearchIterations caps the binary search against non-convergence.
	maxSearchIterations = 50
)

// ParseWallClock parses the primary "YYYY-MM-DDTHH:MM" input shape.
// Trailing seconds are tolerated and truncated to minute precision.
func ParseWallClock(input string) (WallClock, bool) {
	m := isoWallClockPattern.FindStringSubmatch(input)
	if m == nil {
		return WallClock{}, false
	}
	w := WallClock{
		Year:   atoi(m[1]),
		Month:  atoi(m[2]),
		Day:    atoi(m[3]),
		Hour:   atoi(m[4]),
		Minute: atoi(m[5]),
	}
	if w.Month < 1 || w.Month > 12 || w.Day < 1 || w.Day > 31 || w.Hour > 23 || w.Minute > 59 {
		return WallClock{}, false
	}
	return w, true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// Resolve finds the instant whose local reading in zoneID equals the given
// wall-clock, truncated to minute precision.
//
// The search walks a ±18h window around the naive UTC interpretation,
// comparing zero-padded ISO readings lexicographically; local time advances
// monotonically between DST transitions, so the ordering is sound for any
// fixed zone. Ambiguous "fall back" readings resolve to whichever of the two
// repeated minutes the bisection converges to; non-existent "spring forward"
// readings fall through to the noon-offset approximation, which applies the
// post-transition offset to the target reading.
func Resolve(w WallClock, zoneID string) (time.Time, error) {
	if zoneID == "" {
		return time.Time{}, errors.UnresolvableInstant("missing zone id")
	}
	if !timezone.IsSupported(zoneID) {
		return time.Time{}, errors.UnsupportedZone(zoneID)
	}

	target := w.ISO()
	naive := time.Date(w.Year, time.Month(w.Month), w.Day, w.Hour, w.Minute, 0, 0, time.UTC)

	if instant, ok := bisect(target, naive, zoneID); ok {
		return instant, nil
	}

	// The exact reading does not occur in this zone (DST gap) or the search
	// exhausted its budget. Approximate with the zone's offset at local noon
	// UTC on the same calendar date.
	noon := time.Date(w.Year, time.Month(w.Month), w.Day, 12, 0, 0, 0, time.UTC)
	if offset, err := OffsetMinutes(zoneID, noon); err == nil {
		return naive.Add(-time.Duration(offset) * time.Minute), nil
	}

	// Last resort: the naive UTC interpretation unmodified.
	return naive, nil
}

// ResolveInput resolves user text against a zone. The primary path expects
// the ISO wall-clock shape; anything else is tried against the free-text
// layouts, read as UTC, and re-anchored into zoneID through the same search.
func ResolveInput(input string, zoneID string) (time.Time, error) {
	if input == "" {
		return time.Time{}, errors.UnresolvableInstant("empty wall-clock input")
	}

	if w, ok := ParseWallClock(input); ok {
		return Resolve(w, zoneID)
	}

	for _, layout := range freeTextLayouts {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		w := WallClock{
			Year:   t.Year(),
			Month:  int(t.Month()),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
		}
		return Resolve(w, zoneID)
	}

	return time.Time{}, errors.UnresolvableInstant("unrecognized wall-clock input")
}

// bisect runs the bounded binary search. It reports false when the interval
// collapses without the oracle ever producing the target reading, or when the
// iteration cap is hit.
func bisect(target string, naive time.Time, zoneID string) (time.Time, bool) {
	low := naive.Add(-searchHalfSpan)
	high := naive.Add(searchHalfSpan)

	for i := 0; i < maxSearchIterations; i++ {
		mid := low.Add(high.Sub(low) / 2)

		r, err := timezone.LocalReading(mid, zoneID)
		if err != nil {
			return time.Time{}, false
		}

		iso := r.ISO()
		if iso == target {
			// Snap to the start of the matched minute so repeated
			// resolutions of the same wall-clock agree exactly.
			return mid.Truncate(time.Second).Add(-time.Duration(r.Second) * time.Second), true
		}

		if iso < target {
			low = mid
		} else {
			high = mid
		}

		// A sub-minute interval cannot straddle a DST discontinuity (real
		// shifts are at least 15 minutes), so once the window collapses the
		// target reading either already matched or never occurs in this zone.
		if high.Sub(low) < time.Minute {
			return time.Time{}, false
		}
	}

	return time.Time{}, false
}
