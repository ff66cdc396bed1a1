// Package timezone provides the zone-offset oracle for the zonemeet core.
//
// The oracle answers one question: given an absolute instant and an IANA
// zone identifier, what calendar date and clock time does that zone observe?
// It is backed by the platform tz database via time.LoadLocation; IANA rule
// tables are never reimplemented here.
package timezone

import (
	"fmt"
	"time"
)

// Default location constants
var (
	// UTC is the coordinated universal time timezone
	UTC = time.UTC
)

// TimezoneUTC is the UTC timezone identifier.
const TimezoneUTC = "UTC"

// Reading is the local calendar date and clock time a zone observes at an
// instant. All fields are in the zone's own wall-clock reckoning.
type Reading struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// ISO returns the zero-padded "YYYY-MM-DDTHH:MM" form of the reading.
// The representation is lexicographically ordered, which the instant
// resolver relies on.
func (r Reading) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", r.Year, r.Month, r.Day, r.Hour, r.Minute)
}

// DateNumber returns the calendar date as a single sortable integer
// (year*10000 + month*100 + day).
func (r Reading) DateNumber() int {
	return r.Year*10000 + r.Month*100 + r.Day
}

// HourDecimal returns the clock time as decimal hours in [0, 24).
func (r Reading) HourDecimal() float64 {
	return float64(r.Hour) + float64(r.Minute)/60
}

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Shanghai").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == TimezoneUTC {
		return UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// IsValidTimezone checks if a timezone identifier is loadable.
// Validity is weaker than membership in the supported set; see IsSupported.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == TimezoneUTC {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}

// LocalReading returns the calendar date and clock time that zoneID observes
// at the given instant. Zone ids outside the supported set are rejected.
func LocalReading(instant time.Time, zoneID string) (Reading, error) {
	loc, err := lookup(zoneID)
	if err != nil {
		return Reading{}, err
	}

	local := instant.In(loc)
	return Reading{
		Year:   local.Year(),
		Month:  int(local.Month()),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}, nil
}

// LocalISO formats the instant as "YYYY-MM-DDTHH:MM" in the given zone.
func LocalISO(instant time.Time, zoneID string) (string, error) {
	r, err := LocalReading(instant, zoneID)
	if err != nil {
		return "", err
	}
	return r.ISO(), nil
}

// LocalHourDecimal returns the zone's clock time at the instant as decimal
// hours in [0, 24).
func LocalHourDecimal(instant time.Time, zoneID string) (float64, error) {
	r, err := LocalReading(instant, zoneID)
	if err != nil {
		return 0, err
	}
	return r.HourDecimal(), nil
}
