package convert

import (
	"fmt"
	"math"
	"time"

	"github.com/zonemeet/zonemeet/server/timezone"
)

// DayRelation classifies the to-zone's calendar date against the from-zone's
// at the same instant. Display annotation only; it never alters the instant.
type DayRelation string

const (
	SameDay     DayRelation = "SAME_DAY"
	NextDay     DayRelation = "NEXT_DAY"
	PreviousDay DayRelation = "PREVIOUS_DAY"
)

// Placeholder is the display value substituted for any field whose zone
// formatting failed. Failures stay local to the field.
const Placeholder = "—"

// UnknownDeltaLabel is the offset label shown when either offset is unknown.
const UnknownDeltaLabel = "±?? hrs"

// OffsetMinutes returns zoneID's UTC offset at the instant, in minutes,
// east of UTC positive. The oracle's local reading is reinterpreted as if it
// were itself a UTC instant and differenced against the true instant.
func OffsetMinutes(zoneID string, instant time.Time) (int, error) {
	r, err := timezone.LocalReading(instant, zoneID)
	if err != nil {
		return 0, err
	}

	epochLocal := time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, 0, time.UTC)
	return int(epochLocal.Sub(instant.Truncate(time.Second)) / time.Minute), nil
}

// OffsetDeltaHours returns the signed hour difference between the two zones
// at the instant: positive when toZone is ahead of fromZone.
func OffsetDeltaHours(fromZone, toZone string, instant time.Time) (float64, error) {
	offFrom, err := OffsetMinutes(fromZone, instant)
	if err != nil {
		return 0, err
	}
	offTo, err := OffsetMinutes(toZone, instant)
	if err != nil {
		return 0, err
	}
	return float64(offTo-offFrom) / 60, nil
}

// Relation compares the two zones' local calendar dates at the instant.
func Relation(fromZone, toZone string, instant time.Time) (DayRelation, error) {
	a, err := timezone.LocalReading(instant, fromZone)
	if err != nil {
		return "", err
	}
	b, err := timezone.LocalReading(instant, toZone)
	if err != nil {
		return "", err
	}

	switch {
	case b.DateNumber() > a.DateNumber():
		return NextDay, nil
	case b.DateNumber() < a.DateNumber():
		return PreviousDay, nil
	default:
		return SameDay, nil
	}
}

// DiffLabel renders a signed hour delta as "+H hrs" / "-H:MM hrs", with
// minutes shown only when nonzero.
func DiffLabel(deltaHours float64) string {
	sign := "+"
	if deltaHours < 0 {
		sign = "-"
	}
	abs := math.Abs(deltaHours)
	h := int(abs)
	m := int(math.Round((abs - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	if m != 0 {
		return fmt.Sprintf("%s%d:%02d hrs", sign, h, m)
	}
	return fmt.Sprintf("%s%d hrs", sign, h)
}

// FormatForZone renders the instant as a medium date plus short time in the
// given zone, e.g. "Jun 15, 2025, 14:00". Returns the placeholder on any
// formatting failure.
func FormatForZone(instant time.Time, zoneID string) string {
	r, err := timezone.LocalReading(instant, zoneID)
	if err != nil {
		return Placeholder
	}
	local := time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, 0, 0, time.UTC)
	return local.Format("Jan 2, 2006, 15:04")
}

// ShortTime renders only the clock time in the given zone, e.g. "09:00".
func ShortTime(instant time.Time, zoneID string) string {
	r, err := timezone.LocalReading(instant, zoneID)
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// Result is one full cross-zone conversion derived from a single instant.
// Every field is recomputed per call; failed fields carry placeholders and
// never abort the others.
type Result struct {
	Instant       time.Time   `json:"instant"`
	FromFormatted string      `json:"fromFormatted"`
	ToFormatted   string      `json:"toFormatted"`
	ToShort       string      `json:"toShort"`
	ToLocalISO    string      `json:"toLocalIso"`
	DeltaHours    *float64    `json:"deltaHours,omitempty"`
	DeltaLabel    string      `json:"deltaLabel"`
	Relation      DayRelation `json:"dayRelation,omitempty"`
	Sentence      string      `json:"sentence,omitempty"`
}

// Convert derives the full cross-zone result for an already-resolved instant.
func Convert(instant time.Time, fromZone, toZone string) Result {
	res := Result{
		Instant:       instant,
		FromFormatted: FormatForZone(instant, fromZone),
		ToFormatted:   FormatForZone(instant, toZone),
		ToShort:       ShortTime(instant, toZone),
		DeltaLabel:    UnknownDeltaLabel,
	}

	if iso, err := timezone.LocalISO(instant, toZone); err == nil {
		res.ToLocalISO = iso
	}

	if delta, err := OffsetDeltaHours(fromZone, toZone, instant); err == nil {
		res.DeltaHours = &delta
		res.DeltaLabel = DiffLabel(delta)
	}

	if rel, err := Relation(fromZone, toZone, instant); err == nil {
		res.Relation = rel
	}

	res.Sentence = sentence(res, fromZone, toZone)
	return res
}

// sentence renders the humanized summary, absent when either side's
// formatting failed.
func sentence(res Result, fromZone, toZone string) string {
	if res.FromFormatted == Placeholder || res.ToShort == Placeholder {
		return ""
	}

	dayPrefix := ""
	switch res.Relation {
	case PreviousDay:
		dayPrefix = "(previous day) "
	case NextDay:
		dayPrefix = "(next day) "
	}

	return fmt.Sprintf("%s (%s) is %s%s (%s) in %s.",
		res.FromFormatted, fromZone, dayPrefix, res.ToShort, res.DeltaLabel, toZone)
}
