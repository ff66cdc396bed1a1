// Package overlap partitions a calendar day into 15-minute slots and
// classifies each slot by which zones' working-hours windows contain it,
// locating the first contiguous run where both zones are working.
package overlap

import (
	"fmt"
	"time"

	"github.com/zonemeet/zonemeet/server/service/convert"
	"github.com/zonemeet/zonemeet/server/timezone"
)

const (
	// SlotsPerDay is 24 hours * 4 slots per hour.
	SlotsPerDay = 96
	// SlotMinutes is the fixed slot duration.
	SlotMinutes = 15
)

// SlotStatus classifies one slot by working-hours membership.
type SlotStatus string

const (
	StatusBoth     SlotStatus = "both"
	StatusFromOnly SlotStatus = "fromOnly"
	StatusToOnly   SlotStatus = "toOnly"
	StatusNone     SlotStatus = "none"
)

// Window is a working-hours window in decimal hours, half-open on the upper
// bound. Start > End means an overnight window (e.g. 22 to 6). Start == End
// is a zero-width window that matches nothing; "all day" is [0, 24).
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether the local decimal hour falls inside the window.
func (w Window) Contains(localHour float64) bool {
	if w.Start <= w.End {
		return localHour >= w.Start && localHour < w.End
	}
	// Overnight wrap.
	return localHour >= w.Start || localHour < w.End
}

// Slot is one 15-minute subdivision of the sampled day. Instant marks the
// start of the slot's interval.
type Slot struct {
	Index   int        `json:"index"`
	Hour    int        `json:"hour"`
	Minute  int        `json:"minute"`
	Instant time.Time  `json:"instant"`
	Status  SlotStatus `json:"status"`
}

// Run is the first maximal contiguous run of both-zones slots. StartInstant
// and EndInstant are slot starts; EndInstant is the start of the last
// matching slot, not its close.
type Run struct {
	StartIndex   int       `json:"startIndex"`
	EndIndex     int       `json:"endIndex"`
	StartInstant time.Time `json:"startInstant"`
	EndInstant   time.Time `json:"endInstant"`
}

// Grid is one full classification pass over a day. It holds no state beyond
// its inputs' derived values and is rebuilt on every input change.
type Grid struct {
	Slots []Slot `json:"slots"`
	Run   *Run   `json:"overlapWindow,omitempty"`
}

// SlotClock returns the wall-clock hour and minute a slot index begins at.
func SlotClock(index int) (hh, mm int) {
	return index / (60 / SlotMinutes), (index % (60 / SlotMinutes)) * SlotMinutes
}

// Build samples the calendar day (the date part of an ISO wall-clock string,
// read in fromZone) across 96 slots and classifies each against both zones'
// windows. Slots whose instant cannot be resolved, or whose local hour in a
// zone cannot be read, count as outside that zone's window.
func Build(date string, fromZone, toZone string, fromWin, toWin Window) (*Grid, error) {
	base, ok := convert.ParseWallClock(date + "T00:00")
	if !ok {
		// Accept a full wall-clock string too; only the date part matters.
		base, ok = convert.ParseWallClock(date)
		if !ok {
			return nil, fmt.Errorf("invalid grid date %q", date)
		}
	}

	grid := &Grid{Slots: make([]Slot, 0, SlotsPerDay)}

	for i := 0; i < SlotsPerDay; i++ {
		hh, mm := SlotClock(i)
		wc := convert.WallClock{
			Year: base.Year, Month: base.Month, Day: base.Day,
			Hour: hh, Minute: mm,
		}

		slot := Slot{Index: i, Hour: hh, Minute: mm, Status: StatusNone}

		instant, err := convert.Resolve(wc, fromZone)
		if err == nil {
			slot.Instant = instant
			slot.Status = classify(instant, fromZone, toZone, fromWin, toWin)
		}

		grid.Slots = append(grid.Slots, slot)
	}

	grid.Run = findRun(grid.Slots)
	return grid, nil
}

// classify tests one instant against both zones' windows.
func classify(instant time.Time, fromZone, toZone string, fromWin, toWin Window) SlotStatus {
	inFrom := false
	if h, err := timezone.LocalHourDecimal(instant, fromZone); err == nil {
		inFrom = fromWin.Contains(h)
	}

	inTo := false
	if h, err := timezone.LocalHourDecimal(instant, toZone); err == nil {
		inTo = toWin.Contains(h)
	}

	switch {
	case inFrom && inTo:
		return StatusBoth
	case inFrom:
		return StatusFromOnly
	case inTo:
		return StatusToOnly
	default:
		return StatusNone
	}
}

// findRun scans for the first both-slot and extends while contiguous both
// slots follow. Nil when no both slot exists; never a degenerate range.
func findRun(slots []Slot) *Run {
	start := -1
	for i := range slots {
		if slots[i].Status == StatusBoth {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := start
	for i := start + 1; i < len(slots); i++ {
		if slots[i].Status != StatusBoth {
			break
		}
		end = i
	}

	return &Run{
		StartIndex:   start,
		EndIndex:     end,
		StartInstant: slots[start].Instant,
		EndInstant:   slots[end].Instant,
	}
}
