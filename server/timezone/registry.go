package timezone

import (
	"sort"
	"sync"
	"time"

	"github.com/zonemeet/zonemeet/internal/errors"
)

// candidateZones is the curated zone set offered to pickers. Entries that do
// not load on the host tz database are dropped at startup rather than
// surfaced as runtime failures.
var candidateZones = []string{
	TimezoneUTC,
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"Africa/Nairobi",
	"America/Anchorage",
	"America/Argentina/Buenos_Aires",
	"America/Bogota",
	"America/Chicago",
	"America/Denver",
	"America/Halifax",
	"America/Lima",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/New_York",
	"America/Phoenix",
	"America/Santiago",
	"America/Sao_Paulo",
	"America/St_Johns",
	"America/Toronto",
	"America/Vancouver",
	"Asia/Bangkok",
	"Asia/Dhaka",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Jakarta",
	"Asia/Jerusalem",
	"Asia/Karachi",
	"Asia/Kathmandu",
	"Asia/Kolkata",
	"Asia/Kuala_Lumpur",
	"Asia/Manila",
	"Asia/Riyadh",
	"Asia/Seoul",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Taipei",
	"Asia/Tehran",
	"Asia/Tokyo",
	"Atlantic/Azores",
	"Atlantic/Reykjavik",
	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Darwin",
	"Australia/Melbourne",
	"Australia/Perth",
	"Australia/Sydney",
	"Europe/Amsterdam",
	"Europe/Athens",
	"Europe/Berlin",
	"Europe/Brussels",
	"Europe/Dublin",
	"Europe/Helsinki",
	"Europe/Istanbul",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Oslo",
	"Europe/Paris",
	"Europe/Prague",
	"Europe/Rome",
	"Europe/Stockholm",
	"Europe/Vienna",
	"Europe/Warsaw",
	"Europe/Zurich",
	"Pacific/Auckland",
	"Pacific/Chatham",
	"Pacific/Fiji",
	"Pacific/Honolulu",
	"Pacific/Kiritimati",
	"Pacific/Niue",
}

type registry struct {
	zones     []string
	locations map[string]*time.Location
}

var (
	registryOnce sync.Once
	reg          *registry
)

// loadRegistry enumerates the supported zone set once at startup.
func loadRegistry() *registry {
	registryOnce.Do(func() {
		r := &registry{
			locations: make(map[string]*time.Location, len(candidateZones)),
		}
		for _, id := range candidateZones {
			loc, err := ParseTimezone(id)
			if err != nil {
				continue
			}
			r.locations[id] = loc
			r.zones = append(r.zones, id)
		}
		sort.Strings(r.zones)
		reg = r
	})
	return reg
}

// Zones returns the supported zone identifiers in sorted order.
// The returned slice must not be mutated.
func Zones() []string {
	return loadRegistry().zones
}

// IsSupported reports whether zoneID belongs to the supported set.
// Unknown ids are rejected, never silently coerced.
func IsSupported(zoneID string) bool {
	_, ok := loadRegistry().locations[zoneID]
	return ok
}

// lookup resolves a supported zone id to its pre-loaded location.
func lookup(zoneID string) (*time.Location, error) {
	loc, ok := loadRegistry().locations[zoneID]
	if !ok {
		return nil, errors.UnsupportedZone(zoneID)
	}
	return loc, nil
}
