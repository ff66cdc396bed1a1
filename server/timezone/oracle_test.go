package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonemeet/zonemeet/internal/errors"
)

func TestLocalReading(t *testing.T) {
	instant := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		zoneID  string
		wantISO string
	}{
		{"UTC identity", "UTC", "2025-06-15T13:00"},
		{"London BST", "Europe/London", "2025-06-15T14:00"},
		{"New York EDT", "America/New_York", "2025-06-15T09:00"},
		{"Kolkata half-hour offset", "Asia/Kolkata", "2025-06-15T18:30"},
		{"Kathmandu 45-minute offset", "Asia/Kathmandu", "2025-06-15T18:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LocalReading(instant, tt.zoneID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantISO, r.ISO())
		})
	}
}

func TestLocalReading_UnsupportedZone(t *testing.T) {
	_, err := LocalReading(time.Now(), "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedZone))
}

func TestReading_DateNumber(t *testing.T) {
	r := Reading{Year: 2024, Month: 1, Day: 2}
	assert.Equal(t, 20240102, r.DateNumber())
}

func TestReading_HourDecimal(t *testing.T) {
	r := Reading{Hour: 23, Minute: 30}
	assert.InDelta(t, 23.5, r.HourDecimal(), 1e-9)
}

func TestRegistry(t *testing.T) {
	zones := Zones()
	require.NotEmpty(t, zones)

	assert.True(t, IsSupported("UTC"))
	assert.True(t, IsSupported("Europe/London"))
	assert.True(t, IsSupported("Pacific/Kiritimati"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("Not/A_Zone"))

	// Sorted enumeration, no duplicates.
	for i := 1; i < len(zones); i++ {
		assert.Less(t, zones[i-1], zones[i])
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantHit  string
		wantMiss string
	}{
		{"alias PST", "PST", "America/Los_Angeles", "America/New_York"},
		{"alias IST", "ist", "Asia/Kolkata", ""},
		{"city substring", "london", "Europe/London", "Europe/Paris"},
		{"two words", "new york", "America/New_York", ""},
		{"punctuated alias", "c.e.t.", "Europe/Paris", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(tt.query)
			assert.Contains(t, results, tt.wantHit)
			if tt.wantMiss != "" {
				assert.NotContains(t, results, tt.wantMiss)
			}
		})
	}

	t.Run("empty query returns all", func(t *testing.T) {
		assert.Equal(t, Zones(), Search(""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("zzzzzz"))
	})
}

func TestParseTimezone(t *testing.T) {
	loc, err := ParseTimezone("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	loc, err = ParseTimezone("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = ParseTimezone("bogus")
	assert.Error(t, err)
}
