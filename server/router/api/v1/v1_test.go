package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonemeet/zonemeet/internal/profile"
	"github.com/zonemeet/zonemeet/plugin/nlbridge"
)

func newTestService(bridge nlbridge.Bridge) *APIV1Service {
	p := &profile.Profile{Mode: "dev", Port: 8081, DefaultTimezone: "UTC"}
	return NewAPIV1Service(p, bridge)
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func TestConvert_Success(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.Convert, http.MethodPost, "/api/v1/convert",
		`{"datetime": "2025-06-15T14:00", "from": "Europe/London", "to": "America/New_York"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Resolved)
	assert.Equal(t, "Jun 15, 2025, 14:00", resp.FromFormatted)
	assert.Equal(t, "Jun 15, 2025, 09:00", resp.ToFormatted)
	assert.Equal(t, "09:00", resp.ToShort)
	require.NotNil(t, resp.DeltaHours)
	assert.Equal(t, -5.0, *resp.DeltaHours)
	assert.Equal(t, "-5 hrs", resp.DeltaLabel)
}

func TestConvert_EmptyInputDegrades(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.Convert, http.MethodPost, "/api/v1/convert",
		`{"datetime": "", "from": "Europe/London", "to": "America/New_York"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Resolved)
	assert.Equal(t, "UNRESOLVABLE_INSTANT", resp.Reason)
	assert.Equal(t, "—", resp.FromFormatted)
	assert.Equal(t, "—", resp.ToFormatted)
	assert.Equal(t, "±?? hrs", resp.DeltaLabel)
}

func TestConvert_MissingFromZoneUsesDefault(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.Convert, http.MethodPost, "/api/v1/convert",
		`{"datetime": "2025-06-15T14:00", "to": "Asia/Tokyo"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Wall-clock read in the profile default zone (UTC here).
	assert.True(t, resp.Resolved)
	require.NotNil(t, resp.DeltaHours)
	assert.Equal(t, 9.0, *resp.DeltaHours)
	assert.Equal(t, "23:00", resp.ToShort)
}

func TestConvert_UnsupportedZoneDegrades(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.Convert, http.MethodPost, "/api/v1/convert",
		`{"datetime": "2025-06-15T14:00", "from": "Mars/Olympus_Mons", "to": "UTC"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Resolved)
	assert.Equal(t, "UNSUPPORTED_ZONE", resp.Reason)
}

func TestOverlap_Success(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.Overlap, http.MethodPost, "/api/v1/overlap",
		`{"date": "2025-01-15", "from": "Europe/London", "to": "America/Sao_Paulo"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OverlapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Slots, 96)
	assert.True(t, resp.HasOverlap)
	require.NotNil(t, resp.OverlapWindow)
	assert.Equal(t, 48, resp.OverlapWindow.StartIndex)
	assert.Equal(t, 67, resp.OverlapWindow.EndIndex)
}

func TestOverlap_MissingFromZoneUsesDefault(t *testing.T) {
	svc := newTestService(nil)

	// Wall-clocks read in the profile default zone (UTC here); UTC and
	// Sao Paulo are three hours apart in January, so the shared 9-17 run
	// matches the explicit-zone case.
	rec, err := doJSON(t, svc.Overlap, http.MethodPost, "/api/v1/overlap",
		`{"date": "2025-01-15", "to": "America/Sao_Paulo"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OverlapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.HasOverlap)
	require.NotNil(t, resp.OverlapWindow)
	assert.Equal(t, 48, resp.OverlapWindow.StartIndex)
	assert.Equal(t, 67, resp.OverlapWindow.EndIndex)
}

func TestMalformedBodyRejected(t *testing.T) {
	svc := newTestService(nil)

	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{"convert", svc.Convert},
		{"overlap", svc.Overlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doJSON(t, tt.handler, http.MethodPost, "/api/v1/"+tt.name, `{"date": 42`)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			assert.Equal(t, "malformed request body", httpErr.Message)
		})
	}
}

func TestOverlap_UnsupportedZone(t *testing.T) {
	svc := newTestService(nil)

	_, err := doJSON(t, svc.Overlap, http.MethodPost, "/api/v1/overlap",
		`{"date": "2025-01-15", "from": "Nowhere/Land", "to": "UTC"}`)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestListTimezones(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.ListTimezones, http.MethodGet, "/api/v1/timezones?q=london", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TimezonesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Zones, "Europe/London")
}

func TestListPresets(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.ListPresets, http.MethodGet, "/api/v1/presets", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Workday")
}

func TestParse_HiddenWhenUnavailable(t *testing.T) {
	svc := newTestService(nil)

	_, err := doJSON(t, svc.ParseNaturalLanguage, http.MethodPost, "/api/v1/parse",
		`{"text": "tomorrow 3pm in Tokyo"}`)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestParse_Success(t *testing.T) {
	mock := nlbridge.NewMockBridge(`{"iso": "2025-06-16T15:00", "iana": "Asia/Tokyo"}`)
	svc := newTestService(mock)

	rec, err := doJSON(t, svc.ParseNaturalLanguage, http.MethodPost, "/api/v1/parse",
		`{"text": "tomorrow 3pm in Tokyo"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-16T15:00", resp.ISO)
	assert.Equal(t, "Asia/Tokyo", resp.Zone)
}

func TestParse_RefusalIsUnprocessable(t *testing.T) {
	mock := nlbridge.NewMockBridge("Sorry, I can't help.")
	svc := newTestService(mock)

	_, err := doJSON(t, svc.ParseNaturalLanguage, http.MethodPost, "/api/v1/parse",
		`{"text": "gibberish"}`)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
	assert.Equal(t, 1, mock.Calls)
}

func TestSystemMetrics(t *testing.T) {
	svc := newTestService(nil)

	rec, err := doJSON(t, svc.SystemMetrics, http.MethodGet, "/api/v1/metrics", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
