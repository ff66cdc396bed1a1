package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/zonemeet/zonemeet/internal/errors"
	"github.com/zonemeet/zonemeet/internal/observability"
	"github.com/zonemeet/zonemeet/server/service/overlap"
	"github.com/zonemeet/zonemeet/server/timezone"
)

// OverlapRequest samples one calendar day (read in the from zone) against
// both zones' working windows. Omitted windows default to 9-17.
type OverlapRequest struct {
	Date       string          `json:"date"`
	FromZone   string          `json:"from"`
	ToZone     string          `json:"to"`
	FromWindow *overlap.Window `json:"fromWindow,omitempty"`
	ToWindow   *overlap.Window `json:"toWindow,omitempty"`
}

// OverlapResponse is the classified 96-slot grid plus the first contiguous
// both-zones run, when one exists.
type OverlapResponse struct {
	Slots         []overlap.Slot `json:"slots"`
	OverlapWindow *overlap.Run   `json:"overlapWindow,omitempty"`
	HasOverlap    bool           `json:"hasOverlap"`
}

// Overlap builds the availability grid for one day.
func (s *APIV1Service) Overlap(c echo.Context) error {
	logger := observability.NewRequestContext(slog.Default(), "overlap")
	metrics := observability.GlobalMetrics()
	metrics.RecordRequest("overlap")

	var req OverlapRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierrors.Wrap(err, apierrors.ErrCodeInvalidArgument, "malformed request body")
		logger.Warn("request rejected",
			slog.String(observability.LogFieldErrorCode, string(apierr.GetCode())))
		metrics.RecordFailure("overlap")
		return echo.NewHTTPError(http.StatusBadRequest, apierr.Message)
	}

	if req.FromZone == "" {
		req.FromZone = s.Profile.DefaultTimezone
	}

	if !timezone.IsSupported(req.FromZone) || !timezone.IsSupported(req.ToZone) {
		metrics.RecordFailure("overlap")
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported zone id")
	}

	fromWin := overlap.DefaultWindow
	if req.FromWindow != nil {
		fromWin = *req.FromWindow
	}
	toWin := overlap.DefaultWindow
	if req.ToWindow != nil {
		toWin = *req.ToWindow
	}

	grid, err := overlap.Build(req.Date, req.FromZone, req.ToZone, fromWin, toWin)
	if err != nil {
		logger.Error("grid build failed", err,
			slog.String(observability.LogFieldFromZone, req.FromZone),
			slog.String(observability.LogFieldToZone, req.ToZone))
		metrics.RecordFailure("overlap")
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	logger.Info("availability grid computed",
		slog.String(observability.LogFieldFromZone, req.FromZone),
		slog.String(observability.LogFieldToZone, req.ToZone),
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	metrics.RecordDuration("overlap", logger.Duration())

	return c.JSON(http.StatusOK, OverlapResponse{
		Slots:         grid.Slots,
		OverlapWindow: grid.Run,
		HasOverlap:    grid.Run != nil,
	})
}

// ListPresets returns the built-in working-hours presets.
func (s *APIV1Service) ListPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, overlap.Presets())
}
