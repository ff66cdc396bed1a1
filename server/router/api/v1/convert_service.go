package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/zonemeet/zonemeet/internal/errors"
	"github.com/zonemeet/zonemeet/internal/observability"
	"github.com/zonemeet/zonemeet/server/service/convert"
)

// ConvertRequest is the conversion input: a wall-clock string with no UTC
// offset, interpreted in the from zone.
type ConvertRequest struct {
	Datetime string `json:"datetime"`
	FromZone string `json:"from"`
	ToZone   string `json:"to"`
}

// ConvertResponse carries the derived conversion, or placeholders when a
// side could not be resolved or formatted.
type ConvertResponse struct {
	Resolved bool   `json:"resolved"`
	Reason   string `json:"reason,omitempty"`

	Instant       *time.Time          `json:"instant,omitempty"`
	FromFormatted string              `json:"fromFormatted"`
	ToFormatted   string              `json:"toFormatted"`
	ToShort       string              `json:"toShort"`
	ToLocalISO    string              `json:"toLocalIso,omitempty"`
	DeltaHours    *float64            `json:"deltaHours,omitempty"`
	DeltaLabel    string              `json:"deltaLabel"`
	DayRelation   convert.DayRelation `json:"dayRelation,omitempty"`
	Sentence      string              `json:"sentence,omitempty"`
}

// placeholderResponse is the total-function degradation: no fault escapes,
// the caller renders dashes.
func placeholderResponse(reason apierrors.ErrorCode) ConvertResponse {
	return ConvertResponse{
		Resolved:      false,
		Reason:        string(reason),
		FromFormatted: convert.Placeholder,
		ToFormatted:   convert.Placeholder,
		ToShort:       convert.Placeholder,
		DeltaLabel:    convert.UnknownDeltaLabel,
	}
}

// Convert resolves the wall-clock in the from zone and derives the full
// cross-zone result. Failures degrade to placeholders with HTTP 200; a
// failing to-zone never suppresses the from-zone fields.
func (s *APIV1Service) Convert(c echo.Context) error {
	logger := observability.NewRequestContext(slog.Default(), "convert")
	metrics := observability.GlobalMetrics()
	metrics.RecordRequest("convert")

	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierrors.Wrap(err, apierrors.ErrCodeInvalidArgument, "malformed request body")
		logger.Warn("request rejected",
			slog.String(observability.LogFieldErrorCode, string(apierr.GetCode())))
		metrics.RecordFailure("convert")
		return echo.NewHTTPError(http.StatusBadRequest, apierr.Message)
	}

	if req.Datetime == "" {
		return c.JSON(http.StatusOK, placeholderResponse(apierrors.ErrCodeUnresolvableInstant))
	}
	if req.FromZone == "" {
		req.FromZone = s.Profile.DefaultTimezone
	}

	logger.Debug("resolving wall-clock",
		slog.Int(observability.LogFieldInputLen, len(req.Datetime)),
		slog.String(observability.LogFieldFromZone, req.FromZone))

	instant, err := convert.ResolveInput(req.Datetime, req.FromZone)
	if err != nil {
		code := apierrors.GetCodeFromError(err, apierrors.ErrCodeUnresolvableInstant)
		logger.Warn("wall-clock not resolvable",
			slog.String(observability.LogFieldFromZone, req.FromZone),
			slog.String(observability.LogFieldErrorCode, string(code)))
		metrics.RecordFailure("convert")
		return c.JSON(http.StatusOK, placeholderResponse(code))
	}

	res := convert.Convert(instant, req.FromZone, req.ToZone)

	logger.Info("conversion computed",
		slog.String(observability.LogFieldFromZone, req.FromZone),
		slog.String(observability.LogFieldToZone, req.ToZone),
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	metrics.RecordDuration("convert", logger.Duration())

	return c.JSON(http.StatusOK, ConvertResponse{
		Resolved:      true,
		Instant:       &res.Instant,
		FromFormatted: res.FromFormatted,
		ToFormatted:   res.ToFormatted,
		ToShort:       res.ToShort,
		ToLocalISO:    res.ToLocalISO,
		DeltaHours:    res.DeltaHours,
		DeltaLabel:    res.DeltaLabel,
		DayRelation:   res.Relation,
		Sentence:      res.Sentence,
	})
}
