package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/zonemeet/zonemeet/internal/errors"
	"github.com/zonemeet/zonemeet/internal/observability"
)

// ParseRequest carries free-form meeting-time text for the assistant.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse is the validated assistant suggestion.
type ParseResponse struct {
	ISO  string `json:"iso"`
	Zone string `json:"iana,omitempty"`
}

// ParseNaturalLanguage forwards text to the assistant bridge. The route
// behaves as absent when the capability is not configured; a parse failure is
// a single user-visible notice and mutates nothing.
func (s *APIV1Service) ParseNaturalLanguage(c echo.Context) error {
	if s.Bridge == nil || !s.Bridge.Available() {
		return echo.NewHTTPError(http.StatusNotFound, "natural language parsing is not available")
	}

	logger := observability.NewRequestContext(slog.Default(), "parse")
	metrics := observability.GlobalMetrics()
	metrics.RecordRequest("parse")

	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierrors.Wrap(err, apierrors.ErrCodeInvalidArgument, "malformed request body")
		logger.Warn("request rejected",
			slog.String(observability.LogFieldErrorCode, string(apierr.GetCode())))
		metrics.RecordFailure("parse")
		return echo.NewHTTPError(http.StatusBadRequest, apierr.Message)
	}

	// Carry the request context so bridge retries log the same request id.
	ctx := observability.WithRequestContext(c.Request().Context(), logger)

	suggestion, err := s.Bridge.Parse(ctx, req.Text)
	if err != nil {
		code := apierrors.GetCodeFromError(err, apierrors.ErrCodeBridgeParseFailure)
		logger.Warn("assistant could not parse",
			slog.Int(observability.LogFieldInputLen, len(req.Text)),
			slog.String(observability.LogFieldErrorCode, string(code)))
		metrics.RecordFailure("parse")
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "could not parse the phrase")
	}

	logger.Info("assistant parse succeeded",
		slog.Int(observability.LogFieldInputLen, len(req.Text)),
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	metrics.RecordDuration("parse", logger.Duration())

	return c.JSON(http.StatusOK, ParseResponse{
		ISO:  suggestion.ISO,
		Zone: suggestion.Zone,
	})
}
