package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonemeet/zonemeet/internal/observability"
	"github.com/zonemeet/zonemeet/server/timezone"
)

// TimezonesResponse lists supported zone ids, optionally filtered.
type TimezonesResponse struct {
	Zones []string `json:"zones"`
}

// ListTimezones returns the supported zone set, filtered by the q parameter
// through alias and substring search when present.
func (s *APIV1Service) ListTimezones(c echo.Context) error {
	query := c.QueryParam("q")

	zones := timezone.Search(query)
	if zones == nil {
		zones = []string{}
	}

	return c.JSON(http.StatusOK, TimezonesResponse{Zones: zones})
}

// SystemMetrics returns the in-process operation counters.
func (s *APIV1Service) SystemMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, observability.GlobalMetrics().GetSnapshot())
}
