package http_server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/tastedash/tastedash/loader"
	"github.com/tastedash/tastedash/report"
)

func (s *HTTPServer) ReportHandler(c *CustomContext) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second*30)
	defer cancel()

	var reqBody report.Request
	if err := ValidateRequest(c, &reqBody); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	resp, err := s.Reports.Generate(ctx, reqBody)
	if err != nil {
		var loadErr *loader.LoadError
		if errors.As(err, &loadErr) {
			// fatal for this report, no retries
			return c.InternalError(err, "error loading dataset for report")
		}
		return c.InternalError(err, "error generating report")
	}

	zerolog.Ctx(ctx).Debug().Str("reportID", resp.ID).Int("rows", resp.Metrics.RowCount).Msg("generated report")

	return c.JSON(http.StatusOK, resp)
}
