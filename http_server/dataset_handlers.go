package http_server

import (
	"context"
	"net/http"
	"time"
)

func (s *HTTPServer) GetColumns(c *CustomContext) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second*15)
	defer cancel()

	columns, err := s.Reports.Columns(ctx)
	if err != nil {
		return c.InternalError(err, "error getting columns")
	}

	return c.JSON(http.StatusOK, columns)
}

func (s *HTTPServer) GetColumnValues(c *CustomContext) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second*15)
	defer cancel()

	values, err := s.Reports.Values(ctx, c.Param("column"))
	if err != nil {
		return c.InternalError(err, "error getting column values")
	}

	return c.JSON(http.StatusOK, values)
}
