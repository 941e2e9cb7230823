package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListMetadata reports pagination facts alongside a list payload. Total is
// the count across all pages, not the page length.
type ListMetadata struct {
	Total int64 `json:"total"`
	Limit int64 `json:"limit"`
	Skip  int64 `json:"skip"`
}

// envelope is the canonical response shape for every endpoint:
// {"success": ..., "message": ..., "metadata": {...}, "data": ...}.
type envelope struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Metadata *ListMetadata `json:"metadata,omitempty"`
	Data     any           `json:"data,omitempty"`
}

func respondData(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondList(c echo.Context, message string, meta ListMetadata, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: message, Metadata: &meta, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

const (
	defaultLimit = 10
	defaultSkip  = 0
)

// pagination reads ?limit= and ?skip= with the conventional defaults.
// Non-numeric or negative values are a client error.
func pagination(c echo.Context) (limit, skip int64, err error) {
	limit, err = queryInt(c, "limit", defaultLimit)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
	}
	skip, err = queryInt(c, "skip", defaultSkip)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "skip must be a non-negative integer")
	}
	return limit, skip, nil
}

func queryInt(c echo.Context, name string, def int64) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, echo.ErrBadRequest
	}
	return n, nil
}
