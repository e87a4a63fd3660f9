package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload shape of the public API.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OKResponse writes data as-is with 200.
func OKResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// AppErrorResponse maps an AppError to its status, anything else to 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Code, Message: appErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal error", Message: err.Error()})
}
