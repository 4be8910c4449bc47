package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// internalError is the uniform body for unexpected failures. The driver
// error is logged server-side only; clients never see it.
var internalError = echo.Map{"success": false, "message": "terjadi kesalahan pada server"}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id != 0
}
