package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rafidhani/tukang-backend/internal/model"
)

// qrisSettings is the static merchant record shown on the payment screen.
// QRIS here is a display aid for manual transfer, not a gateway; there is
// nothing to persist.
var qrisSettings = model.QRISSettings{
	MerchantName:  "HandyMan Official",
	MerchantPhone: "0812-3456-7890",
	QRISImage:     "qris-default.png",
}

// QRISSettings handles GET /api/qris-settings.
func QRISSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": qrisSettings})
}
