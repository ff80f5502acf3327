package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrivnak/pi-fan/internal/curve"
)

func registerCurveEndpoints(rest *echo.Echo, fanCurve *curve.Curve) {
	group := rest.Group("/curve")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, fanCurve.Points(), indentationChar)
	})
}
