package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"

	"github.com/mrivnak/pi-fan/internal/fans"
)

func registerFanEndpoints(rest *echo.Echo) {
	group := rest.Group("/fan")

	group.GET("/", getFans)
	group.GET("/:"+urlParamId+"/", getFan)
}

func getFans(c echo.Context) error {
	data := reprint.This(fans.FanMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getFan(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := fans.FanMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}
