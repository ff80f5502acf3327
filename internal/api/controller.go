package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrivnak/pi-fan/internal/controller"
)

func registerControllerEndpoints(rest *echo.Echo, fanController controller.FanController) {
	group := rest.Group("/controller")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, fanController.Snapshot(), indentationChar)
	})
}
