package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome on my API"

// Root handles GET /.
//
// @Summary      Welcome message
// @Tags         root
// @Produce      json
// @Success      200  {string}  string
// @Router       / [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, welcomeMessage)
}
