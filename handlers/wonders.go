package handlers

import (
	"travel_wonders_go/middleware"

	"github.com/labstack/echo/v4"
)

// GetWonderHandler returns a fully resolved wonder
// GET /api/wonders/:slug
func GetWonderHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)

	wonder, err := Content.WonderDetail(c.Request().Context(), c.Param("slug"), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, wonder)
}
