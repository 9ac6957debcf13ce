package handlers

import (
	"travel_wonders_go/middleware"

	"github.com/labstack/echo/v4"
)

// GetCombinationHandler returns a resolved multi-country itinerary
// GET /api/country-combinations/:slug
func GetCombinationHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)

	combination, err := Content.CombinationDetail(c.Request().Context(), c.Param("slug"), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, combination)
}
