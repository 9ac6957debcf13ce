package handlers

import (
	"travel_wonders_go/middleware"

	"github.com/labstack/echo/v4"
)

// ListSpecialistsHandler returns enabled specialists, best rated first
// GET /api/specialists
func ListSpecialistsHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)

	specialists, err := Content.ListSpecialists(c.Request().Context(), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, specialists)
}

// GetSpecialistHandler returns a fully resolved specialist profile
// GET /api/specialists/:slug
func GetSpecialistHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)

	specialist, err := Content.SpecialistDetail(c.Request().Context(), c.Param("slug"), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, specialist)
}
