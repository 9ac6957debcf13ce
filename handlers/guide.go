package handlers

import (
	"fmt"
	"net/http"

	"travel_wonders_go/middleware"
	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// GetCountryGuideHandler renders a printable country guide
// GET /api/countries/:slug/guide.pdf
func GetCountryGuideHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)
	slug := c.Param("slug")

	country, err := Content.CountryDetail(c.Request().Context(), slug, loc)
	if err != nil {
		return respondContentError(c, err)
	}

	pdf, err := services.GenerateCountryGuidePDF(country, loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate guide")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-guide.pdf"`, slug))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
