package handlers

import (
	"travel_wonders_go/middleware"
	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// ListCountriesHandler returns enabled countries matching the query filters
// GET /api/countries
func ListCountriesHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)
	filters := services.ParseCountryFilters(c.QueryParams())

	countries, err := Content.ListCountries(c.Request().Context(), filters, loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, countries)
}

// GetCountryHandler returns a fully resolved country
// GET /api/countries/:slug
func GetCountryHandler(c echo.Context) error {
	loc := middleware.GetLocale(c)

	country, err := Content.CountryDetail(c.Request().Context(), c.Param("slug"), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	return respondData(c, country)
}
