package handlers

import (
	"net/http"

	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// Items is the global raw item querier, wired at startup
var Items services.ItemQuerier

// Collections exposed through the raw items endpoint. Everything else
// is rejected up front.
var itemCollections = map[string]bool{
	"countries":             true,
	"wonders":               true,
	"wonder_tags":           true,
	"hikes":                 true,
	"attractions":           true,
	"specialists":           true,
	"specialist_countries":  true,
	"trips":                 true,
	"trip_dates":            true,
	"country_combinations":  true,
	"combination_countries": true,
	"best_combinations":     true,
}

// GetItemsHandler serves raw collection rows with filter/sort/limit
// query support mirroring the remote items API syntax
// GET /api/items/:collection
func GetItemsHandler(c echo.Context) error {
	collection := c.Param("collection")
	if !itemCollections[collection] {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown collection")
	}

	query := services.ParseItemQuery(collection, c.QueryParams())

	rows, err := Items.FetchItems(c.Request().Context(), query)
	if err != nil {
		return respondContentError(c, err)
	}

	if rows == nil {
		rows = []map[string]interface{}{}
	}

	return respondData(c, rows)
}
