package handlers

import (
	"net/http"
	"strings"

	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// GetAssetHandler streams a stored media file (hero images, portraits)
// GET /assets/*
func GetAssetHandler(c echo.Context) error {
	key := c.Param("*")
	if key == "" || strings.Contains(key, "..") {
		return echo.NewHTTPError(http.StatusNotFound, "Asset not found")
	}
	if services.Assets == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Asset not found")
	}

	reader, contentType, err := services.Assets.Get(c.Request().Context(), key)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Asset not found")
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, contentType, reader)
}
