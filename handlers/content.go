package handlers

import (
	"errors"
	"log"
	"net/http"

	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// Content is the global content source, wired at startup
var Content services.ContentSource

// dataEnvelope is the response shape of every content endpoint
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

func respondData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, dataEnvelope{Data: data})
}

// respondContentError maps a content lookup failure to the wire. Missing
// content is a 404 with a null data field; anything else is a 500.
func respondContentError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dataEnvelope{Data: nil})
	}
	log.Printf("[ERROR] content lookup failed: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch content"})
}
