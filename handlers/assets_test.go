package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetAssetHandler(t *testing.T) {
	services.Assets = services.NewLocalAssets(t.TempDir())

	content := strings.NewReader("fake image bytes")
	_, err := services.Assets.UploadReader(context.Background(), content, "countries/iceland.jpg", "image/jpeg", 16)
	assert.NoError(t, err)

	c, rec := request(http.MethodGet, "/assets/countries/iceland.jpg", "",
		map[string]string{"*": "countries/iceland.jpg"})
	assert.NoError(t, GetAssetHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "fake image bytes", rec.Body.String())
}

func TestGetAssetHandlerMissing(t *testing.T) {
	services.Assets = services.NewLocalAssets(t.TempDir())

	c, rec := request(http.MethodGet, "/assets/countries/gone.jpg", "",
		map[string]string{"*": "countries/gone.jpg"})
	err := GetAssetHandler(c)
	assertStatus(t, rec, err, http.StatusNotFound)
}

func TestGetAssetHandlerRejectsTraversal(t *testing.T) {
	services.Assets = services.NewLocalAssets(t.TempDir())

	c, rec := request(http.MethodGet, "/assets/../etc/passwd", "",
		map[string]string{"*": "../etc/passwd"})
	err := GetAssetHandler(c)
	assertStatus(t, rec, err, http.StatusNotFound)
}
