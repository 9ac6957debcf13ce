package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetItemsHandler(t *testing.T) {
	setupHandlerTest(t)

	c, rec := request(http.MethodGet, "/api/items/countries?filter[enabled][_eq]=true&sort=slug", "",
		map[string]string{"collection": "countries"})
	assert.NoError(t, GetItemsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	decodeData(t, rec.Body.Bytes(), &rows)
	assert.Len(t, rows, 2)
	assert.Equal(t, "iceland", rows[0]["slug"])
	assert.Equal(t, "peru", rows[1]["slug"])
}

func TestGetItemsHandlerEmptyResult(t *testing.T) {
	setupHandlerTest(t)

	c, rec := request(http.MethodGet, "/api/items/hikes", "", map[string]string{"collection": "hikes"})
	assert.NoError(t, GetItemsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}

func TestGetItemsHandlerUnknownCollection(t *testing.T) {
	setupHandlerTest(t)

	c, rec := request(http.MethodGet, "/api/items/users", "", map[string]string{"collection": "users"})
	err := GetItemsHandler(c)
	assertStatus(t, rec, err, http.StatusNotFound)
}
