package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreferencesBeforeFirstUpsert(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/preferences", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertPreferencesCreateThenUpdate(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/preferences", token, map[string]interface{}{
		"diet_type":             "none",
		"forbidden_ingredients": []string{},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	prefs := decodeBody(t, w)["preferences"].(map[string]interface{})
	assert.Equal(t, "none", prefs["diet_type"])
	assert.Equal(t, float64(1), prefs["version"])

	w = doJSON(t, engine, http.MethodPut, "/api/v1/preferences", token, map[string]interface{}{
		"diet_type":             "vegan",
		"forbidden_ingredients": []string{"Honey"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	prefs = decodeBody(t, w)["preferences"].(map[string]interface{})
	assert.Equal(t, "vegan", prefs["diet_type"])
	assert.Equal(t, float64(2), prefs["version"])
	assert.Equal(t, []interface{}{"honey"}, prefs["forbidden_ingredients"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	prefs = decodeBody(t, w)["preferences"].(map[string]interface{})
	assert.Equal(t, float64(2), prefs["version"])
}

func TestUpsertPreferencesRejectsUnknownDietType(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/preferences", token, map[string]interface{}{
		"diet_type": "carnivore",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
