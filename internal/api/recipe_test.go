package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, map[string]string{
		"title":   "Pasta",
		"content": "boil water...",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	recipe, ok := body["recipe"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, recipe["id"])
	assert.Equal(t, "Pasta", recipe["title"])
	assert.Equal(t, float64(1), recipe["update_counter"])

	// The read model never exposes ownership or deletion state.
	assert.NotContains(t, recipe, "user_id")
	assert.NotContains(t, recipe, "deleted_at")
}

func TestCreateRecipeDuplicateConflict(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, map[string]string{
		"title": "Pasta", "content": "boil water...",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, map[string]string{
		"title": "Pasta", "content": "different",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRecipeRejectsBadBody(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, map[string]string{
		"title": "No content",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeNotFound(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes/9b8e1c2a-0f5d-4a41-9f7e-1a2b3c4d5e6f", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unparseable ids get the same answer as missing ones.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipeLifecycleOverHTTP(t *testing.T) {
	engine, auth := setupTestRouter(t)
	token := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, map[string]string{
		"title": "Pie", "content": "bake",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	id := recipe["id"].(string)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/recipes/"+id, token, map[string]string{
		"title": "Pie", "content": "bake longer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, float64(2), updated["update_counter"])

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/recipes/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Second delete reports NotFound, mirroring the store's idempotency.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/recipes/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesIsOwnerScoped(t *testing.T) {
	engine, auth := setupTestRouter(t)
	tokenA := authToken(t, auth)
	tokenB := authToken(t, auth)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", tokenA, map[string]string{
		"title": "Mine", "content": "c",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Empty(t, body["recipes"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(0), pagination["total_count"])
}
