package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culina/backend/internal/api"
	"github.com/culina/backend/internal/router"
	"github.com/culina/backend/internal/service"
	"github.com/culina/backend/internal/store"
	"github.com/culina/backend/internal/testhelpers"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	logger := zap.NewNop()
	auth := service.NewAuthService("test-secret", nil)

	engine := router.SetupRouter(
		api.NewRecipeHandler(store.NewRecipeStore(db, logger), logger),
		api.NewPreferencesHandler(store.NewPreferenceStore(db, logger), logger),
		auth,
	)
	return engine, auth
}

func authToken(t *testing.T, auth *service.AuthService) string {
	t.Helper()
	token, err := auth.GenerateToken(uuid.New())
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRoutesRequireAuth(t *testing.T) {
	engine, _ := setupTestRouter(t)

	for _, path := range []string{"/api/v1/recipes", "/api/v1/preferences"} {
		w := doJSON(t, engine, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
