package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina/backend/internal/store"
	"github.com/culina/backend/internal/types"
)

type PreferencesHandler struct {
	preferences *store.PreferenceStore
	log         *zap.Logger
}

func NewPreferencesHandler(preferences *store.PreferenceStore, log *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		preferences: preferences,
		log:         log.Named("preferences_handler"),
	}
}

func (h *PreferencesHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.PUT("", h.UpsertPreferences)
	}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	view, err := h.preferences.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": view})
}

func (h *PreferencesHandler) UpsertPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, created, err := h.preferences.Upsert(c.Request.Context(), userID, types.UpsertPreferencesCommand{
		DietType:             req.DietType,
		ForbiddenIngredients: req.ForbiddenIngredients,
	})
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"preferences": view})
}
