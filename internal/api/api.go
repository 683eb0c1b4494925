package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culina/backend/internal/middleware"
	"github.com/culina/backend/internal/store"
)

// currentUserID pulls the authenticated owner id placed by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// writeStoreError maps store outcomes to transport statuses: NotFound to 404,
// DuplicateTitle to 409, anything else to an opaque 500.
func writeStoreError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrDuplicateTitle):
		c.JSON(http.StatusConflict, gin.H{"error": "a recipe with this title already exists"})
	default:
		log.Error("store failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
