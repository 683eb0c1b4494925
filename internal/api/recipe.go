package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culina/backend/internal/store"
	"github.com/culina/backend/internal/types"
)

type RecipeHandler struct {
	recipes *store.RecipeStore
	log     *zap.Logger
}

func NewRecipeHandler(recipes *store.RecipeStore, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		log:     log.Named("recipe_handler"),
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	search := c.Query("q")

	views, pagination, err := h.recipes.List(c.Request.Context(), userID, page, pageSize, search)
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":    views,
		"pagination": pagination,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	view, err := h.recipes.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": view})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.recipes.Create(c.Request.Context(), userID, types.CreateRecipeCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": view})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.recipes.Update(c.Request.Context(), userID, id, types.UpdateRecipeCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": view})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := h.recipes.SoftDelete(c.Request.Context(), userID, id); err != nil {
		writeStoreError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
