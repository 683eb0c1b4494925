package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culina/backend/internal/models"
	"github.com/culina/backend/internal/types"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// RecipeStore owns the recipes aggregate. Every write runs inside a single
// transaction; the partial unique index on (user_id, title) among live rows
// is the authoritative duplicate-title guard, the in-transaction pre-check
// only exists to fail fast with a clean outcome.
type RecipeStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRecipeStore(db *gorm.DB, log *zap.Logger) *RecipeStore {
	return &RecipeStore{
		db:  db,
		log: log.Named("recipe_store"),
	}
}

// Create inserts a new recipe with the update counter at 1. A live recipe
// with the same title for the same owner yields ErrDuplicateTitle, whether
// caught by the pre-check or by the unique index.
func (s *RecipeStore) Create(ctx context.Context, userID uuid.UUID, cmd types.CreateRecipeCommand) (*types.RecipeView, error) {
	recipe := models.Recipe{
		UserID:        userID,
		Title:         cmd.Title,
		Content:       cmd.Content,
		UpdateCounter: 1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Recipe{}).
			Where("user_id = ? AND title = ?", userID, cmd.Title).
			Count(&count).Error; err != nil {
			return storageErr("recipe duplicate pre-check", err)
		}
		if count > 0 {
			return ErrDuplicateTitle
		}

		if err := tx.Create(&recipe).Error; err != nil {
			// A concurrent create can slip past the pre-check; the index
			// violation is still reported as a duplicate, not as a generic
			// storage failure.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTitle
			}
			return storageErr("recipe insert", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("recipe created",
		zap.String("recipe_id", recipe.ID.String()),
	)
	view := recipeView(&recipe)
	return &view, nil
}

// GetByID looks up a live recipe by id and owner in one predicate, so a
// recipe belonging to someone else is indistinguishable from one that never
// existed.
func (s *RecipeStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*types.RecipeView, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("recipe lookup", err)
	}

	view := recipeView(&recipe)
	return &view, nil
}

// List returns the owner's live recipes newest-first, optionally filtered by
// a case-insensitive title substring. Count and page fetch run in one
// transaction so both reflect the same data.
func (s *RecipeStore) List(ctx context.Context, userID uuid.UUID, page, pageSize int, search string) ([]types.RecipeView, *types.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var (
		recipes []models.Recipe
		total   int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Recipe{}).Where("user_id = ?", userID)
		if search != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		if err := query.Count(&total).Error; err != nil {
			return storageErr("recipe count", err)
		}
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&recipes).Error; err != nil {
			return storageErr("recipe list", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	views := make([]types.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = recipeView(&recipes[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	pagination := &types.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
	return views, pagination, nil
}

// Update replaces title and content and bumps the update counter by one.
// Existence is checked before duplication so a caller never sees a
// DuplicateTitle for a recipe they cannot access.
func (s *RecipeStore) Update(ctx context.Context, userID, id uuid.UUID, cmd types.UpdateRecipeCommand) (*types.RecipeView, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).
			First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageErr("recipe fetch", err)
		}

		var count int64
		if err := tx.Model(&models.Recipe{}).
			Where("user_id = ? AND title = ? AND id <> ?", userID, cmd.Title, id).
			Count(&count).Error; err != nil {
			return storageErr("recipe duplicate pre-check", err)
		}
		if count > 0 {
			return ErrDuplicateTitle
		}

		res := tx.Model(&recipe).Updates(map[string]interface{}{
			"title":          cmd.Title,
			"content":        cmd.Content,
			"update_counter": gorm.Expr("update_counter + 1"),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTitle
			}
			return storageErr("recipe update", res.Error)
		}

		// Reload to observe the incremented counter.
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			return storageErr("recipe reload", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := recipeView(&recipe)
	return &view, nil
}

// SoftDelete marks a live recipe deleted in one conditional update. Zero
// affected rows (absent, foreign-owned, or already deleted) is uniformly
// ErrNotFound, which makes repeated calls harmless.
func (s *RecipeStore) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return storageErr("recipe delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.log.Debug("recipe soft-deleted", zap.String("recipe_id", id.String()))
	return nil
}

func recipeView(r *models.Recipe) types.RecipeView {
	return types.RecipeView{
		ID:            r.ID,
		Title:         r.Title,
		Content:       r.Content,
		UpdateCounter: r.UpdateCounter,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
