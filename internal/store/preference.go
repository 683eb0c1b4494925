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

// PreferenceStore owns the dietary_preferences aggregate and its forbidden
// ingredient set. The upsert's row mutation, child delete, and child insert
// always run inside one transaction: a failure at any step leaves the
// previously committed state intact.
type PreferenceStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPreferenceStore(db *gorm.DB, log *zap.Logger) *PreferenceStore {
	return &PreferenceStore{
		db:  db,
		log: log.Named("preference_store"),
	}
}

// GetByOwner returns the user's preferences with the full ingredient set, or
// ErrNotFound when no row exists yet. Callers treat ErrNotFound as "use
// defaults".
func (s *PreferenceStore) GetByOwner(ctx context.Context, userID uuid.UUID) (*types.PreferencesView, error) {
	var pref models.DietaryPreference
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("preferences lookup", err)
	}

	view := preferencesView(&pref)
	return &view, nil
}

// Upsert creates the preferences row (version 1) when absent, otherwise
// updates diet type, bumps the version by one, and replaces the ingredient
// set wholesale. The returned bool reports whether the row was created.
func (s *PreferenceStore) Upsert(ctx context.Context, userID uuid.UUID, cmd types.UpsertPreferencesCommand) (*types.PreferencesView, bool, error) {
	names := NormalizeIngredients(cmd.ForbiddenIngredients)

	var (
		pref    models.DietaryPreference
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&pref).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			pref = models.DietaryPreference{
				UserID:   userID,
				DietType: cmd.DietType,
				Version:  1,
			}
			if err := tx.Create(&pref).Error; err != nil {
				return storageErr("preferences insert", err)
			}

		case err != nil:
			return storageErr("preferences fetch", err)

		default:
			res := tx.Model(&pref).Updates(map[string]interface{}{
				"diet_type": cmd.DietType,
				"version":   gorm.Expr("version + 1"),
			})
			if res.Error != nil {
				return storageErr("preferences update", res.Error)
			}
			// Replace, never merge: the old set goes away entirely.
			if err := tx.Where("preference_id = ?", pref.ID).
				Delete(&models.ForbiddenIngredient{}).Error; err != nil {
				return storageErr("ingredient clear", err)
			}
		}

		if len(names) > 0 {
			rows := make([]models.ForbiddenIngredient, len(names))
			for i, name := range names {
				rows[i] = models.ForbiddenIngredient{
					PreferenceID: pref.ID,
					Name:         name,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return storageErr("ingredient insert", err)
			}
		}

		// Reload inside the transaction so the view reflects the bumped
		// version and the new ingredient set.
		if err := tx.Preload("Ingredients").
			First(&pref, "id = ?", pref.ID).Error; err != nil {
			return storageErr("preferences reload", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Debug("preferences upserted",
		zap.String("user_id", userID.String()),
		zap.Bool("created", created),
		zap.Int("version", pref.Version),
	)
	view := preferencesView(&pref)
	return &view, created, nil
}

// NormalizeIngredients trims and lower-cases every name, drops empties, and
// collapses duplicates while preserving first-occurrence order. "Milk" and
// " milk " are the same forbidden ingredient.
func NormalizeIngredients(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, ingredient := range raw {
		name := strings.ToLower(strings.TrimSpace(ingredient))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func preferencesView(p *models.DietaryPreference) types.PreferencesView {
	names := make([]string, len(p.Ingredients))
	for i := range p.Ingredients {
		names[i] = p.Ingredients[i].Name
	}
	return types.PreferencesView{
		ID:                   p.ID,
		DietType:             p.DietType,
		ForbiddenIngredients: names,
		Version:              p.Version,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
