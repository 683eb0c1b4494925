package types

import (
	"time"

	"github.com/google/uuid"
)

// RecipeView is the read model returned to callers. It deliberately carries
// no owner id and no deletion state.
type RecipeView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	UpdateCounter int       `json:"update_counter"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PreferencesView is the read model for a user's dietary preferences.
type PreferencesView struct {
	ID                   uuid.UUID `json:"id"`
	DietType             string    `json:"diet_type"`
	ForbiddenIngredients []string  `json:"forbidden_ingredients"`
	Version              int       `json:"version"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Pagination describes the window a listing call returned.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}
