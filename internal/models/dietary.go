package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Diet types accepted by the preferences aggregate.
const (
	DietTypeVegan      = "vegan"
	DietTypeVegetarian = "vegetarian"
	DietTypeNone       = "none"
)

// DietaryPreference holds a user's dietary profile. There is at most one row
// per user; the forbidden ingredient set is owned by this row and replaced
// wholesale on every update.
type DietaryPreference struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DietType  string    `gorm:"size:20;not null" json:"diet_type"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Ingredients []ForbiddenIngredient `gorm:"foreignKey:PreferenceID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (DietaryPreference) TableName() string {
	return "dietary_preferences"
}

func (p *DietaryPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ForbiddenIngredient is a single normalized (trimmed, lower-cased)
// ingredient name attached to a preferences row. It has no lifecycle of its
// own.
type ForbiddenIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PreferenceID uuid.UUID `gorm:"type:uuid;not null;index" json:"preference_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
}

func (ForbiddenIngredient) TableName() string {
	return "forbidden_ingredients"
}

func (i *ForbiddenIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
