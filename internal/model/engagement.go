package model

import (
	"time"

	"github.com/google/uuid"
)

// ViewHistory records a single recipe view. Repeat views by the same account
// are separate rows; view counts are never deduplicated.
type ViewHistory struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	RecipeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipe_id"`
	AccountID *uuid.UUID `gorm:"type:uuid" json:"account_id"`
}

func (ViewHistory) TableName() string {
	return "view_histories"
}

// RecipeLike is deduplicated by its composite key: one like per account per
// recipe.
type RecipeLike struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

type RecipeFavorite struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}

// PantryItem is an ingredient an account has on hand. Pantry entries carry no
// quantity; pantry-driven matching runs in presence-only mode.
type PantryItem struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (PantryItem) TableName() string {
	return "account_pantry_items"
}
