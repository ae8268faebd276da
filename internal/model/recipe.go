package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeStatus is the moderation state of a recipe. Only public recipes are
// visible to matching, scoring, and feed queries.
type RecipeStatus string

const (
	RecipeStatusDraft           RecipeStatus = "draft"
	RecipeStatusPendingApproval RecipeStatus = "pending_approval"
	RecipeStatusPublic          RecipeStatus = "public"
	RecipeStatusPrivate         RecipeStatus = "private"
	RecipeStatusRejected        RecipeStatus = "rejected"
)

type Recipe struct {
	ID                     uuid.UUID               `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
	DeletedAt              gorm.DeletedAt          `gorm:"index" json:"-"`
	Name                   string                  `gorm:"size:255;not null" json:"name"`
	Description            string                  `gorm:"type:text" json:"description"`
	ImageURL               string                  `gorm:"size:255" json:"image_url"`
	PreparationTimeMinutes int                     `json:"preparation_time_minutes"`
	Status                 RecipeStatus            `gorm:"size:20;not null;default:'draft';index" json:"status"`
	AccountID              uuid.UUID               `gorm:"type:uuid;not null;index" json:"account_id"`
	Requirements           []IngredientRequirement `gorm:"foreignKey:RecipeID" json:"requirements,omitempty"`
}

// IngredientRequirement is one ingredient a recipe needs. Identity is the
// (recipe, ingredient) pair. Quantity and unit may both be absent, meaning
// the amount is unspecified.
type IngredientRequirement struct {
	RecipeID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Quantity     *float64   `gorm:"type:decimal(10,2)" json:"quantity"`
	UnitID       *int64     `json:"unit_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit         *Unit      `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (IngredientRequirement) TableName() string {
	return "recipe_ingredients"
}
