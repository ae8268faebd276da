package model

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
}

// Unit is a unit of measure (gram, kg, ml, ...). Matching requires exact unit
// identity; no conversion between units is ever attempted.
type Unit struct {
	ID       int64  `gorm:"primary_key" json:"id"`
	UnitName string `gorm:"size:50;not null" json:"unit_name"`
}

func (Unit) TableName() string {
	return "units_of_measure"
}

type RecipeCategory struct {
	ID   int64  `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

type RecipeCategoryMapping struct {
	RecipeID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	RecipeCategoryID int64     `gorm:"primaryKey" json:"recipe_category_id"`
}

func (RecipeCategoryMapping) TableName() string {
	return "recipe_category_mappings"
}
