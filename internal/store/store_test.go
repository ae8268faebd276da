package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookshare/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Ingredient{},
		&model.Unit{},
		&model.Recipe{},
		&model.IngredientRequirement{},
		&model.RecipeCategory{},
		&model.RecipeCategoryMapping{},
		&model.ViewHistory{},
		&model.RecipeLike{},
		&model.RecipeFavorite{},
		&model.PantryItem{},
	))
	return db
}
