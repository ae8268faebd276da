package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/service"
)

func seedRecipe(t *testing.T, db *gorm.DB, name string, status model.RecipeStatus, ingredients ...model.Ingredient) model.Recipe {
	recipe := model.Recipe{
		ID:        uuid.New(),
		Name:      name,
		Status:    status,
		AccountID: uuid.New(),
	}
	require.NoError(t, db.Create(&recipe).Error)

	qty := 100.0
	unitID := int64(1)
	for _, ing := range ingredients {
		req := model.IngredientRequirement{
			RecipeID:     recipe.ID,
			IngredientID: ing.ID,
			Quantity:     &qty,
			UnitID:       &unitID,
		}
		require.NoError(t, db.Create(&req).Error)
	}
	return recipe
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) model.Ingredient {
	ing := model.Ingredient{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(&ing).Error)
	return ing
}

func TestGetPublicRecipesFiltersStatus(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	beef := seedIngredient(t, db, "beef")
	public := seedRecipe(t, db, "public stew", model.RecipeStatusPublic, beef)
	seedRecipe(t, db, "draft stew", model.RecipeStatusDraft, beef)
	seedRecipe(t, db, "private stew", model.RecipeStatusPrivate, beef)

	recipes, err := store.GetPublicRecipesWithRequirements(context.Background(), service.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, public.ID, recipes[0].ID)
}

func TestGetPublicRecipesByIngredient(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	beef := seedIngredient(t, db, "beef")
	tofu := seedIngredient(t, db, "tofu")
	withBeef := seedRecipe(t, db, "beef stew", model.RecipeStatusPublic, beef)
	seedRecipe(t, db, "tofu salad", model.RecipeStatusPublic, tofu)

	recipes, err := store.GetPublicRecipesWithRequirements(context.Background(), service.RecipeFilter{
		IngredientIDs: []uuid.UUID{beef.ID},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, withBeef.ID, recipes[0].ID)

	// Requirements come back preloaded with their ingredient.
	require.Len(t, recipes[0].Requirements, 1)
	assert.Equal(t, "beef", recipes[0].Requirements[0].Ingredient.Name)
}

func TestGetPublicRecipesByCategory(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	beef := seedIngredient(t, db, "beef")
	inCategory := seedRecipe(t, db, "soup", model.RecipeStatusPublic, beef)
	seedRecipe(t, db, "salad", model.RecipeStatusPublic, beef)

	category := model.RecipeCategory{ID: 7, Name: "Soups"}
	require.NoError(t, db.Create(&category).Error)
	mapping := model.RecipeCategoryMapping{RecipeID: inCategory.ID, RecipeCategoryID: category.ID}
	require.NoError(t, db.Create(&mapping).Error)

	categoryID := category.ID
	recipes, err := store.GetPublicRecipesWithRequirements(context.Background(), service.RecipeFilter{
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, inCategory.ID, recipes[0].ID)

	// A category with no recipes is an empty result, not an error.
	missing := int64(999)
	recipes, err = store.GetPublicRecipesWithRequirements(context.Background(), service.RecipeFilter{
		CategoryID: &missing,
	})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	_, err := store.GetRecipeByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchPublicRecipes(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	beef := seedIngredient(t, db, "Beef Brisket")
	byName := seedRecipe(t, db, "Pho Bo", model.RecipeStatusPublic)
	byIngredient := seedRecipe(t, db, "Noodle Soup", model.RecipeStatusPublic, beef)
	seedRecipe(t, db, "Hidden Pho", model.RecipeStatusDraft)

	recipes, err := store.SearchPublicRecipes(context.Background(), "pho")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, byName.ID, recipes[0].ID)

	recipes, err = store.SearchPublicRecipes(context.Background(), "brisket")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, byIngredient.ID, recipes[0].ID)

	recipes, err = store.SearchPublicRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, recipes, "empty keyword returns nothing")
}

func TestListIngredientsOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	seedIngredient(t, db, "salt")
	seedIngredient(t, db, "beef")
	seedIngredient(t, db, "onion")

	ingredients, err := store.ListIngredients(context.Background())
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "beef", ingredients[0].Name)
	assert.Equal(t, "onion", ingredients[1].Name)
	assert.Equal(t, "salt", ingredients[2].Name)
}

func TestListCategoriesByFragment(t *testing.T) {
	db := setupTestDB(t)
	store := NewCatalogStore(db)

	require.NoError(t, db.Create(&model.RecipeCategory{ID: 1, Name: "Soups"}).Error)
	require.NoError(t, db.Create(&model.RecipeCategory{ID: 2, Name: "Desserts"}).Error)

	categories, err := store.ListCategories(context.Background(), "soup")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Soups", categories[0].Name)

	categories, err = store.ListCategories(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
