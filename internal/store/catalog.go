package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/service"
)

// CatalogStore is the GORM-backed service.CatalogReader. All narrowing goes
// through the typed RecipeFilter; no SQL fragments are assembled from caller
// input.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a new CatalogStore instance.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// GetPublicRecipesWithRequirements returns public recipes matching the
// filter, with requirements, ingredients, and units preloaded.
func (s *CatalogStore) GetPublicRecipesWithRequirements(ctx context.Context, filter service.RecipeFilter) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).
		Where("status = ?", model.RecipeStatusPublic).
		Preload("Requirements").
		Preload("Requirements.Ingredient").
		Preload("Requirements.Unit")

	if len(filter.IngredientIDs) > 0 {
		sub := s.db.Model(&model.IngredientRequirement{}).
			Select("recipe_id").
			Where("ingredient_id IN ?", filter.IngredientIDs)
		query = query.Where("id IN (?)", sub)
	}
	if filter.CategoryID != nil {
		sub := s.db.Model(&model.RecipeCategoryMapping{}).
			Select("recipe_id").
			Where("recipe_category_id = ?", *filter.CategoryID)
		query = query.Where("id IN (?)", sub)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeByID retrieves a recipe by ID, any status.
func (s *CatalogStore) GetRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Requirements").
		Preload("Requirements.Ingredient").
		Preload("Requirements.Unit").
		First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SearchPublicRecipes matches the keyword against recipe names, ingredient
// names, and category names.
func (s *CatalogStore) SearchPublicRecipes(ctx context.Context, keyword string) ([]model.Recipe, error) {
	if keyword == "" {
		return []model.Recipe{}, nil
	}
	like := "%" + strings.ToLower(keyword) + "%"

	ingredientSub := s.db.Model(&model.IngredientRequirement{}).
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("LOWER(ingredients.name) LIKE ?", like)
	categorySub := s.db.Model(&model.RecipeCategoryMapping{}).
		Select("recipe_category_mappings.recipe_id").
		Joins("JOIN recipe_categories ON recipe_categories.id = recipe_category_mappings.recipe_category_id").
		Where("LOWER(recipe_categories.name) LIKE ?", like)

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("status = ?", model.RecipeStatusPublic).
		Where(s.db.
			Where("LOWER(name) LIKE ?", like).
			Or("id IN (?)", ingredientSub).
			Or("id IN (?)", categorySub)).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListIngredients returns all ingredients ordered by name.
func (s *CatalogStore) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListCategories returns recipe categories, optionally filtered by name.
func (s *CatalogStore) ListCategories(ctx context.Context, nameFragment string) ([]model.RecipeCategory, error) {
	query := s.db.WithContext(ctx)
	if nameFragment != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nameFragment)+"%")
	}
	var categories []model.RecipeCategory
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
