package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/ranking"
)

// CatalogService exposes the browse surface: keyword search, explicit
// lookups, the random pick, and the ingredient/category listings.
type CatalogService struct {
	catalog CatalogReader
	jitter  ranking.JitterSource
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(catalog CatalogReader, jitter ranking.JitterSource) *CatalogService {
	if jitter == nil {
		jitter = ranking.SystemJitter()
	}
	return &CatalogService{catalog: catalog, jitter: jitter}
}

// SearchRecipes returns public recipes whose name, ingredient name, or
// category name contains the keyword. An empty keyword yields an empty slice.
func (s *CatalogService) SearchRecipes(ctx context.Context, keyword string) ([]model.Recipe, error) {
	recipes, err := s.catalog.SearchPublicRecipes(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	return recipes, nil
}

// GetRecipe is an explicit lookup; a missing id surfaces as a not-found
// error from the reader.
func (s *CatalogService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return s.catalog.GetRecipeByID(ctx, id)
}

// GetRandomRecipe picks one public recipe with both an image and a
// description, uniformly at random. An empty candidate set returns nil
// without error.
func (s *CatalogService) GetRandomRecipe(ctx context.Context) (*model.Recipe, error) {
	recipes, err := s.catalog.GetPublicRecipesWithRequirements(ctx, RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}

	candidates := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.ImageURL != "" && r.Description != "" {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	i := int(s.jitter.Float64() * float64(len(candidates)))
	if i >= len(candidates) {
		i = len(candidates) - 1
	}
	return &candidates[i], nil
}

// ListIngredients returns the full ingredient catalog ordered by name.
func (s *CatalogService) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	ingredients, err := s.catalog.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	return ingredients, nil
}

// ListCategories returns recipe categories, optionally filtered by a name
// fragment.
func (s *CatalogService) ListCategories(ctx context.Context, nameFragment string) ([]model.RecipeCategory, error) {
	categories, err := s.catalog.ListCategories(ctx, nameFragment)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	return categories, nil
}
