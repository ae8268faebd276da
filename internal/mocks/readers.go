package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/ranking"
	"github.com/cookshare/backend/internal/service"
)

// MockCatalogReader is a mock implementation of service.CatalogReader
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetPublicRecipesWithRequirements(ctx context.Context, filter service.RecipeFilter) ([]model.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockCatalogReader) GetRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockCatalogReader) SearchPublicRecipes(ctx context.Context, keyword string) ([]model.Recipe, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockCatalogReader) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockCatalogReader) ListCategories(ctx context.Context, nameFragment string) ([]model.RecipeCategory, error) {
	args := m.Called(ctx, nameFragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecipeCategory), args.Error(1)
}

// MockEngagementReader is a mock implementation of service.EngagementReader
type MockEngagementReader struct {
	mock.Mock
}

func (m *MockEngagementReader) GetCounts(ctx context.Context, recipeIDs []uuid.UUID, since *time.Time) (map[uuid.UUID]ranking.EngagementCounts, error) {
	args := m.Called(ctx, recipeIDs, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]ranking.EngagementCounts), args.Error(1)
}

func (m *MockEngagementReader) GetFavoritedSet(ctx context.Context, accountID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, accountID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

// MockEngagementWriter is a mock implementation of service.EngagementWriter
type MockEngagementWriter struct {
	mock.Mock
}

func (m *MockEngagementWriter) RecordView(ctx context.Context, recipeID uuid.UUID, accountID *uuid.UUID) error {
	args := m.Called(ctx, recipeID, accountID)
	return args.Error(0)
}

func (m *MockEngagementWriter) Like(ctx context.Context, accountID, recipeID uuid.UUID) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementWriter) Unlike(ctx context.Context, accountID, recipeID uuid.UUID) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementWriter) Favorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementWriter) Unfavorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	args := m.Called(ctx, accountID, recipeID)
	return args.Error(0)
}

func (m *MockEngagementWriter) AddPantryItems(ctx context.Context, accountID uuid.UUID, ingredientIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	args := m.Called(ctx, accountID, ingredientIDs)
	var added, skipped []uuid.UUID
	if args.Get(0) != nil {
		added = args.Get(0).([]uuid.UUID)
	}
	if args.Get(1) != nil {
		skipped = args.Get(1).([]uuid.UUID)
	}
	return added, skipped, args.Error(2)
}

func (m *MockEngagementWriter) GetPantryItemIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockDenyChecker is a mock implementation of service.DenyChecker
type MockDenyChecker struct {
	mock.Mock
}

func (m *MockDenyChecker) IsDenied(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
