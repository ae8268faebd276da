package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/ranking"
)

// RecipeFilter narrows a catalog read. Zero value means "all public recipes".
type RecipeFilter struct {
	IngredientIDs []uuid.UUID
	CategoryID    *int64
}

// CatalogReader exposes the read-only recipe catalog. Implementations live in
// internal/store; the ranking services never touch the database directly.
type CatalogReader interface {
	// GetPublicRecipesWithRequirements returns public recipes matching the
	// filter, each carrying its full requirement list with ingredient and
	// unit preloaded.
	GetPublicRecipesWithRequirements(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error)
	// GetRecipeByID is an explicit lookup: a missing id is a not-found error.
	GetRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	// SearchPublicRecipes matches the keyword against recipe, ingredient, and
	// category names. An empty keyword yields no results.
	SearchPublicRecipes(ctx context.Context, keyword string) ([]model.Recipe, error)
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	ListCategories(ctx context.Context, nameFragment string) ([]model.RecipeCategory, error)
}

// EngagementReader exposes engagement counts and per-account favorite flags.
type EngagementReader interface {
	// GetCounts returns engagement totals for the given recipes, optionally
	// restricted to events at or after since. Recipes with no events are
	// absent from the map.
	GetCounts(ctx context.Context, recipeIDs []uuid.UUID, since *time.Time) (map[uuid.UUID]ranking.EngagementCounts, error)
	// GetFavoritedSet reports which of the given recipes the account has
	// favorited.
	GetFavoritedSet(ctx context.Context, accountID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// EngagementWriter records engagement events and pantry contents.
type EngagementWriter interface {
	RecordView(ctx context.Context, recipeID uuid.UUID, accountID *uuid.UUID) error
	Like(ctx context.Context, accountID, recipeID uuid.UUID) error
	Unlike(ctx context.Context, accountID, recipeID uuid.UUID) error
	Favorite(ctx context.Context, accountID, recipeID uuid.UUID) error
	Unfavorite(ctx context.Context, accountID, recipeID uuid.UUID) error
	// AddPantryItems inserts the ingredient ids not already in the pantry and
	// reports both the added and the skipped ids.
	AddPantryItems(ctx context.Context, accountID uuid.UUID, ingredientIDs []uuid.UUID) (added, skipped []uuid.UUID, err error)
	GetPantryItemIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
}

// DenyChecker reports whether an auth token has been revoked. Backed by the
// Redis deny-list in production.
type DenyChecker interface {
	IsDenied(ctx context.Context, token string) (bool, error)
}
