package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/ranking"
)

const (
	popularListSize     = 5
	categoryTopListSize = 4
	feedDescriptionMax  = 100
)

// RankedMatch is one ingredient-search result, annotated with the match
// breakdown for rendering.
type RankedMatch struct {
	ID                     uuid.UUID                 `json:"id"`
	Name                   string                    `json:"name"`
	Description            string                    `json:"description"`
	ImageURL               string                    `json:"image_url"`
	PreparationTimeMinutes int                       `json:"preparation_time_minutes"`
	MatchPercentage        int                       `json:"match_percentage"`
	MatchedIngredients     int                       `json:"matched_ingredients"`
	TotalIngredients       int                       `json:"total_ingredients"`
	Ingredients            []ranking.IngredientMatch `json:"ingredients"`
}

// ScoredRecipe is a recipe with its popularity score and, when the request
// carries an account, whether that account has favorited it. The score is
// derived per request and never persisted.
type ScoredRecipe struct {
	Recipe     model.Recipe `json:"recipe"`
	Score      float64      `json:"score"`
	IsFavorite bool         `json:"is_favorite"`
}

// FeedItem is the compact recipe shape the feed returns.
type FeedItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url"`
	Description   string    `json:"description"`
	ViewCount     int64     `json:"view_count"`
	LikeCount     int64     `json:"like_count"`
	FavoriteCount int64     `json:"favorite_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// FeedPage is one window of the feed.
type FeedPage struct {
	Items      []FeedItem         `json:"data"`
	Pagination ranking.WindowInfo `json:"pagination"`
}

// FeedOptions tunes the ranking pipeline. Zero values fall back to the
// standard knobs.
type FeedOptions struct {
	MatchPolicy *ranking.MatchPolicy
	FeedCap     int
	Jitter      ranking.JitterSource
	Now         func() time.Time
}

// FeedService orchestrates matching, scoring, and windowing over the catalog
// and engagement readers. It holds no mutable state: every request computes
// its results from scratch and discards them.
type FeedService struct {
	catalog    CatalogReader
	engagement EngagementReader
	policy     ranking.MatchPolicy
	feedCap    int
	jitter     ranking.JitterSource
	now        func() time.Time
}

// NewFeedService creates a new FeedService instance.
func NewFeedService(catalog CatalogReader, engagement EngagementReader, opts FeedOptions) *FeedService {
	s := &FeedService{
		catalog:    catalog,
		engagement: engagement,
		policy:     ranking.DefaultMatchPolicy(),
		feedCap:    ranking.DefaultFeedCap,
		jitter:     ranking.SystemJitter(),
		now:        time.Now,
	}
	if opts.MatchPolicy != nil {
		s.policy = *opts.MatchPolicy
	}
	if opts.FeedCap != 0 {
		s.feedCap = opts.FeedCap
	}
	if opts.Jitter != nil {
		s.jitter = opts.Jitter
	}
	if opts.Now != nil {
		s.now = opts.Now
	}
	return s
}

// MatchByIngredients finds public recipes the basket can make, under the
// configured match policy, ordered by match percentage descending. The result
// list is not capped: ingredient search returns every retained recipe.
func (s *FeedService) MatchByIngredients(ctx context.Context, basket []ranking.BasketEntry) ([]RankedMatch, error) {
	return s.match(ctx, basket, s.policy)
}

// MatchByPantryItems matches a quantityless ingredient set (a pantry) in
// presence-only mode.
func (s *FeedService) MatchByPantryItems(ctx context.Context, ingredientIDs []uuid.UUID) ([]RankedMatch, error) {
	basket := make([]ranking.BasketEntry, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		basket = append(basket, ranking.BasketEntry{IngredientID: id})
	}
	return s.match(ctx, basket, ranking.PresenceOnlyPolicy())
}

func (s *FeedService) match(ctx context.Context, basket []ranking.BasketEntry, policy ranking.MatchPolicy) ([]RankedMatch, error) {
	for i, entry := range basket {
		if entry.IngredientID == uuid.Nil {
			return nil, &ranking.ValidationError{Field: "ingredients", Reason: fmt.Sprintf("entry %d has no ingredient id", i)}
		}
		if policy.Gated && entry.Quantity < 0 {
			return nil, &ranking.ValidationError{Field: "ingredients", Reason: fmt.Sprintf("entry %d has negative quantity", i)}
		}
	}
	if len(basket) == 0 {
		return []RankedMatch{}, nil
	}

	ids := make([]uuid.UUID, len(basket))
	for i, entry := range basket {
		ids[i] = entry.IngredientID
	}

	recipes, err := s.catalog.GetPublicRecipesWithRequirements(ctx, RecipeFilter{IngredientIDs: ids})
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}

	results := make([]ranking.MatchResult, 0, len(recipes))
	for i := range recipes {
		result := policy.Evaluate(&recipes[i], basket)
		if policy.Retain(result) {
			results = append(results, result)
		}
	}
	ranking.SortMatches(results)

	matches := make([]RankedMatch, len(results))
	for i, result := range results {
		matches[i] = RankedMatch{
			ID:                     result.Recipe.ID,
			Name:                   result.Recipe.Name,
			Description:            result.Recipe.Description,
			ImageURL:               result.Recipe.ImageURL,
			PreparationTimeMinutes: result.Recipe.PreparationTimeMinutes,
			MatchPercentage:        result.Percentage,
			MatchedIngredients:     result.MatchedCount,
			TotalIngredients:       result.Total,
			Ingredients:            result.Ingredients,
		}
	}
	return matches, nil
}

// GetPopular returns the top five public recipes by basic popularity score.
// When accountID is set, each result is annotated with that account's
// favorite flag.
func (s *FeedService) GetPopular(ctx context.Context, accountID *uuid.UUID) ([]ScoredRecipe, error) {
	return s.topByBasicScore(ctx, RecipeFilter{}, popularListSize, accountID)
}

// GetTopInCategory returns the top four public recipes in the category. A
// category with no recipes yields an empty, valid result.
func (s *FeedService) GetTopInCategory(ctx context.Context, categoryID int64, accountID *uuid.UUID) ([]ScoredRecipe, error) {
	return s.topByBasicScore(ctx, RecipeFilter{CategoryID: &categoryID}, categoryTopListSize, accountID)
}

func (s *FeedService) topByBasicScore(ctx context.Context, filter RecipeFilter, n int, accountID *uuid.UUID) ([]ScoredRecipe, error) {
	recipes, err := s.catalog.GetPublicRecipesWithRequirements(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	if len(recipes) == 0 {
		return []ScoredRecipe{}, nil
	}

	counts, err := s.counts(ctx, recipes)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredRecipe, len(recipes))
	for i := range recipes {
		scored[i] = ScoredRecipe{
			Recipe: recipes[i],
			Score:  ranking.BasicScore(counts[recipes[i].ID]),
		}
	}
	// Score ties break on recipe id so the ordering is reproducible.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Recipe.ID.String() < scored[j].Recipe.ID.String()
	})

	if len(scored) > n {
		scored = scored[:n]
	}

	if accountID != nil {
		ids := make([]uuid.UUID, len(scored))
		for i := range scored {
			ids[i] = scored[i].Recipe.ID
		}
		favorited, err := s.engagement.GetFavoritedSet(ctx, *accountID, ids)
		if err != nil {
			return nil, fmt.Errorf("engagement read: %w", err)
		}
		for i := range scored {
			scored[i].IsFavorite = favorited[scored[i].Recipe.ID]
		}
	}
	return scored, nil
}

// GetFeed returns one window of the public recipe feed under the requested
// ordering. The recommended ordering draws fresh jitter per request, so two
// identical requests may return different orders; the window cap bounds how
// much of the feed is ever scored or shipped.
func (s *FeedService) GetFeed(ctx context.Context, sortBy string, limit, offset int) (*FeedPage, error) {
	key, err := ranking.ParseSortKey(sortBy)
	if err != nil {
		return nil, err
	}

	recipes, err := s.catalog.GetPublicRecipesWithRequirements(ctx, RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}

	counts, err := s.counts(ctx, recipes)
	if err != nil {
		return nil, err
	}

	s.orderFeed(recipes, counts, key)

	info := ranking.Window(len(recipes), offset, limit, s.feedCap)
	start, end := info.Slice(len(recipes))

	items := make([]FeedItem, 0, end-start)
	for _, recipe := range recipes[start:end] {
		c := counts[recipe.ID]
		items = append(items, FeedItem{
			ID:            recipe.ID,
			Name:          recipe.Name,
			ImageURL:      recipe.ImageURL,
			Description:   truncate(recipe.Description, feedDescriptionMax),
			ViewCount:     c.Views,
			LikeCount:     c.Likes,
			FavoriteCount: c.Favorites,
			CreatedAt:     recipe.CreatedAt,
		})
	}
	return &FeedPage{Items: items, Pagination: info}, nil
}

func (s *FeedService) orderFeed(recipes []model.Recipe, counts map[uuid.UUID]ranking.EngagementCounts, key ranking.SortKey) {
	switch key {
	case ranking.SortNewest:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
		})
	case ranking.SortViews:
		s.orderByCount(recipes, func(id uuid.UUID) int64 { return counts[id].Views })
	case ranking.SortLikes:
		s.orderByCount(recipes, func(id uuid.UUID) int64 { return counts[id].Likes })
	case ranking.SortFavorites:
		s.orderByCount(recipes, func(id uuid.UUID) int64 { return counts[id].Favorites })
	default:
		now := s.now()
		scores := make(map[uuid.UUID]float64, len(recipes))
		for i := range recipes {
			scores[recipes[i].ID] = ranking.RecommendedScore(recipes[i].CreatedAt, counts[recipes[i].ID], now, s.jitter)
		}
		sort.SliceStable(recipes, func(i, j int) bool {
			return scores[recipes[i].ID] > scores[recipes[j].ID]
		})
	}
}

func (s *FeedService) orderByCount(recipes []model.Recipe, count func(uuid.UUID) int64) {
	sort.SliceStable(recipes, func(i, j int) bool {
		a, b := count(recipes[i].ID), count(recipes[j].ID)
		if a != b {
			return a > b
		}
		return recipes[i].ID.String() < recipes[j].ID.String()
	})
}

func (s *FeedService) counts(ctx context.Context, recipes []model.Recipe) (map[uuid.UUID]ranking.EngagementCounts, error) {
	if len(recipes) == 0 {
		return map[uuid.UUID]ranking.EngagementCounts{}, nil
	}
	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}
	counts, err := s.engagement.GetCounts(ctx, ids, nil)
	if err != nil {
		return nil, fmt.Errorf("engagement read: %w", err)
	}
	return counts, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
