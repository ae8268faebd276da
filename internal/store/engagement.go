package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/ranking"
)

// EngagementStore is the GORM-backed engagement reader and writer. Like and
// favorite rows are keyed by (account, recipe), so their counts are
// deduplicated by construction; view rows are unconstrained and count raw.
type EngagementStore struct {
	db *gorm.DB
}

// NewEngagementStore creates a new EngagementStore instance.
func NewEngagementStore(db *gorm.DB) *EngagementStore {
	return &EngagementStore{db: db}
}

type recipeCount struct {
	RecipeID uuid.UUID
	Total    int64
}

// GetCounts returns engagement totals per recipe, optionally limited to
// events at or after since. Recipes with no events are absent from the map.
func (s *EngagementStore) GetCounts(ctx context.Context, recipeIDs []uuid.UUID, since *time.Time) (map[uuid.UUID]ranking.EngagementCounts, error) {
	counts := make(map[uuid.UUID]ranking.EngagementCounts, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return counts, nil
	}

	views, err := s.countByRecipe(ctx, &model.ViewHistory{}, recipeIDs, since)
	if err != nil {
		return nil, err
	}
	likes, err := s.countByRecipe(ctx, &model.RecipeLike{}, recipeIDs, since)
	if err != nil {
		return nil, err
	}
	favorites, err := s.countByRecipe(ctx, &model.RecipeFavorite{}, recipeIDs, since)
	if err != nil {
		return nil, err
	}

	for id, n := range views {
		c := counts[id]
		c.Views = n
		counts[id] = c
	}
	for id, n := range likes {
		c := counts[id]
		c.Likes = n
		counts[id] = c
	}
	for id, n := range favorites {
		c := counts[id]
		c.Favorites = n
		counts[id] = c
	}
	return counts, nil
}

func (s *EngagementStore) countByRecipe(ctx context.Context, table interface{}, recipeIDs []uuid.UUID, since *time.Time) (map[uuid.UUID]int64, error) {
	query := s.db.WithContext(ctx).Model(table).
		Select("recipe_id, COUNT(*) AS total").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id")
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var rows []recipeCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		result[row.RecipeID] = row.Total
	}
	return result, nil
}

// GetFavoritedSet reports which of the given recipes the account favorited.
func (s *EngagementStore) GetFavoritedSet(ctx context.Context, accountID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	favorited := make(map[uuid.UUID]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return favorited, nil
	}

	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&model.RecipeFavorite{}).
		Where("account_id = ? AND recipe_id IN ?", accountID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		favorited[id] = true
	}
	return favorited, nil
}

// RecordView appends a view event; repeat views are separate rows.
func (s *EngagementStore) RecordView(ctx context.Context, recipeID uuid.UUID, accountID *uuid.UUID) error {
	view := model.ViewHistory{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		AccountID: accountID,
	}
	return s.db.WithContext(ctx).Create(&view).Error
}

// Like records a like; repeats for the same (account, recipe) are no-ops.
func (s *EngagementStore) Like(ctx context.Context, accountID, recipeID uuid.UUID) error {
	like := model.RecipeLike{AccountID: accountID, RecipeID: recipeID}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

func (s *EngagementStore) Unlike(ctx context.Context, accountID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Delete(&model.RecipeLike{}, "account_id = ? AND recipe_id = ?", accountID, recipeID).Error
}

// Favorite records a favorite; repeats are no-ops.
func (s *EngagementStore) Favorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	favorite := model.RecipeFavorite{AccountID: accountID, RecipeID: recipeID}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}

func (s *EngagementStore) Unfavorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Delete(&model.RecipeFavorite{}, "account_id = ? AND recipe_id = ?", accountID, recipeID).Error
}

// AddPantryItems inserts the ingredient ids not already present and reports
// both the added and the skipped ids.
func (s *EngagementStore) AddPantryItems(ctx context.Context, accountID uuid.UUID, ingredientIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	if len(ingredientIDs) == 0 {
		return []uuid.UUID{}, []uuid.UUID{}, nil
	}

	var existing []uuid.UUID
	err := s.db.WithContext(ctx).Model(&model.PantryItem{}).
		Where("account_id = ? AND ingredient_id IN ?", accountID, ingredientIDs).
		Pluck("ingredient_id", &existing).Error
	if err != nil {
		return nil, nil, err
	}
	existingSet := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		existingSet[id] = true
	}

	added := make([]uuid.UUID, 0, len(ingredientIDs))
	items := make([]model.PantryItem, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		if !existingSet[id] {
			added = append(added, id)
			items = append(items, model.PantryItem{AccountID: accountID, IngredientID: id})
		}
	}
	if len(items) > 0 {
		if err := s.db.WithContext(ctx).Create(&items).Error; err != nil {
			return nil, nil, err
		}
	}
	return added, existing, nil
}

// GetPantryItemIDs lists the account's pantry ingredient ids.
func (s *EngagementStore) GetPantryItemIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&model.PantryItem{}).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Pluck("ingredient_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
