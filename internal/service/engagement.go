package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// EngagementService records the engagement events the scorer later consumes,
// and manages per-account pantries.
type EngagementService struct {
	catalog CatalogReader
	store   EngagementWriter
}

// NewEngagementService creates a new EngagementService instance.
func NewEngagementService(catalog CatalogReader, store EngagementWriter) *EngagementService {
	return &EngagementService{catalog: catalog, store: store}
}

// RecordView appends a view event. Repeat views count: views are never
// deduplicated. The account is optional; anonymous views are recorded too.
func (s *EngagementService) RecordView(ctx context.Context, recipeID uuid.UUID, accountID *uuid.UUID) error {
	if _, err := s.catalog.GetRecipeByID(ctx, recipeID); err != nil {
		return err
	}
	if err := s.store.RecordView(ctx, recipeID, accountID); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// Like records a like, deduplicated per (account, recipe).
func (s *EngagementService) Like(ctx context.Context, accountID, recipeID uuid.UUID) error {
	if _, err := s.catalog.GetRecipeByID(ctx, recipeID); err != nil {
		return err
	}
	if err := s.store.Like(ctx, accountID, recipeID); err != nil {
		return fmt.Errorf("like: %w", err)
	}
	return nil
}

func (s *EngagementService) Unlike(ctx context.Context, accountID, recipeID uuid.UUID) error {
	if err := s.store.Unlike(ctx, accountID, recipeID); err != nil {
		return fmt.Errorf("unlike: %w", err)
	}
	return nil
}

// Favorite records a favorite, deduplicated per (account, recipe).
func (s *EngagementService) Favorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	if _, err := s.catalog.GetRecipeByID(ctx, recipeID); err != nil {
		return err
	}
	if err := s.store.Favorite(ctx, accountID, recipeID); err != nil {
		return fmt.Errorf("favorite: %w", err)
	}
	return nil
}

func (s *EngagementService) Unfavorite(ctx context.Context, accountID, recipeID uuid.UUID) error {
	if err := s.store.Unfavorite(ctx, accountID, recipeID); err != nil {
		return fmt.Errorf("unfavorite: %w", err)
	}
	return nil
}

// AddPantryItems adds the given ingredient ids to the account's pantry,
// skipping duplicates both within the input and against existing contents.
func (s *EngagementService) AddPantryItems(ctx context.Context, accountID uuid.UUID, ingredientIDs []uuid.UUID) (added, skipped []uuid.UUID, err error) {
	seen := make(map[uuid.UUID]bool, len(ingredientIDs))
	unique := make([]uuid.UUID, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	added, skipped, err = s.store.AddPantryItems(ctx, accountID, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("add pantry items: %w", err)
	}
	return added, skipped, nil
}

// GetPantry lists the account's pantry ingredient ids.
func (s *EngagementService) GetPantry(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.store.GetPantryItemIDs(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get pantry: %w", err)
	}
	return ids, nil
}
