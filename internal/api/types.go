package api

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/ranking"
)

// basketEntryRequest mirrors one caller-supplied basket ingredient.
type basketEntryRequest struct {
	ID       string  `json:"id" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     *int64  `json:"unit"`
}

type matchRequest struct {
	Ingredients []basketEntryRequest `json:"ingredients" binding:"required"`
}

func (r matchRequest) toBasket() ([]ranking.BasketEntry, error) {
	basket := make([]ranking.BasketEntry, len(r.Ingredients))
	for i, entry := range r.Ingredients {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: invalid id %q", i, entry.ID)
		}
		basket[i] = ranking.BasketEntry{
			IngredientID: id,
			Quantity:     entry.Quantity,
			UnitID:       entry.Unit,
		}
	}
	return basket, nil
}

type pantryAddRequest struct {
	IngredientIDs []string `json:"ingredient_ids" binding:"required"`
}

func (r pantryAddRequest) toIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(r.IngredientIDs))
	for i, raw := range r.IngredientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: invalid id %q", i, raw)
		}
		ids[i] = id
	}
	return ids, nil
}
