package ranking

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/cookshare/backend/internal/model"
)

const (
	// DefaultRequirementRatio is the fraction of a requirement's quantity the
	// basket must hold for the requirement to count as satisfied.
	DefaultRequirementRatio = 0.7

	// DefaultMinMatchPercent is the inclusion gate: recipes matching less than
	// this percentage of their requirements are dropped from results.
	DefaultMinMatchPercent = 80
)

// BasketEntry is one ingredient the caller has on hand. It exists only for
// the duration of a single matching request and is never persisted.
type BasketEntry struct {
	IngredientID uuid.UUID
	Quantity     float64
	UnitID       *int64
}

// MatchPolicy selects between the two matching behaviors: the gated mode
// enforces exact unit identity, the requirement ratio, and the minimum match
// percentage; the presence-only mode keeps any recipe sharing at least one
// ingredient with the basket, with no quantity or unit checks.
type MatchPolicy struct {
	RequirementRatio float64
	MinMatchPercent  int
	Gated            bool
}

// DefaultMatchPolicy returns the gated policy with the standard knobs.
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		RequirementRatio: DefaultRequirementRatio,
		MinMatchPercent:  DefaultMinMatchPercent,
		Gated:            true,
	}
}

// PresenceOnlyPolicy returns the ungated policy used for quantityless baskets
// such as pantry contents.
func PresenceOnlyPolicy() MatchPolicy {
	return MatchPolicy{Gated: false}
}

// IngredientMatch is the per-requirement detail exposed for rendering.
type IngredientMatch struct {
	IngredientID uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	IsMatched    bool      `json:"is_matched"`
}

// MatchResult scores one recipe against a basket.
type MatchResult struct {
	Recipe       *model.Recipe     `json:"-"`
	MatchedCount int               `json:"matched_ingredients"`
	Total        int               `json:"total_ingredients"`
	Percentage   int               `json:"match_percentage"`
	Ingredients  []IngredientMatch `json:"ingredients"`
}

// Evaluate scores a single recipe against the basket under the policy. It is
// a pure function: no I/O, no shared state.
//
// A recipe with no requirements evaluates to 0% and is never retained.
func (p MatchPolicy) Evaluate(recipe *model.Recipe, basket []BasketEntry) MatchResult {
	byIngredient := make(map[uuid.UUID]BasketEntry, len(basket))
	for _, entry := range basket {
		byIngredient[entry.IngredientID] = entry
	}

	result := MatchResult{
		Recipe:      recipe,
		Total:       len(recipe.Requirements),
		Ingredients: make([]IngredientMatch, 0, len(recipe.Requirements)),
	}

	for _, req := range recipe.Requirements {
		entry, ok := byIngredient[req.IngredientID]
		satisfied := ok && (!p.Gated || p.satisfies(req, entry))
		if satisfied {
			result.MatchedCount++
		}

		detail := IngredientMatch{
			IngredientID: req.IngredientID,
			Name:         req.Ingredient.Name,
			IsMatched:    satisfied,
		}
		if req.Quantity != nil {
			detail.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			detail.Unit = req.Unit.UnitName
		} else {
			detail.Unit = "N/A"
		}
		result.Ingredients = append(result.Ingredients, detail)
	}

	if result.Total > 0 {
		result.Percentage = int(math.Round(float64(result.MatchedCount) / float64(result.Total) * 100))
	}
	return result
}

// satisfies applies the gated rules: unit identity must match exactly (an
// absent unit on either side is a mismatch), and the available quantity must
// reach the required quantity scaled by the requirement ratio. A requirement
// without a quantity is satisfied by presence alone once the unit matches.
func (p MatchPolicy) satisfies(req model.IngredientRequirement, entry BasketEntry) bool {
	if req.UnitID == nil || entry.UnitID == nil || *req.UnitID != *entry.UnitID {
		return false
	}
	if req.Quantity == nil {
		return true
	}
	return entry.Quantity >= *req.Quantity*p.RequirementRatio
}

// Retain reports whether a result stays in the response. The gated policy
// applies the minimum match percentage; the presence-only policy keeps any
// recipe with at least one matched requirement.
func (p MatchPolicy) Retain(result MatchResult) bool {
	if result.Total == 0 {
		return false
	}
	if !p.Gated {
		return result.MatchedCount > 0
	}
	return result.Percentage >= p.MinMatchPercent
}

// SortMatches orders results by percentage descending, ties broken by recipe
// creation time descending so newer recipes surface first.
func SortMatches(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Percentage != results[j].Percentage {
			return results[i].Percentage > results[j].Percentage
		}
		return results[i].Recipe.CreatedAt.After(results[j].Recipe.CreatedAt)
	})
}
