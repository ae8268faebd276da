package ranking

import "fmt"

// SortKey names a feed ordering. The single-factor keys order strictly by the
// named field; only SortRecommended uses the composite randomized score.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortNewest      SortKey = "newest"
	SortViews       SortKey = "views"
	SortLikes       SortKey = "likes"
	SortFavorites   SortKey = "favorites"
)

// ParseSortKey validates a caller-supplied sort value. An empty value falls
// back to the recommended ordering; anything else unknown is rejected rather
// than silently defaulted.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortRecommended, nil
	case SortRecommended, SortNewest, SortViews, SortLikes, SortFavorites:
		return SortKey(s), nil
	default:
		return "", &ValidationError{Field: "sortBy", Reason: fmt.Sprintf("unknown sort key %q", s)}
	}
}
