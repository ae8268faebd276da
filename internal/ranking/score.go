package ranking

import (
	"math/rand"
	"time"
)

// EngagementCounts holds per-recipe engagement totals. Likes and favorites
// are deduplicated per account by the store; views are raw event counts.
type EngagementCounts struct {
	Views     int64 `json:"view_count"`
	Likes     int64 `json:"like_count"`
	Favorites int64 `json:"favorite_count"`
}

// JitterSource supplies the random component of the recommended-feed score.
// Production uses the process-wide math/rand source; tests inject a fixed
// value to make the pipeline deterministic.
type JitterSource interface {
	Float64() float64
}

type systemJitter struct{}

func (systemJitter) Float64() float64 { return rand.Float64() }

// SystemJitter returns the default jitter source, safe for concurrent use.
func SystemJitter() JitterSource { return systemJitter{} }

// BasicScore is the single engagement-weighted popularity score used for the
// popular and top-in-category lists. It is deterministic: identical counts
// always produce an identical score.
func BasicScore(c EngagementCounts) float64 {
	return float64(c.Views)*0.5 + float64(c.Likes)*2 + float64(c.Favorites)*3
}

// RecencyBucket maps recipe age to a coarse freshness tier: 5 within a week,
// 3 within two weeks, 1 otherwise.
func RecencyBucket(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	switch {
	case age <= 7*24*time.Hour:
		return 5
	case age <= 14*24*time.Hour:
		return 3
	default:
		return 1
	}
}

// RecommendedScore is the diversified score that orders the default feed:
// recency bucket plus down-weighted engagement plus a uniform random jitter
// in [0, 2). The jitter is drawn fresh per evaluation, so repeated calls with
// identical inputs may legitimately return different scores. Never memoize
// this value or use it as a cache key.
func RecommendedScore(createdAt time.Time, c EngagementCounts, now time.Time, jitter JitterSource) float64 {
	return RecencyBucket(createdAt, now) +
		float64(c.Views)*0.2 +
		float64(c.Likes)*0.8 +
		float64(c.Favorites) +
		jitter.Float64()*2
}
