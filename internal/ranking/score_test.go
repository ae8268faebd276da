package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedJitter pins the random component for deterministic pipeline tests.
type fixedJitter struct{ v float64 }

func (f fixedJitter) Float64() float64 { return f.v }

func TestBasicScoreWeights(t *testing.T) {
	a := BasicScore(EngagementCounts{Views: 10, Likes: 5, Favorites: 2})
	b := BasicScore(EngagementCounts{Views: 50})

	assert.Equal(t, 21.0, a)
	assert.Equal(t, 25.0, b)
	assert.Greater(t, b, a, "views alone can outrank a liked recipe")
}

func TestBasicScoreMonotonicInEachFactor(t *testing.T) {
	base := EngagementCounts{Views: 10, Likes: 10, Favorites: 10}
	score := BasicScore(base)

	moreViews := base
	moreViews.Views++
	moreLikes := base
	moreLikes.Likes++
	moreFavorites := base
	moreFavorites.Favorites++

	assert.Greater(t, BasicScore(moreViews), score)
	assert.Greater(t, BasicScore(moreLikes), score)
	assert.Greater(t, BasicScore(moreFavorites), score)
}

func TestBasicScoreDeterministic(t *testing.T) {
	counts := EngagementCounts{Views: 123, Likes: 45, Favorites: 6}
	assert.Equal(t, BasicScore(counts), BasicScore(counts))
}

func TestRecencyBucketTiers(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 5.0, RecencyBucket(now.Add(-3*24*time.Hour), now))
	assert.Equal(t, 5.0, RecencyBucket(now.Add(-7*24*time.Hour), now))
	assert.Equal(t, 3.0, RecencyBucket(now.Add(-10*24*time.Hour), now))
	assert.Equal(t, 3.0, RecencyBucket(now.Add(-14*24*time.Hour), now))
	assert.Equal(t, 1.0, RecencyBucket(now.Add(-30*24*time.Hour), now))
}

func TestRecommendedScoreComposition(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-10 * 24 * time.Hour) // bucket 3
	counts := EngagementCounts{Views: 10, Likes: 5, Favorites: 2}

	score := RecommendedScore(createdAt, counts, now, fixedJitter{v: 0.5})
	// 3 + 10*0.2 + 5*0.8 + 2 + 0.5*2 = 12
	assert.InDelta(t, 12.0, score, 1e-9)
}

func TestRecommendedScoreMayDiffer(t *testing.T) {
	// The jitter is drawn per evaluation: identical inputs are allowed to
	// produce different scores. With the system source, 64 evaluations
	// landing on the exact same float is not a thing that happens.
	now := time.Now()
	createdAt := now.Add(-30 * 24 * time.Hour)
	counts := EngagementCounts{Views: 1}

	first := RecommendedScore(createdAt, counts, now, SystemJitter())
	differed := false
	for i := 0; i < 64; i++ {
		if RecommendedScore(createdAt, counts, now, SystemJitter()) != first {
			differed = true
			break
		}
	}
	assert.True(t, differed, "recommended score must not be deterministic across evaluations")
}

func TestRecommendedScoreJitterBounds(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-30 * 24 * time.Hour) // bucket 1
	counts := EngagementCounts{}

	for i := 0; i < 256; i++ {
		score := RecommendedScore(createdAt, counts, now, SystemJitter())
		assert.GreaterOrEqual(t, score, 1.0)
		assert.Less(t, score, 3.0)
	}
}
