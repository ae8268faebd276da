package api_test

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookshare/backend/internal/api"
	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/router"
	"github.com/cookshare/backend/internal/service"
	"github.com/cookshare/backend/internal/store"
)

const testJWTSecret = "test-jwt-secret"

// fixedJitter makes recommended scores deterministic in route tests.
type fixedJitter struct{ v float64 }

func (f fixedJitter) Float64() float64 { return f.v }

// setupTestRouter builds the full route tree over an in-memory database and
// returns the engine plus the database handle for seeding.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Ingredient{},
		&model.Unit{},
		&model.Recipe{},
		&model.IngredientRequirement{},
		&model.RecipeCategory{},
		&model.RecipeCategoryMapping{},
		&model.ViewHistory{},
		&model.RecipeLike{},
		&model.RecipeFavorite{},
		&model.PantryItem{},
	))

	catalogStore := store.NewCatalogStore(db)
	engagementStore := store.NewEngagementStore(db)

	feedService := service.NewFeedService(catalogStore, engagementStore, service.FeedOptions{
		Jitter: fixedJitter{0.5},
	})
	catalogService := service.NewCatalogService(catalogStore, fixedJitter{0})
	engagementService := service.NewEngagementService(catalogStore, engagementStore)

	authCfg := middleware.AuthConfig{Secret: testJWTSecret}

	engine := router.SetupRouter(
		api.NewFeedHandler(feedService, engagementService, authCfg),
		api.NewRecipeHandler(catalogService),
		api.NewEngagementHandler(engagementService, authCfg),
		nil,
		func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) },
	)
	return engine, db
}

// signTestToken issues a token the auth middleware accepts.
func signTestToken(t *testing.T, accountID uuid.UUID) string {
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// seedRecipe inserts a public recipe with the given requirements.
func seedRecipe(t *testing.T, db *gorm.DB, name string, reqs ...model.IngredientRequirement) model.Recipe {
	recipe := model.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Description: "A " + name + " worth cooking.",
		ImageURL:    "https://img.example/" + uuid.NewString(),
		Status:      model.RecipeStatusPublic,
		AccountID:   uuid.New(),
	}
	require.NoError(t, db.Create(&recipe).Error)
	for i := range reqs {
		reqs[i].RecipeID = recipe.ID
		require.NoError(t, db.Create(&reqs[i]).Error)
	}
	return recipe
}

// seedIngredient inserts a named ingredient.
func seedIngredient(t *testing.T, db *gorm.DB, name string) model.Ingredient {
	ing := model.Ingredient{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(&ing).Error)
	return ing
}
