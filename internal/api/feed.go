package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/ranking"
	"github.com/cookshare/backend/internal/service"
)

// FeedHandler serves the ranking surface: ingredient matching, popular and
// top-in-category lists, and the windowed feed.
type FeedHandler struct {
	feed       *service.FeedService
	engagement *service.EngagementService
	authCfg    middleware.AuthConfig
}

// NewFeedHandler creates a new FeedHandler instance.
func NewFeedHandler(feed *service.FeedService, engagement *service.EngagementService, authCfg middleware.AuthConfig) *FeedHandler {
	return &FeedHandler{feed: feed, engagement: engagement, authCfg: authCfg}
}

func (h *FeedHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/match", h.MatchByIngredients)
		recipes.GET("/popular", middleware.OptionalAuth(h.authCfg), h.GetPopular)
		recipes.GET("/feed", h.GetFeed)
	}
	router.GET("/categories/:id/top", middleware.OptionalAuth(h.authCfg), h.GetTopInCategory)
	router.POST("/pantry/match", middleware.RequireAuth(h.authCfg), h.MatchPantry)
}

// MatchByIngredients ranks public recipes against the posted basket.
func (h *FeedHandler) MatchByIngredients(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	basket, err := req.toBasket()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, err := h.feed.MatchByIngredients(c.Request.Context(), basket)
	if err != nil {
		respondRankingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": matches, "total": len(matches)})
}

// MatchPantry matches the authenticated account's pantry in presence-only
// mode.
func (h *FeedHandler) MatchPantry(c *gin.Context) {
	accountID := middleware.AccountID(c)
	if accountID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account required"})
		return
	}

	ids, err := h.engagement.GetPantry(c.Request.Context(), *accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	matches, err := h.feed.MatchByPantryItems(c.Request.Context(), ids)
	if err != nil {
		respondRankingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": matches, "total": len(matches)})
}

// GetPopular returns the top five recipes by popularity score.
func (h *FeedHandler) GetPopular(c *gin.Context) {
	popular, err := h.feed.GetPopular(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch popular recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": popular})
}

// GetTopInCategory returns the top four recipes in a category.
func (h *FeedHandler) GetTopInCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	top, err := h.feed.GetTopInCategory(c.Request.Context(), categoryID, middleware.AccountID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": top})
}

// GetFeed returns one window of the recipe feed.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	sortBy := c.Query("sortBy")
	limit := intQuery(c, "limit", 10)
	offset := intQuery(c, "offset", 0)

	page, err := h.feed.GetFeed(c.Request.Context(), sortBy, limit, offset)
	if err != nil {
		respondRankingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page.Items, "pagination": page.Pagination})
}

// intQuery parses an integer query value, falling back to the default on
// absent or malformed input.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func respondRankingError(c *gin.Context, err error) {
	var verr *ranking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank recipes"})
}
