package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/middleware"
	"github.com/cookshare/backend/internal/service"
)

// EngagementHandler records the view/like/favorite events the scorer
// consumes, and manages pantries.
type EngagementHandler struct {
	engagement *service.EngagementService
	authCfg    middleware.AuthConfig
}

// NewEngagementHandler creates a new EngagementHandler instance.
func NewEngagementHandler(engagement *service.EngagementService, authCfg middleware.AuthConfig) *EngagementHandler {
	return &EngagementHandler{engagement: engagement, authCfg: authCfg}
}

func (h *EngagementHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/:id/view", middleware.OptionalAuth(h.authCfg), h.RecordView)
		recipes.POST("/:id/like", middleware.RequireAuth(h.authCfg), h.Like)
		recipes.DELETE("/:id/like", middleware.RequireAuth(h.authCfg), h.Unlike)
		recipes.POST("/:id/favorite", middleware.RequireAuth(h.authCfg), h.Favorite)
		recipes.DELETE("/:id/favorite", middleware.RequireAuth(h.authCfg), h.Unfavorite)
	}
	pantry := router.Group("/pantry", middleware.RequireAuth(h.authCfg))
	{
		pantry.GET("", h.GetPantry)
		pantry.POST("", h.AddPantryItems)
	}
}

func (h *EngagementHandler) recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, false
	}
	return id, true
}

// RecordView appends a view event; anonymous views are allowed.
func (h *EngagementHandler) RecordView(c *gin.Context) {
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}
	if err := h.engagement.RecordView(c.Request.Context(), recipeID, middleware.AccountID(c)); err != nil {
		respondEngagementError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "view recorded"})
}

func (h *EngagementHandler) Like(c *gin.Context) {
	h.withAccount(c, func(accountID, recipeID uuid.UUID) error {
		return h.engagement.Like(c.Request.Context(), accountID, recipeID)
	}, http.StatusCreated, "recipe liked")
}

func (h *EngagementHandler) Unlike(c *gin.Context) {
	h.withAccount(c, func(accountID, recipeID uuid.UUID) error {
		return h.engagement.Unlike(c.Request.Context(), accountID, recipeID)
	}, http.StatusOK, "like removed")
}

func (h *EngagementHandler) Favorite(c *gin.Context) {
	h.withAccount(c, func(accountID, recipeID uuid.UUID) error {
		return h.engagement.Favorite(c.Request.Context(), accountID, recipeID)
	}, http.StatusCreated, "recipe favorited")
}

func (h *EngagementHandler) Unfavorite(c *gin.Context) {
	h.withAccount(c, func(accountID, recipeID uuid.UUID) error {
		return h.engagement.Unfavorite(c.Request.Context(), accountID, recipeID)
	}, http.StatusOK, "favorite removed")
}

func (h *EngagementHandler) withAccount(c *gin.Context, fn func(accountID, recipeID uuid.UUID) error, status int, message string) {
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}
	accountID := middleware.AccountID(c)
	if accountID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account required"})
		return
	}
	if err := fn(*accountID, recipeID); err != nil {
		respondEngagementError(c, err)
		return
	}
	c.JSON(status, gin.H{"message": message})
}

// GetPantry lists the account's pantry ingredient ids.
func (h *EngagementHandler) GetPantry(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"data": ids})
}

// AddPantryItems adds ingredients to the pantry, skipping duplicates.
func (h *EngagementHandler) AddPantryItems(c *gin.Context) {
	accountID := middleware.AccountID(c)
	if accountID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account required"})
		return
	}

	var req pantryAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ids, err := req.toIDs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, skipped, err := h.engagement.AddPantryItems(c.Request.Context(), *accountID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pantry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": added, "skipped": skipped})
}

func respondEngagementError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record engagement"})
}
