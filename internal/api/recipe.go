package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/service"
)

// RecipeHandler serves the catalog browse surface.
type RecipeHandler struct {
	catalog *service.CatalogService
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(catalog *service.CatalogService) *RecipeHandler {
	return &RecipeHandler{catalog: catalog}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/random", h.GetRandomRecipe)
		recipes.GET("/:id", h.GetRecipe)
	}
	router.GET("/ingredients", h.ListIngredients)
	router.GET("/categories", h.ListCategories)
}

// SearchRecipes matches the keyword against recipe, ingredient, and category
// names.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.catalog.SearchRecipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recipes})
}

// GetRandomRecipe returns one random public recipe with image and
// description.
func (h *RecipeHandler) GetRandomRecipe(c *gin.Context) {
	recipe, err := h.catalog.GetRandomRecipe(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":          recipe.ID,
		"image_url":   recipe.ImageURL,
		"description": recipe.Description,
	}})
}

// GetRecipe retrieves a recipe by ID.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.catalog.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListIngredients returns the ingredient catalog ordered by name.
func (h *RecipeHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ingredients})
}

// ListCategories returns recipe categories, optionally filtered by the type
// query parameter.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}
