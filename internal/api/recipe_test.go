package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookshare/backend/internal/model"
)

func TestGetRecipeRoute(t *testing.T) {
	engine, db := setupTestRouter(t)
	recipe := seedRecipe(t, db, "Ratatouille")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, recipe.ID, got.ID)
	assert.Equal(t, "Ratatouille", got.Name)
}

func TestGetRecipeRoute_NotFound(t *testing.T) {
	engine, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeRoute_InvalidID(t *testing.T) {
	engine, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/not-a-uuid", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRecipesRoute(t *testing.T) {
	engine, db := setupTestRouter(t)
	seedRecipe(t, db, "Mushroom Risotto")
	seedRecipe(t, db, "Toast")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/search?q=risotto", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Recipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Mushroom Risotto", resp.Data[0].Name)
}

func TestRandomRecipeRoute(t *testing.T) {
	engine, db := setupTestRouter(t)
	recipe := seedRecipe(t, db, "Shakshuka")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/random", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, recipe.ID, resp.Data.ID)
}

func TestRandomRecipeRoute_EmptyCatalog(t *testing.T) {
	engine, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/random", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":null}`, w.Body.String())
}

func TestListIngredientsRoute(t *testing.T) {
	engine, db := setupTestRouter(t)
	seedIngredient(t, db, "turmeric")
	seedIngredient(t, db, "basil")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Ingredient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "basil", resp.Data[0].Name) // ordered by name
}

func TestListCategoriesRoute(t *testing.T) {
	engine, db := setupTestRouter(t)
	require.NoError(t, db.Create(&model.RecipeCategory{ID: 1, Name: "Breakfast"}).Error)
	require.NoError(t, db.Create(&model.RecipeCategory{ID: 2, Name: "Dessert"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories?type=break", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.RecipeCategory `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Breakfast", resp.Data[0].Name)
}
