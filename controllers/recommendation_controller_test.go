package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func similarRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sim := services.NewSimilarityService()
	sim.Rebuild([]services.CatalogMeal{
		{ID: 1, Name: "Chicken Rice Bowl", MealType: "lunch",
			Ingredients: []string{"chicken breast", "rice", "broccoli"}},
		{ID: 2, Name: "Chicken Wrap", MealType: "lunch",
			Ingredients: []string{"chicken breast", "tortilla", "lettuce"}},
		{ID: 3, Name: "Fruit Salad", MealType: "snack",
			Ingredients: []string{"apple", "banana"}},
	})

	r := gin.New()
	rc := NewRecommendationController(sim)
	r.GET("/api/recommendations/meal/:id/similar", rc.GetSimilarMeals)
	return r
}

func TestGetSimilarMeals(t *testing.T) {
	r := similarRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/meal/1/similar?top_k=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []services.SimilarMeal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestGetSimilarMealsUnknownID(t *testing.T) {
	r := similarRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/meal/99/similar", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetSimilarMealsBadID(t *testing.T) {
	r := similarRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/meal/abc/similar", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSimilarMealsDefaultTopK(t *testing.T) {
	r := similarRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/meal/1/similar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []services.SimilarMeal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	// default top_k is 5 but only 2 other meals exist
	assert.Len(t, got, 2)
}
