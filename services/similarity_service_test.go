package services

import (
	"testing"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simCatalog() []CatalogMeal {
	return []CatalogMeal{
		{ID: 1, Name: "Chicken Rice Bowl", MealType: "lunch",
			Ingredients: []string{"chicken breast", "rice", "broccoli"}, DietaryTags: []string{"gluten-free"}},
		{ID: 2, Name: "Chicken Wrap", MealType: "lunch",
			Ingredients: []string{"chicken breast", "tortilla", "lettuce"}, DietaryTags: []string{"high-protein"}},
		{ID: 3, Name: "Fruit Salad", MealType: "snack",
			Ingredients: []string{"apple", "banana", "orange"}, DietaryTags: []string{"vegan"}},
		{ID: 4, Name: "Rice Pudding", MealType: "snack",
			Ingredients: []string{"rice", "milk", "cinnamon"}, DietaryTags: []string{"vegetarian"}},
	}
}

func TestSimilarExcludesSelfAndRanksByOverlap(t *testing.T) {
	idx := BuildIndex(simCatalog())

	got, err := idx.Similar(1, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for _, m := range got {
		assert.NotEqual(t, uint(1), m.ID, "query meal must not appear in its own results")
	}
	// the other chicken dish shares the most terms
	assert.Equal(t, uint(2), got[0].ID)
	// scores are descending
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	// disjoint-ingredient meal ranks last
	assert.Equal(t, uint(3), got[2].ID)
}

func TestSimilarCapsAtTopK(t *testing.T) {
	idx := BuildIndex(simCatalog())

	got, err := idx.Similar(1, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// topK larger than the catalog returns everything but the query meal
	got, err = idx.Similar(1, 100)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSimilarNonPositiveTopK(t *testing.T) {
	idx := BuildIndex(simCatalog())
	for _, k := range []int{0, -5} {
		got, err := idx.Similar(1, k)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestSimilarUnknownMeal(t *testing.T) {
	idx := BuildIndex(simCatalog())
	_, err := idx.Similar(99, 5)
	require.Error(t, err)

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestSimilarityServiceRebuildSwapsSnapshot(t *testing.T) {
	svc := NewSimilarityService()
	svc.Rebuild(simCatalog())

	got, err := svc.Similar(1, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// a rebuilt snapshot sees the new meal
	extended := append(simCatalog(), CatalogMeal{
		ID: 5, Name: "Chicken Rice Soup", MealType: "dinner",
		Ingredients: []string{"chicken breast", "rice", "celery"},
	})
	svc.Rebuild(extended)

	got, err = svc.Similar(5, 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"chicken", "breast"}, tokenize("Chicken Breast"))
	assert.Equal(t, []string{"gluten", "free"}, tokenize("gluten-free"))
	assert.Empty(t, tokenize("  ,,  "))
}
