package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meals.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseMealsCSV(t *testing.T) {
	records, err := ParseMealsCSV(writeCSV(t, `meal_name,meal_type,calories,protein,carbs,fat,ingredients,vegan,gluten_free
Oatmeal,breakfast,350,12,60,8,Oats; Almond Milk;Blueberries,1,0
Chicken Bowl,lunch,550,45,20,30,chicken;rice,0,true
,lunch,100,1,1,1,,0,0
`))
	require.NoError(t, err)
	require.Len(t, records, 2, "nameless rows are skipped")

	oat := records[0]
	assert.Equal(t, "Oatmeal", oat.Name)
	assert.Equal(t, "breakfast", oat.MealType)
	assert.Equal(t, 350.0, oat.Calories)
	assert.Equal(t, []string{"oats", "almond milk", "blueberries"}, oat.Ingredients)
	assert.Equal(t, []string{"vegan"}, oat.DietaryTags)

	assert.Equal(t, []string{"gluten-free"}, records[1].DietaryTags)
}

func TestParseMealsCSVAcceptsNameColumn(t *testing.T) {
	records, err := ParseMealsCSV(writeCSV(t, "name,meal_type,calories\nSnack Bar,,150\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Snack Bar", records[0].Name)
	assert.Equal(t, "lunch", records[0].MealType, "missing meal_type defaults to lunch")
}

func TestParseMealsCSVDenormalizesFractions(t *testing.T) {
	// 0-1 values are scaled into realistic per-meal ranges
	records, err := ParseMealsCSV(writeCSV(t, "meal_name,calories,protein,carbs,fat\nShake,0.5,0.5,0.5,0.5\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 425.0, records[0].Calories) // 50 + 0.5*(800-50)
	assert.Equal(t, 30.0, records[0].Protein)
	assert.Equal(t, 50.0, records[0].Carbs)
	assert.Equal(t, 20.0, records[0].Fat)
}

func TestDenormalizePassthrough(t *testing.T) {
	assert.Equal(t, 350.0, denormalize(350, "calories"))
	assert.Equal(t, 1.6, denormalize(1.6, "protein"))
	// nutrients without a configured range pass through untouched
	assert.Equal(t, 0.5, denormalize(0.5, "sodium"))
}

func TestParseMealsCSVMissingFile(t *testing.T) {
	_, err := ParseMealsCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestBuiltinMealsCoverEverySlot(t *testing.T) {
	bySlot := map[string]int{}
	names := map[string]bool{}
	for _, m := range BuiltinMeals {
		bySlot[m.MealType]++
		assert.False(t, names[m.Name], "duplicate builtin meal %q", m.Name)
		names[m.Name] = true
		assert.Greater(t, m.Calories, 0.0, "%s has no calories", m.Name)
	}
	for _, slot := range []string{"breakfast", "lunch", "dinner", "snack"} {
		assert.GreaterOrEqual(t, bySlot[slot], 2, "slot %s needs alternatives", slot)
	}
}

func TestBuiltinMealsIncludeVeganPerSlot(t *testing.T) {
	vegan := map[string]int{}
	for _, m := range BuiltinMeals {
		for _, tag := range m.DietaryTags {
			if tag == "vegan" {
				vegan[m.MealType]++
			}
		}
	}
	for _, slot := range []string{"breakfast", "lunch", "dinner", "snack"} {
		assert.GreaterOrEqual(t, vegan[slot], 1, "slot %s has no vegan option", slot)
	}
}
