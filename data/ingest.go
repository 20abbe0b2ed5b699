package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Boolean tag columns recognized in meal CSVs.
var knownTagColumns = []string{
	"vegan", "vegetarian", "keto", "paleo", "gluten_free", "mediterranean", "is_healthy",
}

// Realistic per-meal ranges used to denormalize 0-1 nutrition values found
// in some fixture files.
var nutrientRanges = map[string][2]float64{
	"calories": {50, 800},
	"protein":  {0, 60},
	"carbs":    {0, 100},
	"fat":      {0, 40},
}

// denormalize converts a 0-1 value to real units; values that already look
// denormalized (> 1.5) pass through.
func denormalize(v float64, nutrient string) float64 {
	if v > 1.5 {
		return v
	}
	r, ok := nutrientRanges[nutrient]
	if !ok {
		return v
	}
	return r[0] + v*(r[1]-r[0])
}

// ParseMealsCSV reads a meal catalog CSV. Expected columns: meal_name (or
// name), meal_type, calories, protein, carbs, fat, optional ingredients
// (semicolon-separated) and the boolean tag columns. Rows without a name
// are skipped.
func ParseMealsCSV(path string) ([]MealRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open meals csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read meals csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, col string) string {
		if i, ok := header[col]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(row []string, col string) float64 {
		v, err := strconv.ParseFloat(cell(row, col), 64)
		if err != nil {
			return 0
		}
		return denormalize(v, col)
	}

	var out []MealRecord
	for _, row := range records[1:] {
		name := cell(row, "meal_name")
		if name == "" {
			name = cell(row, "name")
		}
		if name == "" {
			continue
		}
		mealType := strings.ToLower(cell(row, "meal_type"))
		if mealType == "" {
			mealType = "lunch"
		}

		var ingredients []string
		for _, ing := range strings.Split(cell(row, "ingredients"), ";") {
			if ing = strings.ToLower(strings.TrimSpace(ing)); ing != "" {
				ingredients = append(ingredients, ing)
			}
		}
		var tags []string
		for _, tag := range knownTagColumns {
			switch strings.ToLower(cell(row, tag)) {
			case "1", "true", "yes":
				tags = append(tags, strings.ReplaceAll(tag, "_", "-"))
			}
		}

		out = append(out, MealRecord{
			Name:        name,
			MealType:    mealType,
			Calories:    num(row, "calories"),
			Protein:     num(row, "protein"),
			Carbs:       num(row, "carbs"),
			Fat:         num(row, "fat"),
			Ingredients: ingredients,
			DietaryTags: tags,
		})
	}
	return out, nil
}

// SeedMeals inserts records that are not already present (matched by
// name), so repeated ingests are idempotent. Returns the number inserted.
func SeedMeals(db *gorm.DB, records []MealRecord) (int, error) {
	inserted := 0
	for _, rec := range records {
		var count int64
		if err := db.Model(&models.Meal{}).Where("name = ?", rec.Name).Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}
		ingredients, _ := json.Marshal(rec.Ingredients)
		tags, _ := json.Marshal(rec.DietaryTags)
		meal := models.Meal{
			Name:        rec.Name,
			MealType:    rec.MealType,
			Calories:    rec.Calories,
			Protein:     rec.Protein,
			Carbs:       rec.Carbs,
			Fat:         rec.Fat,
			Ingredients: datatypes.JSON(ingredients),
			DietaryTags: datatypes.JSON(tags),
		}
		if err := db.Create(&meal).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	log.Info().Int("inserted", inserted).Int("total", len(records)).Msg("meal catalog seeded")
	return inserted, nil
}

// SeedBuiltin loads the built-in dataset.
func SeedBuiltin(db *gorm.DB) (int, error) {
	return SeedMeals(db, BuiltinMeals)
}
