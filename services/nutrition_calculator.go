// services/nutrition_calculator.go
package services

import (
	"math"
	"strings"
)

// Macros is a gram-based macronutrient target set.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// NutritionTargets is the daily calorie target plus its macro split.
type NutritionTargets struct {
	Calories int    `json:"target_calories"`
	Macros   Macros `json:"target_macros"`
}

// Activity multipliers applied on top of BMR.
var activityMultipliers = map[string]float64{
	"sedentary":         1.20,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.90,
}

type macroRatio struct {
	protein, carbs, fat float64 // calorie shares, sum to 1
}

// Per-preference calorie splits. Qualitative intent: keto/low_carb/paleo
// fat-heavy, high_protein protein-heavy, vegan/mediterranean carb-leaning.
var macroRatios = map[string]macroRatio{
	"balanced":      {0.30, 0.40, 0.30},
	"high_protein":  {0.40, 0.30, 0.30},
	"keto":          {0.30, 0.10, 0.60},
	"low_carb":      {0.35, 0.20, 0.45},
	"paleo":         {0.30, 0.25, 0.45},
	"mediterranean": {0.25, 0.45, 0.30},
	"vegetarian":    {0.25, 0.45, 0.30},
	"vegan":         {0.25, 0.50, 0.25},
	"gluten_free":   {0.30, 0.40, 0.30},
}

// CalculateBMI expects height in centimeters and weight in kilograms.
// Callers validate ranges upstream; height is assumed positive.
func CalculateBMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// CalculateBMR uses the Mifflin-St Jeor equation.
func CalculateBMR(age int, heightCm, weightKg float64, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "male" {
		return base + 5
	}
	return base - 161
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to sedentary, matching how profiles were historically stored.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers["sedentary"]
	}
	return bmr * m
}

// CalculateTargetCalories applies the goal adjustment. Weight loss is
// floor-clamped at 1200 kcal.
func CalculateTargetCalories(tdee float64, healthGoal string) int {
	var val float64
	switch healthGoal {
	case "weight_loss":
		val = math.Max(1200, tdee-500)
	case "muscle_gain":
		val = tdee + 300
	default:
		val = tdee
	}
	return int(math.Round(val))
}

// CalculateMacros converts a calorie target into gram targets using the
// preference's calorie split. Each gram value is rounded independently.
func CalculateMacros(targetCalories int, dietaryPreference string) Macros {
	r, ok := macroRatios[normalizePreference(dietaryPreference)]
	if !ok {
		r = macroRatios["balanced"]
	}
	cals := float64(targetCalories)
	return Macros{
		Protein: int(math.Round(cals * r.protein / 4)),
		Carbs:   int(math.Round(cals * r.carbs / 4)),
		Fat:     int(math.Round(cals * r.fat / 9)),
	}
}

// ComputeTargets runs the full pipeline for a profile.
func ComputeTargets(age int, heightCm, weightKg float64, gender, activityLevel, healthGoal, dietaryPreference string) NutritionTargets {
	bmr := CalculateBMR(age, heightCm, weightKg, gender)
	tdee := CalculateTDEE(bmr, activityLevel)
	cals := CalculateTargetCalories(tdee, healthGoal)
	return NutritionTargets{
		Calories: cals,
		Macros:   CalculateMacros(cals, dietaryPreference),
	}
}

// normalizePreference maps request shorthands onto canonical preference keys.
func normalizePreference(pref string) string {
	p := strings.ToLower(strings.TrimSpace(pref))
	p = strings.ReplaceAll(p, "-", "_")
	switch p {
	case "veg":
		return "vegetarian"
	case "high_protein", "highprotein":
		return "high_protein"
	}
	return p
}
