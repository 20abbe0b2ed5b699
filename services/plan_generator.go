// services/plan_generator.go
package services

import (
	"math"
	"strings"
	"time"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"

	"github.com/rs/zerolog/log"
)

// Slot ordering and calorie/macro shares per slot.
var slotShares = []struct {
	Slot  string
	Share float64
}{
	{"breakfast", 0.25},
	{"lunch", 0.35},
	{"dinner", 0.30},
	{"snack", 0.10},
}

// Deviation weights: calories dominate, macros count equally.
const (
	weightCalories = 1.0
	weightMacro    = 0.3
)

// Per-preference exclusion lists. A meal is dropped when any of its
// ingredients contains one of the substrings, or it carries an excluded
// tag. New preferences only need a new row here.
type exclusionRule struct {
	Ingredients []string
	Tags        []string
}

var preferenceExclusions = map[string]exclusionRule{
	"vegan": {
		Ingredients: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "bacon", "ham",
			"fish", "salmon", "tuna", "shrimp", "cod", "anchov",
			"egg", "milk", "cheese", "yogurt", "butter", "cream", "honey", "gelatin", "whey",
		},
		Tags: []string{"contains-meat", "contains-dairy"},
	},
	"vegetarian": {
		Ingredients: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "bacon", "ham",
			"fish", "salmon", "tuna", "shrimp", "cod", "anchov", "gelatin",
		},
		Tags: []string{"contains-meat"},
	},
	"gluten_free": {
		Ingredients: []string{
			"wheat", "barley", "rye", "bread", "pasta", "flour", "couscous",
			"tortilla", "soy sauce", "granola", "crouton",
		},
		Tags: []string{"contains-gluten"},
	},
	"keto": {
		Ingredients: []string{"sugar", "bread", "rice", "pasta", "potato", "oats", "granola", "honey"},
		Tags:        []string{"high-carb"},
	},
	"low_carb": {
		Ingredients: []string{"sugar", "bread", "rice", "pasta", "potato"},
		Tags:        []string{"high-carb"},
	},
	"paleo": {
		Ingredients: []string{
			"bread", "rice", "oats", "pasta", "flour", "beans", "lentil",
			"chickpea", "peanut", "cheese", "yogurt", "milk", "tofu", "soy",
		},
		Tags: []string{"contains-grain", "contains-dairy"},
	},
	// balanced, high_protein and mediterranean exclude nothing.
}

// PlanEntry is one selected meal inside a plan.
type PlanEntry struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
}

// DailyTotals sums the nutrient fields of the selected meals.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyPlan is one day's selection, one meal per slot.
type DailyPlan struct {
	Date        string      `json:"date"`
	DayOfWeek   string      `json:"day_of_week,omitempty"`
	Breakfast   PlanEntry   `json:"breakfast"`
	Lunch       PlanEntry   `json:"lunch"`
	Dinner      PlanEntry   `json:"dinner"`
	Snack       PlanEntry   `json:"snack"`
	DailyTotals DailyTotals `json:"daily_totals"`
}

// FilterMeals drops meals containing an allergen token (case-insensitive
// ingredient substring) or conflicting with the preference's exclusion
// lists. Catalog order is preserved.
func FilterMeals(catalog []CatalogMeal, preference string, allergies []string) []CatalogMeal {
	rule := preferenceExclusions[normalizePreference(preference)]

	out := make([]CatalogMeal, 0, len(catalog))
	for _, m := range catalog {
		if mealContainsAny(m, allergies) {
			continue
		}
		if mealContainsAny(m, rule.Ingredients) {
			continue
		}
		if mealHasTag(m, rule.Tags) {
			continue
		}
		out = append(out, m)
	}
	log.Debug().Int("before", len(catalog)).Int("after", len(out)).
		Str("preference", preference).Msg("filtered meals")
	return out
}

func mealContainsAny(m CatalogMeal, tokens []string) bool {
	for _, tok := range tokens {
		t := strings.ToLower(strings.TrimSpace(tok))
		if t == "" {
			continue
		}
		for _, ing := range m.Ingredients {
			if strings.Contains(strings.ToLower(ing), t) {
				return true
			}
		}
	}
	return false
}

func mealHasTag(m CatalogMeal, tags []string) bool {
	for _, want := range tags {
		for _, have := range m.DietaryTags {
			if strings.EqualFold(strings.TrimSpace(have), want) {
				return true
			}
		}
	}
	return false
}

// scoreMeal is the weighted absolute deviation from the slot targets.
// Lower is better.
func scoreMeal(m CatalogMeal, calTarget, proteinTarget, carbsTarget, fatTarget float64) float64 {
	return weightCalories*math.Abs(m.Calories-calTarget) +
		weightMacro*math.Abs(m.Protein-proteinTarget) +
		weightMacro*math.Abs(m.Carbs-carbsTarget) +
		weightMacro*math.Abs(m.Fat-fatTarget)
}

// selectSlotMeal picks the minimum-score meal of the slot's type among
// candidates not in used. Ties resolve to the lower meal id, then to
// catalog order. avoid is a soft constraint: candidates outside it are
// preferred, but it is ignored when honoring it would empty the pool.
func selectSlotMeal(pool []CatalogMeal, slot string, calTarget, pTarget, cTarget, fTarget float64,
	used map[uint]bool, avoid map[uint]bool) (CatalogMeal, bool) {

	pick := func(skipAvoided bool) (CatalogMeal, bool) {
		var best CatalogMeal
		bestScore := math.Inf(1)
		found := false
		for _, m := range pool {
			if m.MealType != slot || used[m.ID] {
				continue
			}
			if skipAvoided && avoid[m.ID] {
				continue
			}
			s := scoreMeal(m, calTarget, pTarget, cTarget, fTarget)
			if s < bestScore || (s == bestScore && m.ID < best.ID) {
				best, bestScore, found = m, s, true
			}
		}
		return best, found
	}

	if len(avoid) > 0 {
		if m, ok := pick(true); ok {
			return m, true
		}
	}
	return pick(false)
}

// GenerateDailyPlan selects one meal per slot against the per-slot share of
// the daily targets. A slot with zero eligible meals is an error, not an
// omission.
func GenerateDailyPlan(targets NutritionTargets, preference string, allergies []string,
	catalog []CatalogMeal, date time.Time) (*DailyPlan, error) {
	return generateDailyPlan(targets, preference, allergies, catalog, date, nil)
}

func generateDailyPlan(targets NutritionTargets, preference string, allergies []string,
	catalog []CatalogMeal, date time.Time, avoid map[uint]bool) (*DailyPlan, error) {

	pool := FilterMeals(catalog, preference, allergies)

	plan := &DailyPlan{
		Date:      date.Format("2006-01-02"),
		DayOfWeek: date.Weekday().String(),
	}
	used := make(map[uint]bool)

	for _, s := range slotShares {
		calTarget := float64(targets.Calories) * s.Share
		pTarget := float64(targets.Macros.Protein) * s.Share
		cTarget := float64(targets.Macros.Carbs) * s.Share
		fTarget := float64(targets.Macros.Fat) * s.Share

		sel, ok := selectSlotMeal(pool, s.Slot, calTarget, pTarget, cTarget, fTarget, used, avoid)
		if !ok {
			return nil, apperrors.NewEmptySlot(s.Slot, preference, allergies)
		}
		used[sel.ID] = true

		entry := PlanEntry{
			ID:          sel.ID,
			Name:        sel.Name,
			MealType:    sel.MealType,
			Calories:    sel.Calories,
			Protein:     sel.Protein,
			Carbs:       sel.Carbs,
			Fat:         sel.Fat,
			Ingredients: sel.Ingredients,
		}
		switch s.Slot {
		case "breakfast":
			plan.Breakfast = entry
		case "lunch":
			plan.Lunch = entry
		case "dinner":
			plan.Dinner = entry
		case "snack":
			plan.Snack = entry
		}

		plan.DailyTotals.Calories += sel.Calories
		plan.DailyTotals.Protein += sel.Protein
		plan.DailyTotals.Carbs += sel.Carbs
		plan.DailyTotals.Fat += sel.Fat
	}

	log.Debug().Str("date", plan.Date).Float64("calories", plan.DailyTotals.Calories).
		Msg("generated daily plan")
	return plan, nil
}

// GenerateWeeklyPlan builds seven consecutive daily plans starting at
// start. Meals picked on earlier days are avoided while alternatives
// remain, so the week has variety without any cross-day optimization.
func GenerateWeeklyPlan(targets NutritionTargets, preference string, allergies []string,
	catalog []CatalogMeal, start time.Time) ([]DailyPlan, error) {

	avoid := make(map[uint]bool)
	week := make([]DailyPlan, 0, 7)
	for i := 0; i < 7; i++ {
		day, err := generateDailyPlan(targets, preference, allergies, catalog, start.AddDate(0, 0, i), avoid)
		if err != nil {
			return nil, err
		}
		for _, id := range []uint{day.Breakfast.ID, day.Lunch.ID, day.Dinner.ID, day.Snack.ID} {
			avoid[id] = true
		}
		week = append(week, *day)
	}
	return week, nil
}
