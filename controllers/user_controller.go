package controllers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type CreateUserRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               int      `json:"age" binding:"required,gte=18,lte=100"`
	Gender            string   `json:"gender" binding:"required,oneof=male female"`
	WeightKg          float64  `json:"weight_kg" binding:"required,gte=30,lte=300"`
	HeightCm          float64  `json:"height_cm" binding:"required,gte=100,lte=250"`
	ActivityLevel     string   `json:"activity_level" binding:"required,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	HealthGoal        string   `json:"health_goal" binding:"required,oneof=weight_loss muscle_gain maintain"`
	DietaryPreference string   `json:"dietary_preference" binding:"required,oneof=balanced vegetarian vegan keto low_carb gluten_free paleo mediterranean high_protein"`
	Allergies         []string `json:"allergies"`
}

func roundBMI(bmi float64) float64 { return math.Round(bmi*10) / 10 }

// createUser computes targets and persists the profile.
func createUser(req CreateUserRequest) (*models.User, error) {
	targets := services.ComputeTargets(req.Age, req.HeightCm, req.WeightKg,
		req.Gender, req.ActivityLevel, req.HealthGoal, req.DietaryPreference)

	allergies := req.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	allergiesJSON, _ := json.Marshal(allergies)

	user := &models.User{
		Name:              req.Name,
		Age:               req.Age,
		Gender:            req.Gender,
		HeightCm:          req.HeightCm,
		WeightKg:          req.WeightKg,
		ActivityLevel:     req.ActivityLevel,
		HealthGoal:        req.HealthGoal,
		DietaryPreference: req.DietaryPreference,
		Allergies:         datatypes.JSON(allergiesJSON),
		TargetCalories:    targets.Calories,
		TargetProtein:     targets.Macros.Protein,
		TargetCarbs:       targets.Macros.Carbs,
		TargetFat:         targets.Macros.Fat,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func userTargets(u *models.User) services.NutritionTargets {
	return services.NutritionTargets{
		Calories: u.TargetCalories,
		Macros: services.Macros{
			Protein: u.TargetProtein,
			Carbs:   u.TargetCarbs,
			Fat:     u.TargetFat,
		},
	}
}

func userAllergies(u *models.User) []string {
	var out []string
	if len(u.Allergies) > 0 {
		_ = json.Unmarshal(u.Allergies, &out)
	}
	return out
}

// savePlanRow persists one generated daily plan.
func savePlanRow(userID uint, plan *services.DailyPlan) error {
	date, _ := time.Parse("2006-01-02", plan.Date)
	snackID := plan.Snack.ID
	row := models.MealPlan{
		UserID:        userID,
		PlanDate:      date,
		BreakfastID:   plan.Breakfast.ID,
		LunchID:       plan.Lunch.ID,
		DinnerID:      plan.Dinner.ID,
		SnackID:       &snackID,
		TotalCalories: plan.DailyTotals.Calories,
		TotalProtein:  plan.DailyTotals.Protein,
		TotalCarbs:    plan.DailyTotals.Carbs,
		TotalFat:      plan.DailyTotals.Fat,
	}
	return config.DB.Create(&row).Error
}

func userSummary(u *models.User) gin.H {
	bmi := roundBMI(services.CalculateBMI(u.HeightCm, u.WeightKg))
	return gin.H{
		"user_id":            u.ID,
		"name":               u.Name,
		"age":                u.Age,
		"gender":             u.Gender,
		"height_cm":          u.HeightCm,
		"weight_kg":          u.WeightKg,
		"bmi":                bmi,
		"bmi_category":       utils.BMICategory(bmi),
		"activity_level":     u.ActivityLevel,
		"health_goal":        u.HealthGoal,
		"dietary_preference": u.DietaryPreference,
		"target_calories":    u.TargetCalories,
		"target_macros": gin.H{
			"protein": u.TargetProtein,
			"carbs":   u.TargetCarbs,
			"fat":     u.TargetFat,
		},
		"created_at": u.CreatedAt.Format(time.RFC3339),
	}
}

// CreateUserWithPlan creates a user and generates both a daily and a
// weekly meal plan.
func CreateUserWithPlan(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := createUser(req)
	if err != nil {
		respondError(c, err)
		return
	}

	catalog, err := services.LoadCatalog()
	if err != nil {
		respondError(c, err)
		return
	}
	if len(catalog) == 0 {
		respondError(c, apperrors.NewInsufficientData("no meals available, load meal data first"))
		return
	}

	today := time.Now()
	daily, err := services.GenerateDailyPlan(userTargets(user), user.DietaryPreference, userAllergies(user), catalog, today)
	if err != nil {
		respondError(c, err)
		return
	}
	weekly, err := services.GenerateWeeklyPlan(userTargets(user), user.DietaryPreference, userAllergies(user), catalog, today)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := savePlanRow(user.ID, daily); err != nil {
		respondError(c, err)
		return
	}
	for i := range weekly {
		if err := savePlanRow(user.ID, &weekly[i]); err != nil {
			respondError(c, err)
			return
		}
	}
	services.EmitAlert(user.ID, "plan.created", "daily and weekly meal plans generated")
	log.Info().Uint("user_id", user.ID).Float64("calories", daily.DailyTotals.Calories).
		Msg("user created with plans")

	resp := userSummary(user)
	resp["daily_plan"] = daily
	resp["weekly_plan"] = weekly
	c.JSON(http.StatusCreated, resp)
}

// CreateUserWithWeeklyPlan creates a user and generates only the 7-day plan.
func CreateUserWithWeeklyPlan(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := createUser(req)
	if err != nil {
		respondError(c, err)
		return
	}

	catalog, err := services.LoadCatalog()
	if err != nil {
		respondError(c, err)
		return
	}
	if len(catalog) == 0 {
		respondError(c, apperrors.NewInsufficientData("no meals available, load meal data first"))
		return
	}

	weekly, err := services.GenerateWeeklyPlan(userTargets(user), user.DietaryPreference, userAllergies(user), catalog, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range weekly {
		if err := savePlanRow(user.ID, &weekly[i]); err != nil {
			respondError(c, err)
			return
		}
	}
	services.EmitAlert(user.ID, "plan.created", "weekly meal plan generated")

	resp := userSummary(user)
	resp["weekly_plan"] = weekly
	c.JSON(http.StatusCreated, resp)
}

// GetUsersWithPlans lists users with their most recent plan.
func GetUsersWithPlans(c *gin.Context) {
	limit := 50
	skip := 0
	if v, err := parseQueryInt(c, "limit"); err == nil {
		limit = v
	}
	if v, err := parseQueryInt(c, "skip"); err == nil {
		skip = v
	}

	var users []models.User
	if err := config.DB.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		entry := userSummary(u)

		var latest models.MealPlan
		err := config.DB.Where("user_id = ?", u.ID).Order("plan_date DESC").First(&latest).Error
		if err == nil {
			entry["meal_plan"] = planRowToJSON(&latest)
		} else {
			entry["meal_plan"] = nil
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"total_users": len(out), "users": out})
}

func planRowToJSON(p *models.MealPlan) gin.H {
	h := gin.H{
		"date":      p.PlanDate.Format("2006-01-02"),
		"breakfast": mealDetail(p.BreakfastID),
		"lunch":     mealDetail(p.LunchID),
		"dinner":    mealDetail(p.DinnerID),
		"daily_totals": gin.H{
			"calories": p.TotalCalories,
			"protein":  p.TotalProtein,
			"carbs":    p.TotalCarbs,
			"fat":      p.TotalFat,
		},
	}
	if p.SnackID != nil {
		h["snack"] = mealDetail(*p.SnackID)
	}
	return h
}

func mealDetail(id uint) gin.H {
	var m models.Meal
	if err := config.DB.First(&m, id).Error; err != nil {
		return nil
	}
	cm := services.CatalogFromModels([]models.Meal{m})[0]
	return gin.H{
		"id":          cm.ID,
		"name":        cm.Name,
		"meal_type":   cm.MealType,
		"calories":    cm.Calories,
		"protein":     cm.Protein,
		"carbs":       cm.Carbs,
		"fat":         cm.Fat,
		"ingredients": cm.Ingredients,
	}
}
