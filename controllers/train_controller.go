package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/ml"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// validate checks inline predict profiles; plain gin binding covers the
// rest of the request bodies.
var validate = validator.New()

// TrainController exposes classifier training and prediction.
type TrainController struct {
	Classifier *services.DietClassifier
}

func NewTrainController(cl *services.DietClassifier) *TrainController {
	return &TrainController{Classifier: cl}
}

type TrainInput struct {
	CSVPath string `json:"csv_path" binding:"required"`
}

// Train fits a new model from the CSV and swaps it live.
func (tc *TrainController) Train(c *gin.Context) {
	var input TrainInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := tc.Classifier.Train(c.Request.Context(), input.CSVPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PredictProfile mirrors the training CSV column names, so an inline
// profile can be encoded exactly like a training row.
type PredictProfile struct {
	Age                 *int     `json:"Age" validate:"omitempty,gte=18,lte=100"`
	Gender              string   `json:"Gender"`
	WeightKg            *float64 `json:"Weight_kg" validate:"omitempty,gte=30,lte=300"`
	HeightCm            *float64 `json:"Height_cm" validate:"omitempty,gte=100,lte=250"`
	ActivityLevel       string   `json:"Physical_Activity_Level"`
	DailyCaloricIntake  *float64 `json:"Daily_Caloric_Intake" validate:"omitempty,gte=0"`
	DietaryRestrictions string   `json:"Dietary_Restrictions"`
	Allergies           string   `json:"Allergies"`
	PreferredCuisine    string   `json:"Preferred_Cuisine"`
	WeeklyExerciseHours *float64 `json:"Weekly_Exercise_Hours" validate:"omitempty,gte=0"`
}

type PredictInput struct {
	UserID     *uint           `json:"user_id"`
	Profile    *PredictProfile `json:"profile"`
	Preference string          `json:"preference"`
	Weekly     bool            `json:"weekly"`
}

// Model labels and dietary tags don't share a vocabulary; this maps the
// common labels onto catalog tags.
var labelToTag = map[string]string{
	"balanced":     "is-healthy",
	"low_carb":     "keto",
	"low-carb":     "keto",
	"low_sodium":   "low-sodium",
	"high_protein": "high-protein",
	"gluten_free":  "gluten-free",
}

// Predict classifies a stored user or an inline profile and assembles the
// full recommendation response: targets, matching meals and a plan.
func (tc *TrainController) Predict(c *gin.Context) {
	var input PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == nil && input.Profile == nil {
		respondError(c, apperrors.NewValidation("", "either user_id or profile must be provided"))
		return
	}

	var user *models.User
	if input.UserID != nil {
		var u models.User
		if err := config.DB.First(&u, *input.UserID).Error; err != nil {
			respondError(c, apperrors.NewNotFound("User", *input.UserID))
			return
		}
		user = &u
	} else if err := validate.Struct(input.Profile); err != nil {
		respondError(c, apperrors.NewValidation("profile", err.Error()))
		return
	}

	sample := buildSample(user, input.Profile)
	pred, err := tc.Classifier.Predict(sample)
	if err != nil {
		respondError(c, err)
		return
	}
	dietLabel := strings.ToLower(pred.Label)

	// explicit request preference > profile/user preference > predicted label
	preference := dietLabel
	explicit := false
	if input.Preference != "" {
		preference = input.Preference
		explicit = true
	} else if user != nil && user.DietaryPreference != "" {
		preference = user.DietaryPreference
		explicit = true
	} else if input.Profile != nil && input.Profile.DietaryRestrictions != "" {
		preference = input.Profile.DietaryRestrictions
		explicit = true
	}

	catalog, err := services.LoadCatalog()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{}
	var allergies []string
	if user != nil {
		allergies = userAllergies(user)
		for k, v := range userSummary(user) {
			resp[k] = v
		}
	} else {
		profileSummary(input.Profile, dietLabel, resp)
	}
	resp["diet_recommendation"] = pred.Label
	resp["confidence"] = pred.Confidence
	resp["probabilities"] = pred.Probabilities
	resp["dietary_preference"] = preference

	resp["recommended_meals"] = recommendedMeals(catalog, dietLabel, preference, explicit, allergies)

	targets := targetsFor(user, input.Profile, preference)
	if input.Weekly {
		weekly, err := services.GenerateWeeklyPlan(targets, preference, allergies, catalog, time.Now())
		if err != nil {
			log.Warn().Err(err).Msg("weekly plan generation failed during predict")
			resp["weekly_plan"] = nil
		} else {
			resp["weekly_plan"] = weekly
		}
	} else {
		daily, err := services.GenerateDailyPlan(targets, preference, allergies, catalog, time.Now())
		if err != nil {
			log.Warn().Err(err).Msg("daily plan generation failed during predict")
			resp["daily_plan"] = nil
		} else {
			resp["daily_plan"] = daily
		}
	}

	c.JSON(http.StatusOK, resp)
}

// buildSample maps either a stored user or an inline profile onto the
// training schema.
func buildSample(user *models.User, p *PredictProfile) ml.Sample {
	s := ml.Sample{
		Numeric:     map[string]float64{},
		Categorical: map[string]string{},
	}
	if user != nil {
		s.Numeric["Age"] = float64(user.Age)
		s.Numeric["Weight_kg"] = user.WeightKg
		s.Numeric["Height_cm"] = user.HeightCm
		s.Categorical["Gender"] = user.Gender
		s.Categorical["Physical_Activity_Level"] = user.ActivityLevel
		s.Categorical["Allergies"] = strings.Join(userAllergies(user), ",")
		return s
	}
	if p.Age != nil {
		s.Numeric["Age"] = float64(*p.Age)
	}
	if p.WeightKg != nil {
		s.Numeric["Weight_kg"] = *p.WeightKg
	}
	if p.HeightCm != nil {
		s.Numeric["Height_cm"] = *p.HeightCm
	}
	if p.DailyCaloricIntake != nil {
		s.Numeric["Daily_Caloric_Intake"] = *p.DailyCaloricIntake
	}
	if p.WeeklyExerciseHours != nil {
		s.Numeric["Weekly_Exercise_Hours"] = *p.WeeklyExerciseHours
	}
	s.Categorical["Gender"] = p.Gender
	s.Categorical["Physical_Activity_Level"] = p.ActivityLevel
	s.Categorical["Dietary_Restrictions"] = p.DietaryRestrictions
	s.Categorical["Allergies"] = p.Allergies
	s.Categorical["Preferred_Cuisine"] = p.PreferredCuisine
	return s
}

// Defaults for inline profiles that omit fields needed for targets.
func profileField[T any](ptr *T, def T) T {
	if ptr != nil {
		return *ptr
	}
	return def
}

func targetsFor(user *models.User, p *PredictProfile, preference string) services.NutritionTargets {
	if user != nil {
		return userTargets(user)
	}
	age := profileField(p.Age, 30)
	height := profileField(p.HeightCm, 170)
	weight := profileField(p.WeightKg, 70)
	gender := p.Gender
	if gender == "" {
		gender = "male"
	}
	activity := p.ActivityLevel
	if activity == "" {
		activity = "moderately_active"
	}
	return services.ComputeTargets(age, height, weight, gender, activity, "maintain", preference)
}

func profileSummary(p *PredictProfile, dietLabel string, resp gin.H) {
	age := profileField(p.Age, 30)
	height := profileField(p.HeightCm, 170)
	weight := profileField(p.WeightKg, 70)
	bmi := roundBMI(services.CalculateBMI(height, weight))
	targets := targetsFor(nil, p, dietLabel)
	resp["user_id"] = nil
	resp["age"] = age
	resp["height_cm"] = height
	resp["weight_kg"] = weight
	resp["bmi"] = bmi
	resp["target_calories"] = targets.Calories
	resp["target_macros"] = targets.Macros
}

// recommendedMeals picks up to 10 catalog meals matching the predicted
// label's tag; an explicit preference additionally applies the exclusion
// rules, and each entry notes whether its tags verify the preference.
func recommendedMeals(catalog []services.CatalogMeal, dietLabel, preference string, explicit bool, allergies []string) []gin.H {
	tag := labelToTag[dietLabel]
	if tag == "" {
		tag = strings.ReplaceAll(dietLabel, "_", "-")
	}

	pool := catalog
	if explicit || len(allergies) > 0 {
		pool = services.FilterMeals(catalog, preference, allergies)
	}

	matched := make([]services.CatalogMeal, 0)
	for _, m := range pool {
		for _, t := range m.DietaryTags {
			if strings.EqualFold(strings.TrimSpace(t), tag) {
				matched = append(matched, m)
				break
			}
		}
	}
	if len(matched) == 0 {
		matched = pool
	}
	if len(matched) > 10 {
		matched = matched[:10]
	}

	out := make([]gin.H, 0, len(matched))
	for _, m := range matched {
		verified := false
		for _, t := range m.DietaryTags {
			if strings.EqualFold(strings.TrimSpace(t), tag) {
				verified = true
				break
			}
		}
		out = append(out, gin.H{
			"id":          m.ID,
			"name":        m.Name,
			"meal_type":   m.MealType,
			"calories":    m.Calories,
			"protein":     m.Protein,
			"carbs":       m.Carbs,
			"fat":         m.Fat,
			"ingredients": m.Ingredients,
			"verified":    verified,
		})
	}
	return out
}
