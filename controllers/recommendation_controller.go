package controllers

import (
	"net/http"
	"strconv"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RecommendationController struct {
	Sim *services.SimilarityService
}

func NewRecommendationController(sim *services.SimilarityService) *RecommendationController {
	return &RecommendationController{Sim: sim}
}

// GetSimilarMeals returns the top-k catalog meals most similar to the
// given meal.
func (rc *RecommendationController) GetSimilarMeals(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidation("id", "meal id must be a positive integer"))
		return
	}
	topK := 5
	if v, err := parseQueryInt(c, "top_k"); err == nil {
		topK = v
	}

	results, err := rc.Sim.Similar(uint(mealID), topK)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

type FeedbackInput struct {
	UserID uint `json:"user_id" binding:"required"`
	MealID uint `json:"meal_id" binding:"required"`
	Rating int  `json:"rating" binding:"required,gte=1,lte=5"`
}

// SubmitFeedback records a rating for a meal within a plan, kept for
// later feedback-based models.
func (rc *RecommendationController) SubmitFeedback(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("plan_id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidation("plan_id", "plan id must be a positive integer"))
		return
	}

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.UserID).Error; err != nil {
		respondError(c, apperrors.NewNotFound("User", input.UserID))
		return
	}
	var meal models.Meal
	if err := config.DB.First(&meal, input.MealID).Error; err != nil {
		respondError(c, apperrors.NewNotFound("Meal", input.MealID))
		return
	}

	pid := uint(planID)
	fb := models.Feedback{
		UserID: input.UserID,
		PlanID: &pid,
		MealID: input.MealID,
		Rating: input.Rating,
	}
	if err := config.DB.Create(&fb).Error; err != nil {
		respondError(c, err)
		return
	}
	log.Info().Uint("user_id", fb.UserID).Uint("meal_id", fb.MealID).Int("rating", fb.Rating).
		Msg("feedback recorded")
	c.JSON(http.StatusCreated, gin.H{
		"id":      fb.ID,
		"user_id": fb.UserID,
		"plan_id": fb.PlanID,
		"meal_id": fb.MealID,
		"rating":  fb.Rating,
	})
}
