package controllers

import (
	"net/http"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/data"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/gin-gonic/gin"
)

// MealController serves the catalog and its ingestion. Ingestion changes
// catalog contents, so it invalidates the similarity index.
type MealController struct {
	Sim *services.SimilarityService
}

func NewMealController(sim *services.SimilarityService) *MealController {
	return &MealController{Sim: sim}
}

func (mc *MealController) ListMeals(c *gin.Context) {
	catalog, err := services.LoadCatalog()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

type IngestInput struct {
	// CSVPath points at a meals CSV on the server; empty means the
	// built-in dataset.
	CSVPath string `json:"csv_path"`
}

func (mc *MealController) IngestMeals(c *gin.Context) {
	var input IngestInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := data.BuiltinMeals
	if input.CSVPath != "" {
		var err error
		records, err = data.ParseMealsCSV(input.CSVPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	inserted, err := data.SeedMeals(config.DB, records)
	if err != nil {
		respondError(c, err)
		return
	}
	if inserted > 0 {
		// vocabulary weights are corpus-relative; the whole index must go
		mc.Sim.Invalidate()
	}
	c.JSON(http.StatusOK, gin.H{"inserted": inserted, "parsed": len(records)})
}
