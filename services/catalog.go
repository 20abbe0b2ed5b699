package services

import (
	"encoding/json"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"
)

// CatalogMeal is the read-only meal value the engine works with, decoded
// from the JSON columns of the meals table. Catalog order is the order
// meals were loaded in.
type CatalogMeal struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	DietaryTags []string `json:"dietary_tags"`
}

// CatalogFromModels converts gorm meal rows into engine values. Rows with
// unparseable JSON columns keep empty lists rather than failing the load.
func CatalogFromModels(rows []models.Meal) []CatalogMeal {
	out := make([]CatalogMeal, 0, len(rows))
	for _, m := range rows {
		out = append(out, CatalogMeal{
			ID:          m.ID,
			Name:        m.Name,
			MealType:    m.MealType,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
			Ingredients: decodeStringList(m.Ingredients),
			DietaryTags: decodeStringList(m.DietaryTags),
		})
	}
	return out
}

// LoadCatalog reads the full meals table in insertion order.
func LoadCatalog() ([]CatalogMeal, error) {
	var rows []models.Meal
	if err := config.DB.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return CatalogFromModels(rows), nil
}

func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
