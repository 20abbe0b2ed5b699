// services/similarity_service.go
package services

import (
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// SimilarityIndex is an immutable snapshot of TF-IDF weighted term vectors
// over one catalog. IDF weights are corpus-relative, so any catalog change
// requires a full rebuild rather than an incremental patch.
type SimilarityIndex struct {
	vocab   map[string]int
	vectors map[uint][]float64 // L2-normalized, dense over vocab
	meals   map[uint]CatalogMeal
	order   []uint // catalog order, for stable iteration
}

// SimilarMeal is one similarity hit.
type SimilarMeal struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	DietaryTags []string `json:"dietary_tags"`
	Score       float64  `json:"score"`
}

// SimilarityService holds the live index snapshot. Readers always see
// either the previous complete snapshot or the new one.
type SimilarityService struct {
	index atomic.Pointer[SimilarityIndex]
}

func NewSimilarityService() *SimilarityService {
	return &SimilarityService{}
}

// tokenize lowercases and splits on non-alphanumeric runs.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// BuildIndex computes TF-IDF vectors for the catalog in one pass. The
// document for a meal is its ingredients plus its dietary tags.
func BuildIndex(catalog []CatalogMeal) *SimilarityIndex {
	docs := make(map[uint][]string, len(catalog))
	order := make([]uint, 0, len(catalog))
	meals := make(map[uint]CatalogMeal, len(catalog))

	df := map[string]int{}
	for _, m := range catalog {
		var terms []string
		for _, ing := range m.Ingredients {
			terms = append(terms, tokenize(ing)...)
		}
		for _, tag := range m.DietaryTags {
			terms = append(terms, tokenize(tag)...)
		}
		docs[m.ID] = terms
		order = append(order, m.ID)
		meals[m.ID] = m

		seen := map[string]bool{}
		for _, t := range terms {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	vocab := make(map[string]int, len(df))
	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	for i, t := range terms {
		vocab[t] = i
	}

	n := float64(len(catalog))
	idf := make([]float64, len(vocab))
	for t, i := range vocab {
		// smooth idf: terms appearing in more meals weigh less
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make(map[uint][]float64, len(catalog))
	for id, terms := range docs {
		vec := make([]float64, len(vocab))
		for _, t := range terms {
			vec[vocab[t]] += idf[vocab[t]]
		}
		if norm := floats.Norm(vec, 2); norm > 0 {
			floats.Scale(1/norm, vec)
		}
		vectors[id] = vec
	}

	log.Info().Int("meals", len(catalog)).Int("vocabulary", len(vocab)).
		Msg("similarity index built")
	return &SimilarityIndex{vocab: vocab, vectors: vectors, meals: meals, order: order}
}

// Rebuild swaps in a fresh snapshot for the given catalog.
func (s *SimilarityService) Rebuild(catalog []CatalogMeal) {
	s.index.Store(BuildIndex(catalog))
}

// Invalidate drops the snapshot; the next query rebuilds lazily. Call this
// whenever catalog contents change.
func (s *SimilarityService) Invalidate() {
	s.index.Store(nil)
}

// Similar returns the topK meals most similar to mealID, descending by
// cosine score, ties broken by lower id. The query meal itself is never
// included. topK <= 0 yields an empty slice.
func (s *SimilarityService) Similar(mealID uint, topK int) ([]SimilarMeal, error) {
	idx := s.index.Load()
	if idx == nil {
		catalog, err := LoadCatalog()
		if err != nil {
			return nil, err
		}
		idx = BuildIndex(catalog)
		s.index.Store(idx)
	}
	return idx.Similar(mealID, topK)
}

// Similar answers a query against this snapshot.
func (idx *SimilarityIndex) Similar(mealID uint, topK int) ([]SimilarMeal, error) {
	query, ok := idx.vectors[mealID]
	if !ok {
		return nil, apperrors.NewNotFound("Meal", mealID)
	}
	if topK <= 0 {
		return []SimilarMeal{}, nil
	}

	type scored struct {
		id    uint
		score float64
	}
	ranked := make([]scored, 0, len(idx.order)-1)
	for _, id := range idx.order {
		if id == mealID {
			continue
		}
		ranked = append(ranked, scored{id: id, score: floats.Dot(query, idx.vectors[id])})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]SimilarMeal, 0, topK)
	for _, r := range ranked[:topK] {
		m := idx.meals[r.id]
		out = append(out, SimilarMeal{
			ID:          m.ID,
			Name:        m.Name,
			MealType:    m.MealType,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
			DietaryTags: m.DietaryTags,
			Score:       r.score,
		})
	}
	return out, nil
}
