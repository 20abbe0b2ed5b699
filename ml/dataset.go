// Package ml implements the trainable diet classifier: a feature-encoding
// pipeline (numeric imputation + standardization, one-hot categoricals) and
// a random-forest ensemble, persisted together as one versioned artifact so
// the encoding used at predict time is always the one fitted at train time.
package ml

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Feature columns recognized in training CSVs. Columns absent from a file
// are simply not used; the label column is mandatory.
var (
	numericColumns = []string{
		"Age", "Weight_kg", "Height_cm", "Daily_Caloric_Intake", "Weekly_Exercise_Hours",
	}
	categoricalColumns = []string{
		"Gender", "Physical_Activity_Level", "Dietary_Restrictions", "Allergies", "Preferred_Cuisine",
	}
)

const LabelColumn = "Diet_Recommendation"

// Dataset is a parsed training table. Missing numeric cells are NaN,
// missing categorical cells are the empty string.
type Dataset struct {
	NumericCols     []string
	CategoricalCols []string
	Numeric         [][]float64
	Categorical     [][]string
	Labels          []string
}

func (d *Dataset) Rows() int { return len(d.Labels) }

// DistinctLabels returns the number of distinct label values.
func (d *Dataset) DistinctLabels() int {
	seen := map[string]bool{}
	for _, l := range d.Labels {
		seen[l] = true
	}
	return len(seen)
}

// LoadCSV reads a labeled training table. Header names are trimmed;
// unparseable numeric cells become NaN rather than failing the load.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open training csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read training csv: %w", err)
	}
	if len(records) == 0 {
		return &Dataset{}, nil
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	labelIdx, ok := header[LabelColumn]
	if !ok {
		return nil, fmt.Errorf("csv is missing required column %q", LabelColumn)
	}

	ds := &Dataset{}
	for _, c := range numericColumns {
		if _, ok := header[c]; ok {
			ds.NumericCols = append(ds.NumericCols, c)
		}
	}
	for _, c := range categoricalColumns {
		if _, ok := header[c]; ok {
			ds.CategoricalCols = append(ds.CategoricalCols, c)
		}
	}

	for _, row := range records[1:] {
		if labelIdx >= len(row) {
			continue
		}
		label := strings.TrimSpace(row[labelIdx])
		if label == "" {
			label = "Unknown"
		}

		nums := make([]float64, len(ds.NumericCols))
		for i, c := range ds.NumericCols {
			nums[i] = math.NaN()
			if j := header[c]; j < len(row) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64); err == nil {
					nums[i] = v
				}
			}
		}
		cats := make([]string, len(ds.CategoricalCols))
		for i, c := range ds.CategoricalCols {
			if j := header[c]; j < len(row) {
				cats[i] = strings.TrimSpace(row[j])
			}
		}

		ds.Numeric = append(ds.Numeric, nums)
		ds.Categorical = append(ds.Categorical, cats)
		ds.Labels = append(ds.Labels, label)
	}
	return ds, nil
}

// Sample is one profile to classify, keyed by the training column names.
// Missing keys are imputed by the fitted encoder.
type Sample struct {
	Numeric     map[string]float64
	Categorical map[string]string
}
