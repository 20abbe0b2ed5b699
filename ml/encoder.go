package ml

import (
	"math"
	"sort"
)

// UnknownCategory is the synthetic category assigned to missing and unseen
// categorical values, so prediction never crashes on values absent from the
// training data.
const UnknownCategory = "Unknown"

// Encoder is the fitted feature-encoding pipeline: median imputation plus
// standardization for numeric columns, one-hot encoding for categoricals.
// All fields are exported for gob persistence.
type Encoder struct {
	NumericCols []string
	Medians     []float64
	Means       []float64
	Stds        []float64

	CategoricalCols []string
	Categories      [][]string // per column, sorted, always contains UnknownCategory
}

// FitEncoder fits imputation, scaling and category vocabularies on the
// given rows (typically the training split only).
func FitEncoder(ds *Dataset, rows []int) *Encoder {
	e := &Encoder{
		NumericCols:     ds.NumericCols,
		CategoricalCols: ds.CategoricalCols,
	}

	for col := range ds.NumericCols {
		var vals []float64
		for _, r := range rows {
			if v := ds.Numeric[r][col]; !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		med := median(vals)
		e.Medians = append(e.Medians, med)

		// mean/std over imputed values
		var sum float64
		for _, r := range rows {
			v := ds.Numeric[r][col]
			if math.IsNaN(v) {
				v = med
			}
			sum += v
		}
		mean := sum / float64(len(rows))
		var ss float64
		for _, r := range rows {
			v := ds.Numeric[r][col]
			if math.IsNaN(v) {
				v = med
			}
			ss += (v - mean) * (v - mean)
		}
		std := math.Sqrt(ss / float64(len(rows)))
		if std == 0 {
			std = 1
		}
		e.Means = append(e.Means, mean)
		e.Stds = append(e.Stds, std)
	}

	for col := range ds.CategoricalCols {
		seen := map[string]bool{UnknownCategory: true}
		for _, r := range rows {
			v := ds.Categorical[r][col]
			if v == "" {
				continue
			}
			seen[v] = true
		}
		cats := make([]string, 0, len(seen))
		for c := range seen {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		e.Categories = append(e.Categories, cats)
	}
	return e
}

// Width is the encoded feature vector length.
func (e *Encoder) Width() int {
	w := len(e.NumericCols)
	for _, cats := range e.Categories {
		w += len(cats)
	}
	return w
}

// transform encodes one raw row.
func (e *Encoder) transform(numeric []float64, categorical []string) []float64 {
	out := make([]float64, 0, e.Width())
	for i := range e.NumericCols {
		v := numeric[i]
		if math.IsNaN(v) {
			v = e.Medians[i]
		}
		out = append(out, (v-e.Means[i])/e.Stds[i])
	}
	for i, cats := range e.Categories {
		val := categorical[i]
		if val == "" {
			val = UnknownCategory
		}
		idx := sort.SearchStrings(cats, val)
		if idx >= len(cats) || cats[idx] != val {
			idx = sort.SearchStrings(cats, UnknownCategory)
		}
		oneHot := make([]float64, len(cats))
		oneHot[idx] = 1
		out = append(out, oneHot...)
	}
	return out
}

// TransformRows encodes the given dataset rows.
func (e *Encoder) TransformRows(ds *Dataset, rows []int) [][]float64 {
	out := make([][]float64, 0, len(rows))
	for _, r := range rows {
		out = append(out, e.transform(ds.Numeric[r], ds.Categorical[r]))
	}
	return out
}

// TransformSample encodes one profile, imputing missing keys.
func (e *Encoder) TransformSample(s Sample) []float64 {
	numeric := make([]float64, len(e.NumericCols))
	for i, c := range e.NumericCols {
		if v, ok := s.Numeric[c]; ok {
			numeric[i] = v
		} else {
			numeric[i] = math.NaN()
		}
	}
	categorical := make([]string, len(e.CategoricalCols))
	for i, c := range e.CategoricalCols {
		categorical[i] = s.Categorical[c]
	}
	return e.transform(numeric, categorical)
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}
