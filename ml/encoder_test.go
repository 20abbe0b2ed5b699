package ml

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, csv string) *Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	ds, err := LoadCSV(path)
	require.NoError(t, err)
	return ds
}

func TestLoadCSVParsesKnownColumns(t *testing.T) {
	ds := loadFixture(t, `Age,Gender,Weight_kg,Extra_Column,Diet_Recommendation
30,Male,80,ignored,balanced
25,Female,notanumber,ignored,keto
,Male,70,ignored,
`)

	assert.Equal(t, []string{"Age", "Weight_kg"}, ds.NumericCols)
	assert.Equal(t, []string{"Gender"}, ds.CategoricalCols)
	require.Equal(t, 3, ds.Rows())

	// unparseable and missing numerics become NaN
	assert.True(t, math.IsNaN(ds.Numeric[1][1]))
	assert.True(t, math.IsNaN(ds.Numeric[2][0]))
	// empty labels become Unknown
	assert.Equal(t, []string{"balanced", "keto", "Unknown"}, ds.Labels)
	assert.Equal(t, 3, ds.DistinctLabels())
}

func TestLoadCSVRequiresLabelColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nolabel.csv")
	require.NoError(t, os.WriteFile(path, []byte("Age,Gender\n30,Male\n"), 0o644))
	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Diet_Recommendation")
}

func TestEncoderImputesAndStandardizes(t *testing.T) {
	ds := loadFixture(t, `Age,Gender,Diet_Recommendation
20,Male,a
30,Female,b
40,Male,a
,Female,b
`)
	rows := []int{0, 1, 2, 3}
	e := FitEncoder(ds, rows)

	// median of {20,30,40} imputes the missing age
	assert.Equal(t, 30.0, e.Medians[0])

	x := e.TransformRows(ds, rows)
	require.Len(t, x, 4)
	// standardized column has mean 0
	sum := 0.0
	for _, row := range x {
		sum += row[0]
	}
	assert.InDelta(t, 0, sum, 1e-9)
	// imputed row sits at the mean
	assert.InDelta(t, 0, x[3][0], 1e-9)
}

func TestEncoderOneHotWithUnknown(t *testing.T) {
	ds := loadFixture(t, `Gender,Diet_Recommendation
Male,a
Female,b
`)
	e := FitEncoder(ds, []int{0, 1})

	// categories are sorted and always include the synthetic Unknown
	require.Len(t, e.Categories, 1)
	assert.Equal(t, []string{"Female", "Male", UnknownCategory}, e.Categories[0])
	assert.Equal(t, 3, e.Width())

	// an unseen value maps onto Unknown's slot
	unseen := e.TransformSample(Sample{Categorical: map[string]string{"Gender": "Other"}})
	missing := e.TransformSample(Sample{})
	assert.Equal(t, missing, unseen)
	assert.Equal(t, 1.0, unseen[2])
}

func TestTransformSampleWidthMatchesRows(t *testing.T) {
	ds := loadFixture(t, `Age,Gender,Diet_Recommendation
20,Male,a
30,Female,b
`)
	e := FitEncoder(ds, []int{0, 1})
	rows := e.TransformRows(ds, []int{0})
	sample := e.TransformSample(Sample{
		Numeric:     map[string]float64{"Age": 20},
		Categorical: map[string]string{"Gender": "Male"},
	})
	assert.Len(t, sample, e.Width())
	assert.Equal(t, rows[0], sample)
}
