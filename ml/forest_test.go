package ml

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// two well-separated clusters in 2D
func clusterData() (x [][]float64, y []int) {
	for i := 0; i < 30; i++ {
		d := float64(i%5) * 0.1
		x = append(x, []float64{0 + d, 0 + d})
		y = append(y, 0)
		x = append(x, []float64{5 + d, 5 + d})
		y = append(y, 1)
	}
	return x, y
}

func TestTrainForestSeparatesClusters(t *testing.T) {
	x, y := clusterData()
	f, err := TrainForest(context.Background(), x, y, 2, DefaultForestConfig())
	require.NoError(t, err)
	require.Len(t, f.Trees, 100)

	cls, conf := f.Predict([]float64{0.1, 0.2})
	assert.Equal(t, 0, cls)
	assert.Greater(t, conf, 0.9)

	cls, _ = f.Predict([]float64{5.1, 4.9})
	assert.Equal(t, 1, cls)
}

func TestTrainForestDeterministicForSeed(t *testing.T) {
	x, y := clusterData()
	cfg := ForestConfig{NumTrees: 10, MaxDepth: 5, MinLeaf: 2, Seed: 7}

	f1, err := TrainForest(context.Background(), x, y, 2, cfg)
	require.NoError(t, err)
	f2, err := TrainForest(context.Background(), x, y, 2, cfg)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestPredictProbaSumsToOne(t *testing.T) {
	x, y := clusterData()
	f, err := TrainForest(context.Background(), x, y, 2, DefaultForestConfig())
	require.NoError(t, err)

	for _, probe := range [][]float64{{0, 0}, {2.5, 2.5}, {5, 5}, {-3, 9}} {
		probs := f.PredictProba(probe)
		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestTrainForestCancelledContext(t *testing.T) {
	x, y := clusterData()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TrainForest(ctx, x, y, 2, DefaultForestConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestArtifactRoundTrip(t *testing.T) {
	x, y := clusterData()
	f, err := TrainForest(context.Background(), x, y, 2, DefaultForestConfig())
	require.NoError(t, err)

	a := &Artifact{
		Version:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Encoder:   &Encoder{NumericCols: []string{"f0", "f1"}, Medians: []float64{0, 0}, Means: []float64{0, 0}, Stds: []float64{1, 1}},
		Forest:    f,
		Classes:   []string{"a", "b"},
	}

	path := filepath.Join(t.TempDir(), "sub", "model.gob")
	require.NoError(t, a.Save(path))

	got, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, a.Version, got.Version)
	assert.Equal(t, a.Classes, got.Classes)

	// loaded forest predicts identically
	for _, probe := range [][]float64{{0, 0}, {5, 5}} {
		wantCls, wantConf := a.Forest.Predict(probe)
		gotCls, gotConf := got.Forest.Predict(probe)
		assert.Equal(t, wantCls, gotCls)
		assert.InDelta(t, wantConf, gotConf, 1e-12)
	}
}

func TestLoadArtifactRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	a := &Artifact{Version: "v", CreatedAt: time.Now()}
	require.NoError(t, a.Save(path))

	_, err := LoadArtifact(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "absent.gob"))
	require.Error(t, err)
}
