// services/diet_classifier.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/apperrors"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/ml"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	testFraction = 0.2
	splitSeed    = 42
)

// DietClassifier owns the single live model artifact. Predictions read the
// artifact through an atomic pointer, so an in-flight retrain never exposes
// a half-written model: readers see the old artifact until the swap.
type DietClassifier struct {
	path     string
	artifact atomic.Pointer[ml.Artifact]
	trainMu  sync.Mutex // one training at a time
}

func NewDietClassifier(path string) *DietClassifier {
	return &DietClassifier{path: path}
}

// LoadFromDisk attempts to restore a previously persisted artifact. A
// missing or unreadable artifact leaves the classifier untrained; that is
// not an error at startup.
func (c *DietClassifier) LoadFromDisk() {
	a, err := ml.LoadArtifact(c.path)
	if err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("no usable model artifact, starting untrained")
		return
	}
	c.artifact.Store(a)
	log.Info().Str("version", a.Version).Time("created_at", a.CreatedAt).Msg("model artifact loaded")
}

// Trained reports whether a live artifact exists.
func (c *DietClassifier) Trained() bool { return c.artifact.Load() != nil }

// ModelVersion returns the live artifact's version, or "".
func (c *DietClassifier) ModelVersion() string {
	if a := c.artifact.Load(); a != nil {
		return a.Version
	}
	return ""
}

// TrainResult is what a completed training reports.
type TrainResult struct {
	ModelVersion string   `json:"model_version"`
	Accuracy     float64  `json:"accuracy"`
	Classes      []string `json:"classes"`
	Rows         int      `json:"rows"`
}

// Train fits the encoder and forest on the labeled CSV at csvPath,
// evaluates on a stratified held-out split, persists the artifact and
// swaps it live. The previous artifact serves predictions until the swap.
func (c *DietClassifier) Train(ctx context.Context, csvPath string) (*TrainResult, error) {
	c.trainMu.Lock()
	defer c.trainMu.Unlock()

	ds, err := ml.LoadCSV(csvPath)
	if err != nil {
		return nil, apperrors.NewValidation("csv_path", err.Error())
	}
	if ds.Rows() == 0 {
		return nil, apperrors.NewInsufficientData("training dataset is empty")
	}
	if n := ds.DistinctLabels(); n < 2 {
		return nil, &apperrors.InsufficientDataError{
			Message:         fmt.Sprintf("training dataset has %d distinct label(s), need at least 2", n),
			MinimumRequired: 2,
		}
	}

	classes := distinctSorted(ds.Labels)
	classIdx := make(map[string]int, len(classes))
	for i, cl := range classes {
		classIdx[cl] = i
	}

	trainRows, testRows := stratifiedSplit(ds.Labels, testFraction, splitSeed)

	encoder := ml.FitEncoder(ds, trainRows)
	xTrain := encoder.TransformRows(ds, trainRows)
	yTrain := make([]int, len(trainRows))
	for i, r := range trainRows {
		yTrain[i] = classIdx[ds.Labels[r]]
	}

	log.Info().Str("csv", csvPath).Int("rows", ds.Rows()).Int("classes", len(classes)).
		Msg("training diet classifier")
	forest, err := ml.TrainForest(ctx, xTrain, yTrain, len(classes), ml.DefaultForestConfig())
	if err != nil {
		return nil, err
	}

	correct := 0
	xTest := encoder.TransformRows(ds, testRows)
	for i, r := range testRows {
		pred, _ := forest.Predict(xTest[i])
		if classes[pred] == ds.Labels[r] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testRows) > 0 {
		accuracy = float64(correct) / float64(len(testRows))
	}

	artifact := &ml.Artifact{
		Version:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Encoder:   encoder,
		Forest:    forest,
		Classes:   classes,
	}
	if err := artifact.Save(c.path); err != nil {
		return nil, err
	}
	c.artifact.Store(artifact)

	res := &TrainResult{
		ModelVersion: artifact.Version,
		Accuracy:     accuracy,
		Classes:      classes,
		Rows:         ds.Rows(),
	}
	c.recordRun(csvPath, res)
	EmitAlert(0, "training.completed",
		fmt.Sprintf("diet model %s trained, accuracy %.3f", res.ModelVersion, res.Accuracy))
	log.Info().Str("version", res.ModelVersion).Float64("accuracy", res.Accuracy).
		Msg("diet classifier trained")
	return res, nil
}

// recordRun stores the training outcome; skipped when no DB is configured
// (unit tests).
func (c *DietClassifier) recordRun(csvPath string, res *TrainResult) {
	if config.DB == nil {
		return
	}
	classesJSON, _ := json.Marshal(res.Classes)
	run := models.TrainingRun{
		ModelVersion: res.ModelVersion,
		DatasetPath:  csvPath,
		Accuracy:     res.Accuracy,
		Classes:      datatypes.JSON(classesJSON),
		RowCount:     res.Rows,
	}
	if err := config.DB.Create(&run).Error; err != nil {
		log.Error().Err(err).Msg("failed to record training run")
	}
}

// Prediction is a single classification with its full distribution.
type Prediction struct {
	Label         string             `json:"diet_recommendation"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// Predict classifies one profile with the live artifact. Unseen
// categorical values fall back to the encoder's Unknown category.
func (c *DietClassifier) Predict(sample ml.Sample) (*Prediction, error) {
	a := c.artifact.Load()
	if a == nil {
		return nil, &apperrors.ModelNotTrainedError{}
	}

	x := a.Encoder.TransformSample(sample)
	probs := a.Forest.PredictProba(x)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	dist := make(map[string]float64, len(a.Classes))
	for i, cl := range a.Classes {
		dist[cl] = probs[i]
	}
	return &Prediction{
		Label:         a.Classes[best],
		Confidence:    probs[best],
		Probabilities: dist,
	}, nil
}

func distinctSorted(labels []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// stratifiedSplit shuffles each label's rows with a fixed seed and holds
// out the tail fraction, so every class is represented in both splits
// whenever it has enough rows.
func stratifiedSplit(labels []string, frac float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	byLabel := map[string][]int{}
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}
	keys := distinctSorted(labels)
	for _, l := range keys {
		rows := byLabel[l]
		rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		nTest := int(float64(len(rows)) * frac)
		if nTest == 0 && len(rows) > 1 {
			nTest = 1
		}
		test = append(test, rows[:nTest]...)
		train = append(train, rows[nTest:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test
}
