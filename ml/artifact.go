package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact pairs a fitted encoder with the classifier trained on its
// output. The two are persisted and loaded as one unit so they can never
// drift apart.
type Artifact struct {
	Version   string
	CreatedAt time.Time
	Encoder   *Encoder
	Forest    *Forest
	Classes   []string // sorted label names, index-aligned with Forest output
}

// Save writes the artifact to path, replacing any prior file atomically
// (write to a temp file in the same directory, then rename).
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(a); err != nil {
		tmp.Close()
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads a previously persisted artifact.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if a.Encoder == nil || a.Forest == nil || len(a.Classes) == 0 {
		return nil, fmt.Errorf("artifact %s is incomplete", path)
	}
	return &a, nil
}
