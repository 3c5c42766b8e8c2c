package artifact

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agripricepro/backend/internal/domain"
	"github.com/agripricepro/backend/internal/ml"
)

// ErrNotFound signals that no artifacts exist at the store location. Not
// fatal: the serving process handles it by running in fallback mode for its
// whole lifetime.
var ErrNotFound = errors.New("artifact: model artifacts not found")

const (
	pipelineFile = "price_model.gob"
	unitMapFile  = "unit_map.gob"
)

// Store persists and loads the fitted pipeline and unit map under a
// directory. Artifacts are opaque and versionless; reloading requires a
// process restart.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists both artifacts. Each file is written to a temp path and
// renamed so a failed save never leaves a partial artifact behind.
func (s *Store) Save(pipeline *ml.Pipeline, unitMap map[string]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create store dir: %w", err)
	}
	if err := s.writeGob(pipelineFile, pipeline); err != nil {
		return fmt.Errorf("artifact: save pipeline: %w", err)
	}
	if err := s.writeGob(unitMapFile, unitMap); err != nil {
		return fmt.Errorf("artifact: save unit map: %w", err)
	}
	return nil
}

// Load reads both artifacts back. A missing file yields ErrNotFound; a
// present but undecodable file yields an ordinary error the caller treats
// the same way (degrade to fallback, log once).
func (s *Store) Load() (*ml.Pipeline, map[string]string, error) {
	var pipeline ml.Pipeline
	if err := s.readGob(pipelineFile, &pipeline); err != nil {
		return nil, nil, err
	}
	if err := pipeline.CheckSchema(domain.NumericalFeatures, domain.CategoricalFeatures); err != nil {
		return nil, nil, fmt.Errorf("artifact: %w", err)
	}
	var unitMap map[string]string
	if err := s.readGob(unitMapFile, &unitMap); err != nil {
		return nil, nil, err
	}
	return &pipeline, unitMap, nil
}

func (s *Store) writeGob(name string, v any) error {
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(v); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) readGob(name string, v any) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("artifact: open %s: %w", name, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("artifact: decode %s: %w", name, err)
	}
	return nil
}
