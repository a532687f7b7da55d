// Package embeddingcache stores the precomputed catalog embedding matrix
// as a NumPy .npy file next to a JSON sidecar descriptor.
package embeddingcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.EmbeddingCacheStore = (*Store)(nil)

// NumPy dtype descriptors accepted on load.
const (
	dtypeFloat32 = "<f4"
	dtypeFloat64 = "<f8"
)

// Store reads and writes the cache at two fixed paths.
type Store struct {
	matrixPath string
	metaPath   string
}

// NewStore creates a store for the given matrix and descriptor paths.
func NewStore(matrixPath, metaPath string) *Store {
	return &Store{matrixPath: matrixPath, metaPath: metaPath}
}

// MatrixPath returns the .npy path.
func (s *Store) MatrixPath() string { return s.matrixPath }

// MetaPath returns the sidecar path.
func (s *Store) MetaPath() string { return s.metaPath }

// Load reads the descriptor and the matrix. The matrix must be a 2-D,
// C-ordered float32 or float64 array.
func (s *Store) Load(_ context.Context) (*driven.EmbeddingCache, error) {
	meta, err := s.loadMeta()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.matrixPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCacheMissing, s.matrixPath)
	}
	if err != nil {
		return nil, fmt.Errorf("open matrix: %w", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read matrix header: %w", err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: matrix has %d dimensions, want 2", domain.ErrCacheShapeMismatch, len(shape))
	}
	if r.Header.Descr.Fortran {
		return nil, fmt.Errorf("%w: matrix is Fortran-ordered", domain.ErrCacheShapeMismatch)
	}

	rows, dim := shape[0], shape[1]
	data := make([]float32, rows*dim)
	switch r.Header.Descr.Type {
	case dtypeFloat32:
		if err := r.Read(&data); err != nil {
			return nil, fmt.Errorf("read matrix: %w", err)
		}
	case dtypeFloat64:
		wide := make([]float64, rows*dim)
		if err := r.Read(&wide); err != nil {
			return nil, fmt.Errorf("read matrix: %w", err)
		}
		for i, v := range wide {
			data[i] = float32(v)
		}
	default:
		return nil, fmt.Errorf("%w: matrix dtype %s", domain.ErrUnsupportedType, r.Header.Descr.Type)
	}

	return &driven.EmbeddingCache{Meta: *meta, Rows: rows, Dim: dim, Data: data}, nil
}

func (s *Store) loadMeta() (*driven.EmbeddingCacheMeta, error) {
	raw, err := os.ReadFile(s.metaPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCacheMissing, s.metaPath)
	}
	if err != nil {
		return nil, fmt.Errorf("read meta: %w", err)
	}

	var meta driven.EmbeddingCacheMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}
	return &meta, nil
}

// Save writes the matrix as float64 .npy and then the descriptor. Each
// file is written to a temporary sibling and renamed into place.
func (s *Store) Save(_ context.Context, cache *driven.EmbeddingCache) error {
	if cache.Rows*cache.Dim != len(cache.Data) {
		return fmt.Errorf("%w: %d values for %dx%d", domain.ErrCacheShapeMismatch, len(cache.Data), cache.Rows, cache.Dim)
	}

	wide := make([]float64, len(cache.Data))
	for i, v := range cache.Data {
		wide[i] = float64(v)
	}

	err := writeAtomic(s.matrixPath, func(f *os.File) error {
		if cache.Rows == 0 || cache.Dim == 0 {
			return npyio.Write(f, wide)
		}
		return npyio.Write(f, mat.NewDense(cache.Rows, cache.Dim, wide))
	})
	if err != nil {
		return fmt.Errorf("write matrix: %w", err)
	}

	meta, err := json.MarshalIndent(cache.Meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}
	err = writeAtomic(s.metaPath, func(f *os.File) error {
		_, err := f.Write(append(meta, '\n'))
		return err
	})
	if err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	return nil
}

func writeAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
