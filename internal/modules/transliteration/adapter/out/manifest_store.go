package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"japa/internal/modules/transliteration/domain"
	translitout "japa/internal/modules/transliteration/port/out"
)

// FileManifestStore reads a JSON array of manifests. Relative binary paths
// resolve against the manifest's directory.
type FileManifestStore struct {
	path string
}

func NewFileManifestStore(path string) translitout.ManifestStore {
	return &FileManifestStore{path: path}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read transliterator manifest: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode transliterator manifests: %w", err)
	}
	base := filepath.Dir(s.path)
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(base, manifests[i].Binary))
		}
	}
	return manifests, nil
}
