// Package pilotcache persists the username to pilot id mapping as a YAML document.
package pilotcache

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"xcfeed/internal/domain"
)

// Load reads the mapping stored at path. A missing file yields an empty mapping.
func Load(path string) (map[string]uint64, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]uint64), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}

	var ids map[string]uint64
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCacheMalformed, path, err)
	}
	if ids == nil {
		ids = make(map[string]uint64)
	}

	return ids, nil
}

// Save replaces the file at path with the serialized mapping. The document is
// written to a temporary file in the same directory and renamed into place.
func Save(path string, ids map[string]uint64) error {
	data, err := yaml.Marshal(document(ids))
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", domain.ErrCacheUnwritable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnwritable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write: %v", domain.ErrCacheUnwritable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync: %v", domain.ErrCacheUnwritable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close: %v", domain.ErrCacheUnwritable, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod: %v", domain.ErrCacheUnwritable, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %v", domain.ErrCacheUnwritable, err)
	}

	return nil
}

// document builds the mapping node by hand so every key is tagged as a string.
// Plain "<<" would otherwise read back as a merge key.
func document(ids map[string]uint64) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, user := range slices.Sorted(maps.Keys(ids)) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: user}
		if user == "<<" {
			key.Style = yaml.DoubleQuotedStyle
		}
		doc.Content = append(doc.Content,
			key,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(ids[user], 10)},
		)
	}
	return doc
}

// FileStore binds Load and Save to a single path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (map[string]uint64, error) {
	return Load(s.path)
}

func (s *FileStore) Save(ids map[string]uint64) error {
	return Save(s.path, ids)
}
