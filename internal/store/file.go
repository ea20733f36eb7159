package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/model"
)

// FileStore keeps the dossier in a single JSON file
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed store
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the dossier file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the dossier file
func (s *FileStore) Load(ctx context.Context) (*model.Dossier, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no stored dossier, starting empty", zap.String("path", s.path))
		return &model.Dossier{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dossier: %w", err)
	}
	return unmarshal(data, s.path, s.logger), nil
}

// Save writes the dossier via a temp file and rename so readers never see a partial file
func (s *FileStore) Save(ctx context.Context, d *model.Dossier) error {
	data, err := marshal(d)
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write dossier: %w", err)
	}
	s.logger.Debug("dossier saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}

// WriteFileAtomic writes data to a sibling temp file and renames it over path
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := StageFile(path, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// StageFile writes data to a temp file next to path and returns its name
func StageFile(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	if err := os.Chmod(name, 0644); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
