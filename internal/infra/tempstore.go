package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/whisper_api/internal/ports"
	"github.com/google/uuid"
)

type tempStore struct {
	root string
}

// NewTempStore создаёт корневую директорию, если её ещё нет
func NewTempStore(root string) (ports.TempStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to init temp dir %s: %w", root, err)
	}
	return &tempStore{root: root}, nil
}

func (s *tempStore) Save(src io.Reader, ext string) (string, error) {
	// uuid в имени — чтобы параллельные запросы не пересекались
	path := filepath.Join(s.root, uuid.NewString()+ext)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return path, nil
}

func (s *tempStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *tempStore) Root() string {
	return s.root
}
