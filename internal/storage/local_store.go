package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore menulis file ke direktori uploads yang diserve statis oleh
// Fiber di /uploads. Nama file diganti uuid supaya tidak saling timpa.
type LocalStore struct {
	Dir     string // contoh: "./uploads"
	BaseURL string // contoh: "http://localhost:8080/uploads"
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalStore) Save(filename, contentType string, size int64, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	nama := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(s.Dir, nama)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return s.BaseURL + "/" + nama, nil
}
