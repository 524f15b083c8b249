package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"law-office-go/internal/domain/gallery"
)

// DiskStore keeps gallery files in a single flat directory. Filenames are
// generated upstream; this layer only refuses anything that would escape the
// directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(_ context.Context, filename string, contents io.Reader) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, contents); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}

	return file.Close()
}

func (s *DiskStore) List(_ context.Context) ([]gallery.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	files := make([]gallery.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, gallery.StoredFile{Name: entry.Name(), ModTime: info.ModTime()})
	}

	return files, nil
}

func (s *DiskStore) Remove(_ context.Context, filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *DiskStore) Exists(_ context.Context, filename string) (bool, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *DiskStore) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", gallery.ErrInvalidFilename
	}
	return filepath.Join(s.dir, filename), nil
}
