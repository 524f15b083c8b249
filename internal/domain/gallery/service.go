package gallery

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the gallery file backend; disk in production.
type Store interface {
	Save(ctx context.Context, filename string, contents io.Reader) error
	List(ctx context.Context) ([]StoredFile, error)
	Remove(ctx context.Context, filename string) error
	Exists(ctx context.Context, filename string) (bool, error)
}

const urlPrefix = "/galeria/"

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Upload stores one client photo under a collision-free name and returns its
// public URL. The caller enforces the request size cap.
func (s *Service) Upload(ctx context.Context, originalName, contentType string, contents io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(originalName))
	expectedType, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrUnsupportedType
	}
	if contentType != "" {
		// Headers may carry parameters ("image/jpeg; charset=binary");
		// only the media type itself matters.
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || !strings.EqualFold(mediaType, expectedType) {
			return "", ErrUnsupportedType
		}
	}

	filename := fmt.Sprintf("client-%d-%s%s", time.Now().UnixMilli(), shortID(), ext)
	if err := s.store.Save(ctx, filename, contents); err != nil {
		return "", err
	}

	return urlPrefix + filename, nil
}

func (s *Service) List(ctx context.Context) ([]Photo, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	photos := make([]Photo, 0, len(files))
	for _, file := range files {
		if _, ok := allowedExtensions[strings.ToLower(path.Ext(file.Name))]; !ok {
			continue
		}
		photos = append(photos, Photo{
			Filename:  file.Name,
			URL:       urlPrefix + file.Name,
			CreatedAt: file.ModTime,
		})
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})

	return photos, nil
}

func (s *Service) Delete(ctx context.Context, filename string) error {
	if filename == "" || filename != path.Base(filename) || strings.HasPrefix(filename, ".") {
		return ErrInvalidFilename
	}

	exists, err := s.store.Exists(ctx, filename)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPhotoNotFound
	}

	return s.store.Remove(ctx, filename)
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
