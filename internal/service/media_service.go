package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/dharunks/insightiq/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MediaService stores uploaded audio/video artifacts and hands back the URL
// the stored response will carry. Artifacts keep their extension but get a
// fresh uuid name so user uploads can never collide or traverse paths.
type MediaService interface {
	Store(file *multipart.FileHeader) (string, error)
}

type localMediaService struct {
	dir string
}

func NewLocalMediaService(cfg *config.Config) (MediaService, error) {
	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory %s: %w", cfg.Media.Dir, err)
	}
	return &localMediaService{dir: cfg.Media.Dir}, nil
}

func (s *localMediaService) Store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing media file: %w", err)
	}

	log.Debug().Str("file", name).Int64("size", file.Size).Msg("Stored media artifact")
	return "/media/" + name, nil
}
