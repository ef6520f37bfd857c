package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/google/uuid"
)

// Evidence photos come from phone cameras in the field, so only images
// are accepted.
const MaxFileSize = 15 * 1024 * 1024 // 15 MB

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// Service stores completion-evidence photos on local disk and records
// them in the database. The returned public URL is what the technician
// app sends back when closing out an installation.
type Service struct {
	repo       UploadRepository
	baseDir    string
	staticBase string
}

func NewService(repo UploadRepository, baseDir, staticBase string) *Service {
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

func (s *Service) Store(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*domain.Upload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open multipart file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type instead of trusting the extension.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	id := uuid.New().String()
	filename := id + ext
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	u := &domain.Upload{
		ID:           id,
		UserID:       userID,
		OriginalName: filepath.Base(fileHeader.Filename),
		FilePath:     relPath,
		FileURL:      s.staticBase + "/" + filepath.ToSlash(relPath),
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		_ = os.Remove(absPath) // keep disk and DB in sync
		return nil, fmt.Errorf("save upload record: %w", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Upload, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

// Delete removes the photo from disk and the record from the database.
// Only the uploader may delete it.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if u.UserID != userID {
		return ErrNotOwner
	}

	_ = os.Remove(filepath.Join(s.baseDir, u.FilePath)) // file may already be gone
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Upload, error) {
	return s.repo.ListByUser(ctx, userID)
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
