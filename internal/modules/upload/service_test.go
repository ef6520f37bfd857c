package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Upload, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Upload), args.Error(1)
}

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// fileHeaderFor builds a real multipart.FileHeader the way gin's
// c.FormFile would hand it to the service.
func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestStore_SavesPhotoAndRecord(t *testing.T) {
	dir := t.TempDir()
	repo := new(MockUploadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, dir, "/static/uploads")

	u, err := service.Store(context.Background(), 7, fileHeaderFor(t, "antena.png", pngMagic))

	require.NoError(t, err)
	assert.Equal(t, int64(7), u.UserID)
	assert.Equal(t, "image/png", u.MimeType)
	assert.Contains(t, u.FileURL, "/static/uploads/")

	_, statErr := os.Stat(filepath.Join(dir, u.FilePath))
	assert.NoError(t, statErr, "file must exist on disk")
	repo.AssertExpectations(t)
}

func TestStore_RejectsNonImage(t *testing.T) {
	repo := new(MockUploadRepository)

	service := NewService(repo, t.TempDir(), "/static/uploads")

	_, err := service.Store(context.Background(), 7, fileHeaderFor(t, "notas.txt", []byte("just text")))

	assert.ErrorIs(t, err, ErrInvalidMimeType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStore_RemovesFileWhenRecordFails(t *testing.T) {
	dir := t.TempDir()
	repo := new(MockUploadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	service := NewService(repo, dir, "/static/uploads")

	_, err := service.Store(context.Background(), 7, fileHeaderFor(t, "antena.png", pngMagic))
	require.Error(t, err)

	var leftovers []string
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			leftovers = append(leftovers, path)
		}
		return nil
	})
	assert.Empty(t, leftovers, "rolled-back upload must not leave files behind")
}

func TestDelete_OnlyOwnerMayDelete(t *testing.T) {
	repo := new(MockUploadRepository)
	repo.On("GetByID", mock.Anything, "abc").Return(&domain.Upload{ID: "abc", UserID: 3, FilePath: "x/y.png"}, nil)

	service := NewService(repo, t.TempDir(), "/static/uploads")

	err := service.Delete(context.Background(), "abc", 9)

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockUploadRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	service := NewService(repo, t.TempDir(), "/static/uploads")

	_, err := service.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
