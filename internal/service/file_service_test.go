package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"secure-chat-be/internal/config"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T, maxSize int64) (IFileService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:          dir,
			MaxSizeBytes: maxSize,
		},
	}
	return NewFileService(cfg, logger.NewNopLogger()), dir
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestUploadTxtExtractsContent(t *testing.T) {
	svc, dir := newUploadFixture(t, 5*1024*1024)
	ctx := context.Background()

	header := makeFileHeader(t, "notes.txt", []byte("meeting at noon"))

	res, err := svc.Upload(ctx, uuid.New(), header)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", res.FileInfo.Filename)
	assert.Equal(t, int64(len("meeting at noon")), res.FileInfo.Size)
	assert.Equal(t, "meeting at noon", res.FileInfo.ExtractedContent)

	// The file is persisted under the upload dir with a unique name.
	saved, err := os.ReadFile(res.FileInfo.Path)
	require.NoError(t, err)
	assert.Equal(t, "meeting at noon", string(saved))
	assert.Equal(t, dir, filepath.Dir(res.FileInfo.Path))
	assert.NotEqual(t, "notes.txt", filepath.Base(res.FileInfo.Path))
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	svc, _ := newUploadFixture(t, 10)
	ctx := context.Background()

	header := makeFileHeader(t, "big.txt", bytes.Repeat([]byte("a"), 11))

	_, err := svc.Upload(ctx, uuid.New(), header)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newUploadFixture(t, 5*1024*1024)
	ctx := context.Background()

	header := makeFileHeader(t, "malware.exe", []byte("nope"))

	_, err := svc.Upload(ctx, uuid.New(), header)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUploadDistinctNamesForSameFilename(t *testing.T) {
	svc, _ := newUploadFixture(t, 5*1024*1024)
	ctx := context.Background()

	first, err := svc.Upload(ctx, uuid.New(), makeFileHeader(t, "same.txt", []byte("one")))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, uuid.New(), makeFileHeader(t, "same.txt", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first.FileInfo.Path, second.FileInfo.Path)
}
