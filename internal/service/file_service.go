package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"secure-chat-be/internal/config"
	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/logger"
	"secure-chat-be/pkg/extractor"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UploadFileResponse, error)
}

type fileService struct {
	cfg    *config.Config
	logger logger.ILogger
}

func NewFileService(cfg *config.Config, sysLogger logger.ILogger) IFileService {
	return &fileService{cfg: cfg, logger: sysLogger}
}

func (s *fileService) Upload(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UploadFileResponse, error) {
	if file.Size > s.cfg.Upload.MaxSizeBytes {
		return nil, apperrors.Validation(
			fmt.Sprintf("File too large. Maximum size is %dMB", s.cfg.Upload.MaxSizeBytes/(1024*1024)))
	}

	if !extractor.AllowedFile(file.Filename) {
		return nil, apperrors.Validation("Invalid file format. Only .pdf, .doc, .docx, and .txt are allowed.")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Internal("failed to open uploaded file", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0755); err != nil {
		return nil, apperrors.Internal("failed to create upload directory", err)
	}

	// Prefix with owner and timestamp so concurrent uploads of the
	// same filename never collide.
	ext := filepath.Ext(file.Filename)
	base := file.Filename[:len(file.Filename)-len(ext)]
	filename := fmt.Sprintf("%s_%d_%s%s", userId.String(), time.Now().Unix(), base, ext)
	dstPath := filepath.Join(s.cfg.Upload.Dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, apperrors.Internal("failed to save uploaded file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, apperrors.Internal("failed to save uploaded file", err)
	}

	content, err := extractor.Extract(dstPath)
	if err != nil {
		return nil, apperrors.Internal("failed to extract file content", err)
	}

	s.logger.Info("file", "file uploaded", map[string]interface{}{
		"user_id":  userId.String(),
		"filename": file.Filename,
		"size":     file.Size,
	})

	return &dto.UploadFileResponse{
		Message: "File uploaded successfully",
		FileInfo: dto.FileInfo{
			Filename:         file.Filename,
			Size:             file.Size,
			ContentType:      file.Header.Get("Content-Type"),
			Path:             dstPath,
			ExtractedContent: content,
		},
	}, nil
}
