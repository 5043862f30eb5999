package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
}

type StorageService interface {
	SaveUpload(file *multipart.FileHeader) (string, string, error)
	TempFilePath(filename string) string
	DeleteTempFile(filename string) error
	EnsureDirs() error
}

type storageService struct {
	uploadPath string
	tempPath   string
	maxSize    int64
}

func NewStorageService(uploadPath, tempPath string, maxSize int64) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		tempPath:   tempPath,
		maxSize:    maxSize,
	}
}

// EnsureDirs implements StorageService.
func (s *storageService) EnsureDirs() error {
	for _, dir := range []string{s.uploadPath, s.tempPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// SaveUpload implements StorageService. It validates the extension and size,
// then stores the upload under a unique name.
func (s *storageService) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExtensions[ext] {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	if file.Size > s.maxSize {
		return "", "", fmt.Errorf("file too large: %d bytes (max %d)", file.Size, s.maxSize)
	}

	uniqueFilename := fmt.Sprintf("upload_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

// TempFilePath implements StorageService. The filename is flattened to its
// base so download requests cannot escape the temp directory.
func (s *storageService) TempFilePath(filename string) string {
	return filepath.Join(s.tempPath, filepath.Base(filename))
}

// DeleteTempFile implements StorageService.
func (s *storageService) DeleteTempFile(filename string) error {
	if err := os.Remove(s.TempFilePath(filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
