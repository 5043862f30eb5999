package services

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) StorageService {
	t.Helper()
	base := t.TempDir()
	s := NewStorageService(filepath.Join(base, "uploads"), filepath.Join(base, "temp"), 1024)
	require.NoError(t, s.EnsureDirs())
	return s
}

func TestStorage_EnsureDirs(t *testing.T) {
	base := t.TempDir()
	uploadPath := filepath.Join(base, "uploads")
	tempPath := filepath.Join(base, "temp")
	s := NewStorageService(uploadPath, tempPath, 1024)

	require.NoError(t, s.EnsureDirs())

	for _, dir := range []string{uploadPath, tempPath} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestStorage_SaveUploadRejectsExtension(t *testing.T) {
	s := newTestStorage(t)

	_, _, err := s.SaveUpload(&multipart.FileHeader{Filename: "resume.exe", Size: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestStorage_SaveUploadRejectsOversized(t *testing.T) {
	s := newTestStorage(t)

	_, _, err := s.SaveUpload(&multipart.FileHeader{Filename: "resume.pdf", Size: 2048})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file too large")
}

func TestStorage_TempFilePathFlattensTraversal(t *testing.T) {
	s := NewStorageService("uploads", filepath.Join("var", "temp"), 1024)

	path := s.TempFilePath("../../etc/passwd")

	assert.Equal(t, filepath.Join("var", "temp", "passwd"), path)
}

func TestStorage_DeleteTempFile(t *testing.T) {
	s := newTestStorage(t)
	target := s.TempFilePath("resume.pdf")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	require.NoError(t, s.DeleteTempFile("resume.pdf"))

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestStorage_DeleteTempFileMissing(t *testing.T) {
	s := newTestStorage(t)

	assert.Error(t, s.DeleteTempFile("missing.pdf"))
}
