package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezoomai/resume-optimizer/internal/config"
)

func testCleanupConfig() config.CleanupConfig {
	return config.CleanupConfig{
		Interval:        time.Hour,
		FileRetention:   time.Hour,
		DBRetentionDays: 90,
	}
}

func TestCleaner_RemovesExpiredTempFiles(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "resume_old.pdf")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0644))
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	freshFile := filepath.Join(dir, "resume_fresh.pdf")
	require.NoError(t, os.WriteFile(freshFile, []byte("x"), 0644))

	c := NewCleanerService(testCleanupConfig(), dir, nil, nil)
	result := c.CleanupAll()

	assert.Equal(t, 1, result.TempFilesRemoved)
	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshFile)
	assert.NoError(t, err)
}

func TestCleaner_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(sub, stale, stale))

	c := NewCleanerService(testCleanupConfig(), dir, nil, nil)
	result := c.CleanupAll()

	assert.Equal(t, 0, result.TempFilesRemoved)
	_, err := os.Stat(sub)
	assert.NoError(t, err)
}

func TestCleaner_MissingTempDirIsNotFatal(t *testing.T) {
	c := NewCleanerService(testCleanupConfig(), filepath.Join(t.TempDir(), "does-not-exist"), nil, nil)

	result := c.CleanupAll()

	assert.Equal(t, 0, result.TempFilesRemoved)
}

func TestCleaner_NilRepositoriesAreSkipped(t *testing.T) {
	c := NewCleanerService(testCleanupConfig(), t.TempDir(), nil, nil)

	result := c.CleanupAll()

	assert.Zero(t, result.ActivitiesRemoved)
	assert.Zero(t, result.CacheRemoved)
}

func TestCleaner_Stats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("1234"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("12"), 0644))

	c := NewCleanerService(testCleanupConfig(), dir, nil, nil)
	stats := c.Stats()

	assert.False(t, stats.SchedulerRunning)
	assert.Equal(t, 2, stats.TempFilesCount)
	assert.Equal(t, int64(6), stats.TempFilesSize)
}

func TestCleaner_StartAndStop(t *testing.T) {
	c := NewCleanerService(testCleanupConfig(), t.TempDir(), nil, nil)

	c.Start(context.Background())
	assert.True(t, c.Stats().SchedulerRunning)

	c.Stop()
	assert.False(t, c.Stats().SchedulerRunning)
}

func TestCleaner_StatsConcurrentWithStartStop(t *testing.T) {
	c := NewCleanerService(testCleanupConfig(), t.TempDir(), nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			c.Stats()
		}
	}()

	c.Start(context.Background())
	<-done
	c.Stop()
}
