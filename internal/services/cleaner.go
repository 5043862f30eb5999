package services

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"rezoomai/resume-optimizer/internal/config"
	"rezoomai/resume-optimizer/internal/repositories"
)

const resumeCacheRetention = 30 * 24 * time.Hour

// CleanupStats is a snapshot of the retention state across the temp
// directory and the database.
type CleanupStats struct {
	SchedulerRunning   bool  `json:"scheduler_running"`
	TempFilesCount     int   `json:"temp_files_count"`
	TempFilesSize      int64 `json:"temp_files_size"`
	ActivityRecords    int64 `json:"activity_records"`
	ResumeCacheRecords int64 `json:"resume_cache_records"`
}

// CleanupResult reports what a single cleanup pass removed.
type CleanupResult struct {
	TempFilesRemoved  int   `json:"temp_files_removed"`
	ActivitiesRemoved int64 `json:"activities_removed"`
	CacheRemoved      int64 `json:"cache_removed"`
}

// CleanerService runs scheduled retention sweeps over temporary export
// files, old activity records, and cached resumes.
type CleanerService interface {
	Start(ctx context.Context)
	Stop()
	CleanupAll() CleanupResult
	Stats() CleanupStats
}

type cleanerService struct {
	cfg          config.CleanupConfig
	tempPath     string
	activityRepo repositories.ActivityRepository
	cacheRepo    repositories.ResumeCacheRepository
	wg           sync.WaitGroup
	stopChan     chan struct{}
	// Read by Stats from request goroutines while Start/Stop write it.
	running atomic.Bool
}

// NewCleanerService wires the cleanup worker. Either repository may be nil
// when the database is not configured; the corresponding sweeps are skipped.
func NewCleanerService(
	cfg config.CleanupConfig,
	tempPath string,
	activityRepo repositories.ActivityRepository,
	cacheRepo repositories.ResumeCacheRepository,
) CleanerService {
	return &cleanerService{
		cfg:          cfg,
		tempPath:     tempPath,
		activityRepo: activityRepo,
		cacheRepo:    cacheRepo,
		stopChan:     make(chan struct{}),
	}
}

// Start implements CleanerService.
func (c *cleanerService) Start(ctx context.Context) {
	log.Printf("🚀 Starting cleanup scheduler (interval: %s)\n", c.cfg.Interval)
	c.running.Store(true)

	c.wg.Add(1)
	go c.run(ctx)

	log.Println("✅ Cleanup scheduler started")
}

// Stop implements CleanerService.
func (c *cleanerService) Stop() {
	log.Println("🛑 Stopping cleanup scheduler...")
	close(c.stopChan)
	c.wg.Wait()
	c.running.Store(false)
	log.Println("✅ Cleanup scheduler stopped")
}

func (c *cleanerService) run(ctx context.Context) {
	defer c.wg.Done()

	fileTicker := time.NewTicker(c.cfg.Interval)
	defer fileTicker.Stop()
	activityTicker := time.NewTicker(time.Hour)
	defer activityTicker.Stop()
	cacheTicker := time.NewTicker(24 * time.Hour)
	defer cacheTicker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ctx.Done():
			return
		case <-fileTicker.C:
			c.cleanupTempFiles()
		case <-activityTicker.C:
			c.cleanupOldActivities()
		case <-cacheTicker.C:
			c.cleanupOldResumeCache()
		}
	}
}

// CleanupAll implements CleanerService. It runs every sweep immediately.
func (c *cleanerService) CleanupAll() CleanupResult {
	return CleanupResult{
		TempFilesRemoved:  c.cleanupTempFiles(),
		ActivitiesRemoved: c.cleanupOldActivities(),
		CacheRemoved:      c.cleanupOldResumeCache(),
	}
}

func (c *cleanerService) cleanupTempFiles() int {
	entries, err := os.ReadDir(c.tempPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read temp directory: %v", err)
		}
		return 0
	}

	cutoff := time.Now().Add(-c.cfg.FileRetention)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(c.tempPath, entry.Name())); err != nil {
				log.Printf("⚠️ Failed to remove temp file %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		log.Printf("🧹 Cleaned %d expired temp files", removed)
	}
	return removed
}

func (c *cleanerService) cleanupOldActivities() int64 {
	if c.activityRepo == nil {
		return 0
	}

	cutoff := time.Now().AddDate(0, 0, -c.cfg.DBRetentionDays)
	deleted, err := c.activityRepo.PurgeOlderThan(cutoff)
	if err != nil {
		log.Printf("⚠️ Failed to purge old activities: %v", err)
		return 0
	}

	if deleted > 0 {
		log.Printf("🧹 Cleaned %d old activity records", deleted)
	}
	return deleted
}

func (c *cleanerService) cleanupOldResumeCache() int64 {
	if c.cacheRepo == nil {
		return 0
	}

	cutoff := time.Now().Add(-resumeCacheRetention)
	deleted, err := c.cacheRepo.PurgeOlderThan(cutoff)
	if err != nil {
		log.Printf("⚠️ Failed to purge old resume cache: %v", err)
		return 0
	}

	if deleted > 0 {
		log.Printf("🧹 Cleaned %d old resume cache records", deleted)
	}
	return deleted
}

// Stats implements CleanerService.
func (c *cleanerService) Stats() CleanupStats {
	stats := CleanupStats{SchedulerRunning: c.running.Load()}

	if entries, err := os.ReadDir(c.tempPath); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			stats.TempFilesCount++
			if info, err := entry.Info(); err == nil {
				stats.TempFilesSize += info.Size()
			}
		}
	}

	if c.activityRepo != nil {
		if count, err := c.activityRepo.CountSince(time.Time{}); err == nil {
			stats.ActivityRecords = count
		}
	}
	if c.cacheRepo != nil {
		if count, err := c.cacheRepo.Count(); err == nil {
			stats.ResumeCacheRecords = count
		}
	}

	return stats
}
