package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"rezoomai/resume-optimizer/internal/models"
)

type ResumeCacheRepository interface {
	Create(cache *models.ResumeCache) error
	FindLatestByEmail(email string) (*models.ResumeCache, error)
	Count() (int64, error)
	PurgeOlderThan(cutoff time.Time) (int64, error)
}

type resumeCacheRepository struct {
	db *gorm.DB
}

func NewResumeCacheRepository(db *gorm.DB) ResumeCacheRepository {
	return &resumeCacheRepository{db: db}
}

// Create implements ResumeCacheRepository.
func (r *resumeCacheRepository) Create(cache *models.ResumeCache) error {
	if err := r.db.Create(cache).Error; err != nil {
		return fmt.Errorf("failed to cache resume: %w", err)
	}
	return nil
}

// FindLatestByEmail implements ResumeCacheRepository.
func (r *resumeCacheRepository) FindLatestByEmail(email string) (*models.ResumeCache, error) {
	var cache models.ResumeCache
	err := r.db.
		Where("user_email = ?", email).
		Order("created_at DESC").
		First(&cache).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no cached resume for %s", email)
		}
		return nil, fmt.Errorf("failed to find cached resume: %w", err)
	}
	return &cache, nil
}

// Count implements ResumeCacheRepository.
func (r *resumeCacheRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ResumeCache{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cached resumes: %w", err)
	}
	return count, nil
}

// PurgeOlderThan implements ResumeCacheRepository.
func (r *resumeCacheRepository) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("created_at < ?", cutoff).
		Delete(&models.ResumeCache{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge resume cache: %w", result.Error)
	}
	return result.RowsAffected, nil
}
