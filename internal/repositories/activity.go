package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"rezoomai/resume-optimizer/internal/models"
)

type ActivityRepository interface {
	Create(activity *models.UserActivity) error
	FindByEmail(email string, limit int) ([]models.UserActivity, error)
	FindRecent(since time.Time, limit int) ([]models.UserActivity, error)
	FindHighScores(minScore int, limit int) ([]models.UserActivity, error)
	FindSince(since time.Time) ([]models.UserActivity, error)
	CountSince(since time.Time) (int64, error)
	CountWithScoreAbove(since time.Time, minScore int) (int64, error)
	AverageScoreSince(since time.Time) (float64, error)
	TopJobTitles(since time.Time, limit int) ([]JobTitleCount, error)
	TopPerformingTitles(since time.Time, minCount, limit int) ([]JobTitlePerformance, error)
	PurgeOlderThan(cutoff time.Time) (int64, error)
}

type JobTitleCount struct {
	JobTitle string `json:"job_title"`
	Count    int64  `json:"count"`
}

type JobTitlePerformance struct {
	JobTitle string  `json:"job_title"`
	AvgScore float64 `json:"avg_score"`
	Count    int64   `json:"count"`
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create implements ActivityRepository.
func (r *activityRepository) Create(activity *models.UserActivity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// FindByEmail implements ActivityRepository.
func (r *activityRepository) FindByEmail(email string, limit int) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := r.db.
		Where("email = ?", email).
		Order("generated_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find activities for %s: %w", email, err)
	}
	return activities, nil
}

// FindRecent implements ActivityRepository.
func (r *activityRepository) FindRecent(since time.Time, limit int) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := r.db.
		Where("generated_at >= ?", since).
		Order("generated_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent activities: %w", err)
	}
	return activities, nil
}

// FindHighScores implements ActivityRepository.
func (r *activityRepository) FindHighScores(minScore int, limit int) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := r.db.
		Where("ats_score >= ?", minScore).
		Order("generated_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find high scoring activities: %w", err)
	}
	return activities, nil
}

// FindSince implements ActivityRepository.
func (r *activityRepository) FindSince(since time.Time) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := r.db.
		Where("generated_at >= ?", since).
		Order("generated_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	return activities, nil
}

// CountSince implements ActivityRepository.
func (r *activityRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserActivity{}).
		Where("generated_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// CountWithScoreAbove implements ActivityRepository.
func (r *activityRepository) CountWithScoreAbove(since time.Time, minScore int) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserActivity{}).
		Where("generated_at >= ? AND ats_score > ?", since, minScore).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count high scoring activities: %w", err)
	}
	return count, nil
}

// AverageScoreSince implements ActivityRepository.
func (r *activityRepository) AverageScoreSince(since time.Time) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.UserActivity{}).
		Select("AVG(ats_score)").
		Where("generated_at >= ? AND ats_score IS NOT NULL", since).
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average scores: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// TopJobTitles implements ActivityRepository.
func (r *activityRepository) TopJobTitles(since time.Time, limit int) ([]JobTitleCount, error) {
	var rows []JobTitleCount
	err := r.db.Model(&models.UserActivity{}).
		Select("job_title, COUNT(*) as count").
		Where("generated_at >= ?", since).
		Group("job_title").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank job titles: %w", err)
	}
	return rows, nil
}

// TopPerformingTitles implements ActivityRepository.
func (r *activityRepository) TopPerformingTitles(since time.Time, minCount, limit int) ([]JobTitlePerformance, error) {
	var rows []JobTitlePerformance
	err := r.db.Model(&models.UserActivity{}).
		Select("job_title, AVG(ats_score) as avg_score, COUNT(*) as count").
		Where("generated_at >= ? AND ats_score IS NOT NULL", since).
		Group("job_title").
		Having("COUNT(*) >= ?", minCount).
		Order("avg_score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank performing job titles: %w", err)
	}
	return rows, nil
}

// PurgeOlderThan implements ActivityRepository.
func (r *activityRepository) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("generated_at < ?", cutoff).
		Delete(&models.UserActivity{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge activities: %w", result.Error)
	}
	return result.RowsAffected, nil
}
