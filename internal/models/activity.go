package models

import "time"

// UserActivity is one append-only row of the activity log: who generated a
// resume for which job and how it scored.
type UserActivity struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string    `gorm:"type:text;index" json:"email"`
	JobTitle    string    `gorm:"type:text" json:"job_title"`
	ATSScore    *int      `gorm:"column:ats_score" json:"ats_score,omitempty"`
	ActionType  string    `gorm:"type:text;default:'resume_generated'" json:"action_type"`
	GeneratedAt time.Time `gorm:"type:timestamp;default:now();index" json:"generated_at"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

// ResumeCache keeps the most recent transform output per user so a rewrite
// can be recovered without rerunning the generator.
type ResumeCache struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail      string    `gorm:"type:text;index" json:"user_email"`
	OriginalText   string    `gorm:"type:text" json:"original_text"`
	OptimizedText  string    `gorm:"type:text" json:"optimized_text"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	Tone           string    `gorm:"type:text" json:"tone"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (ResumeCache) TableName() string {
	return "resume_caches"
}
