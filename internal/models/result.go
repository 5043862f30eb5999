package models

import "rezoomai/resume-optimizer/internal/ats"

type ScoreRequest struct {
	CVText         string `json:"cv_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

type ScoreResponse struct {
	Score           int               `json:"score"`
	MissingKeywords []string          `json:"missing_keywords"`
	MatchedKeywords []string          `json:"matched_keywords"`
	Suggestions     []string          `json:"suggestions"`
	Analysis        map[string]string `json:"analysis"`
	Breakdown       *ats.Result       `json:"breakdown"`
}

type TransformRequest struct {
	CVText         string `json:"cv_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	Tone           string `json:"tone" validate:"omitempty,oneof=professional tech creative"`
	UserEmail      string `json:"user_email" validate:"omitempty,email"`
}

type TransformResponse struct {
	Success           bool     `json:"success"`
	OptimizedResume   string   `json:"optimized_resume"`
	Improvements      []string `json:"improvements"`
	OptimizationScore int      `json:"optimization_score"`
	ToneApplied       string   `json:"tone_applied"`
	Method            string   `json:"method"`
	Message           string   `json:"message"`
}

type ParseResponse struct {
	Success        bool            `json:"success"`
	Filename       string          `json:"filename"`
	FileSize       int             `json:"file_size"`
	Text           string          `json:"text"`
	StructuredData *StructuredCV   `json:"structured_data"`
	WordCount      int             `json:"word_count"`
	Message        string          `json:"message"`
}

// StructuredCV is the heuristic outline extracted from a parsed resume.
type StructuredCV struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Sections map[string]string `json:"sections"`
}

type JobParseRequest struct {
	JobText string `json:"job_text" validate:"required"`
}

// StructuredJob is the heuristic outline extracted from a job description.
type StructuredJob struct {
	Title           string   `json:"title"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
}

type ExportRequest struct {
	ResumeData       ResumeData `json:"resume_data" validate:"required"`
	IncludeWatermark *bool      `json:"include_watermark"`
}

type ExportResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	FileSize    int64  `json:"file_size"`
	Message     string `json:"message"`
}

// ResumeData is the structured payload rendered into the document template.
type ResumeData struct {
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Education  string            `json:"education"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Years       string `json:"years"`
	Description string `json:"description"`
}

type EmailRequest struct {
	ToEmail        string      `json:"to_email" validate:"required,email"`
	Subject        string      `json:"subject"`
	Message        string      `json:"message"`
	AttachmentPath string      `json:"attachment_path"`
	ResumeData     *ResumeData `json:"resume_data"`
}

type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"email_id,omitempty"`
}

type ActivityRequest struct {
	Email      string `json:"email" validate:"required,email"`
	JobTitle   string `json:"job_title" validate:"required"`
	ATSScore   *int   `json:"ats_score"`
	ActionType string `json:"action_type"`
}

type ActivityResponse struct {
	Success    bool   `json:"success"`
	ActivityID uint   `json:"activity_id"`
	Message    string `json:"message"`
}
