package handlers

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/repositories"
	"rezoomai/resume-optimizer/internal/services"
)

type ActivityHandler struct {
	activityRepo   repositories.ActivityRepository
	cleanerService services.CleanerService
}

func NewActivityHandler(
	activityRepo repositories.ActivityRepository,
	cleanerService services.CleanerService,
) *ActivityHandler {
	return &ActivityHandler{
		activityRepo:   activityRepo,
		cleanerService: cleanerService,
	}
}

// HandleLog handles POST /activity/log
func (h *ActivityHandler) HandleLog(c *fiber.Ctx) error {
	var req models.ActivityRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid email is required",
		})
	}

	if strings.TrimSpace(req.JobTitle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job title is required",
		})
	}

	actionType := req.ActionType
	if actionType == "" {
		actionType = "resume_generated"
	}

	activity := &models.UserActivity{
		Email:       req.Email,
		JobTitle:    req.JobTitle,
		ATSScore:    req.ATSScore,
		ActionType:  actionType,
		GeneratedAt: time.Now(),
	}

	if err := h.activityRepo.Create(activity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log activity",
		})
	}

	return c.JSON(models.ActivityResponse{
		Success:    true,
		ActivityID: activity.ID,
		Message:    "Activity logged successfully",
	})
}

// HandleStats handles GET /activity/stats
func (h *ActivityHandler) HandleStats(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	since := time.Now().AddDate(0, 0, -days)

	total, err := h.activityRepo.CountSince(since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load activity stats",
		})
	}

	recent, err := h.activityRepo.FindRecent(since, 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load recent activities",
		})
	}

	topTitles, err := h.activityRepo.TopJobTitles(since, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load top job titles",
		})
	}

	avgScore, err := h.activityRepo.AverageScoreSince(since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load average score",
		})
	}

	var successRate float64
	if total > 0 {
		successful, err := h.activityRepo.CountWithScoreAbove(since, 70)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load success rate",
			})
		}
		successRate = round2(float64(successful) / float64(total) * 100)
	}

	return c.JSON(fiber.Map{
		"total_activities":  total,
		"recent_activities": serializeActivities(recent, false),
		"top_job_titles":    topTitles,
		"average_ats_score": round2(avgScore),
		"success_rate":      successRate,
	})
}

// HandleUserActivities handles GET /activity/user/:email
func (h *ActivityHandler) HandleUserActivities(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" || !strings.Contains(email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid email is required",
		})
	}

	limit := c.QueryInt("limit", 10)

	activities, err := h.activityRepo.FindByEmail(email, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load user activities",
		})
	}

	serialized := make([]fiber.Map, 0, len(activities))
	for _, a := range activities {
		serialized = append(serialized, fiber.Map{
			"id":           a.ID,
			"job_title":    a.JobTitle,
			"ats_score":    a.ATSScore,
			"generated_at": a.GeneratedAt,
		})
	}

	return c.JSON(fiber.Map{
		"email":      email,
		"activities": serialized,
		"total":      len(serialized),
	})
}

// HandleDashboard handles GET /activity/dashboard
func (h *ActivityHandler) HandleDashboard(c *fiber.Ctx) error {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)

	todayCount, err := h.activityRepo.CountSince(todayStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	weekCount, err := h.activityRepo.CountSince(weekStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	monthCount, err := h.activityRepo.CountSince(monthStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	avgScore, err := h.activityRepo.AverageScoreSince(monthStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	topPerforming, err := h.activityRepo.TopPerformingTitles(monthStart, 2, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	highScores, err := h.activityRepo.FindHighScores(80, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard data",
		})
	}

	return c.JSON(fiber.Map{
		"summary": fiber.Map{
			"today_activities": todayCount,
			"week_activities":  weekCount,
			"month_activities": monthCount,
			"avg_ats_score":    round2(avgScore),
		},
		"top_performing_jobs": topPerforming,
		"recent_high_scores":  serializeActivities(highScores, true),
		"generated_at":        now,
	})
}

// HandleCleanup handles DELETE /activity/cleanup
func (h *ActivityHandler) HandleCleanup(c *fiber.Ctx) error {
	days := c.QueryInt("days", 90)
	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := h.activityRepo.PurgeOlderThan(cutoff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clean up activities",
		})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"deleted_records": deleted,
		"cutoff_date":     cutoff,
		"message":         "Cleaned up " + strconv.FormatInt(deleted, 10) + " old activity records",
	})
}

// HandleExport handles GET /activity/export
func (h *ActivityHandler) HandleExport(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", "json"))
	days := c.QueryInt("days", 30)
	since := time.Now().AddDate(0, 0, -days)

	activities, err := h.activityRepo.FindSince(since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export activities",
		})
	}

	if format == "csv" {
		var out strings.Builder
		writer := csv.NewWriter(&out)

		writer.Write([]string{"Email", "Job Title", "ATS Score", "Generated At"})
		for _, a := range activities {
			score := ""
			if a.ATSScore != nil {
				score = strconv.Itoa(*a.ATSScore)
			}
			writer.Write([]string{a.Email, a.JobTitle, score, a.GeneratedAt.Format(time.RFC3339)})
		}
		writer.Flush()

		return c.JSON(fiber.Map{
			"format": "csv",
			"data":   out.String(),
			"count":  len(activities),
		})
	}

	return c.JSON(fiber.Map{
		"format": "json",
		"data":   serializeActivities(activities, false),
		"count":  len(activities),
	})
}

// HandleRetentionStats handles GET /activity/retention
func (h *ActivityHandler) HandleRetentionStats(c *fiber.Ctx) error {
	return c.JSON(h.cleanerService.Stats())
}

func serializeActivities(activities []models.UserActivity, anonymize bool) []fiber.Map {
	out := make([]fiber.Map, 0, len(activities))
	for _, a := range activities {
		email := a.Email
		if anonymize {
			email = anonymizeEmail(email)
		}
		out = append(out, fiber.Map{
			"email":        email,
			"job_title":    a.JobTitle,
			"ats_score":    a.ATSScore,
			"generated_at": a.GeneratedAt,
		})
	}
	return out
}

func anonymizeEmail(email string) string {
	if len(email) < 3 {
		return "***@***"
	}
	return email[:3] + "***@***"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
