package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"rezoomai/resume-optimizer/internal/ats"
	"rezoomai/resume-optimizer/internal/models"
)

type ScoreHandler struct {
	engine *ats.Engine
}

func NewScoreHandler(engine *ats.Engine) *ScoreHandler {
	return &ScoreHandler{engine: engine}
}

// HandleCalculate handles POST /ats-score/calculate
func (h *ScoreHandler) HandleCalculate(c *fiber.Ctx) error {
	var req models.ScoreRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.CVText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CV text is required",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description is required",
		})
	}

	result := h.engine.Score(req.CVText, req.JobDescription)

	return c.JSON(models.ScoreResponse{
		Score:           result.OverallScore,
		MissingKeywords: result.MissingKeywords,
		MatchedKeywords: result.MatchedKeywords,
		Suggestions:     result.Suggestions,
		Analysis:        result.Analysis,
		Breakdown:       result,
	})
}

// HandleKeywords handles GET /ats-score/keywords/:type
func (h *ScoreHandler) HandleKeywords(c *fiber.Ctx) error {
	text := c.Query("text")
	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text query parameter is required",
		})
	}

	var keywords []string
	extractType := c.Params("type")

	switch extractType {
	case "job":
		keywords = h.engine.ExtractJobKeywords(text)
	case "resume":
		keywords = h.engine.ExtractResumeKeywords(text)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be 'job' or 'resume'",
		})
	}

	return c.JSON(fiber.Map{
		"type":     extractType,
		"keywords": keywords,
		"count":    len(keywords),
	})
}
