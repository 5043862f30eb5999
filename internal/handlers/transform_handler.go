package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/repositories"
	"rezoomai/resume-optimizer/internal/services"
)

var validate = validator.New()

type TransformHandler struct {
	optimizerService services.OptimizerService
	cacheRepo        repositories.ResumeCacheRepository
}

func NewTransformHandler(
	optimizerService services.OptimizerService,
	cacheRepo repositories.ResumeCacheRepository,
) *TransformHandler {
	return &TransformHandler{
		optimizerService: optimizerService,
		cacheRepo:        cacheRepo,
	}
}

// HandleTransform handles POST /transform/resume
func (h *TransformHandler) HandleTransform(c *fiber.Ctx) error {
	var req models.TransformRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.CVText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_text is required",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request: " + err.Error(),
		})
	}

	resp, err := h.optimizerService.Optimize(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to optimize resume",
		})
	}

	return c.JSON(resp)
}

// HandleCached handles GET /transform/cached/:email. It returns the most
// recent optimization stored for the user without rerunning the generator.
func (h *TransformHandler) HandleCached(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" || !strings.Contains(email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid email is required",
		})
	}

	cache, err := h.cacheRepo.FindLatestByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No cached resume found for this email",
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"optimized_resume": cache.OptimizedText,
		"job_description":  cache.JobDescription,
		"tone":             cache.Tone,
		"created_at":       cache.CreatedAt,
	})
}

// HandleHealth handles GET /transform/health
func (h *TransformHandler) HandleHealth(c *fiber.Ctx) error {
	status := h.optimizerService.Status()

	return c.JSON(fiber.Map{
		"status":         "healthy",
		"ai_available":   status.AIAvailable,
		"model":          status.Model,
		"fallback_ready": status.FallbackReady,
	})
}
