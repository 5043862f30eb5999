package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/services"
)

type ParseHandler struct {
	parserService  services.DocumentParserService
	storageService services.StorageService
	maxFileSize    int64
}

func NewParseHandler(
	parserService services.DocumentParserService,
	storageService services.StorageService,
	maxFileSize int64,
) *ParseHandler {
	return &ParseHandler{
		parserService:  parserService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleParseResume handles POST /parse/resume
func (h *ParseHandler) HandleParseResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	_, filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unsupported file: %v", err),
		})
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	text, err := h.parserService.ExtractText(content, ext)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to extract text: %v", err),
		})
	}

	cleaned := services.CleanText(text)
	structured := h.parserService.StructureResume(cleaned)

	return c.JSON(models.ParseResponse{
		Success:        true,
		Filename:       file.Filename,
		FileSize:       int(file.Size),
		Text:           cleaned,
		StructuredData: structured,
		WordCount:      len(strings.Fields(cleaned)),
		Message:        "Resume parsed successfully",
	})
}

// HandleParseJobDescription handles POST /parse/job-description
func (h *ParseHandler) HandleParseJobDescription(c *fiber.Ctx) error {
	var req models.JobParseRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No job description provided",
		})
	}

	cleaned := services.CleanText(req.JobText)
	structured := h.parserService.StructureJob(cleaned)

	return c.JSON(fiber.Map{
		"success":         true,
		"structured_data": structured,
		"word_count":      len(strings.Fields(cleaned)),
		"message":         "Job description parsed successfully",
	})
}
