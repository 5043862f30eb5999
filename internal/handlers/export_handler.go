package handlers

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/services"
)

type ExportHandler struct {
	rendererService services.PDFRendererService
	storageService  services.StorageService
}

func NewExportHandler(
	rendererService services.PDFRendererService,
	storageService services.StorageService,
) *ExportHandler {
	return &ExportHandler{
		rendererService: rendererService,
		storageService:  storageService,
	}
}

// HandleExportPDF handles POST /export/pdf
func (h *ExportHandler) HandleExportPDF(c *fiber.Ctx) error {
	var req models.ExportRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	includeWatermark := true
	if req.IncludeWatermark != nil {
		includeWatermark = *req.IncludeWatermark
	}

	filename := fmt.Sprintf("resume_%s.pdf", uuid.New().String()[:8])
	outputPath := h.storageService.TempFilePath(filename)

	if err := h.rendererService.RenderPDF(c.Context(), &req.ResumeData, includeWatermark, outputPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate PDF: %v", err),
		})
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "PDF file not generated",
		})
	}

	return c.JSON(models.ExportResponse{
		Success:     true,
		DownloadURL: "/api/v1/export/download/" + filename,
		Filename:    filename,
		FileSize:    info.Size(),
		Message:     "PDF generated successfully",
	})
}

// HandleExportDocx handles POST /export/docx. DOCX generation is not
// implemented; the route exists so clients get a stable answer instead of 404.
func (h *ExportHandler) HandleExportDocx(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": false,
		"message": "DOCX export coming soon. Please use PDF format for now.",
	})
}

// HandleDownload handles GET /export/download/:filename
func (h *ExportHandler) HandleDownload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	filePath := h.storageService.TempFilePath(filename)
	if _, err := os.Stat(filePath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "File not found or expired",
		})
	}

	return c.Download(filePath, filename)
}

// HandleFormats handles GET /export/formats
func (h *ExportHandler) HandleFormats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"formats": []fiber.Map{
			{
				"format":      "pdf",
				"name":        "PDF",
				"description": "High-quality PDF format, ATS-friendly",
				"available":   true,
			},
			{
				"format":      "docx",
				"name":        "Microsoft Word",
				"description": "Editable Word document",
				"available":   false,
			},
			{
				"format":      "html",
				"name":        "HTML",
				"description": "Web-friendly format",
				"available":   false,
			},
		},
	})
}
