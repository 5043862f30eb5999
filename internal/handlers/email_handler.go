package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/services"
)

type EmailHandler struct {
	mailerService   services.MailerService
	rendererService services.PDFRendererService
	storageService  services.StorageService
}

func NewEmailHandler(
	mailerService services.MailerService,
	rendererService services.PDFRendererService,
	storageService services.StorageService,
) *EmailHandler {
	return &EmailHandler{
		mailerService:   mailerService,
		rendererService: rendererService,
		storageService:  storageService,
	}
}

// HandleSend handles POST /email/send
func (h *EmailHandler) HandleSend(c *fiber.Ctx) error {
	var req models.EmailRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ToEmail == "" || !strings.Contains(req.ToEmail, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid email address is required",
		})
	}

	if !h.mailerService.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email configuration not found",
		})
	}

	subject := req.Subject
	if subject == "" {
		subject = "Your ATS-Optimized Resume from Rezoom.ai"
	}

	message := req.Message
	if message == "" {
		message = h.mailerService.DefaultMessage()
	}

	emailID, err := h.mailerService.Send(req.ToEmail, subject, message, req.AttachmentPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error sending email: %v", err),
		})
	}

	return c.JSON(models.EmailResponse{
		Success: true,
		Message: "Email sent successfully",
		EmailID: emailID,
	})
}

// HandleSendResume handles POST /email/send-resume. It renders the resume to
// PDF, mails it as an attachment, then removes the temporary file.
func (h *EmailHandler) HandleSendResume(c *fiber.Ctx) error {
	var req models.EmailRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ToEmail == "" || !strings.Contains(req.ToEmail, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid email address is required",
		})
	}

	if req.ResumeData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume data is required",
		})
	}

	if !h.mailerService.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email configuration not found",
		})
	}

	filename := fmt.Sprintf("resume_%s.pdf", uuid.New().String()[:8])
	pdfPath := h.storageService.TempFilePath(filename)

	if err := h.rendererService.RenderPDF(c.Context(), req.ResumeData, true, pdfPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to generate PDF: %v", err),
		})
	}
	defer os.Remove(pdfPath)

	message := h.mailerService.ResumeMessage(req.ResumeData.Name, req.ResumeData.Title)

	emailID, err := h.mailerService.Send(req.ToEmail, "Your ATS-Optimized Resume is Ready! 🎉", message, pdfPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error sending resume email: %v", err),
		})
	}

	return c.JSON(models.EmailResponse{
		Success: true,
		Message: "Email sent successfully",
		EmailID: emailID,
	})
}

// HandleConfig handles GET /email/config
func (h *EmailHandler) HandleConfig(c *fiber.Ctx) error {
	return c.JSON(h.mailerService.Status())
}

// HandleTest handles POST /email/test
func (h *EmailHandler) HandleTest(c *fiber.Ctx) error {
	if !h.mailerService.Configured() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email not configured",
		})
	}

	if err := h.mailerService.Test(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Email test failed: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Email configuration test successful",
	})
}
