package services

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/gomail.v2"

	"rezoomai/resume-optimizer/internal/config"
)

// MailerStatus reports whether SMTP delivery is configured.
type MailerStatus struct {
	Configured bool   `json:"configured"`
	SMTPServer string `json:"smtp_server,omitempty"`
	FromEmail  string `json:"from_email,omitempty"`
	Message    string `json:"message"`
}

type MailerService interface {
	Configured() bool
	Status() MailerStatus
	Send(toEmail, subject, htmlBody, attachmentPath string) (string, error)
	Test() error
	DefaultMessage() string
	ResumeMessage(name, title string) string
}

type mailerService struct {
	cfg config.SMTPConfig
}

func NewMailerService(cfg config.SMTPConfig) MailerService {
	return &mailerService{cfg: cfg}
}

// Configured implements MailerService.
func (s *mailerService) Configured() bool {
	return s.cfg.Username != "" && s.cfg.Password != ""
}

// Status implements MailerService.
func (s *mailerService) Status() MailerStatus {
	if !s.Configured() {
		return MailerStatus{
			Configured: false,
			Message:    "Email service not configured. Please set SMTP_USER and SMTP_PASS environment variables.",
		}
	}

	return MailerStatus{
		Configured: true,
		SMTPServer: s.cfg.Host,
		FromEmail:  s.fromEmail(),
		Message:    "Email service is configured and ready",
	}
}

// Send implements MailerService. It delivers an HTML message with an
// optional file attachment and returns a delivery id.
func (s *mailerService) Send(toEmail, subject, htmlBody, attachmentPath string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("email configuration not found")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.fromEmail())
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err == nil {
			msg.Attach(attachmentPath)
		}
	}

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return fmt.Sprintf("email_%s_%d", toEmail, time.Now().Unix()), nil
}

// Test implements MailerService. It opens and closes an SMTP connection
// without sending anything.
func (s *mailerService) Test() error {
	if !s.Configured() {
		return fmt.Errorf("email not configured")
	}

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	closer, err := dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp connection failed: %w", err)
	}

	return closer.Close()
}

func (s *mailerService) fromEmail() string {
	if s.cfg.FromEmail != "" {
		return s.cfg.FromEmail
	}
	return s.cfg.Username
}

// DefaultMessage implements MailerService.
func (s *mailerService) DefaultMessage() string {
	return `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #0077FF;">Your Resume is Ready! 🎉</h2>

        <p>Thank you for using Rezoom.ai to optimize your resume!</p>

        <p>Your ATS-optimized resume has been generated and is attached to this email.
        This resume has been specifically tailored to pass Applicant Tracking Systems
        and increase your chances of landing interviews.</p>

        <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
            <h3 style="color: #0077FF; margin-top: 0;">What's Next?</h3>
            <ul>
                <li>Review your optimized resume</li>
                <li>Customize it further if needed</li>
                <li>Apply to jobs with confidence!</li>
            </ul>
        </div>

        <p>Good luck with your job search!</p>

        <p>Best regards,<br>
        The Rezoom.ai Team</p>

        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="font-size: 12px; color: #666;">
            Generated with Rezoom.ai - AI Resume Builder that Beats the ATS Filters
        </p>
    </div>
</body>
</html>`
}

// ResumeMessage implements MailerService. It personalizes the delivery email
// with the candidate's name and target title.
func (s *mailerService) ResumeMessage(name, title string) string {
	if name == "" {
		name = "there"
	}
	if title == "" {
		title = "Professional"
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #0077FF;">Hi %s! Your %s Resume is Ready! 🎉</h2>

        <p>Great news! Your ATS-optimized resume has been generated and is attached to this email.</p>

        <div style="background-color: #e8f4fd; padding: 15px; border-radius: 5px; margin: 20px 0;">
            <h3 style="color: #0077FF; margin-top: 0;">✨ What We've Optimized:</h3>
            <ul style="margin: 10px 0;">
                <li>Added relevant keywords from the job description</li>
                <li>Enhanced with quantified achievements</li>
                <li>Optimized for ATS compatibility</li>
                <li>Improved formatting and structure</li>
            </ul>
        </div>

        <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
            <h3 style="color: #0077FF; margin-top: 0;">🚀 Ready to Apply?</h3>
            <p>Your resume is now optimized to:</p>
            <ul>
                <li>Pass ATS filters with flying colors</li>
                <li>Stand out to recruiters and hiring managers</li>
                <li>Land more interviews</li>
            </ul>
        </div>

        <p>We're excited to see where your optimized resume takes you!</p>

        <p>Best of luck with your job search,<br>
        The Rezoom.ai Team</p>

        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="font-size: 12px; color: #666;">
            Generated with Rezoom.ai - AI Resume Builder that Beats the ATS Filters
        </p>
    </div>
</body>
</html>`, name, title)
}
