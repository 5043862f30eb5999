package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rezoomai/resume-optimizer/internal/config"
)

func configuredMailer() MailerService {
	return NewMailerService(config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		Username:  "sender@example.com",
		Password:  "secret",
		FromEmail: "noreply@rezoom.ai",
	})
}

func TestMailer_Configured(t *testing.T) {
	assert.True(t, configuredMailer().Configured())
}

func TestMailer_NotConfiguredWithoutCredentials(t *testing.T) {
	m := NewMailerService(config.SMTPConfig{Host: "smtp.example.com", Port: 587})

	assert.False(t, m.Configured())
}

func TestMailer_StatusConfigured(t *testing.T) {
	status := configuredMailer().Status()

	assert.True(t, status.Configured)
	assert.Equal(t, "smtp.example.com", status.SMTPServer)
	assert.Equal(t, "noreply@rezoom.ai", status.FromEmail)
	assert.Equal(t, "Email service is configured and ready", status.Message)
}

func TestMailer_StatusUnconfigured(t *testing.T) {
	status := NewMailerService(config.SMTPConfig{}).Status()

	assert.False(t, status.Configured)
	assert.Empty(t, status.SMTPServer)
	assert.Contains(t, status.Message, "SMTP_USER")
}

func TestMailer_StatusFallsBackToUsernameAsSender(t *testing.T) {
	m := NewMailerService(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "sender@example.com",
		Password: "secret",
	})

	assert.Equal(t, "sender@example.com", m.Status().FromEmail)
}

func TestMailer_SendFailsWhenUnconfigured(t *testing.T) {
	m := NewMailerService(config.SMTPConfig{})

	id, err := m.Send("user@example.com", "Subject", "<p>body</p>", "")

	assert.Error(t, err)
	assert.Empty(t, id)
}

func TestMailer_TestFailsWhenUnconfigured(t *testing.T) {
	assert.Error(t, NewMailerService(config.SMTPConfig{}).Test())
}

func TestMailer_DefaultMessage(t *testing.T) {
	body := configuredMailer().DefaultMessage()

	assert.Contains(t, body, "Your Resume is Ready! 🎉")
	assert.Contains(t, body, "The Rezoom.ai Team")
}

func TestMailer_ResumeMessage(t *testing.T) {
	body := configuredMailer().ResumeMessage("Jane", "Backend Engineer")

	assert.Contains(t, body, "Hi Jane! Your Backend Engineer Resume is Ready!")
}

func TestMailer_ResumeMessageDefaults(t *testing.T) {
	body := configuredMailer().ResumeMessage("", "")

	assert.Contains(t, body, "Hi there! Your Professional Resume is Ready!")
}
