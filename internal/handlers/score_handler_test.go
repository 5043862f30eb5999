package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezoomai/resume-optimizer/internal/ats"
	"rezoomai/resume-optimizer/internal/models"
)

func newScoreApp() *fiber.App {
	app := fiber.New()
	h := NewScoreHandler(ats.NewEngine(ats.DefaultVocabulary()))
	app.Post("/ats-score/calculate", h.HandleCalculate)
	app.Get("/ats-score/keywords/:type", h.HandleKeywords)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, []byte) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestHandleCalculate_Success(t *testing.T) {
	app := newScoreApp()

	status, raw := postJSON(t, app, "/ats-score/calculate", models.ScoreRequest{
		CVText:         "Experienced Python developer. Led teams and developed AWS services for 6 years. Bachelor of Science.",
		JobDescription: "Looking for a Python developer with AWS experience. 5+ years experience required. Bachelor degree. Leadership skills.",
	})

	require.Equal(t, fiber.StatusOK, status)

	var resp models.ScoreResponse
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Greater(t, resp.Score, 0)
	assert.Contains(t, resp.MatchedKeywords, "python")
	assert.NotNil(t, resp.Breakdown)
	assert.Equal(t, resp.Score, resp.Breakdown.OverallScore)
	assert.NotEmpty(t, resp.Analysis["overall"])
}

func TestHandleCalculate_MissingCVText(t *testing.T) {
	app := newScoreApp()

	status, raw := postJSON(t, app, "/ats-score/calculate", models.ScoreRequest{
		JobDescription: "Python developer wanted",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "CV text is required")
}

func TestHandleCalculate_MissingJobDescription(t *testing.T) {
	app := newScoreApp()

	status, raw := postJSON(t, app, "/ats-score/calculate", models.ScoreRequest{
		CVText: "Python developer",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Job description is required")
}

func TestHandleKeywords_Job(t *testing.T) {
	app := newScoreApp()

	req := httptest.NewRequest("GET", "/ats-score/keywords/job?text=Looking+for+python+and+aws", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Type     string   `json:"type"`
		Keywords []string `json:"keywords"`
		Count    int      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "job", body.Type)
	assert.Contains(t, body.Keywords, "python")
	assert.Contains(t, body.Keywords, "aws")
	assert.Equal(t, len(body.Keywords), body.Count)
}

func TestHandleKeywords_InvalidType(t *testing.T) {
	app := newScoreApp()

	req := httptest.NewRequest("GET", "/ats-score/keywords/cover-letter?text=python", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleKeywords_MissingText(t *testing.T) {
	app := newScoreApp()

	req := httptest.NewRequest("GET", "/ats-score/keywords/job", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
