package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezoomai/resume-optimizer/internal/ats"
	"rezoomai/resume-optimizer/internal/models"
)

type stubGenerator struct {
	available bool
	output    string
	err       error
	calls     int
}

func (s *stubGenerator) Name() string    { return "stub" }
func (s *stubGenerator) Available() bool { return s.available }

func (s *stubGenerator) OptimizeResume(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	s.calls++
	return s.output, s.err
}

func newTestOptimizer(ai ResumeGenerator) *optimizerService {
	return &optimizerService{
		engine:   ats.NewEngine(ats.DefaultVocabulary()),
		ai:       ai,
		fallback: NewRuleBasedGenerator(ats.NewEngine(ats.DefaultVocabulary())),
	}
}

func TestOptimize_AISuccess(t *testing.T) {
	stub := &stubGenerator{
		available: true,
		output: "**PROFESSIONAL SUMMARY**\nLed and developed platforms, increased revenue by 40% across 3 teams.\n" +
			"**KEY SKILLS**\npython aws docker kubernetes react sql agile scrum leadership communication teamwork",
	}
	s := newTestOptimizer(stub)

	resp, err := s.Optimize(context.Background(), &models.TransformRequest{
		CVText:         "short resume",
		JobDescription: "python job",
		Tone:           "tech",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "ai_optimization", resp.Method)
	assert.Equal(t, "tech", resp.ToneApplied)
	assert.Equal(t, stub.output, resp.OptimizedResume)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, resp.Improvements, "Added compelling professional summary")
	assert.Contains(t, resp.Improvements, "Organized skills section for better visibility")
}

func TestOptimize_DefaultsToneToProfessional(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{available: false})

	resp, err := s.Optimize(context.Background(), &models.TransformRequest{
		CVText:         "resume",
		JobDescription: "job",
	})
	require.NoError(t, err)

	assert.Equal(t, "professional", resp.ToneApplied)
}

func TestOptimize_FallsBackWhenUnavailable(t *testing.T) {
	stub := &stubGenerator{available: false}
	s := newTestOptimizer(stub)

	resp, err := s.Optimize(context.Background(), &models.TransformRequest{
		CVText:         "resume",
		JobDescription: "python and docker role",
		Tone:           "professional",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "rule_based_optimization", resp.Method)
	assert.Equal(t, 60, resp.OptimizationScore)
	assert.Contains(t, resp.OptimizedResume, "**KEY SKILLS**")
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, []string{
		"Basic ATS optimization applied",
		"Keywords added from job description",
	}, resp.Improvements)
}

func TestOptimize_FallsBackOnGenerationError(t *testing.T) {
	stub := &stubGenerator{available: true, err: fmt.Errorf("quota exceeded")}
	s := newTestOptimizer(stub)

	resp, err := s.Optimize(context.Background(), &models.TransformRequest{
		CVText:         "resume",
		JobDescription: "python role",
		Tone:           "creative",
	})
	require.NoError(t, err)

	assert.Equal(t, "rule_based_optimization", resp.Method)
	assert.Equal(t, "creative", resp.ToneApplied)
	assert.Equal(t, 1, stub.calls)
}

func TestExtractImprovements_Fallback(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{})

	got := s.extractImprovements("same text here", "same text here")

	assert.Equal(t, []string{"General ATS optimization applied"}, got)
}

func TestExtractImprovements_Rules(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{})
	original := "plain resume"
	optimized := "led and developed things, grew revenue 40% with a much longer body of text overall here"

	got := s.extractImprovements(original, optimized)

	assert.Contains(t, got, "Enhanced content with relevant keywords")
	assert.Contains(t, got, "Added quantified achievements and metrics")
	assert.Contains(t, got, "Enhanced with strong action verbs")
}

func TestOptimizationScore_Base(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{})

	assert.Equal(t, 50, s.optimizationScore("same text", "same text"))
}

func TestOptimizationScore_AllRules(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{})
	original := "plain"
	optimized := "**PROFESSIONAL SUMMARY** led developed increased revenue 40% **KEY SKILLS** python aws"

	// 50 base +10 words +15 digits +10 verbs +10 summary +5 skills = 100
	assert.Equal(t, 100, s.optimizationScore(original, optimized))
}

func TestOptimizationScore_Capped(t *testing.T) {
	s := newTestOptimizer(&stubGenerator{})

	score := s.optimizationScore("x", "**PROFESSIONAL SUMMARY** **KEY SKILLS** led 1 2 3 developed managed increased many words beyond")
	assert.LessOrEqual(t, score, 100)
}
