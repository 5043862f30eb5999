package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"rezoomai/resume-optimizer/internal/ats"
)

// ResumeGenerator produces an optimized resume from the original text, the
// job description, and the requested tone. Available reports whether the
// generator can serve requests right now.
type ResumeGenerator interface {
	Name() string
	Available() bool
	OptimizeResume(ctx context.Context, resumeText, jobDescription, tone string) (string, error)
}

type geminiGenerator struct {
	client     *genai.Client
	modelName  string
	maxRetries int
	prompts    *PromptBuilder
}

// NewGeminiGenerator creates a Gemini-backed generator. An empty API key
// yields a generator that reports itself unavailable instead of an error, so
// the optimizer can fall through to the rule-based path.
func NewGeminiGenerator(apiKey, modelName string, maxRetries int) (ResumeGenerator, error) {
	if apiKey == "" {
		return &geminiGenerator{modelName: modelName, maxRetries: maxRetries, prompts: NewPromptBuilder()}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:     client,
		modelName:  modelName,
		maxRetries: maxRetries,
		prompts:    NewPromptBuilder(),
	}, nil
}

// Name implements ResumeGenerator.
func (g *geminiGenerator) Name() string {
	return g.modelName
}

// Available implements ResumeGenerator.
func (g *geminiGenerator) Available() bool {
	return g.client != nil
}

// OptimizeResume implements ResumeGenerator.
func (g *geminiGenerator) OptimizeResume(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	prompt := g.prompts.BuildOptimizationPrompt(resumeText, jobDescription, tone)
	return g.generateWithRetry(ctx, prompt, 0.7)
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		fmt.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func (g *geminiGenerator) generateWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.generate(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxRetries {
			fmt.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}

type ruleBasedGenerator struct {
	engine *ats.Engine
}

// NewRuleBasedGenerator creates the deterministic fallback generator. It
// assembles a resume skeleton seeded with skills found in the job
// description and is always available.
func NewRuleBasedGenerator(engine *ats.Engine) ResumeGenerator {
	return &ruleBasedGenerator{engine: engine}
}

// Name implements ResumeGenerator.
func (r *ruleBasedGenerator) Name() string {
	return "rule-based"
}

// Available implements ResumeGenerator.
func (r *ruleBasedGenerator) Available() bool {
	return true
}

// OptimizeResume implements ResumeGenerator.
func (r *ruleBasedGenerator) OptimizeResume(ctx context.Context, resumeText, jobDescription, tone string) (string, error) {
	jobKeywords := r.engine.SkillHits(jobDescription)
	if len(jobKeywords) > 10 {
		jobKeywords = jobKeywords[:10]
	}

	var sections []string
	sections = append(sections,
		"**CONTACT INFORMATION**",
		"[Add your contact details here]",
		"",
		"**PROFESSIONAL SUMMARY**",
		"Results-driven professional with expertise in key areas relevant to this position.",
		"",
		"**PROFESSIONAL EXPERIENCE**",
		"[Your work experience with quantified achievements]",
		"",
		"**KEY SKILLS**",
	)
	for _, keyword := range jobKeywords {
		sections = append(sections, "• "+titleCase(keyword))
	}
	sections = append(sections,
		"",
		"**EDUCATION**",
		"[Your educational background]",
	)

	return strings.Join(sections, "\n"), nil
}
