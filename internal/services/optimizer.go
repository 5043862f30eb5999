package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"rezoomai/resume-optimizer/internal/ats"
	"rezoomai/resume-optimizer/internal/models"
	"rezoomai/resume-optimizer/internal/repositories"
)

var numberRe = regexp.MustCompile(`\d+`)

// OptimizerStatus describes the health of the transform pipeline.
type OptimizerStatus struct {
	AIAvailable   bool   `json:"ai_available"`
	Model         string `json:"model"`
	FallbackReady bool   `json:"fallback_ready"`
}

type OptimizerService interface {
	Optimize(ctx context.Context, req *models.TransformRequest) (*models.TransformResponse, error)
	Status() OptimizerStatus
}

type optimizerService struct {
	engine    *ats.Engine
	ai        ResumeGenerator
	fallback  ResumeGenerator
	cacheRepo repositories.ResumeCacheRepository
}

// NewOptimizerService wires the AI generator, the rule-based fallback, and
// the optional resume cache. cacheRepo may be nil when the database is not
// configured.
func NewOptimizerService(engine *ats.Engine, ai ResumeGenerator, cacheRepo repositories.ResumeCacheRepository) OptimizerService {
	return &optimizerService{
		engine:    engine,
		ai:        ai,
		fallback:  NewRuleBasedGenerator(engine),
		cacheRepo: cacheRepo,
	}
}

// Optimize implements OptimizerService.
func (s *optimizerService) Optimize(ctx context.Context, req *models.TransformRequest) (*models.TransformResponse, error) {
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	resp := s.runGenerators(ctx, req.CVText, req.JobDescription, tone)

	if req.UserEmail != "" && s.cacheRepo != nil {
		cache := &models.ResumeCache{
			UserEmail:      req.UserEmail,
			OriginalText:   req.CVText,
			OptimizedText:  resp.OptimizedResume,
			JobDescription: req.JobDescription,
			Tone:           tone,
		}
		if err := s.cacheRepo.Create(cache); err != nil {
			log.Printf("⚠️ Failed to cache optimized resume for %s: %v", req.UserEmail, err)
		}
	}

	return resp, nil
}

func (s *optimizerService) runGenerators(ctx context.Context, resumeText, jobDescription, tone string) *models.TransformResponse {
	if !s.ai.Available() {
		log.Println("⚠️ AI generator not available, using rule-based optimization")
		return s.fallbackResponse(ctx, resumeText, jobDescription, tone)
	}

	optimized, err := s.ai.OptimizeResume(ctx, resumeText, jobDescription, tone)
	if err != nil {
		log.Printf("❌ AI optimization failed: %v", err)
		return s.fallbackResponse(ctx, resumeText, jobDescription, tone)
	}

	return &models.TransformResponse{
		Success:           true,
		OptimizedResume:   optimized,
		Improvements:      s.extractImprovements(resumeText, optimized),
		OptimizationScore: s.optimizationScore(resumeText, optimized),
		ToneApplied:       tone,
		Method:            "ai_optimization",
		Message:           fmt.Sprintf("Resume optimized with %s", s.ai.Name()),
	}
}

func (s *optimizerService) fallbackResponse(ctx context.Context, resumeText, jobDescription, tone string) *models.TransformResponse {
	optimized, _ := s.fallback.OptimizeResume(ctx, resumeText, jobDescription, tone)

	return &models.TransformResponse{
		Success:         true,
		OptimizedResume: optimized,
		Improvements: []string{
			"Basic ATS optimization applied",
			"Keywords added from job description",
		},
		OptimizationScore: 60,
		ToneApplied:       tone,
		Method:            "rule_based_optimization",
		Message:           "Resume optimized with rule-based fallback",
	}
}

// extractImprovements compares the original and optimized text and reports
// which optimization rules actually fired.
func (s *optimizerService) extractImprovements(original, optimized string) []string {
	var improvements []string

	if len(strings.Fields(optimized)) > int(float64(len(strings.Fields(original)))*1.2) {
		improvements = append(improvements, "Enhanced content with relevant keywords")
	}

	if len(numberRe.FindAllString(optimized, -1)) > len(numberRe.FindAllString(original, -1)) {
		improvements = append(improvements, "Added quantified achievements and metrics")
	}

	if s.engine.ActionVerbCount(optimized) > s.engine.ActionVerbCount(original) {
		improvements = append(improvements, "Enhanced with strong action verbs")
	}

	if strings.Contains(optimized, "**PROFESSIONAL SUMMARY**") {
		improvements = append(improvements, "Added compelling professional summary")
	}

	if strings.Contains(optimized, "**KEY SKILLS**") {
		improvements = append(improvements, "Organized skills section for better visibility")
	}

	if len(improvements) == 0 {
		return []string{"General ATS optimization applied"}
	}
	return improvements
}

func (s *optimizerService) optimizationScore(original, optimized string) int {
	score := 50

	if len(strings.Fields(optimized)) > int(float64(len(strings.Fields(original)))*1.1) {
		score += 10
	}

	if len(numberRe.FindAllString(optimized, -1)) > len(numberRe.FindAllString(original, -1)) {
		score += 15
	}

	if s.engine.ActionVerbCount(optimized) > s.engine.ActionVerbCount(original) {
		score += 10
	}

	if strings.Contains(optimized, "**PROFESSIONAL SUMMARY**") {
		score += 10
	}

	if strings.Contains(optimized, "**KEY SKILLS**") {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Status implements OptimizerService.
func (s *optimizerService) Status() OptimizerStatus {
	return OptimizerStatus{
		AIAvailable:   s.ai.Available(),
		Model:         s.ai.Name(),
		FallbackReady: true,
	}
}
