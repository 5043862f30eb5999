// Package ats implements the keyword-based ATS compatibility scoring engine:
// keyword extraction from free text, six category scorers, a weighted
// aggregate score and rule-based improvement suggestions. Every operation is
// a pure function of its text inputs and the injected Vocabulary, so results
// are deterministic and safe to compute concurrently.
package ats

import (
	"math"
	"strings"
)

// Category weights for the overall score. They sum to 1.0.
const (
	weightKeyword     = 0.30
	weightTechnical   = 0.25
	weightSoftSkills  = 0.15
	weightExperience  = 0.15
	weightEducation   = 0.10
	weightActionVerbs = 0.05
)

// Engine scores resumes against job descriptions.
type Engine struct {
	vocab Vocabulary
}

func NewEngine(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

// MatchScore is the result of a set-intersection category (keyword, technical,
// soft skills). Score counts matched terms; Percentage is the 0-100 share of
// the job-side terms matched and is the value the aggregator weighs.
type MatchScore struct {
	Score      int      `json:"score"`
	Matched    []string `json:"matched"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"`
}

type ExperienceScore struct {
	Score       int  `json:"score"`
	JobYears    int  `json:"job_years"`
	ResumeYears int  `json:"resume_years"`
	Match       bool `json:"match"`
}

type EducationScore struct {
	Score           int      `json:"score"`
	JobEducation    []string `json:"job_education"`
	ResumeEducation []string `json:"resume_education"`
	Match           bool     `json:"match"`
}

type ActionVerbScore struct {
	Score      int      `json:"score"`
	FoundVerbs []string `json:"found_verbs"`
	Count      int      `json:"count"`
}

// Result aggregates every category score, the overall 0-100 score, the
// matched/missing keyword partition, suggestions and qualitative analysis.
type Result struct {
	OverallScore    int               `json:"overall_score"`
	Keyword         MatchScore        `json:"keyword_score"`
	Technical       MatchScore        `json:"technical_score"`
	SoftSkills      MatchScore        `json:"soft_skills_score"`
	Experience      ExperienceScore   `json:"experience_score"`
	Education       EducationScore    `json:"education_score"`
	ActionVerbs     ActionVerbScore   `json:"action_verbs_score"`
	MatchedKeywords []string          `json:"matched_keywords"`
	MissingKeywords []string          `json:"missing_keywords"`
	Suggestions     []string          `json:"suggestions"`
	Analysis        map[string]string `json:"analysis"`
}

// Score computes the full ATS compatibility result for a resume and a job
// description. It is total over its inputs: empty strings yield a well-formed
// degraded result, never an error.
func (e *Engine) Score(resumeText, jobDescription string) *Result {
	jobKeywords := e.ExtractJobKeywords(jobDescription)
	resumeKeywords := e.ExtractResumeKeywords(resumeText)

	keywordScore := matchKeywords(jobKeywords, resumeKeywords)
	technicalScore := e.matchVocabulary(resumeText, jobDescription, e.vocab.TechnicalSkills)
	softSkillsScore := e.matchVocabulary(resumeText, jobDescription, e.vocab.SoftSkills)
	experienceScore := scoreExperience(resumeText, jobDescription)
	educationScore := scoreEducation(resumeText, jobDescription)
	actionVerbScore := e.scoreActionVerbs(resumeText)

	overall := overallScore(keywordScore, technicalScore, softSkillsScore,
		experienceScore, educationScore, actionVerbScore)

	matched, missing := partitionKeywords(jobKeywords, resumeKeywords)

	return &Result{
		OverallScore:    overall,
		Keyword:         keywordScore,
		Technical:       technicalScore,
		SoftSkills:      softSkillsScore,
		Experience:      experienceScore,
		Education:       educationScore,
		ActionVerbs:     actionVerbScore,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     e.Suggestions(overall, missing, resumeText),
		Analysis:        analyze(overall, keywordScore.Percentage, technicalScore.Percentage),
	}
}

// matchKeywords intersects the two keyword sets. An empty job set scores zero
// across the board rather than dividing by zero.
func matchKeywords(jobKeywords, resumeKeywords []string) MatchScore {
	if len(jobKeywords) == 0 {
		return MatchScore{Matched: []string{}}
	}

	resumeSet := toSet(resumeKeywords)
	matched := []string{}
	for _, kw := range jobKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		}
	}

	total := len(jobKeywords)
	return MatchScore{
		Score:      len(matched),
		Matched:    matched,
		Total:      total,
		Percentage: round2(float64(len(matched)) / float64(total) * 100),
	}
}

// matchVocabulary restricts both texts to one vocabulary list before
// intersecting, preserving list order in the matched output.
func (e *Engine) matchVocabulary(resumeText, jobDescription string, list []string) MatchScore {
	jobHits := hits(strings.ToLower(jobDescription), list)
	if len(jobHits) == 0 {
		return MatchScore{Matched: []string{}}
	}

	resumeSet := toSet(hits(strings.ToLower(resumeText), list))
	matched := []string{}
	for _, skill := range jobHits {
		if _, ok := resumeSet[skill]; ok {
			matched = append(matched, skill)
		}
	}

	total := len(jobHits)
	return MatchScore{
		Score:      len(matched),
		Matched:    matched,
		Total:      total,
		Percentage: round2(float64(len(matched)) / float64(total) * 100),
	}
}

func scoreExperience(resumeText, jobDescription string) ExperienceScore {
	jobYears := extractYears(jobDescription)
	resumeYears := extractYears(resumeText)

	// No stated requirement reads as a neutral pass.
	if jobYears == 0 {
		return ExperienceScore{Score: 50, JobYears: 0, ResumeYears: resumeYears, Match: true}
	}

	var score int
	switch {
	case resumeYears >= jobYears:
		score = 100
	case float64(resumeYears) >= float64(jobYears)*0.8:
		score = 80
	case float64(resumeYears) >= float64(jobYears)*0.6:
		score = 60
	default:
		score = 30
	}

	return ExperienceScore{
		Score:       score,
		JobYears:    jobYears,
		ResumeYears: resumeYears,
		Match:       resumeYears >= jobYears,
	}
}

func scoreEducation(resumeText, jobDescription string) EducationScore {
	jobEducation := extractEducation(jobDescription)
	resumeEducation := extractEducation(resumeText)

	if len(jobEducation) == 0 {
		return EducationScore{Score: 50, JobEducation: []string{}, ResumeEducation: resumeEducation, Match: true}
	}

	resumeSet := toSet(resumeEducation)
	match := false
	for _, edu := range jobEducation {
		if _, ok := resumeSet[edu]; ok {
			match = true
			break
		}
	}

	score := 30
	if match {
		score = 100
	}

	return EducationScore{
		Score:           score,
		JobEducation:    jobEducation,
		ResumeEducation: resumeEducation,
		Match:           match,
	}
}

// scoreActionVerbs awards 10 points per distinct action verb found in the
// resume, capped at 100. It has no job-description dependency.
func (e *Engine) scoreActionVerbs(resumeText string) ActionVerbScore {
	found := hits(strings.ToLower(resumeText), e.vocab.ActionVerbs)
	score := len(found) * 10
	if score > 100 {
		score = 100
	}
	return ActionVerbScore{Score: score, FoundVerbs: found, Count: len(found)}
}

// overallScore blends the categories with fixed weights. The intersection
// categories contribute their percentage, not the raw matched count; the two
// live on different scales and mixing them would silently skew the blend.
func overallScore(keyword, technical, softSkills MatchScore,
	experience ExperienceScore, education EducationScore, actionVerbs ActionVerbScore) int {

	sum := keyword.Percentage*weightKeyword +
		technical.Percentage*weightTechnical +
		softSkills.Percentage*weightSoftSkills +
		float64(experience.Score)*weightExperience +
		float64(education.Score)*weightEducation +
		float64(actionVerbs.Score)*weightActionVerbs

	return clamp(int(math.Round(sum)), 0, 100)
}

// partitionKeywords splits the job keyword set into the terms present in the
// resume set and the rest. The two halves never overlap and always union back
// to the full job set.
func partitionKeywords(jobKeywords, resumeKeywords []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	resumeSet := toSet(resumeKeywords)
	for _, kw := range jobKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
