package ats

import (
	"fmt"
	"regexp"
	"strings"
)

var digitRe = regexp.MustCompile(`\d`)

// Suggestions derives the ordered improvement list for a scored resume. Each
// rule is checked independently; when none fires, a single generic suggestion
// is returned so callers always have something to show.
func (e *Engine) Suggestions(overallScore int, missingKeywords []string, resumeText string) []string {
	suggestions := []string{}

	if overallScore < 60 {
		suggestions = append(suggestions, "Add more relevant keywords from the job description")
	}

	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Consider adding these keywords: %s", strings.Join(top, ", ")))
	}

	if !digitRe.MatchString(resumeText) {
		suggestions = append(suggestions, "Add quantified achievements with specific numbers and metrics")
	}

	resumeLower := strings.ToLower(resumeText)
	if len(hits(resumeLower, e.vocab.ActionVerbs)) < 3 {
		suggestions = append(suggestions, "Use more strong action verbs to describe your achievements")
	}

	if !strings.Contains(resumeLower, "summary") &&
		!strings.Contains(resumeLower, "objective") &&
		!strings.Contains(resumeLower, "profile") {
		suggestions = append(suggestions, "Add a compelling professional summary section")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "General ATS optimization applied")
	}

	return suggestions
}

// analyze maps the overall score and the two headline percentages to
// qualitative labels.
func analyze(overallScore int, keywordPercentage, technicalPercentage float64) map[string]string {
	analysis := map[string]string{}

	switch {
	case overallScore >= 80:
		analysis["overall"] = "Excellent ATS compatibility"
	case overallScore >= 60:
		analysis["overall"] = "Good compatibility, minor improvements needed"
	case overallScore >= 40:
		analysis["overall"] = "Fair compatibility, significant improvements needed"
	default:
		analysis["overall"] = "Poor compatibility, major optimization required"
	}

	switch {
	case keywordPercentage >= 70:
		analysis["keywords"] = "Strong keyword match"
	case keywordPercentage >= 50:
		analysis["keywords"] = "Moderate keyword match"
	default:
		analysis["keywords"] = "Weak keyword match"
	}

	switch {
	case technicalPercentage >= 70:
		analysis["technical"] = "Strong technical skills match"
	case technicalPercentage >= 50:
		analysis["technical"] = "Moderate technical skills match"
	default:
		analysis["technical"] = "Weak technical skills match"
	}

	return analysis
}
