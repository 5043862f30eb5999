package ats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// Runs of capitalized words in the original-case text. Deliberately noisy:
	// it trades precision for recall so company and product names outside the
	// vocabulary still count as keywords.
	titleCaseRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	yearsRe = regexp.MustCompile(`(\d+)\+?\s*years?`)
)

func containsPhrase(loweredText, phrase string) bool {
	return strings.Contains(loweredText, phrase)
}

// ExtractJobKeywords extracts the keyword set of a job description: vocabulary
// skill hits, title-case token runs, and experience-level signal tokens.
// The result is deduplicated and sorted.
func (e *Engine) ExtractJobKeywords(jobDescription string) []string {
	if jobDescription == "" {
		return []string{}
	}

	jobLower := strings.ToLower(jobDescription)

	keywords := map[string]struct{}{}
	for _, kw := range hits(jobLower, e.vocab.TechnicalSkills) {
		keywords[kw] = struct{}{}
	}
	for _, kw := range hits(jobLower, e.vocab.SoftSkills) {
		keywords[kw] = struct{}{}
	}
	addTitleCaseTokens(keywords, jobDescription)

	if yearsRe.MatchString(jobLower) {
		keywords["years experience"] = struct{}{}
	}
	for _, level := range []string{"senior", "junior", "lead"} {
		if strings.Contains(jobLower, level) {
			keywords[level] = struct{}{}
		}
	}

	return sortedKeys(keywords)
}

// ExtractResumeKeywords extracts the keyword set of a resume: vocabulary skill
// hits, action verbs, and title-case token runs. Deduplicated and sorted.
func (e *Engine) ExtractResumeKeywords(resumeText string) []string {
	if resumeText == "" {
		return []string{}
	}

	resumeLower := strings.ToLower(resumeText)

	keywords := map[string]struct{}{}
	for _, kw := range hits(resumeLower, e.vocab.TechnicalSkills) {
		keywords[kw] = struct{}{}
	}
	for _, kw := range hits(resumeLower, e.vocab.SoftSkills) {
		keywords[kw] = struct{}{}
	}
	for _, kw := range hits(resumeLower, e.vocab.ActionVerbs) {
		keywords[kw] = struct{}{}
	}
	addTitleCaseTokens(keywords, resumeText)

	return sortedKeys(keywords)
}

func addTitleCaseTokens(keywords map[string]struct{}, originalText string) {
	for _, match := range titleCaseRe.FindAllString(originalText, -1) {
		if len(match) > 2 {
			keywords[strings.ToLower(match)] = struct{}{}
		}
	}
}

// SkillHits returns the technical and soft skill vocabulary phrases present
// in text, in vocabulary order.
func (e *Engine) SkillHits(text string) []string {
	lowered := strings.ToLower(text)
	found := hits(lowered, e.vocab.TechnicalSkills)
	return append(found, hits(lowered, e.vocab.SoftSkills)...)
}

// ActionVerbCount returns the number of distinct action verbs present in text.
func (e *Engine) ActionVerbCount(text string) int {
	return len(hits(strings.ToLower(text), e.vocab.ActionVerbs))
}

// extractYears returns the largest year count matched by the experience
// pattern, or 0 when nothing matches. Taking the maximum over all matches can
// pick up incidental numbers; that behavior is kept for score stability.
func extractYears(text string) int {
	if text == "" {
		return 0
	}

	maxYears := 0
	for _, m := range yearsRe.FindAllStringSubmatch(strings.ToLower(text), -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs too long for an int are not a year count.
			continue
		}
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}

// extractEducation derives the qualification list of a text. The substring
// checks are independent; a text may satisfy several.
func extractEducation(text string) []string {
	education := []string{}
	textLower := strings.ToLower(text)

	if strings.Contains(textLower, "bachelor") {
		education = append(education, "Bachelor's Degree")
	}
	if strings.Contains(textLower, "master") {
		education = append(education, "Master's Degree")
	}
	if strings.Contains(textLower, "phd") || strings.Contains(textLower, "doctorate") {
		education = append(education, "PhD")
	}
	if strings.Contains(textLower, "certification") || strings.Contains(textLower, "certified") {
		education = append(education, "Certification")
	}

	return education
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
