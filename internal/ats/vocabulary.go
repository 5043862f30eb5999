package ats

// Vocabulary holds the fixed phrase lists the matcher recognizes. All entries
// are lowercase; matching is done by substring test against lowercased input.
// A Vocabulary is never mutated after construction, so a single instance is
// safe to share across concurrent scoring calls.
type Vocabulary struct {
	TechnicalSkills []string
	SoftSkills      []string
	ActionVerbs     []string
}

// DefaultVocabulary returns the built-in vocabulary used across the service.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TechnicalSkills: []string{
			"javascript", "python", "java", "react", "node.js", "sql", "aws", "docker",
			"kubernetes", "git", "agile", "scrum", "machine learning", "data analysis",
			"html", "css", "typescript", "angular", "vue", "mongodb", "postgresql",
			"redis", "elasticsearch", "kafka", "microservices", "api", "rest", "graphql",
			"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "jupyter",
			"jenkins", "terraform", "ansible", "linux", "bash", "powershell",
			"tableau", "power bi", "excel", "vba", "matlab", "spark", "hadoop",
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "problem solving", "project management",
			"collaboration", "time management", "adaptability", "creativity", "analytical",
			"critical thinking", "attention to detail", "multitasking", "mentoring",
			"negotiation", "presentation", "writing", "research", "organization",
			"customer service", "sales", "marketing", "strategy", "innovation",
		},
		ActionVerbs: []string{
			"led", "developed", "implemented", "increased", "improved", "managed", "created",
			"designed", "built", "launched", "optimized", "streamlined", "coordinated",
			"supervised", "trained", "mentored", "collaborated", "delivered", "achieved",
			"accomplished", "executed", "facilitated", "initiated", "organized", "planned",
		},
	}
}

// hits returns the phrases from list found as substrings of loweredText,
// preserving list order.
func hits(loweredText string, list []string) []string {
	found := []string{}
	for _, phrase := range list {
		if containsPhrase(loweredText, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}
