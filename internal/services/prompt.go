package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

var toneInstructions = map[string]string{
	"professional": "Use a formal, corporate tone with traditional business language and focus on achievements and responsibilities.",
	"tech":         "Use modern, technical language with industry-specific terminology, focus on technical achievements, and emphasize innovation and problem-solving.",
	"creative":     "Use innovative, dynamic language that showcases creativity, forward-thinking approach, and artistic sensibility while maintaining professionalism.",
}

// BuildOptimizationPrompt creates the prompt for resume optimization
func (pb *PromptBuilder) BuildOptimizationPrompt(resumeText, jobDescription, tone string) string {
	toneInstruction, ok := toneInstructions[tone]
	if !ok {
		toneInstruction = toneInstructions["professional"]
	}

	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) resume optimizer and career coach with 10+ years of experience helping professionals land their dream jobs.

TASK: Rewrite and optimize the following resume to maximize ATS compatibility and job match for the specific role.

TONE REQUIREMENT: %s

JOB DESCRIPTION:
%s

ORIGINAL RESUME:
%s

OPTIMIZATION REQUIREMENTS:
1. Use keywords from the job description naturally throughout the resume
2. Quantify achievements with specific numbers, percentages, and metrics
3. Use strong action verbs (Led, Developed, Implemented, Increased, etc.)
4. Ensure ATS-friendly formatting (no tables, simple layout)
5. Match the tone specified: %s
6. Keep content truthful but enhance impact and relevance
7. Focus on experience most relevant to this specific role
8. Include a compelling professional summary
9. Organize sections logically: Contact, Summary, Experience, Skills, Education
10. Remove any irrelevant information that doesn't support the target role

OUTPUT FORMAT:
Provide the optimized resume in the following structure:

**CONTACT INFORMATION**
[Name, Email, Phone, Location, LinkedIn (if available)]

**PROFESSIONAL SUMMARY**
[2-3 sentences highlighting key qualifications and value proposition for this specific role]

**PROFESSIONAL EXPERIENCE**
[Each role with: Job Title, Company, Dates, 3-4 bullet points with quantified achievements]

**KEY SKILLS**
[Relevant technical and soft skills from job description, organized by category]

**EDUCATION**
[Degree, Institution, Year, relevant coursework or achievements if applicable]

**ADDITIONAL SECTIONS** (if relevant)
[Certifications, Projects, Languages, etc. - only if they support the target role]

IMPORTANT GUIDELINES:
- Make sure the resume is ATS-optimized with relevant keywords
- Quantify achievements with specific metrics and numbers
- Tailor content specifically to the job description
- Use professional, compelling language
- Ensure the resume is ready for immediate use
- Focus on results and impact, not just responsibilities
- Use industry-standard terminology from the job description

Generate the complete optimized resume now:`,
		toneInstruction, jobDescription, resumeText, tone)
}
