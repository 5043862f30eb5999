package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rezoomai/resume-optimizer/internal/models"
)

// titleCase capitalizes each word. cases.Caser carries state, so a fresh one
// is built per call rather than shared across goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// DocumentParserService extracts plain text and a structured outline from
// uploaded resume documents.
type DocumentParserService interface {
	ExtractText(content []byte, extension string) (string, error)
	StructureResume(text string) *models.StructuredCV
	StructureJob(text string) *models.StructuredJob
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	expLevelRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+\+?\s*years?`),
		regexp.MustCompile(`entry.level`),
		regexp.MustCompile(`senior`),
		regexp.MustCompile(`junior`),
		regexp.MustCompile(`mid.level`),
		regexp.MustCompile(`lead`),
	}
)

// sectionHeaders lists canonical section names with the header keywords that
// start them in a resume. Checked in order: when a line matches keywords from
// several sections, the first-listed section wins.
var sectionHeaders = []struct {
	name     string
	keywords []string
}{
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"experience", []string{"experience", "work history", "employment", "career"}},
	{"education", []string{"education", "academic", "qualifications"}},
	{"skills", []string{"skills", "technical skills", "competencies", "abilities"}},
}

// ExtractText implements DocumentParserService.
func (p *documentParserService) ExtractText(content []byte, extension string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(extension) {
	case ".pdf":
		text, err = extractPDF(content)
	case ".docx", ".doc":
		text, err = extractDOCX(content)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", extension)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in document")
	}
	return text, nil
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDOCX(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	// The library exposes the raw document XML; paragraph closers become
	// newlines before the remaining tags are stripped.
	raw := doc.Editable().GetContent()
	raw = strings.ReplaceAll(raw, "</w:p>", "\n")
	return xmlTagRe.ReplaceAllString(raw, ""), nil
}

// CleanText normalizes extracted text: collapses whitespace runs, drops blank
// lines and unifies bullet glyphs.
func CleanText(text string) string {
	text = strings.NewReplacer("·", "•", "▪", "•", "▫", "•", "‣", "•", "⁃", "•").Replace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// StructureResume implements DocumentParserService. It is heuristic by
// design: contact fields come from regex matches and sections from header
// keyword lines.
func (p *documentParserService) StructureResume(text string) *models.StructuredCV {
	structured := &models.StructuredCV{Sections: map[string]string{}}

	if m := emailRe.FindString(text); m != "" {
		structured.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		structured.Phone = m
	}

	var currentSection string
	var currentContent []string

	flush := func() {
		if currentSection != "" && len(currentContent) > 0 {
			structured.Sections[currentSection] = strings.Join(currentContent, "\n")
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if section, ok := matchSectionHeader(line); ok {
			flush()
			currentSection = section
			currentContent = nil
			continue
		}

		if currentSection != "" {
			currentContent = append(currentContent, line)
		} else if structured.Name == "" && len(strings.Fields(line)) <= 3 {
			// Short leading line before any section is most likely the name.
			structured.Name = line
		}
	}
	flush()

	return structured
}

func matchSectionHeader(line string) (string, bool) {
	lineLower := strings.ToLower(line)
	for _, section := range sectionHeaders {
		for _, keyword := range section.keywords {
			if strings.Contains(lineLower, keyword) {
				return section.name, true
			}
		}
	}
	return "", false
}

// StructureJob implements DocumentParserService.
func (p *documentParserService) StructureJob(text string) *models.StructuredJob {
	structured := &models.StructuredJob{Skills: []string{}}

	// Job title is usually one of the first lines.
	lines := strings.Split(text, "\n")
	titleWords := []string{"engineer", "developer", "manager", "analyst", "specialist"}
	for i, line := range lines {
		if i >= 5 {
			break
		}
		lineLower := strings.ToLower(line)
		for _, word := range titleWords {
			if strings.Contains(lineLower, word) {
				structured.Title = strings.TrimSpace(line)
				break
			}
		}
		if structured.Title != "" {
			break
		}
	}

	textLower := strings.ToLower(text)
	skillKeywords := []string{
		"javascript", "python", "java", "react", "node.js", "sql", "aws", "docker",
		"kubernetes", "git", "agile", "scrum", "leadership", "communication",
	}
	seen := map[string]bool{}
	for _, skill := range skillKeywords {
		if strings.Contains(textLower, skill) && !seen[skill] {
			seen[skill] = true
			structured.Skills = append(structured.Skills, titleCase(skill))
		}
	}

	for _, re := range expLevelRes {
		if m := re.FindString(textLower); m != "" {
			structured.ExperienceLevel = m
			break
		}
	}

	return structured
}
