package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezoomai/resume-optimizer/internal/models"
)

func TestPrepareTemplateData_Defaults(t *testing.T) {
	td := prepareTemplateData(&models.ResumeData{}, false)

	assert.Equal(t, "Your Name", td.Name)
	assert.Equal(t, "Professional Title", td.Title)
	assert.Equal(t, "your.email@example.com", td.Email)
	assert.Equal(t, "(555) 123-4567", td.Phone)
	assert.Equal(t, "City, State", td.Location)
	assert.Empty(t, td.Watermark)
	assert.NotEmpty(t, td.GeneratedDate)
}

func TestPrepareTemplateData_Watermark(t *testing.T) {
	td := prepareTemplateData(&models.ResumeData{Name: "Jane Smith"}, true)

	assert.Equal(t, "Jane Smith", td.Name)
	assert.Equal(t, "Generated with Rezoom.ai", td.Watermark)
}

func TestPrepareTemplateData_EscapesFields(t *testing.T) {
	td := prepareTemplateData(&models.ResumeData{
		Name:    "Smith & Jones",
		Summary: "Grew revenue by 40% at C#_shop",
		Skills:  []string{"C++", "R&D"},
	}, false)

	assert.Equal(t, `Smith \& Jones`, td.Name)
	assert.Equal(t, `Grew revenue by 40\% at C\#\_shop`, td.Summary)
	assert.Equal(t, []string{"C++", `R\&D`}, td.Skills)
}

func TestPrepareTemplateData_CapsSkillsAtTwenty(t *testing.T) {
	skills := make([]string, 25)
	for i := range skills {
		skills[i] = "skill"
	}

	td := prepareTemplateData(&models.ResumeData{Skills: skills}, false)

	assert.Len(t, td.Skills, 20)
}

func TestPrepareTemplateData_SkipsBlankSkills(t *testing.T) {
	td := prepareTemplateData(&models.ResumeData{
		Skills: []string{"Python", "  ", "", " Docker "},
	}, false)

	assert.Equal(t, []string{"Python", "Docker"}, td.Skills)
}

func TestRender_WritesDefaultTemplate(t *testing.T) {
	dir := t.TempDir()
	s := &pdfRendererService{templateDir: dir}

	out, err := s.render(&models.ResumeData{
		Name:    "Jane Smith",
		Title:   "Backend Engineer",
		Summary: "Led platform teams.",
		Experience: []models.ExperienceEntry{
			{Title: "Engineer", Company: "Acme & Co", Years: "2019-2024", Description: "Built services."},
		},
		Skills:    []string{"Python", "AWS"},
		Education: "BSc Computer Science",
	}, true)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "modern.tex"))
	assert.NoError(t, statErr, "default template should be created on first use")

	assert.Contains(t, out, `\textcolor{primary}{Jane Smith}`)
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Led platform teams.")
	assert.Contains(t, out, `Acme \& Co`)
	assert.Contains(t, out, `\resumeitem{Python}`)
	assert.Contains(t, out, "BSc Computer Science")
	assert.Contains(t, out, "Generated with Rezoom.ai")
}

func TestRender_OmitsEmptySections(t *testing.T) {
	s := &pdfRendererService{templateDir: t.TempDir()}

	out, err := s.render(&models.ResumeData{Name: "Jane Smith"}, false)
	require.NoError(t, err)

	assert.NotContains(t, out, `\section{Professional Summary}`)
	assert.NotContains(t, out, `\section{Professional Experience}`)
	assert.NotContains(t, out, `\section{Key Skills}`)
	assert.NotContains(t, out, `\section{Education}`)
	assert.NotContains(t, out, "Generated with Rezoom.ai")
}

func TestLoadTemplate_ReusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := `\documentclass{article}\begin{document}<< .Name >>\end{document}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modern.tex"), []byte(custom), 0644))

	s := &pdfRendererService{templateDir: dir}
	out, err := s.render(&models.ResumeData{Name: "Jane Smith"}, false)
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Smith")
	assert.NotContains(t, out, `\section`)
}

func TestLastLines(t *testing.T) {
	assert.Equal(t, "c\nd", lastLines("a\nb\nc\nd", 2))
	assert.Equal(t, "a\nb", lastLines("a\nb", 5))
}

func TestCleanupLatexFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "resume")
	for _, ext := range []string{".tex", ".aux", ".log"} {
		require.NoError(t, os.WriteFile(base+ext, []byte("x"), 0644))
	}
	pdf := base + ".pdf"
	require.NoError(t, os.WriteFile(pdf, []byte("x"), 0644))

	cleanupLatexFiles(base + ".tex")

	for _, ext := range []string{".tex", ".aux", ".log"} {
		_, err := os.Stat(base + ext)
		assert.True(t, os.IsNotExist(err), "expected %s removed", ext)
	}
	_, err := os.Stat(pdf)
	assert.NoError(t, err, "pdf must survive cleanup")
}
