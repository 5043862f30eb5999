package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	got := CleanText("hello    world\t\ttabs")
	assert.Equal(t, "hello world tabs", got)
}

func TestCleanText_DropsBlankLines(t *testing.T) {
	got := CleanText("first\n\n\n   \nsecond")
	assert.Equal(t, "first\nsecond", got)
}

func TestCleanText_UnifiesBullets(t *testing.T) {
	got := CleanText("· one\n▪ two\n‣ three")
	assert.Equal(t, "• one\n• two\n• three", got)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	p := NewDocumentParserService()

	_, err := p.ExtractText([]byte("data"), ".txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestStructureResume_ContactFields(t *testing.T) {
	p := NewDocumentParserService()
	text := "Jane Smith\njane.smith@example.com\n(555) 123-4567"

	cv := p.StructureResume(text)

	assert.Equal(t, "Jane Smith", cv.Name)
	assert.Equal(t, "jane.smith@example.com", cv.Email)
	assert.Equal(t, "(555) 123-4567", cv.Phone)
}

func TestStructureResume_Sections(t *testing.T) {
	p := NewDocumentParserService()
	text := "Jane Smith\n" +
		"Professional Summary\n" +
		"Backend developer focused on reliability.\n" +
		"Skills\n" +
		"Go, PostgreSQL\n" +
		"Education\n" +
		"BSc Computer Science"

	cv := p.StructureResume(text)

	assert.Equal(t, "Backend developer focused on reliability.", cv.Sections["summary"])
	assert.Equal(t, "Go, PostgreSQL", cv.Sections["skills"])
	assert.Equal(t, "BSc Computer Science", cv.Sections["education"])
}

func TestStructureResume_AmbiguousHeaderIsDeterministic(t *testing.T) {
	p := NewDocumentParserService()
	text := "Jane Smith\n" +
		"Education and Skills\n" +
		"Go, PostgreSQL, Docker"

	// "Education and Skills" matches two header keyword lists; the
	// first-listed section must win on every call.
	for i := 0; i < 100; i++ {
		cv := p.StructureResume(text)
		require.Equal(t, "Go, PostgreSQL, Docker", cv.Sections["education"])
		require.NotContains(t, cv.Sections, "skills")
	}
}

func TestStructureResume_NameOnlyFromShortLeadingLine(t *testing.T) {
	p := NewDocumentParserService()
	text := "A very long introduction line that is clearly not a name\nJane Smith"

	cv := p.StructureResume(text)

	assert.Equal(t, "Jane Smith", cv.Name)
}

func TestStructureJob_TitleFromLeadingLines(t *testing.T) {
	p := NewDocumentParserService()
	text := "Senior Backend Engineer\nWe build payment infrastructure."

	job := p.StructureJob(text)

	assert.Equal(t, "Senior Backend Engineer", job.Title)
}

func TestStructureJob_SkillsAndLevel(t *testing.T) {
	p := NewDocumentParserService()
	text := "Backend Developer\nMust know Python and AWS. 5+ years required."

	job := p.StructureJob(text)

	assert.Contains(t, job.Skills, "Python")
	assert.Contains(t, job.Skills, "Aws")
	assert.Equal(t, "5+ years", job.ExperienceLevel)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Python", titleCase("python"))
	assert.Equal(t, "Apache Airflow", titleCase("apache airflow"))
}

func TestStructureJob_NoTitleMatch(t *testing.T) {
	p := NewDocumentParserService()

	job := p.StructureJob("Join our marketing team")

	assert.Equal(t, "", job.Title)
	assert.Equal(t, []string{}, job.Skills)
}
