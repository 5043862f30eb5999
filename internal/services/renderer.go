package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"rezoomai/resume-optimizer/internal/models"
)

// PDFRendererService renders structured resume data through a LaTeX template
// and compiles it to PDF with pdflatex.
type PDFRendererService interface {
	RenderPDF(ctx context.Context, data *models.ResumeData, includeWatermark bool, outputPath string) error
}

type pdfRendererService struct {
	templateDir string
}

func NewPDFRendererService(templateDir string) PDFRendererService {
	return &pdfRendererService{templateDir: templateDir}
}

// templateData is the payload executed against the LaTeX template. All string
// fields are already LaTeX-escaped.
type templateData struct {
	Name          string
	Title         string
	Email         string
	Phone         string
	Location      string
	Summary       string
	Experience    []experienceEntry
	Skills        []string
	Education     string
	Watermark     string
	GeneratedDate string
}

type experienceEntry struct {
	Title       string
	Company     string
	Years       string
	Description string
}

// RenderPDF implements PDFRendererService.
func (s *pdfRendererService) RenderPDF(ctx context.Context, data *models.ResumeData, includeWatermark bool, outputPath string) error {
	latexContent, err := s.render(data, includeWatermark)
	if err != nil {
		return err
	}

	texFile := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".tex"
	if err := os.WriteFile(texFile, []byte(latexContent), 0644); err != nil {
		return fmt.Errorf("failed to write latex file: %w", err)
	}
	defer cleanupLatexFiles(texFile)

	if err := compileLatex(ctx, texFile, outputPath); err != nil {
		return err
	}

	return nil
}

func (s *pdfRendererService) render(data *models.ResumeData, includeWatermark bool) (string, error) {
	tmpl, err := s.loadTemplate("modern.tex")
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, prepareTemplateData(data, includeWatermark)); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return out.String(), nil
}

func (s *pdfRendererService) loadTemplate(name string) (*template.Template, error) {
	path := filepath.Join(s.templateDir, name)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(s.templateDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create template dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default template: %w", err)
		}
		log.Printf("📄 Created default resume template at %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	// LaTeX braces collide with the default {{ }} delimiters.
	tmpl, err := template.New(name).Delims("<<", ">>").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return tmpl, nil
}

func prepareTemplateData(data *models.ResumeData, includeWatermark bool) *templateData {
	td := &templateData{
		Name:          orDefault(EscapeLaTeX(data.Name), "Your Name"),
		Title:         orDefault(EscapeLaTeX(data.Title), "Professional Title"),
		Email:         orDefault(EscapeLaTeX(data.Email), "your.email@example.com"),
		Phone:         orDefault(EscapeLaTeX(data.Phone), "(555) 123-4567"),
		Location:      orDefault(EscapeLaTeX(data.Location), "City, State"),
		Summary:       EscapeLaTeX(data.Summary),
		Education:     EscapeLaTeX(data.Education),
		GeneratedDate: time.Now().Format("January 2006"),
	}

	for _, job := range data.Experience {
		td.Experience = append(td.Experience, experienceEntry{
			Title:       EscapeLaTeX(job.Title),
			Company:     EscapeLaTeX(job.Company),
			Years:       EscapeLaTeX(job.Years),
			Description: EscapeLaTeX(strings.TrimSpace(job.Description)),
		})
	}

	skills := data.Skills
	if len(skills) > 20 {
		skills = skills[:20]
	}
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		td.Skills = append(td.Skills, EscapeLaTeX(strings.TrimSpace(skill)))
	}

	if includeWatermark {
		td.Watermark = "Generated with Rezoom.ai"
	}

	return td
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func compileLatex(ctx context.Context, texFile, outputFile string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	outputDir := filepath.Dir(texFile)

	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode",
		"-output-directory="+outputDir,
		texFile,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("latex compilation timed out")
		}
		if strings.Contains(err.Error(), "executable file not found") {
			return fmt.Errorf("pdflatex not found, please install a LaTeX distribution")
		}
		return fmt.Errorf("latex compilation failed: %s", lastLines(string(output), 5))
	}

	compiledPDF := strings.TrimSuffix(texFile, ".tex") + ".pdf"
	if compiledPDF != outputFile {
		if err := os.Rename(compiledPDF, outputFile); err != nil {
			return fmt.Errorf("failed to move generated pdf: %w", err)
		}
	}

	if _, err := os.Stat(outputFile); err != nil {
		return fmt.Errorf("pdf file not generated")
	}

	return nil
}

func cleanupLatexFiles(texFile string) {
	base := strings.TrimSuffix(texFile, ".tex")
	for _, ext := range []string{".tex", ".aux", ".log", ".out", ".toc", ".fls", ".synctex.gz"} {
		os.Remove(base + ext)
	}
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

const defaultTemplate = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=0.75in]{geometry}
\usepackage{enumitem}
\usepackage{hyperref}
\usepackage{xcolor}
\usepackage{titlesec}

% Custom colors
\definecolor{primary}{RGB}{0,119,255}
\definecolor{secondary}{RGB}{107,114,128}

% Remove page numbers
\pagestyle{empty}

% Custom section formatting
\titleformat{\section}{\large\bfseries\color{primary}}{}{0em}{}[\titlerule]
\titleformat{\subsection}{\normalsize\bfseries}{}{0em}{}

% Custom commands
\newcommand{\resumeitem}[1]{\item\small{#1}}
\newcommand{\resumesubheading}[4]{
  \vspace{-1pt}\item
    \begin{tabular*}{0.97\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & #2 \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-5pt}
}

\begin{document}

% Header
\begin{center}
    {\Huge \textbf{\textcolor{primary}{<< .Name >>}}} \\
    \vspace{2pt}
    {\large \textbf{<< .Title >>}} \\
    \vspace{4pt}
    << .Email >> $\bullet$ << .Phone >> $\bullet$ << .Location >>
\end{center}

<< if .Summary >>
% Professional Summary
\section{Professional Summary}
<< .Summary >>
<< end >>

<< if .Experience >>
% Experience
\section{Professional Experience}
\begin{itemize}[leftmargin=0.15in, label={}]
<< range .Experience >>
\resumesubheading
    {<< .Title >>}{<< .Years >>}
    {<< .Company >>}{<< .Description >>}
<< end >>
\end{itemize}
<< end >>

<< if .Skills >>
% Skills
\section{Key Skills}
\begin{itemize}[leftmargin=0.15in, label={}]
<< range .Skills >>
\resumeitem{<< . >>}
<< end >>
\end{itemize}
<< end >>

<< if .Education >>
% Education
\section{Education}
<< .Education >>
<< end >>

<< if .Watermark >>
% Watermark
\vfill
\begin{center}
\small \textcolor{secondary}{<< .Watermark >>}
\end{center}
<< end >>

\end{document}
`
