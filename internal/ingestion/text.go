// Package ingestion normalizes pasted resume and job description text before analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{2007}\x{202F}]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
	invisible    = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "", "\u00ad", "")
)

// CleanText normalizes line endings and whitespace while keeping line structure.
// Headings and bullet markers are kept; runs of blank lines collapse to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = invisible.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace. Bullet lines keep up to one level of indentation.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	if trimmed == "" {
		return ""
	}
	if isBulletLine(trimmed) && strings.HasPrefix(line, "  ") {
		return "  " + trimmed
	}
	return trimmed
}

// isBulletLine checks if a line starts with a list marker
func isBulletLine(line string) bool {
	for _, marker := range []string{"- ", "* ", "• ", "· ", "▪ ", "● ", "◦ "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// Ingest cleans a job description, converting HTML to text first when it looks like markup
func Ingest(content, source string) (string, *Metadata, error) {
	return ingest(content, source, HTMLToText)
}

// IngestResume cleans resume text. HTML keeps its header and footer blocks.
func IngestResume(content, source string) (string, *Metadata, error) {
	return ingest(content, source, ResumeHTMLToText)
}

// IngestFromFile reads a job description text or HTML file and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	return ingestFile(path, HTMLToText)
}

// IngestResumeFromFile reads a resume text or HTML file and returns cleaned text with metadata
func IngestResumeFromFile(path string) (string, *Metadata, error) {
	return ingestFile(path, ResumeHTMLToText)
}

func ingest(content, source string, toText func(string) (string, error)) (string, *Metadata, error) {
	format := FormatText
	if LooksLikeHTML(content) {
		text, err := toText(content)
		if err != nil {
			return "", nil, err
		}
		content = text
		format = FormatHTML
	}

	cleaned := CleanText(content)
	return cleaned, NewMetadata(cleaned, source, format), nil
}

func ingestFile(path string, toText func(string) (string, error)) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := toText(string(content))
		if err != nil {
			return "", nil, err
		}
		cleaned := CleanText(text)
		return cleaned, NewMetadata(cleaned, path, FormatHTML), nil
	default:
		return ingest(string(content), path, toText)
	}
}
