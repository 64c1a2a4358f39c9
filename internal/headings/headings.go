// Package headings recognizes resume section heading lines.
package headings

import (
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

const (
	// maxHeadingWords is the longest line, in words, treated as a heading candidate
	maxHeadingWords = 5
	// maxHeadingChars is the longest line, in bytes, treated as a heading candidate
	maxHeadingChars = 40
)

// Heading is a recognized heading line
type Heading struct {
	Line      int               // Zero-based line index in the source text
	Text      string            // Heading text as written, decorations removed
	Section   types.SectionType // Section the heading introduces, empty for sections outside SectionType
	Canonical string            // Conventional heading for the section
	Standard  bool              // False when the heading is a known non-standard alias
}

type entry struct {
	section   types.SectionType
	canonical string
}

// standardHeadings are conventional North American resume headings
var standardHeadings = map[string]entry{
	"summary":                     {types.SectionSummary, "Summary"},
	"professional summary":        {types.SectionSummary, "Summary"},
	"profile":                     {types.SectionSummary, "Summary"},
	"professional profile":        {types.SectionSummary, "Summary"},
	"objective":                   {types.SectionSummary, "Summary"},
	"career objective":            {types.SectionSummary, "Summary"},
	"skills":                      {types.SectionSkills, "Skills"},
	"technical skills":            {types.SectionSkills, "Skills"},
	"core competencies":           {types.SectionSkills, "Skills"},
	"skills and abilities":        {types.SectionSkills, "Skills"},
	"skills & abilities":          {types.SectionSkills, "Skills"},
	"experience":                  {types.SectionExperience, "Experience"},
	"work experience":             {types.SectionExperience, "Experience"},
	"professional experience":     {types.SectionExperience, "Experience"},
	"relevant experience":         {types.SectionExperience, "Experience"},
	"employment history":          {types.SectionExperience, "Experience"},
	"work history":                {types.SectionExperience, "Experience"},
	"education":                   {types.SectionEducation, "Education"},
	"academic background":         {types.SectionEducation, "Education"},
	"education and training":      {types.SectionEducation, "Education"},
	"projects":                    {types.SectionProjects, "Project Experience"},
	"project experience":          {types.SectionProjects, "Project Experience"},
	"personal projects":           {types.SectionProjects, "Project Experience"},
	"academic projects":           {types.SectionProjects, "Project Experience"},
	"technical projects":          {types.SectionProjects, "Project Experience"},
	"certifications":              {"", "Certifications"},
	"licenses and certifications": {"", "Certifications"},
	"awards":                      {"", "Awards"},
	"honors and awards":           {"", "Awards"},
	"volunteer experience":        {"", "Volunteer Experience"},
	"volunteering":                {"", "Volunteer Experience"},
	"leadership":                  {"", "Leadership"},
	"activities":                  {"", "Activities"},
	"extracurricular activities":  {"", "Activities"},
	"publications":                {"", "Publications"},
	"interests":                   {"", "Interests"},
	"languages":                   {"", "Languages"},
}

// aliasHeadings are informal headings that ATS parsers commonly fail to map
var aliasHeadings = map[string]entry{
	"my journey":        {types.SectionExperience, "Experience"},
	"where i've worked": {types.SectionExperience, "Experience"},
	"where ive worked":  {types.SectionExperience, "Experience"},
	"my work":           {types.SectionExperience, "Experience"},
	"career story":      {types.SectionExperience, "Experience"},
	"what i've done":    {types.SectionExperience, "Experience"},
	"what i know":       {types.SectionSkills, "Skills"},
	"my toolbox":        {types.SectionSkills, "Skills"},
	"toolbox":           {types.SectionSkills, "Skills"},
	"superpowers":       {types.SectionSkills, "Skills"},
	"my superpowers":    {types.SectionSkills, "Skills"},
	"what i bring":      {types.SectionSkills, "Skills"},
	"about me":          {types.SectionSummary, "Summary"},
	"who i am":          {types.SectionSummary, "Summary"},
	"my story":          {types.SectionSummary, "Summary"},
	"things i've built": {types.SectionProjects, "Project Experience"},
	"stuff i've built":  {types.SectionProjects, "Project Experience"},
	"side hustles":      {types.SectionProjects, "Project Experience"},
	"where i studied":   {types.SectionEducation, "Education"},
	"my learning":       {types.SectionEducation, "Education"},
	"schooling":         {types.SectionEducation, "Education"},
}

// Candidate normalizes a line that could be a heading.
// It strips markdown and underline decoration and a trailing colon, and rejects
// lines that read like prose: too long, too many words, or ending in a period.
func Candidate(line string) (string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#")
	s = strings.Trim(s, "*_=~ \t")
	s = strings.TrimSuffix(s, ":")
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxHeadingChars {
		return "", false
	}
	if strings.HasSuffix(s, ".") || strings.ContainsAny(s, ",;!?") {
		return "", false
	}
	words := strings.Fields(s)
	if len(words) > maxHeadingWords {
		return "", false
	}
	return strings.Join(words, " "), true
}

// normalizeKey lowercases and straightens curly apostrophes
func normalizeKey(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	return strings.ToLower(s)
}

// Classify recognizes a single line as a standard heading or a known alias
func Classify(line string) (Heading, bool) {
	cand, ok := Candidate(line)
	if !ok {
		return Heading{}, false
	}
	key := normalizeKey(cand)
	if e, ok := standardHeadings[key]; ok {
		return Heading{Text: cand, Section: e.section, Canonical: e.canonical, Standard: true}, true
	}
	if e, ok := aliasHeadings[key]; ok {
		return Heading{Text: cand, Section: e.section, Canonical: e.canonical, Standard: false}, true
	}
	return Heading{}, false
}

// Scan returns every heading line in text in source order
func Scan(text string) []Heading {
	var found []Heading
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		h, ok := Classify(line)
		if !ok {
			continue
		}
		h.Line = i
		found = append(found, h)
	}
	return found
}
