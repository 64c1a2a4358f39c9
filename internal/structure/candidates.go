package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/headings"
	"github.com/lawrence-dass/coop-ready/internal/keywords"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// Rule IDs
const (
	RuleCoopExperienceBeforeEducation = "rule-coop-exp-before-edu"
	RuleCoopSkillsNotAtTop            = "rule-coop-no-skills-at-top"
	RuleCoopGenericSummary            = "rule-coop-generic-summary"
	RuleCoopProjectsHeading           = "rule-coop-projects-heading"
	RuleCareerChangerNoSummary        = "rule-career-changer-no-summary"
	RuleCareerChangerEducationLast    = "rule-career-changer-edu-after-exp"
	RuleFulltimeEducationBeforeWork   = "rule-fulltime-edu-before-exp"
	RuleNonStandardHeadingPrefix      = "rule-nonstandard-heading-"
)

const (
	projectsHeading = "Project Experience"
	// skillsTopPositions is how many leading sections count as "near the top"
	skillsTopPositions = 2
)

// fillerPhrases mark a summary as generic when none of its content is specific
// nonSlug matches runs of characters that cannot appear in an id fragment
var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

var fillerPhrases = []string{
	"hard-working", "hardworking", "hard worker", "team player", "motivated",
	"passionate", "results-driven", "self-starter", "go-getter", "detail-oriented",
	"fast learner", "quick learner", "seeking an opportunity", "looking for an opportunity",
}

var fillerPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(fillerPhrases))
	for _, p := range fillerPhrases {
		out = append(out, keywords.PhrasePattern(p))
	}
	return out
}()

func coopRules() []rule {
	return []rule{coopEducationFirst, coopSkillsAtTop, coopGenericSummary, coopProjectsHeading}
}

func careerChangerRules() []rule {
	return []rule{careerChangerSummary, careerChangerEducationLast}
}

func fulltimeRules() []rule {
	return []rule{fulltimeExperienceFirst}
}

func coopEducationFirst(r *resume) (types.StructuralSuggestion, bool) {
	if !r.before(types.SectionExperience, types.SectionEducation) {
		return types.StructuralSuggestion{}, false
	}
	return types.StructuralSuggestion{
		ID:                RuleCoopExperienceBeforeEducation,
		Category:          types.SuggestionSectionOrder,
		Priority:          types.PriorityHigh,
		Title:             "Move Education above Experience",
		Description:       "Co-op and internship recruiters screen on program, school and expected graduation first.",
		CurrentState:      describeOrder(r.order),
		RecommendedAction: "Place the Education section before Experience.",
	}, true
}

func coopSkillsAtTop(r *resume) (types.StructuralSuggestion, bool) {
	if len(r.order) == 0 {
		return types.StructuralSuggestion{}, false
	}
	pos := r.position(types.SectionSkills)
	if pos >= 0 && pos < skillsTopPositions {
		return types.StructuralSuggestion{}, false
	}

	current := "No Skills section found"
	if pos >= 0 {
		current = fmt.Sprintf("Skills is section %d of %d: %s", pos+1, len(r.order), describeOrder(r.order))
	}
	return types.StructuralSuggestion{
		ID:                RuleCoopSkillsNotAtTop,
		Category:          types.SuggestionSectionOrder,
		Priority:          types.PriorityCritical,
		Title:             "Put Skills near the top",
		Description:       "Students have limited work history, so recruiters and ATS filters look for a skills list right after the header.",
		CurrentState:      current,
		RecommendedAction: "Add a Skills section directly below your summary or contact details.",
	}, true
}

func coopGenericSummary(r *resume) (types.StructuralSuggestion, bool) {
	summary := strings.TrimSpace(r.in.ParsedResume.Summary)
	if summary == "" {
		return types.StructuralSuggestion{}, false
	}
	var found []string
	for _, re := range fillerPatterns {
		if text, ok := keywords.FindPhrase(re, summary); ok {
			found = append(found, text)
		}
	}
	if len(found) == 0 {
		return types.StructuralSuggestion{}, false
	}
	return types.StructuralSuggestion{
		ID:                RuleCoopGenericSummary,
		Category:          types.SuggestionSectionPresence,
		Priority:          types.PriorityHigh,
		Title:             "Replace the generic summary",
		Description:       "Filler phrases take space without telling a recruiter what you can do.",
		CurrentState:      "Summary uses: " + strings.Join(found, ", "),
		RecommendedAction: "Name your program, the role you want, and two or three concrete skills or projects instead.",
	}, true
}

func coopProjectsHeading(r *resume) (types.StructuralSuggestion, bool) {
	if strings.TrimSpace(r.in.RawResumeText) == "" {
		return types.StructuralSuggestion{}, false
	}
	if strings.TrimSpace(r.in.ParsedResume.Projects) == "" && r.position(types.SectionProjects) < 0 {
		return types.StructuralSuggestion{}, false
	}

	current := "No standalone projects heading found"
	for _, h := range r.headings {
		if h.Section != types.SectionProjects {
			continue
		}
		if strings.EqualFold(h.Text, projectsHeading) {
			return types.StructuralSuggestion{}, false
		}
		current = fmt.Sprintf("Heading reads %q", h.Text)
	}
	return types.StructuralSuggestion{
		ID:                RuleCoopProjectsHeading,
		Category:          types.SuggestionSectionHeading,
		Priority:          types.PriorityModerate,
		Title:             `Rename your projects heading to "Project Experience"`,
		Description:       "ATS parsers treat Project Experience as experience, which counts class and personal projects toward your work history.",
		CurrentState:      current,
		RecommendedAction: `Use "Project Experience" as the heading for your projects section.`,
	}, true
}

func careerChangerSummary(r *resume) (types.StructuralSuggestion, bool) {
	if strings.TrimSpace(r.in.ParsedResume.Summary) != "" || r.position(types.SectionSummary) >= 0 {
		return types.StructuralSuggestion{}, false
	}
	return types.StructuralSuggestion{
		ID:                RuleCareerChangerNoSummary,
		Category:          types.SuggestionSectionPresence,
		Priority:          types.PriorityCritical,
		Title:             "Add a summary that explains your transition",
		Description:       "Without a summary, recruiters see past job titles that do not match the role and stop reading.",
		CurrentState:      "No summary section",
		RecommendedAction: "Open with two or three sentences connecting your previous field to the target role.",
	}, true
}

func careerChangerEducationLast(r *resume) (types.StructuralSuggestion, bool) {
	if !r.before(types.SectionExperience, types.SectionEducation) {
		return types.StructuralSuggestion{}, false
	}
	return types.StructuralSuggestion{
		ID:                RuleCareerChangerEducationLast,
		Category:          types.SuggestionSectionOrder,
		Priority:          types.PriorityHigh,
		Title:             "Move recent education above experience",
		Description:       "Retraining is the strongest signal for a new field, so it should not sit below unrelated roles.",
		CurrentState:      describeOrder(r.order),
		RecommendedAction: "Place Education (bootcamps, certificates, degrees in the new field) before Experience.",
	}, true
}

func fulltimeExperienceFirst(r *resume) (types.StructuralSuggestion, bool) {
	if !r.before(types.SectionEducation, types.SectionExperience) {
		return types.StructuralSuggestion{}, false
	}
	return types.StructuralSuggestion{
		ID:                RuleFulltimeEducationBeforeWork,
		Category:          types.SuggestionSectionOrder,
		Priority:          types.PriorityModerate,
		Title:             "Lead with Experience",
		Description:       "For full-time roles, work history is what recruiters read first.",
		CurrentState:      describeOrder(r.order),
		RecommendedAction: "Place Experience before Education.",
	}, true
}

// nonStandardHeadings flags each alias heading line, whatever the candidate type.
// IDs carry the alias so two aliases for one section stay distinct; a repeated
// alias gets a numeric suffix.
func nonStandardHeadings(r *resume) []types.StructuralSuggestion {
	var out []types.StructuralSuggestion
	seen := make(map[string]int)
	for _, h := range r.headings {
		if h.Standard || h.Section == "" {
			continue
		}
		s := nonStandardHeading(h)
		seen[s.ID]++
		if n := seen[s.ID]; n > 1 {
			s.ID = fmt.Sprintf("%s-%d", s.ID, n)
		}
		out = append(out, s)
	}
	return out
}

// headingSlug renders heading text as a lowercase hyphenated id fragment
func headingSlug(text string) string {
	text = strings.NewReplacer("'", "", "’", "").Replace(strings.ToLower(text))
	return strings.Trim(nonSlug.ReplaceAllString(text, "-"), "-")
}

func nonStandardHeading(h headings.Heading) types.StructuralSuggestion {
	return types.StructuralSuggestion{
		ID:                RuleNonStandardHeadingPrefix + string(h.Section) + "-" + headingSlug(h.Text),
		Category:          types.SuggestionSectionHeading,
		Priority:          types.PriorityHigh,
		Title:             fmt.Sprintf("Rename %q to %q", titleCase(h.Text), h.Canonical),
		Description:       "ATS parsers map sections by recognized headings and may skip content under creative ones.",
		CurrentState:      fmt.Sprintf("Line %d: %s", h.Line+1, h.Text),
		RecommendedAction: fmt.Sprintf("Use the heading %q.", h.Canonical),
	}
}
