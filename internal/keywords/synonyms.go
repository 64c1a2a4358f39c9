package keywords

import (
	"regexp"
	"strings"
)

// conceptPhrases lists phrases that demonstrate a keyword without naming it.
// Keys are canonical keyword forms.
var conceptPhrases = map[string][]string{
	"leadership": {
		"led a team", "led the team", "led teams", "team lead", "managed a team",
		"supervised", "mentored", "headed", "spearheaded", "directed",
	},
	"teamwork": {
		"collaborated", "cross-functional", "worked with", "partnered with", "worked closely",
	},
	"collaboration": {
		"collaborated", "cross-functional", "partnered with", "worked closely", "pair programming",
	},
	"communication": {
		"presented", "presentation", "wrote documentation", "documented", "stakeholders",
		"communicated", "public speaking",
	},
	"problemsolving": {
		"troubleshot", "debugged", "resolved", "root cause", "diagnosed",
	},
	"projectmanagement": {
		"managed the project", "project timeline", "coordinated", "delivered on schedule", "roadmap",
	},
	"mentoring": {
		"mentored", "coached", "onboarded", "trained new",
	},
	"agile": {
		"scrum", "sprint", "kanban", "stand-up", "standup", "retrospective",
	},
	"cicd": {
		"continuous integration", "continuous delivery", "continuous deployment",
		"github actions", "jenkins", "gitlab ci", "deployment pipeline",
	},
	"testing": {
		"unit test", "integration test", "test coverage", "tdd", "test suite",
	},
	"customerservice": {
		"customer support", "helped customers", "client-facing", "assisted customers",
	},
	"dataanalysis": {
		"analyzed data", "data analytics", "dashboards", "insights from data",
	},
	"timemanagement": {
		"met deadlines", "prioritized", "managed multiple",
	},
}

// conceptPatterns holds the compiled form of conceptPhrases
var conceptPatterns = compileConcepts(conceptPhrases)

func compileConcepts(src map[string][]string) map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(src))
	for key, phrases := range src {
		patterns := make([]*regexp.Regexp, 0, len(phrases))
		for _, phrase := range phrases {
			patterns = append(patterns, PhrasePattern(phrase))
		}
		out[key] = patterns
	}
	return out
}

// PhrasePattern compiles a case-insensitive pattern matching phrase as whole words.
// Internal whitespace matches any run of whitespace. The phrase is capture group 1.
// "+", "#" and a "." followed by a letter count as word characters, so "C" does
// not match inside "C#", "C++" or "C.NET".
func PhrasePattern(phrase string) *regexp.Regexp {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\pL\pN+#])(` + strings.Join(quoted, `\s+`) + `)(?:$|[^\pL\pN+#.]|\.(?:$|[^\pL]))`)
}

// submatch returns the byte span of group 1, or ok=false
func submatch(re *regexp.Regexp, text string) (start, end int, ok bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil || len(loc) < 4 {
		return 0, 0, false
	}
	return loc[2], loc[3], true
}

// FindPhrase returns the text matched by a PhrasePattern, as written in text
func FindPhrase(re *regexp.Regexp, text string) (string, bool) {
	start, end, ok := submatch(re, text)
	if !ok {
		return "", false
	}
	return text[start:end], true
}
