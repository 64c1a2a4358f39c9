// Package keywords classifies job description keywords against resume text.
package keywords

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

const (
	// maxNGram is the longest run of tokens compared in the fuzzy tier
	maxNGram = 4
	// contextRadius is the number of bytes kept either side of a match
	contextRadius = 40
	// minStemLen is the shortest stem the stem tier compares
	minStemLen = 5
	// placementResume marks a match found only in the raw resume text
	placementResume = "resume"
)

// span is a located match in one searchable text
type span struct {
	placement  string
	text       string
	start, end int
}

// corpus is one searchable text with its fuzzy index
type corpus struct {
	placement string
	text      string
	forms     map[string][2]int // canonical n-gram -> first byte span
	stems     map[string][2]int // stemmed canonical n-gram -> first byte span
}

func newCorpus(placement, text string) *corpus {
	c := &corpus{
		placement: placement,
		text:      text,
		forms:     make(map[string][2]int),
		stems:     make(map[string][2]int),
	}
	tokens := tokenize(text)
	for i := range tokens {
		for n := 1; n <= maxNGram && i+n <= len(tokens); n++ {
			start, end := tokens[i].start, tokens[i+n-1].end
			form := Canonical(text[start:end])
			if form == "" {
				continue
			}
			if _, seen := c.forms[form]; !seen {
				c.forms[form] = [2]int{start, end}
			}
			stem := Stem(form)
			if _, seen := c.stems[stem]; !seen {
				c.stems[stem] = [2]int{start, end}
			}
		}
	}
	return c
}

// Classify matches each extracted keyword against the resume.
// Sections are searched in a fixed order, then the raw text. The first tier that
// matches wins: exact, then fuzzy, then semantic. Keywords found at no tier are
// returned as missing with their extracted importance.
func Classify(resumeText string, sections types.ParsedSections, kws []types.ExtractedKeyword, analyzedAt time.Time) types.KeywordAnalysisResult {
	corpora := buildCorpora(resumeText, sections)

	result := types.KeywordAnalysisResult{
		Matched:    []types.MatchedKeyword{},
		Missing:    []types.ExtractedKeyword{},
		AnalyzedAt: analyzedAt,
	}

	seen := make(map[string]bool)
	for _, raw := range kws {
		kw := raw.Normalized()
		if kw.Keyword == "" {
			continue
		}
		key := Canonical(kw.Keyword)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		matchType, hit, ok := matchKeyword(kw.Keyword, key, corpora)
		if !ok {
			result.Missing = append(result.Missing, kw)
			continue
		}
		result.Matched = append(result.Matched, types.MatchedKeyword{
			Keyword:    kw.Keyword,
			Category:   kw.Category,
			Importance: kw.Importance,
			Found:      true,
			MatchType:  matchType,
			Placement:  hit.placement,
			Context:    snippet(hit.text, hit.start, hit.end),
		})
	}

	result.MatchRate = MatchRate(len(result.Matched), len(result.Missing))
	return result
}

// MatchRate returns matched/(matched+missing) as a rounded percentage
func MatchRate(matched, missing int) int {
	total := matched + missing
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}

func buildCorpora(resumeText string, sections types.ParsedSections) []*corpus {
	var corpora []*corpus
	for _, sec := range sections.Ordered() {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		corpora = append(corpora, newCorpus(string(sec.Type), sec.Text))
	}
	if strings.TrimSpace(resumeText) != "" {
		corpora = append(corpora, newCorpus(placementResume, resumeText))
	}
	return corpora
}

// matchKeyword runs the three tiers in precedence order across all corpora
func matchKeyword(keyword, canonical string, corpora []*corpus) (types.MatchType, span, bool) {
	exact := PhrasePattern(keyword)
	for _, c := range corpora {
		if start, end, ok := submatch(exact, c.text); ok {
			return types.MatchExact, span{placement: c.placement, text: c.text, start: start, end: end}, true
		}
	}

	forms := []string{canonical}
	if jsBases[canonical] {
		// "Node" in a job description is satisfied by "Node.js" on the resume
		forms = append(forms, canonical+"js")
	}
	stem := Stem(canonical)
	useStem := stemmable(canonical, stem)
	for _, c := range corpora {
		for _, form := range forms {
			if loc, ok := c.forms[form]; ok {
				return types.MatchFuzzy, span{placement: c.placement, text: c.text, start: loc[0], end: loc[1]}, true
			}
		}
		if !useStem {
			continue
		}
		if loc, ok := c.stems[stem]; ok {
			return types.MatchFuzzy, span{placement: c.placement, text: c.text, start: loc[0], end: loc[1]}, true
		}
	}

	patterns := conceptPatterns[canonical]
	if len(patterns) == 0 {
		patterns = conceptPatterns[stem]
	}
	for _, c := range corpora {
		for _, re := range patterns {
			if start, end, ok := submatch(re, c.text); ok {
				return types.MatchSemantic, span{placement: c.placement, text: c.text, start: start, end: end}, true
			}
		}
	}

	return "", span{}, false
}

// stemmable reports whether the stem tier may be used for a keyword.
// Alias-table names and short stems are compared by canonical form only, so
// "Rust" never matches "rusted" and "Redis" never matches "redid".
func stemmable(canonical, stem string) bool {
	return !aliasTerms[canonical] && len(stem) >= minStemLen
}

// snippet returns the match with surrounding context, whitespace collapsed
func snippet(text string, start, end int) string {
	from := max(0, start-contextRadius)
	to := min(len(text), end+contextRadius)
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return strings.Join(strings.Fields(text[from:to]), " ")
}
