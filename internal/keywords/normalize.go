package keywords

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliases maps compact variant spellings to a canonical compact form
var aliases = map[string]string{
	"golang": "go",
	"k8s":    "kubernetes",
	"js":     "javascript",
	"ts":     "typescript",
	"py":     "python",
	"ml":     "machinelearning",
	"ai":     "artificialintelligence",

	"reactjs":   "react",
	"vuejs":     "vue",
	"angularjs": "angular",

	"postgres":  "postgresql",
	"psql":      "postgresql",
	"mongo":     "mongodb",
	"python3":   "python",
	"cplusplus": "c++",
	"csharp":    "c#",
	"dotnet":    ".net",
	"restful":   "rest",
	"restapi":   "rest",
	"restapis":  "rest",

	"amazonwebservices":   "aws",
	"gcp":                 "googlecloud",
	"googlecloudplatform": "googlecloud",
	"microsoftazure":      "azure",
}

// jsBases are framework names that are also ordinary words. Their ".js" form
// stays canonical so "Next.js" never matches "the next release".
var jsBases = map[string]bool{
	"node":     true,
	"next":     true,
	"express":  true,
	"nest":     true,
	"ember":    true,
	"meteor":   true,
	"backbone": true,
	"knockout": true,
}

// aliasTerms holds every spelling in the alias table, on either side
var aliasTerms = func() map[string]bool {
	out := make(map[string]bool, 2*len(aliases))
	for k, v := range aliases {
		out[k] = true
		out[v] = true
	}
	return out
}()

// foldTransformer strips combining marks after canonical decomposition (é -> e)
func foldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases text and removes diacritics
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer(), s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// compact removes separators that commonly vary between spellings.
// Symbols that carry meaning in tech names (+, #, leading .) are kept.
func compact(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '+', r == '#':
			sb.WriteRune(r)
		case r == '.' && i == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Canonical returns the normalized comparison form for a term.
// It folds case and accents, removes separators, resolves aliases,
// and drops a framework ".js" suffix unless the base is an ordinary word.
func Canonical(term string) string {
	c := compact(Fold(strings.TrimSpace(term)))
	if c == "" {
		return ""
	}
	if a, ok := aliases[c]; ok {
		return a
	}
	if strings.HasSuffix(c, "js") && len(c) > 4 {
		base := strings.TrimSuffix(c, "js")
		if jsBases[base] {
			return c
		}
		if a, ok := aliases[base]; ok {
			return a
		}
		return base
	}
	return c
}

// Stem applies light suffix stripping so plural and verb forms compare equal.
// Short words are left untouched to avoid collapsing acronyms.
func Stem(c string) string {
	if len(c) <= 4 {
		return c
	}
	for _, suffix := range []string{"ies", "ing", "ed", "s"} {
		if suffix == "s" && strings.HasSuffix(c, "ss") {
			continue
		}
		if strings.HasSuffix(c, suffix) && len(c)-len(suffix) >= 3 {
			stem := strings.TrimSuffix(c, suffix)
			if suffix == "ies" {
				stem += "y"
			}
			return stem
		}
	}
	return c
}

// isWordRune reports whether r can be part of a keyword token
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/' || r == '-'
}

// token is a word in the source text with its byte offsets
type token struct {
	text       string
	start, end int
}

// tokenize splits text into word tokens, trimming punctuation that ends sentences
func tokenize(text string) []token {
	var tokens []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := text[start:end]
		trimmed := strings.TrimRight(raw, ".-/")
		lead := len(raw) - len(strings.TrimLeft(raw, "-/"))
		trimmed = strings.TrimLeft(trimmed, "-/")
		if trimmed != "" {
			tokens = append(tokens, token{text: trimmed, start: start + lead, end: start + lead + len(trimmed)})
		}
		start = -1
	}
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}
