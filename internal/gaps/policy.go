package gaps

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/lawrence-dass/coop-ready/internal/keywords"
	"github.com/lawrence-dass/coop-ready/internal/schemas"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

//go:embed policy.json
var defaultPolicyJSON []byte

// PolicyError represents an invalid or unreadable gap policy
type PolicyError struct {
	Message string
	Cause   error
}

func (e *PolicyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PolicyError) Unwrap() error {
	return e.Cause
}

// policyDocument is the JSON form of a Policy
type policyDocument struct {
	Version                 int                 `json:"version"`
	RelatedTerms            map[string][]string `json:"relatedTerms"`
	AddressableCategories   map[string][]string `json:"addressableCategories"`
	UnaddressableCategories []string            `json:"unaddressableCategories"`
	UnfixablePatterns       []string            `json:"unfixablePatterns"`
	DefaultTargets          []string            `json:"defaultTargets"`
}

// relatedTerm is a phrase that demonstrates a keyword under different wording
type relatedTerm struct {
	phrase  string
	pattern *regexp.Regexp
}

// Policy decides which gaps can be addressed without fabrication.
// A Policy is immutable once loaded and safe for concurrent use.
type Policy struct {
	Version int

	related       map[string][]relatedTerm       // keyed by canonical and stemmed keyword
	addressable   map[string][]types.SectionType // keyed by lowercased category
	unaddressable map[string]bool
	unfixable     []*regexp.Regexp
	defaults      []types.SectionType
}

// LoadPolicy parses and validates a policy document
func LoadPolicy(data []byte) (*Policy, error) {
	if err := schemas.Validate(schemas.GapPolicy, data); err != nil {
		return nil, &PolicyError{Message: "gap policy does not match schema", Cause: err}
	}

	var doc policyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &PolicyError{Message: "failed to parse gap policy", Cause: err}
	}
	return compilePolicy(doc)
}

// LoadPolicyFile reads a policy document from disk
func LoadPolicyFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PolicyError{Message: fmt.Sprintf("failed to read gap policy %s", path), Cause: err}
	}
	return LoadPolicy(data)
}

var defaultPolicy = sync.OnceValues(func() (*Policy, error) {
	return LoadPolicy(defaultPolicyJSON)
})

// DefaultPolicy returns the embedded policy
func DefaultPolicy() (*Policy, error) {
	return defaultPolicy()
}

func compilePolicy(doc policyDocument) (*Policy, error) {
	p := &Policy{
		Version:       doc.Version,
		related:       make(map[string][]relatedTerm),
		addressable:   make(map[string][]types.SectionType),
		unaddressable: make(map[string]bool),
	}

	// Sorted iteration keeps term order stable when a canonical and a stemmed key collide
	keys := make([]string, 0, len(doc.RelatedTerms))
	for k := range doc.RelatedTerms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		canonical := keywords.Canonical(k)
		if canonical == "" {
			return nil, &PolicyError{Message: fmt.Sprintf("related term key %q normalizes to nothing", k)}
		}
		var terms []relatedTerm
		for _, phrase := range doc.RelatedTerms[k] {
			phrase = strings.TrimSpace(phrase)
			if phrase == "" {
				continue
			}
			terms = append(terms, relatedTerm{phrase: phrase, pattern: keywords.PhrasePattern(phrase)})
		}
		p.related[canonical] = append(p.related[canonical], terms...)
		if stem := keywords.Stem(canonical); stem != canonical {
			p.related[stem] = append(p.related[stem], terms...)
		}
	}

	for category, sections := range doc.AddressableCategories {
		targets, err := parseSections(sections)
		if err != nil {
			return nil, &PolicyError{Message: fmt.Sprintf("invalid targets for category %q", category), Cause: err}
		}
		p.addressable[strings.ToLower(strings.TrimSpace(category))] = targets
	}

	for _, category := range doc.UnaddressableCategories {
		p.unaddressable[strings.ToLower(strings.TrimSpace(category))] = true
	}

	for _, expr := range doc.UnfixablePatterns {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, &PolicyError{Message: fmt.Sprintf("invalid unfixable pattern %q", expr), Cause: err}
		}
		p.unfixable = append(p.unfixable, re)
	}

	defaults, err := parseSections(doc.DefaultTargets)
	if err != nil {
		return nil, &PolicyError{Message: "invalid default targets", Cause: err}
	}
	p.defaults = defaults
	return p, nil
}

func parseSections(raw []string) ([]types.SectionType, error) {
	out := make([]types.SectionType, 0, len(raw))
	for _, r := range raw {
		st, ok := types.ParseSectionType(r)
		if !ok || st == types.SectionFormat {
			return nil, fmt.Errorf("unknown section %q", r)
		}
		out = append(out, st)
	}
	return out, nil
}

// relatedTerms returns the phrases that count as evidence for a keyword
func (p *Policy) relatedTerms(keyword string) []relatedTerm {
	canonical := keywords.Canonical(keyword)
	if terms, ok := p.related[canonical]; ok {
		return terms
	}
	return p.related[keywords.Stem(canonical)]
}

// isUnfixable reports whether closing the gap would require inventing
// credentials or history
func (p *Policy) isUnfixable(kw types.ExtractedKeyword) bool {
	if p.unaddressable[strings.ToLower(string(kw.Category))] {
		return true
	}
	for _, re := range p.unfixable {
		if re.MatchString(kw.Keyword) {
			return true
		}
	}
	return false
}

// targetsFor returns the sections where a category of keyword can be added
func (p *Policy) targetsFor(category types.KeywordCategory) []types.SectionType {
	if targets, ok := p.addressable[strings.ToLower(string(category))]; ok {
		return append([]types.SectionType(nil), targets...)
	}
	return append([]types.SectionType(nil), p.defaults...)
}
