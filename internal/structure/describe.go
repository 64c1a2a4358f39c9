package structure

import (
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase normalizes headings written in all caps or all lowercase.
// A Caser holds state, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// describeOrder renders a section order as "Summary > Skills > Experience"
func describeOrder(order []types.SectionType) string {
	names := make([]string, len(order))
	for i, st := range order {
		names[i] = titleCase(string(st))
	}
	return strings.Join(names, " > ")
}
