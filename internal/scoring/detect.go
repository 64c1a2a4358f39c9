package scoring

import (
	"regexp"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/headings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)

	phonePatterns = []*regexp.Regexp{
		// (555) 123-4567, 555-123-4567, 555.123.4567, 555 123 4567 with optional +1
		regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\b\d{3}\)?[\s.\-]?\d{3}[\s.\-]\d{4}\b`),
		// +44 20 7946 0958 and other international groupings
		regexp.MustCompile(`\+\d{1,3}(?:[\s.\-]\d{2,4}){2,4}\b`),
		// 5551234567
		regexp.MustCompile(`\b\d{10}\b`),
	}

	month = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`
	year  = `(?:19|20)\d{2}`
	end   = `(?:` + year + `|` + month + `\s+` + year + `|present|current|now|\d{1,2}/` + year + `)`

	datePatterns = []*regexp.Regexp{
		// Jan 2022 - Present, September 2020 – May 2021
		regexp.MustCompile(`(?i)\b` + month + `\s+` + year + `\s*(?:-|–|—|to)\s*` + end + `\b`),
		// 2019 - 2023, 2021 – Present
		regexp.MustCompile(`(?i)\b` + year + `\s*(?:-|–|—|to)\s*(?:` + year + `|present|current|now)\b`),
		// 01/2020 - 06/2022
		regexp.MustCompile(`(?i)\b\d{1,2}/` + year + `\s*(?:-|–|—|to)\s*` + end + `\b`),
		// Summer 2023, Fall 2022
		regexp.MustCompile(`(?i)\b(?:spring|summer|fall|autumn|winter)\s+` + year + `\b`),
	}

	bulletMarker = regexp.MustCompile(`^\s*(?:[•\-*>▪◦‣]|\d{1,2}[.)])\s+\S`)
)

// Bullet lines longer than this are treated as prose, not list entries
const maxBulletLineLength = 200

// HasEmail reports whether text contains an email address
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// HasPhone reports whether text matches any common phone number format
func HasPhone(text string) bool {
	for _, p := range phonePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// HasDatePatterns reports whether text contains a date range or term date
func HasDatePatterns(text string) bool {
	for _, p := range datePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// HasSectionHeaders reports whether at least two distinct standard section
// headings appear on their own lines
func HasSectionHeaders(text string) bool {
	seen := make(map[string]bool)
	for _, h := range headings.Scan(text) {
		if h.Standard {
			seen[h.Canonical] = true
		}
	}
	return len(seen) >= 2
}

// HasBulletStructure reports whether bullet markers introduce at least two
// consecutive short lines
func HasBulletStructure(text string) bool {
	run := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if bulletMarker.MatchString(line) && len(line) <= maxBulletLineLength {
			run++
			if run >= 2 {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
