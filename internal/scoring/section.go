package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

var (
	commaSplit  = regexp.MustCompile(`[,;]`)
	bulletSplit = regexp.MustCompile(`[•·▪●◦‣∙|]|\s[-*]\s`)
	// bulletLine matches a line introduced by a bullet marker or list number
	bulletLine = regexp.MustCompile(`^\s*(?:[•\-*>▪●◦‣∙]|\d{1,2}[.)])\s+\S`)
)

// CalculateSectionScore scores summary, skills and experience density.
// Each sub-score is linear up to its threshold; absent sections score 0 and
// still count toward the unweighted average.
func CalculateSectionScore(resume types.ParsedResume) types.SectionScore {
	ss := types.SectionScore{
		SummaryWordCount:      len(strings.Fields(resume.Summary)),
		SkillsItemCount:       CountSkillItems(resume.Skills),
		ExperienceBulletCount: CountExperienceBullets(resume.Experience),
	}

	ss.SummaryScore = ratioScore(ss.SummaryWordCount, SummaryWordThreshold)
	ss.SkillsScore = ratioScore(ss.SkillsItemCount, SkillsItemThreshold)
	ss.ExperienceScore = ratioScore(ss.ExperienceBulletCount, ExperienceBulletThreshold)
	ss.Score = int(math.Round(float64(ss.SummaryScore+ss.SkillsScore+ss.ExperienceScore) / 3))
	return ss
}

// CountSkillItems counts distinct skills. The text is split on newlines, on
// commas, and on bullet markers, and whichever split yields the most distinct
// items is used.
func CountSkillItems(skills []string) int {
	text := strings.Join(skills, "\n")
	if strings.TrimSpace(text) == "" {
		return 0
	}

	best := 0
	for _, split := range []func(string) []string{
		func(s string) []string { return strings.Split(s, "\n") },
		func(s string) []string { return commaSplit.Split(strings.ReplaceAll(s, "\n", ","), -1) },
		func(s string) []string { return bulletSplit.Split(strings.ReplaceAll(s, "\n", " | "), -1) },
	} {
		best = max(best, countDistinct(split(text)))
	}
	return best
}

func countDistinct(items []string) int {
	seen := make(map[string]bool)
	for _, item := range items {
		cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(item), "•-*>▪●◦‣∙. \t"))
		if cleaned == "" {
			continue
		}
		seen[cleaned] = true
	}
	return len(seen)
}

// CountExperienceBullets totals bullet points across every job. Entries with
// split-out bullets count them directly; otherwise bullet-marked lines in the
// description are counted, falling back to its non-empty lines.
func CountExperienceBullets(entries []types.ExperienceEntry) int {
	total := 0
	for _, e := range entries {
		if len(e.Bullets) > 0 {
			for _, b := range e.Bullets {
				if strings.TrimSpace(b) != "" {
					total++
				}
			}
			continue
		}

		var marked, lines int
		for _, line := range strings.Split(e.Description, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines++
			if bulletLine.MatchString(line) {
				marked++
			}
		}
		if marked > 0 {
			total += marked
		} else {
			total += lines
		}
	}
	return total
}
