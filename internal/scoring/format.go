package scoring

import (
	"math"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

// structureSignals is the number of structural checks in the structure score
const structureSignals = 3

// CalculateFormatScore scores how reliably an ATS can parse the resume text
func CalculateFormatScore(text string) types.FormatScore {
	fs := types.FormatScore{
		HasEmail:           HasEmail(text),
		HasPhone:           HasPhone(text),
		HasDatePatterns:    HasDatePatterns(text),
		HasSectionHeaders:  HasSectionHeaders(text),
		HasBulletStructure: HasBulletStructure(text),
	}

	fs.ContactScore = contactScore(fs.HasEmail, fs.HasPhone)

	signals := 0
	for _, ok := range []bool{fs.HasDatePatterns, fs.HasSectionHeaders, fs.HasBulletStructure} {
		if ok {
			signals++
		}
	}
	fs.StructureScore = clampScore(float64(signals) / structureSignals * 100)
	fs.Score = int(math.Round(float64(fs.ContactScore+fs.StructureScore) / 2))
	return fs
}

func contactScore(email, phone bool) int {
	switch {
	case email && phone:
		return ContactBothScore
	case email:
		return ContactEmailOnlyScore
	case phone:
		return ContactPhoneOnlyScore
	default:
		return 0
	}
}

// GenerateFormatActionItems lists one remediation per missing format signal.
// Order is always email, phone, dates, headers, bullets.
func GenerateFormatActionItems(fs types.FormatScore) []string {
	items := []string{}
	if !fs.HasEmail {
		items = append(items, "Add a professional email address to your contact information")
	}
	if !fs.HasPhone {
		items = append(items, "Add a phone number to your contact information")
	}
	if !fs.HasDatePatterns {
		items = append(items, "Include date ranges for each role (e.g. Jan 2023 - Present)")
	}
	if !fs.HasSectionHeaders {
		items = append(items, "Use standard section headings such as Experience, Education and Skills on their own lines")
	}
	if !fs.HasBulletStructure {
		items = append(items, "Format accomplishments as bullet points instead of paragraphs")
	}
	return items
}
