package headings

import (
	"testing"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainResume = `Jane Doe
jane.doe@example.com | (416) 555-0199

Summary
Computer engineering student building backend services in Go.

Technical Skills:
Go, Python, Docker
PostgreSQL, Redis

My Journey
Software Developer Intern, Shopify
May 2024 - Aug 2024
• Built GraphQL resolvers in Go
• Added a Redis cache in front of PostgreSQL

Education
BASc Computer Engineering, University of Toronto

Certifications
AWS Certified Cloud Practitioner

Projects
Campus ride share app in React Native`

func TestSplitSections(t *testing.T) {
	pr, ok := SplitSections(plainResume)
	require.True(t, ok)

	assert.Equal(t, "Jane Doe\njane.doe@example.com | (416) 555-0199", pr.Contact)
	assert.Equal(t, "Computer engineering student building backend services in Go.", pr.Summary)
	assert.Equal(t, []string{"Go, Python, Docker", "PostgreSQL, Redis"}, pr.Skills)

	require.Len(t, pr.Experience, 1)
	assert.Contains(t, pr.Experience[0].Description, "Software Developer Intern, Shopify")
	assert.Contains(t, pr.Experience[0].Description, "• Added a Redis cache in front of PostgreSQL")

	require.Len(t, pr.Education, 1)
	assert.Equal(t, "BASc Computer Engineering, University of Toronto", pr.Education[0].Details)
	assert.Equal(t, "Campus ride share app in React Native", pr.Projects)
	assert.Equal(t, "Certifications\nAWS Certified Cloud Practitioner", pr.Other)
}

func TestSplitSections_EmptyAndRepeated(t *testing.T) {
	pr, ok := SplitSections("Experience\n\nExperience\n- Shipped the billing API\n")
	require.True(t, ok)
	require.Len(t, pr.Experience, 1)
	assert.Equal(t, "- Shipped the billing API", pr.Experience[0].Description)
	assert.Empty(t, pr.Contact)
}

func TestSplitSections_NoHeadings(t *testing.T) {
	pr, ok := SplitSections("Jane Doe\nBuilt things in Go for three years.")
	assert.False(t, ok)
	assert.True(t, pr.IsEmpty())
	assert.Equal(t, types.ParsedResume{}, pr)
}
