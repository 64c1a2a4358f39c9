package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseSectionOrder(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []types.SectionType
		wantErr bool
	}{
		{name: "two sections", raw: "experience,education", want: []types.SectionType{types.SectionExperience, types.SectionEducation}},
		{name: "spaces and blanks", raw: " skills , ,projects ", want: []types.SectionType{types.SectionSkills, types.SectionProjects}},
		{name: "empty", raw: "", want: nil},
		{name: "unknown", raw: "hobbies", wantErr: true},
		{name: "format is not a section", raw: "format", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSectionOrder(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeights(t *testing.T) {
	w, err := parseWeights("0.6, 0.2,0.2")
	require.NoError(t, err)
	assert.Equal(t, &types.ScoreWeights{Keyword: 0.6, Section: 0.2, Format: 0.2}, w)

	_, err = parseWeights("0.5,0.5")
	assert.Error(t, err)

	_, err = parseWeights("a,b,c")
	assert.Error(t, err)
}

func TestLoadGaps(t *testing.T) {
	gap := `{"keyword":"Kubernetes","category":"technologies","priority":"high","requirement":"required","potentialImpact":12,"addressability":"potential","reason":"r","evidence":null,"targetSections":["skills"],"instruction":"i"}`

	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr bool
	}{
		{name: "bare array", content: "[" + gap + "]", wantLen: 1},
		{name: "gap result", content: `{"processedGaps":[` + gap + `]}`, wantLen: 1},
		{name: "score report", content: `{"score":{},"gaps":{"processedGaps":[` + gap + `,` + gap + `]}}`, wantLen: 2},
		{name: "empty result", content: `{"processedGaps":[]}`, wantLen: 0},
		{name: "no gaps", content: `{"score":{}}`, wantErr: true},
		{name: "not json", content: `nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadGaps(writeFile(t, "gaps.json", tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestLoadKeywords(t *testing.T) {
	kws, err := loadKeywords(writeFile(t, "kw.json", `[{"keyword":"Go","category":"technologies","importance":"high"}]`))
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, "Go", kws[0].Keyword)

	_, err = loadKeywords(writeFile(t, "kw.json", `[{"category":"technologies"}]`))
	assert.ErrorContains(t, err, "invalid keywords file")

	_, err = loadKeywords(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read keywords file")
}

func TestAPIKeyOr(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	assert.Equal(t, "from-flag", apiKeyOr("from-flag"))
	assert.Equal(t, "from-env", apiKeyOr(""))
}
