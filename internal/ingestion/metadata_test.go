package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("héllo", "resume.txt", FormatText)

	assert.Equal(t, "resume.txt", meta.Source)
	assert.Equal(t, FormatText, meta.Format)
	assert.Equal(t, 5, meta.Characters)
	assert.Equal(t, computeHash("héllo"), meta.Hash)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := &Metadata{Format: FormatHTML, Timestamp: "2024-01-01T00:00:00Z", Hash: "abcd1234", Characters: 3}

	b, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "html", decoded["format"])
	assert.NotContains(t, decoded, "source")
}

func TestComputeHash(t *testing.T) {
	assert.Len(t, computeHash("test content"), 64)
	assert.Equal(t, computeHash("same"), computeHash("same"))
	assert.NotEqual(t, computeHash("a"), computeHash("b"))
}
