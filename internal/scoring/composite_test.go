package scoring

import (
	"testing"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCalculateComposite(t *testing.T) {
	tests := []struct {
		name              string
		kw, section, form int
		want              int
	}{
		{name: "perfect", kw: 100, section: 100, form: 100, want: 100},
		{name: "zero", kw: 0, section: 0, form: 0, want: 0},
		{name: "weighted", kw: 80, section: 60, form: 40, want: 65},
		{name: "keyword dominates", kw: 100, section: 0, form: 0, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateComposite(
				types.KeywordScore{Score: tt.kw},
				types.SectionScore{Score: tt.section},
				types.FormatScore{Score: tt.form},
			)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.kw, got.KeywordScore)
			assert.Equal(t, tt.section, got.SectionScore)
			assert.Equal(t, tt.form, got.FormatScore)
			assert.Equal(t, DefaultWeights, got.Weights)
		})
	}
}

func TestCalculateCompositeWithWeights(t *testing.T) {
	kw := types.KeywordScore{Score: 90}
	sec := types.SectionScore{Score: 30}
	fs := types.FormatScore{Score: 60}

	t.Run("custom weights are normalized", func(t *testing.T) {
		got := CalculateCompositeWithWeights(kw, sec, fs, types.ScoreWeights{Keyword: 2, Section: 0, Format: 2})
		assert.Equal(t, 75, got.Score)
	})

	t.Run("invalid weights fall back to defaults", func(t *testing.T) {
		got := CalculateCompositeWithWeights(kw, sec, fs, types.ScoreWeights{})
		assert.Equal(t, DefaultWeights, got.Weights)
		assert.Equal(t, 68, got.Score)
	})
}
