package scoring

import "github.com/lawrence-dass/coop-ready/internal/types"

// CalculateComposite combines the component scores using DefaultWeights
func CalculateComposite(kw types.KeywordScore, sec types.SectionScore, fs types.FormatScore) types.ScoreBreakdown {
	return CalculateCompositeWithWeights(kw, sec, fs, DefaultWeights)
}

// CalculateCompositeWithWeights combines the component scores with custom weights.
// Weights are normalized by their sum; a non-positive sum falls back to DefaultWeights.
func CalculateCompositeWithWeights(kw types.KeywordScore, sec types.SectionScore, fs types.FormatScore, w types.ScoreWeights) types.ScoreBreakdown {
	if w.Keyword < 0 || w.Section < 0 || w.Format < 0 || w.Keyword+w.Section+w.Format <= 0 {
		w = DefaultWeights
	}
	total := w.Keyword + w.Section + w.Format
	weighted := (float64(kw.Score)*w.Keyword + float64(sec.Score)*w.Section + float64(fs.Score)*w.Format) / total

	return types.ScoreBreakdown{
		Score:        clampScore(weighted),
		KeywordScore: kw.Score,
		SectionScore: sec.Score,
		FormatScore:  fs.Score,
		Keyword:      kw,
		Section:      sec,
		Format:       fs,
		Weights:      w,
	}
}
