// Package promptsize maps a source word count and length preference to a
// target sentence count and completion token budget. Summary length tracks
// source length: a three-sentence summary is proportionate for a short note
// but not for a long article, so the word-count band sets the baseline and
// the user's preference only scales it.
package promptsize

import (
	"math"

	"github.com/dtnitsch/page-digest/models"
)

// Plan is the sizing decision for one summarization call. TargetSentences
// is always >= 1 and MaxTokens > 0.
type Plan struct {
	TargetSentences int
	MaxTokens       int
}

// band covers word counts below Upper. Token ceilings are fixed per band
// and sized to contain the longest scaled sentence target; MinSentences
// keeps the short preference from collapsing below a usable summary.
type band struct {
	Upper         int
	BaseSentences int
	MinSentences  int
	MaxTokens     int
}

var bands = []band{
	{Upper: 200, BaseSentences: 2, MinSentences: 1, MaxTokens: 150},
	{Upper: 500, BaseSentences: 3, MinSentences: 2, MaxTokens: 250},
	{Upper: 1000, BaseSentences: 4, MinSentences: 3, MaxTokens: 350},
	{Upper: 2000, BaseSentences: 5, MinSentences: 3, MaxTokens: 500},
	{Upper: 5000, BaseSentences: 7, MinSentences: 4, MaxTokens: 700},
	{Upper: math.MaxInt, BaseSentences: 9, MinSentences: 5, MaxTokens: 900},
}

var multipliers = map[models.SummaryLength]float64{
	models.LengthShort:  0.8,
	models.LengthMedium: 1.0,
	models.LengthLong:   1.3,
}

// ForText returns the sizing plan for a text of wordCount words under the
// given length preference. Deterministic, no side effects. An unknown
// preference behaves as medium.
func ForText(wordCount int, length models.SummaryLength) Plan {
	if wordCount < 0 {
		wordCount = 0
	}

	b := bands[len(bands)-1]
	for _, candidate := range bands {
		if wordCount < candidate.Upper {
			b = candidate
			break
		}
	}

	mult, ok := multipliers[length]
	if !ok {
		mult = multipliers[models.LengthMedium]
	}

	sentences := int(math.Ceil(float64(b.BaseSentences) * mult))
	if sentences < b.MinSentences {
		sentences = b.MinSentences
	}

	return Plan{TargetSentences: sentences, MaxTokens: b.MaxTokens}
}
