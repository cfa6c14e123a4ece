package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"panorama/internal/model"
)

func TestNormalizedEntropy(t *testing.T) {
	assert.Equal(t, 0.0, normalizedEntropy(nil))
	assert.Equal(t, 0.0, normalizedEntropy(map[string]float64{"only": 10}))
	// Uniform distribution maximizes entropy
	assert.InDelta(t, 1.0, normalizedEntropy(map[string]float64{"a": 5, "b": 5}), 1e-9)
	assert.InDelta(t, 1.0, normalizedEntropy(map[string]float64{"a": 3, "b": 3, "c": 3}), 1e-9)
	// Skewed distribution lands strictly between 0 and 1
	skewed := normalizedEntropy(map[string]float64{"a": 9, "b": 1})
	assert.Greater(t, skewed, 0.0)
	assert.Less(t, skewed, 1.0)
	// Zero-count entries are not distinct values
	assert.Equal(t, 0.0, normalizedEntropy(map[string]float64{"a": 4, "b": 0}))
}

func TestPriorityScoreComposition(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeLikert}
	agg := &model.AggregatedData{
		Counts:         map[string]float64{"Agree": 5, "Disagree": 5},
		Total:          10,
		SentimentScore: floatPtr(0.9),
	}
	insight := &model.QuestionInsight{Priority: model.PriorityHigh}

	// entropy 1.0*30 + |0.9-0.5|*2*25 + 10/10*20, tier 1.0, weight 1.0
	got := PriorityScore(q, agg, insight, 10)
	assert.InDelta(t, 30+20+20, got, 1e-9)
}

func TestPriorityScoreSentimentStrengthMonotonic(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeLikert}
	insight := &model.QuestionInsight{Priority: model.PriorityHigh}

	prev := -1.0
	for _, score := range []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0} {
		agg := &model.AggregatedData{
			Counts:         map[string]float64{"a": 5, "b": 5},
			Total:          10,
			SentimentScore: floatPtr(score),
		}
		got := PriorityScore(q, agg, insight, 10)
		assert.GreaterOrEqual(t, got, prev, "score %.1f should not rank lower", score)
		prev = got
	}
}

func TestPriorityScoreTierMultipliers(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeLikert}
	agg := &model.AggregatedData{
		Counts: map[string]float64{"a": 5, "b": 5},
		Total:  10,
	}

	high := PriorityScore(q, agg, &model.QuestionInsight{Priority: model.PriorityHigh}, 10)
	medium := PriorityScore(q, agg, &model.QuestionInsight{Priority: model.PriorityMedium}, 10)
	low := PriorityScore(q, agg, &model.QuestionInsight{Priority: model.PriorityLow}, 10)

	assert.InDelta(t, high*0.6, medium, 1e-9)
	assert.InDelta(t, high*0.3, low, 1e-9)
}

func TestPriorityScoreTypeWeights(t *testing.T) {
	agg := &model.AggregatedData{
		Counts: map[string]float64{"a": 5, "b": 5},
		Total:  10,
	}
	insight := &model.QuestionInsight{Priority: model.PriorityHigh}

	base := PriorityScore(&model.Question{Type: model.QuestionTypeLikert}, agg, insight, 10)
	assert.InDelta(t, base*0.9, PriorityScore(&model.Question{Type: model.QuestionTypeSingleChoice}, agg, insight, 10), 1e-9)
	assert.InDelta(t, base*0.8, PriorityScore(&model.Question{Type: model.QuestionTypeMultiChoice}, agg, insight, 10), 1e-9)
	assert.InDelta(t, base*0.9, PriorityScore(&model.Question{Type: model.QuestionTypeBudget}, agg, insight, 10), 1e-9)
	assert.InDelta(t, base*0.7, PriorityScore(&model.Question{Type: model.QuestionTypeLongText}, agg, insight, 10), 1e-9)
	assert.InDelta(t, base*0.6, PriorityScore(&model.Question{Type: model.QuestionTypeShortText}, agg, insight, 10), 1e-9)
	assert.InDelta(t, base*0.5, PriorityScore(&model.Question{Type: model.QuestionType("MATRIX")}, agg, insight, 10), 1e-9)
}

func TestPriorityScoreRequiredBoost(t *testing.T) {
	agg := &model.AggregatedData{
		Counts:         map[string]float64{"a": 5, "b": 5},
		Total:          10,
		SentimentScore: floatPtr(0.2),
	}
	insight := &model.QuestionInsight{Priority: model.PriorityHigh}

	optional := PriorityScore(&model.Question{Type: model.QuestionTypeLikert}, agg, insight, 10)
	required := PriorityScore(&model.Question{Type: model.QuestionTypeLikert, Required: true}, agg, insight, 10)
	assert.InDelta(t, optional*1.1, required, 1e-9)
}

func TestPriorityScoreZeroSubmissionsDropsCoverage(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeLikert}
	agg := &model.AggregatedData{
		Counts: map[string]float64{"a": 5, "b": 5},
		Total:  10,
	}
	insight := &model.QuestionInsight{Priority: model.PriorityHigh}

	got := PriorityScore(q, agg, insight, 0)
	assert.InDelta(t, 30, got, 1e-9)
}

func TestPriorityScoreNonNegative(t *testing.T) {
	q := &model.Question{Type: model.QuestionTypeShortText}
	agg := &model.AggregatedData{Counts: map[string]float64{}}
	insight := &model.QuestionInsight{Priority: model.PriorityLow}

	got := PriorityScore(q, agg, insight, 0)
	assert.False(t, math.Signbit(got))
	assert.GreaterOrEqual(t, got, 0.0)
}
