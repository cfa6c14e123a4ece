package analytics

import (
	"math"

	"panorama/internal/model"
)

// typeWeights biases ranking toward question types whose aggregates
// carry more signal.
var typeWeights = map[model.QuestionType]float64{
	model.QuestionTypeLikert:       1.0,
	model.QuestionTypeSingleChoice: 0.9,
	model.QuestionTypeMultiChoice:  0.8,
	model.QuestionTypeBudget:       0.9,
	model.QuestionTypeLongText:     0.7,
	model.QuestionTypeShortText:    0.6,
}

var tierMultipliers = map[model.PriorityTier]float64{
	model.PriorityHigh:   1.0,
	model.PriorityMedium: 0.6,
	model.PriorityLow:    0.3,
}

// PriorityScore computes the display-ordering score for one question.
// Additive terms: answer spread (normalized entropy, up to 30 points),
// sentiment strength (distance from neutral, up to 25), and response
// coverage (share of submissions that answered, up to 20). The sum is
// scaled by the insight tier, the question-type weight, and a 1.1
// boost for required questions. Higher scores rank first.
func PriorityScore(q *model.Question, agg *model.AggregatedData, insight *model.QuestionInsight, totalSubmissions int) float64 {
	score := normalizedEntropy(agg.Counts) * 30

	if agg.SentimentScore != nil {
		score += math.Abs(*agg.SentimentScore-0.5) * 2 * 25
	}

	if totalSubmissions > 0 {
		score += float64(agg.Total) / float64(totalSubmissions) * 20
	}

	score *= tierMultipliers[insight.Priority]

	weight, ok := typeWeights[q.Type]
	if !ok {
		weight = 0.5
	}
	score *= weight

	if q.Required {
		score *= 1.1
	}

	return score
}

// normalizedEntropy is the Shannon entropy of the count distribution
// divided by the maximum entropy for the number of distinct observed
// values. 0 when one or fewer values were observed.
func normalizedEntropy(counts map[string]float64) float64 {
	var total float64
	distinct := 0
	for _, c := range counts {
		if c > 0 {
			total += c
			distinct++
		}
	}
	if distinct <= 1 || total <= 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := c / total
		entropy -= p * math.Log2(p)
	}
	return entropy / math.Log2(float64(distinct))
}
