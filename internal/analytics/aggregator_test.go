package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panorama/internal/model"
)

func likertQuestion() *model.Question {
	return &model.Question{
		ID:   "q1",
		Text: "The venue was easy to find",
		Type: model.QuestionTypeLikert,
		Options: []string{
			"Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree",
		},
	}
}

func rows(questionID string, values ...string) []model.Response {
	out := make([]model.Response, 0, len(values))
	for i, v := range values {
		out = append(out, model.Response{
			ID:           string(rune('a' + i)),
			QuestionID:   questionID,
			SubmissionID: string(rune('A' + i)),
			Text:         v,
		})
	}
	return out
}

func repeat(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestAggregateLikertWeightedSentiment(t *testing.T) {
	values := append(repeat("Strongly Agree", 6), repeat("Agree", 2)...)
	values = append(values, repeat("Neutral", 2)...)
	agg := Aggregate(likertQuestion(), rows("q1", values...))

	require.NotNil(t, agg.SentimentScore)
	assert.InDelta(t, 0.85, *agg.SentimentScore, 1e-9)
	assert.Equal(t, 10, agg.Total)
	assert.InDelta(t, 0.6, agg.Percentages["Strongly Agree"], 1e-9)
	assertPercentagesSumToOne(t, agg)
}

func TestAggregateLikertNegative(t *testing.T) {
	values := append(repeat("Strongly Disagree", 7), repeat("Disagree", 3)...)
	agg := Aggregate(likertQuestion(), rows("q1", values...))

	require.NotNil(t, agg.SentimentScore)
	// (0.0*7 + 0.25*3) / 10
	assert.InDelta(t, 0.075, *agg.SentimentScore, 1e-9)
}

func TestAggregateIgnoresOtherQuestions(t *testing.T) {
	responses := append(rows("q1", "Agree"), rows("q2", "Disagree", "Disagree")...)
	agg := Aggregate(likertQuestion(), responses)

	assert.Equal(t, 1, agg.Total)
	assert.Equal(t, float64(1), agg.Counts["Agree"])
}

func TestAggregateSingleChoiceKeywordScores(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeSingleChoice}

	agg := Aggregate(q, rows("q1", "Really good", "Really good"))
	require.NotNil(t, agg.SentimentScore)
	assert.InDelta(t, 0.8, *agg.SentimentScore, 1e-9)

	agg = Aggregate(q, rows("q1", "Terrible parking"))
	require.NotNil(t, agg.SentimentScore)
	assert.InDelta(t, 0.2, *agg.SentimentScore, 1e-9)
}

func TestAggregateSingleChoicePositionInterpolation(t *testing.T) {
	q := &model.Question{
		ID:      "q1",
		Type:    model.QuestionTypeSingleChoice,
		Options: []string{"First", "Second", "Third"},
	}

	agg := Aggregate(q, rows("q1", "Second"))
	require.NotNil(t, agg.SentimentScore)
	// Middle of a 3-option list: 1.0 - 0.6*1/2
	assert.InDelta(t, 0.7, *agg.SentimentScore, 1e-9)

	agg = Aggregate(q, rows("q1", "Third"))
	require.NotNil(t, agg.SentimentScore)
	assert.InDelta(t, 0.4, *agg.SentimentScore, 1e-9)
}

func TestAggregateSingleChoiceUnmatchedDefaultsNeutral(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeSingleChoice}
	agg := Aggregate(q, rows("q1", "something else entirely"))

	require.NotNil(t, agg.SentimentScore)
	assert.InDelta(t, 0.5, *agg.SentimentScore, 1e-9)
}

func TestAggregateMultiChoiceHasNoSentiment(t *testing.T) {
	q := &model.Question{
		ID:      "q1",
		Type:    model.QuestionTypeMultiChoice,
		Options: []string{"Food", "Music", "Talks"},
	}
	agg := Aggregate(q, rows("q1", "Food", "Music", "Food"))

	assert.Nil(t, agg.SentimentScore)
	assert.Equal(t, 3, agg.Total)
	assert.Equal(t, float64(2), agg.Counts["Food"])
	assertPercentagesSumToOne(t, agg)
}

func TestAggregateBudgetExplicitZeros(t *testing.T) {
	q := budgetQuestion()
	responses := rows("q1",
		`{"artistA":40,"artistB":60}`,
		`{"artistA":20,"artistB":0}`,
	)
	agg := Aggregate(q, responses)

	assert.Equal(t, 2, agg.Total)
	assert.Equal(t, float64(60), agg.Counts["artistA"])
	assert.Equal(t, float64(60), agg.Counts["artistB"])
	assert.Equal(t, 2, agg.Occurrences["artistA"])
	assert.Equal(t, 2, agg.Occurrences["artistB"])
	assert.InDelta(t, 30, agg.Averages["artistA"], 1e-9)
	assert.InDelta(t, 30, agg.Averages["artistB"], 1e-9)
	require.NotNil(t, agg.Average)
	assert.InDelta(t, 30, *agg.Average, 1e-9)
	assertPercentagesSumToOne(t, agg)
}

func TestAggregateBudgetOmittedZeroDegradesGracefully(t *testing.T) {
	q := budgetQuestion()
	responses := rows("q1",
		`{"artistA":40,"artistB":60}`,
		`{"artistA":20}`,
	)
	agg := Aggregate(q, responses)

	assert.Equal(t, 1, agg.Occurrences["artistB"])
	assert.InDelta(t, 60, agg.Averages["artistB"], 1e-9)
}

func TestAggregateBudgetAverageRoundTrip(t *testing.T) {
	q := budgetQuestion()
	responses := rows("q1",
		`{"artistA":15,"artistB":85}`,
		`{"artistA":50,"artistB":50}`,
		`{"artistA":10,"artistB":90}`,
	)
	agg := Aggregate(q, responses)

	for target, sum := range agg.Counts {
		assert.InDelta(t, sum, agg.Averages[target]*float64(agg.Occurrences[target]), 1e-9)
	}
}

func TestAggregateBudgetSkipsMalformedRows(t *testing.T) {
	q := budgetQuestion()
	responses := rows("q1",
		`{"artistA":40,"artistB":60}`,
		`not json at all`,
		`{"artistA":`,
	)
	agg := Aggregate(q, responses)

	assert.Equal(t, 1, agg.Total)
	assert.Equal(t, float64(40), agg.Counts["artistA"])
}

func TestAggregateTextCountsOnly(t *testing.T) {
	q := &model.Question{ID: "q1", Type: model.QuestionTypeLongText}
	agg := Aggregate(q, rows("q1", "loved it", "more food stalls please"))

	assert.Equal(t, 2, agg.Total)
	assert.Empty(t, agg.Counts)
	assert.Nil(t, agg.SentimentScore)
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := Aggregate(likertQuestion(), nil)

	assert.Equal(t, 0, agg.Total)
	assert.Nil(t, agg.SentimentScore)
	assert.Empty(t, agg.Percentages)
}

func budgetQuestion() *model.Question {
	return &model.Question{
		ID:   "q1",
		Text: "Split the lineup budget",
		Type: model.QuestionTypeBudget,
		Budget: &model.BudgetPayload{
			Total: 100,
			Targets: []model.BudgetTarget{
				{ID: "artistA", Name: "Artist A"},
				{ID: "artistB", Name: "Artist B"},
			},
		},
	}
}

func assertPercentagesSumToOne(t *testing.T, agg model.AggregatedData) {
	t.Helper()
	if agg.Total == 0 || len(agg.Percentages) == 0 {
		return
	}
	sum := 0.0
	for _, p := range agg.Percentages {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
