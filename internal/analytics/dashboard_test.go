package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panorama/internal/model"
)

func likertResponses(questionID string, submissionOffset int, values ...string) []model.Response {
	out := make([]model.Response, 0, len(values))
	for i, v := range values {
		out = append(out, model.Response{
			ID:           fmt.Sprintf("%s-r%d", questionID, i),
			QuestionID:   questionID,
			SubmissionID: fmt.Sprintf("sub-%d", submissionOffset+i),
			Text:         v,
		})
	}
	return out
}

func TestBuildDashboardEmptyInputs(t *testing.T) {
	cfg := BuildDashboard(nil, nil)

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Questions)
	assert.Empty(t, cfg.QuickWins)
	assert.Empty(t, cfg.Concerns)
	assert.Equal(t, 0, cfg.Overall.TotalResponses)
	assert.Equal(t, 0, cfg.Overall.TotalSubmissions)
	assert.InDelta(t, 0.5, cfg.Overall.OverallSatisfaction, 1e-9)
}

func TestBuildDashboardOverallStats(t *testing.T) {
	questions := []model.Question{
		{ID: "good", Text: "Venue was great", Type: model.QuestionTypeLikert},
		{ID: "bad", Text: "Food was fine", Type: model.QuestionTypeLikert},
		{ID: "free", Text: "Anything else?", Type: model.QuestionTypeLongText},
	}
	responses := likertResponses("good", 0, "Strongly Agree", "Strongly Agree", "Agree")
	responses = append(responses, likertResponses("bad", 0, "Strongly Disagree", "Disagree", "Disagree")...)
	responses = append(responses, model.Response{
		ID: "t1", QuestionID: "free", SubmissionID: "sub-0", Text: "loved the lineup",
	})

	cfg := BuildDashboard(questions, responses)

	// good: (1.0*2 + 0.75)/3, bad: (0 + 0.25*2)/3; text excluded from the mean
	goodScore := (1.0*2 + 0.75) / 3
	badScore := 0.5 / 3
	assert.InDelta(t, (goodScore+badScore)/2, cfg.Overall.OverallSatisfaction, 1e-9)
	assert.Equal(t, "good", cfg.Overall.TopPositiveID)
	assert.Equal(t, "bad", cfg.Overall.TopNegativeID)
	assert.Equal(t, 7, cfg.Overall.TotalResponses)
	assert.Equal(t, 3, cfg.Overall.TotalSubmissions)
}

func TestBuildDashboardSatisfactionDefaultsWithoutScores(t *testing.T) {
	questions := []model.Question{
		{ID: "free", Type: model.QuestionTypeLongText},
		{ID: "multi", Type: model.QuestionTypeMultiChoice, Options: []string{"A", "B"}},
	}
	responses := []model.Response{
		{ID: "r1", QuestionID: "multi", SubmissionID: "s1", Text: "A"},
	}

	cfg := BuildDashboard(questions, responses)
	assert.InDelta(t, 0.5, cfg.Overall.OverallSatisfaction, 1e-9)
	assert.Empty(t, cfg.Overall.TopPositiveID)
	assert.Empty(t, cfg.Overall.TopNegativeID)
}

func TestBuildDashboardQuickWinsCappedAndScoreOrdered(t *testing.T) {
	var questions []model.Question
	var responses []model.Response
	// Five uniformly positive questions with distinct scores
	mixes := [][]string{
		{"Strongly Agree", "Strongly Agree", "Strongly Agree"},
		{"Strongly Agree", "Strongly Agree", "Agree"},
		{"Strongly Agree", "Agree", "Agree"},
		{"Agree", "Agree", "Agree"},
		{"Agree", "Agree", "Neutral"},
	}
	for i, mix := range mixes {
		id := fmt.Sprintf("q%d", i)
		questions = append(questions, model.Question{ID: id, Text: id, Type: model.QuestionTypeLikert})
		responses = append(responses, likertResponses(id, 0, mix...)...)
	}

	cfg := BuildDashboard(questions, responses)

	require.Len(t, cfg.QuickWins, 3)
	assert.Equal(t, "q0", cfg.QuickWins[0].QuestionID)
	assert.Equal(t, "q1", cfg.QuickWins[1].QuestionID)
	assert.Equal(t, "q2", cfg.QuickWins[2].QuestionID)
	assert.GreaterOrEqual(t, cfg.QuickWins[0].Score, cfg.QuickWins[1].Score)
	assert.Equal(t, "100%", cfg.QuickWins[0].Percent)
}

func TestBuildDashboardConcernsSortAscending(t *testing.T) {
	questions := []model.Question{
		{ID: "worst", Text: "Parking", Type: model.QuestionTypeLikert},
		{ID: "mild", Text: "Queues", Type: model.QuestionTypeLikert},
	}
	responses := likertResponses("worst", 0, "Strongly Disagree", "Strongly Disagree")
	responses = append(responses, likertResponses("mild", 0, "Disagree", "Disagree", "Neutral")...)

	cfg := BuildDashboard(questions, responses)

	require.Len(t, cfg.Concerns, 2)
	assert.Equal(t, "worst", cfg.Concerns[0].QuestionID)
	assert.Equal(t, "mild", cfg.Concerns[1].QuestionID)
	assert.Equal(t, "100%", cfg.Concerns[0].Percent)
}

func TestBuildDashboardQuickWinsExcludeScorelessQuestions(t *testing.T) {
	// Multi-choice insights carry a fixed positive label but no
	// sentiment score, so they must never appear as quick wins.
	questions := []model.Question{
		{ID: "multi", Type: model.QuestionTypeMultiChoice, Options: []string{"A", "B"}},
	}
	responses := []model.Response{
		{ID: "r1", QuestionID: "multi", SubmissionID: "s1", Text: "A"},
		{ID: "r2", QuestionID: "multi", SubmissionID: "s2", Text: "B"},
	}

	cfg := BuildDashboard(questions, responses)

	assert.Equal(t, model.SentimentPositive, cfg.Questions[0].Insight.Sentiment)
	assert.Empty(t, cfg.QuickWins)
	assert.Empty(t, cfg.Concerns)
}

func TestBuildDashboardStableTieOrder(t *testing.T) {
	// Two identical questions with identical answers tie on priority
	// and must retain input order.
	questions := []model.Question{
		{ID: "first", Type: model.QuestionTypeLikert},
		{ID: "second", Type: model.QuestionTypeLikert},
	}
	responses := likertResponses("first", 0, "Agree", "Disagree")
	responses = append(responses, likertResponses("second", 0, "Agree", "Disagree")...)

	cfg := BuildDashboard(questions, responses)

	require.Len(t, cfg.Questions, 2)
	assert.Equal(t, "first", cfg.Questions[0].Question.ID)
	assert.Equal(t, "second", cfg.Questions[1].Question.ID)
}

func TestBuildDashboardRanksHighPriorityFirst(t *testing.T) {
	questions := []model.Question{
		{ID: "happy", Type: model.QuestionTypeLikert},
		{ID: "angry", Type: model.QuestionTypeLikert},
	}
	// Uniformly positive answers produce a low insight tier; split
	// negative answers produce a high tier and more entropy.
	responses := likertResponses("happy", 0, "Strongly Agree", "Strongly Agree", "Strongly Agree")
	responses = append(responses, likertResponses("angry", 0, "Strongly Disagree", "Disagree", "Neutral")...)

	cfg := BuildDashboard(questions, responses)

	require.Len(t, cfg.Questions, 2)
	assert.Equal(t, "angry", cfg.Questions[0].Question.ID)
}
