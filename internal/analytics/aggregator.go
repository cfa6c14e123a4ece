package analytics

import (
	"encoding/json"
	"strings"

	"github.com/montanaflynn/stats"

	"panorama/internal/model"
)

// likertScores is the fixed five-point mapping used to score
// agreement-scale answers.
var likertScores = map[string]float64{
	"Strongly Disagree": 0.0,
	"Disagree":          0.25,
	"Neutral":           0.5,
	"Agree":             0.75,
	"Strongly Agree":    1.0,
}

// Keyword lexicons for scoring free-vocabulary choice answers.
// Matched as lowercase substrings.
var (
	positiveWords = []string{"excellent", "great", "good", "amazing", "love", "awesome", "fantastic", "perfect", "enjoyed"}
	negativeWords = []string{"poor", "bad", "terrible", "awful", "hate", "disappointing", "worst", "boring"}
)

// scoreAnswerValue maps one observed answer value to a [0,1] sentiment
// contribution. Likert vocabulary wins, then keyword match (0.8
// positive, 0.2 negative), then position in the question's option list
// interpolated from 1.0 (first) down to 0.4 (last), then neutral 0.5.
func scoreAnswerValue(q *model.Question, value string) float64 {
	if s, ok := likertScores[value]; ok {
		return s
	}
	lower := strings.ToLower(value)
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			return 0.8
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			return 0.2
		}
	}
	if n := len(q.Options); n > 0 {
		for i, opt := range q.Options {
			if opt == value {
				if n == 1 {
					return 1.0
				}
				return 1.0 - 0.6*float64(i)/float64(n-1)
			}
		}
	}
	return 0.5
}

// Aggregate reduces the raw response rows of one panorama into the
// per-question aggregate for q. Rows belonging to other questions are
// ignored; malformed rows are dropped, never surfaced as errors.
func Aggregate(q *model.Question, responses []model.Response) model.AggregatedData {
	agg := model.AggregatedData{
		QuestionID:  q.ID,
		Counts:      make(map[string]float64),
		Percentages: make(map[string]float64),
	}

	var rows []model.Response
	for _, r := range responses {
		if r.QuestionID == q.ID {
			rows = append(rows, r)
		}
	}

	switch q.Type {
	case model.QuestionTypeLikert, model.QuestionTypeSingleChoice:
		aggregateChoices(q, rows, &agg, true)
	case model.QuestionTypeMultiChoice:
		aggregateChoices(q, rows, &agg, false)
	case model.QuestionTypeBudget:
		aggregateBudget(rows, &agg)
	case model.QuestionTypeShortText, model.QuestionTypeLongText:
		agg.Total = len(rows)
	default:
		agg.Total = len(rows)
	}

	return agg
}

// aggregateChoices counts occurrences of each answer value. For
// multi-choice each selected option arrives as its own row, so row
// count is the percentage denominator there too. Sentiment is the
// count-weighted mean of per-value scores; multi-choice produces none.
func aggregateChoices(q *model.Question, rows []model.Response, agg *model.AggregatedData, withSentiment bool) {
	for _, r := range rows {
		if r.Text == "" {
			continue
		}
		agg.Counts[r.Text]++
		agg.Total++
	}
	if agg.Total == 0 {
		return
	}

	total := float64(agg.Total)
	for value, count := range agg.Counts {
		agg.Percentages[value] = count / total
	}

	if withSentiment {
		var weighted float64
		for value, count := range agg.Counts {
			weighted += scoreAnswerValue(q, value) * count
		}
		score := weighted / total
		agg.SentimentScore = &score
	}
}

// aggregateBudget parses each row's JSON allocation map and sums the
// allocated amounts per target. Counts carries summed amounts,
// Occurrences the number of rows mentioning each target, Averages the
// per-target mean, and Average the mean of those means. Rows that do
// not parse are skipped.
func aggregateBudget(rows []model.Response, agg *model.AggregatedData) {
	agg.Occurrences = make(map[string]int)
	agg.Averages = make(map[string]float64)

	for _, r := range rows {
		var allocations map[string]float64
		if err := json.Unmarshal([]byte(r.Text), &allocations); err != nil {
			continue
		}
		for target, amount := range allocations {
			agg.Counts[target] += amount
			agg.Occurrences[target]++
		}
		agg.Total++
	}
	if agg.Total == 0 {
		return
	}

	var allocated float64
	for _, amount := range agg.Counts {
		allocated += amount
	}
	if allocated > 0 {
		for target, amount := range agg.Counts {
			agg.Percentages[target] = amount / allocated
		}
	}

	averages := make([]float64, 0, len(agg.Counts))
	for target, amount := range agg.Counts {
		avg := 0.0
		if occ := agg.Occurrences[target]; occ > 0 {
			avg = amount / float64(occ)
		}
		agg.Averages[target] = avg
		averages = append(averages, avg)
	}
	if mean, err := stats.Mean(averages); err == nil {
		agg.Average = &mean
	}
}
