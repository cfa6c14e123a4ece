package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"panorama/internal/model"
)

const maxQuickWins = 3

// BuildDashboard runs the full analytics pipeline for one panorama:
// aggregate every question, generate its insight, rank by priority,
// and extract overall stats plus quick-win highlights. Pure over its
// inputs; empty question or response lists yield an empty but
// renderable dashboard.
func BuildDashboard(questions []model.Question, responses []model.Response) *model.DashboardConfig {
	submissions := make(map[string]struct{})
	for _, r := range responses {
		submissions[r.SubmissionID] = struct{}{}
	}
	totalSubmissions := len(submissions)

	ranked := make([]model.QuestionWithPriority, 0, len(questions))
	for _, q := range questions {
		agg := Aggregate(&q, responses)
		insight := GenerateInsight(&q, &agg, totalSubmissions)
		score := PriorityScore(&q, &agg, &insight, totalSubmissions)
		ranked = append(ranked, model.QuestionWithPriority{
			Question:      q,
			Aggregated:    agg,
			Insight:       insight,
			PriorityScore: score,
		})
	}
	// Stable: equal scores keep question order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})

	return &model.DashboardConfig{
		Questions: ranked,
		QuickWins: quickWins(ranked, model.SentimentPositive),
		Concerns:  quickWins(ranked, model.SentimentNegative),
		Overall:   overallStats(ranked, len(responses), totalSubmissions),
	}
}

// overallStats averages sentiment across every question that produced
// a score (0.5 when none did) and records the extremes.
func overallStats(ranked []model.QuestionWithPriority, totalResponses, totalSubmissions int) model.OverallStats {
	overall := model.OverallStats{
		TotalResponses:      totalResponses,
		TotalSubmissions:    totalSubmissions,
		OverallSatisfaction: 0.5,
	}

	var scores []float64
	bestScore, worstScore := -1.0, 2.0
	for _, item := range ranked {
		if item.Aggregated.SentimentScore == nil {
			continue
		}
		score := *item.Aggregated.SentimentScore
		scores = append(scores, score)
		if score > bestScore {
			bestScore = score
			overall.TopPositiveID = item.Question.ID
		}
		if score < worstScore {
			worstScore = score
			overall.TopNegativeID = item.Question.ID
		}
	}
	if mean, err := stats.Mean(scores); err == nil {
		overall.OverallSatisfaction = mean
	}
	return overall
}

// quickWins picks up to three questions whose label matches, ordered
// by most extreme sentiment first. Questions without a sentiment
// score never qualify.
func quickWins(ranked []model.QuestionWithPriority, label model.SentimentLabel) []model.QuickWin {
	var matched []model.QuestionWithPriority
	for _, item := range ranked {
		if item.Insight.Sentiment == label && item.Aggregated.SentimentScore != nil {
			matched = append(matched, item)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if label == model.SentimentNegative {
			return *matched[i].Aggregated.SentimentScore < *matched[j].Aggregated.SentimentScore
		}
		return *matched[i].Aggregated.SentimentScore > *matched[j].Aggregated.SentimentScore
	})
	if len(matched) > maxQuickWins {
		matched = matched[:maxQuickWins]
	}

	wins := make([]model.QuickWin, 0, len(matched))
	for _, item := range matched {
		score := *item.Aggregated.SentimentScore
		pct := score * 100
		if label == model.SentimentNegative {
			pct = (1 - score) * 100
		}
		wins = append(wins, model.QuickWin{
			QuestionID:   item.Question.ID,
			QuestionText: item.Question.Text,
			Insight:      item.Insight.Insight,
			Score:        score,
			Percent:      fmt.Sprintf("%d%%", int(math.Round(pct))),
		})
	}
	return wins
}
