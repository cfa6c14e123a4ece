package analytics

import (
	"fmt"
	"sort"

	"panorama/internal/model"
)

// GenerateInsight turns one question's aggregate into a short
// narrative insight with a sentiment label and priority tier.
// totalSubmissions is the number of distinct respondents across the
// whole panorama. It always produces a renderable insight, falling
// back to a generic response-rate statement when the aggregate is too
// thin to say anything specific.
func GenerateInsight(q *model.Question, agg *model.AggregatedData, totalSubmissions int) model.QuestionInsight {
	switch q.Type {
	case model.QuestionTypeLikert:
		if agg.SentimentScore == nil || agg.Total == 0 {
			return defaultInsight(agg, totalSubmissions)
		}
		return likertInsight(q, agg)
	case model.QuestionTypeSingleChoice:
		if agg.SentimentScore == nil || len(agg.Counts) == 0 {
			return defaultInsight(agg, totalSubmissions)
		}
		return singleChoiceInsight(agg)
	case model.QuestionTypeMultiChoice:
		if len(agg.Counts) == 0 {
			return defaultInsight(agg, totalSubmissions)
		}
		return multiChoiceInsight(agg)
	case model.QuestionTypeBudget:
		if len(agg.Averages) == 0 {
			return defaultInsight(agg, totalSubmissions)
		}
		return budgetInsight(q, agg)
	case model.QuestionTypeShortText, model.QuestionTypeLongText:
		return textInsight(agg)
	default:
		return defaultInsight(agg, totalSubmissions)
	}
}

// likertInsight classifies by fixed sentiment bands. The cutoffs are
// exact: >=0.75 strongly positive, [0.6,0.75) mildly positive,
// <=0.4 strongly negative, (0.4,0.5] mixed-negative, the rest
// balanced with priority high below 0.55 and medium above.
func likertInsight(q *model.Question, agg *model.AggregatedData) model.QuestionInsight {
	score := *agg.SentimentScore
	total := float64(agg.Total)
	agreePct := (agg.Counts["Agree"] + agg.Counts["Strongly Agree"]) / total * 100
	disagreePct := (agg.Counts["Disagree"] + agg.Counts["Strongly Disagree"]) / total * 100

	switch {
	case score >= 0.75:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("Strong agreement: %.0f%% of respondents agree or strongly agree.", agreePct),
			Explanation: fmt.Sprintf("\"%s\" is a clear strength with an average sentiment of %.2f. Whatever drives this is working.", q.Text, score),
			Sentiment:   model.SentimentPositive,
			Priority:    model.PriorityLow,
		}
	case score >= 0.6:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("Mostly positive: %.0f%% of respondents lean toward agreement.", agreePct),
			Explanation: fmt.Sprintf("Sentiment on \"%s\" averages %.2f. Solid, with some room to improve.", q.Text, score),
			Sentiment:   model.SentimentPositive,
			Priority:    model.PriorityLow,
		}
	case score <= 0.4:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("Significant concern: %.0f%% of respondents disagree or strongly disagree.", disagreePct),
			Explanation: fmt.Sprintf("\"%s\" scores %.2f, well below neutral. This area needs attention before the next event.", q.Text, score),
			Sentiment:   model.SentimentNegative,
			Priority:    model.PriorityHigh,
		}
	case score <= 0.5:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("Mixed with a negative tilt: %.0f%% of respondents disagree.", disagreePct),
			Explanation: fmt.Sprintf("Responses to \"%s\" are split but lean negative (%.2f). Worth digging into the free-text feedback.", q.Text, score),
			Sentiment:   model.SentimentMixed,
			Priority:    model.PriorityHigh,
		}
	default:
		priority := model.PriorityMedium
		if score < 0.55 {
			priority = model.PriorityHigh
		}
		return model.QuestionInsight{
			Insight:     "Opinions are divided on this question.",
			Explanation: fmt.Sprintf("\"%s\" averages %.2f with no clear consensus either way.", q.Text, score),
			Sentiment:   model.SentimentNeutral,
			Priority:    priority,
		}
	}
}

func singleChoiceInsight(agg *model.AggregatedData) model.QuestionInsight {
	score := *agg.SentimentScore
	mode, modePct := modalValue(agg)

	switch {
	case score >= 0.7:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("\"%s\" leads with %.0f%% of responses, a positive signal.", mode, modePct),
			Explanation: fmt.Sprintf("The dominant answer carries favorable sentiment (%.2f overall).", score),
			Sentiment:   model.SentimentPositive,
			Priority:    model.PriorityLow,
		}
	case score <= 0.4:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("\"%s\" leads with %.0f%% of responses, pointing to dissatisfaction.", mode, modePct),
			Explanation: fmt.Sprintf("Overall sentiment sits at %.2f. The most common answer is an unfavorable one.", score),
			Sentiment:   model.SentimentNegative,
			Priority:    model.PriorityHigh,
		}
	default:
		return model.QuestionInsight{
			Insight:     fmt.Sprintf("Responses cluster around \"%s\" (%.0f%%) without a strong lean.", mode, modePct),
			Explanation: fmt.Sprintf("Sentiment averages %.2f, neither clearly good nor bad.", score),
			Sentiment:   model.SentimentMixed,
			Priority:    model.PriorityMedium,
		}
	}
}

// multiChoiceInsight names the top three selections. Multi-select
// answers express preference, not satisfaction, so the label is a
// fixed positive/medium regardless of what was selected.
func multiChoiceInsight(agg *model.AggregatedData) model.QuestionInsight {
	top := topValues(agg, 3)
	topPct := agg.Percentages[top[0]] * 100

	return model.QuestionInsight{
		Insight:     fmt.Sprintf("Top selections: %s. \"%s\" appears in %.0f%% of picks.", joinQuoted(top), top[0], topPct),
		Explanation: fmt.Sprintf("Across %d selections these options dominate. Consider emphasizing them next time.", agg.Total),
		Sentiment:   model.SentimentPositive,
		Priority:    model.PriorityMedium,
	}
}

func budgetInsight(q *model.Question, agg *model.AggregatedData) model.QuestionInsight {
	var bestTarget string
	bestAvg := -1.0
	targets := make([]string, 0, len(agg.Averages))
	for target := range agg.Averages {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	for _, target := range targets {
		if avg := agg.Averages[target]; avg > bestAvg {
			bestAvg = avg
			bestTarget = target
		}
	}

	name := bestTarget
	if q.Budget != nil {
		for _, t := range q.Budget.Targets {
			if t.ID == bestTarget {
				name = t.Name
				break
			}
		}
	}

	return model.QuestionInsight{
		Insight:     fmt.Sprintf("\"%s\" drew the highest average allocation (%.0f).", name, bestAvg),
		Explanation: fmt.Sprintf("Respondents put the most budget behind \"%s\" across %d submissions.", name, agg.Total),
		Sentiment:   model.SentimentPositive,
		Priority:    model.PriorityMedium,
	}
}

func textInsight(agg *model.AggregatedData) model.QuestionInsight {
	if agg.Total == 0 {
		return model.QuestionInsight{
			Insight:     "No responses collected yet.",
			Explanation: "There is nothing to analyze for this question so far.",
			Sentiment:   model.SentimentNeutral,
			Priority:    model.PriorityLow,
		}
	}
	return model.QuestionInsight{
		Insight:     fmt.Sprintf("%d responses collected. Review them for recurring themes.", agg.Total),
		Explanation: "Free-text answers carry the most specific feedback. The word analysis below highlights what comes up most.",
		Sentiment:   model.SentimentNeutral,
		Priority:    model.PriorityMedium,
	}
}

// defaultInsight is the fallback when a question's aggregate is too
// sparse for a type-specific statement.
func defaultInsight(agg *model.AggregatedData, totalSubmissions int) model.QuestionInsight {
	return model.QuestionInsight{
		Insight:     fmt.Sprintf("Collected %d responses from %d submissions.", agg.Total, totalSubmissions),
		Explanation: "Not enough structured data for a specific insight on this question yet.",
		Sentiment:   model.SentimentNeutral,
		Priority:    model.PriorityLow,
	}
}

// modalValue returns the most frequent answer value and its share of
// total as a percentage. Ties break alphabetically for determinism.
func modalValue(agg *model.AggregatedData) (string, float64) {
	values := topValues(agg, 1)
	if len(values) == 0 {
		return "", 0
	}
	return values[0], agg.Percentages[values[0]] * 100
}

// topValues returns up to n answer values ordered by descending count,
// ties broken alphabetically.
func topValues(agg *model.AggregatedData, n int) []string {
	values := make([]string, 0, len(agg.Counts))
	for v := range agg.Counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if agg.Counts[values[i]] != agg.Counts[values[j]] {
			return agg.Counts[values[i]] > agg.Counts[values[j]]
		}
		return values[i] < values[j]
	})
	if len(values) > n {
		values = values[:n]
	}
	return values
}

func joinQuoted(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += "\"" + v + "\""
	}
	return out
}
