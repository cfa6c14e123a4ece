package model

// SentimentLabel classifies a question's aggregated mood
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentMixed    SentimentLabel = "mixed"
)

// PriorityTier buckets how urgently a question deserves attention
type PriorityTier string

const (
	PriorityHigh   PriorityTier = "high"
	PriorityMedium PriorityTier = "medium"
	PriorityLow    PriorityTier = "low"
)

// AggregatedData is the per-question reduction of raw response rows.
// Counts holds occurrence counts, or summed amounts for budget
// questions. Recomputed on every dashboard render, never persisted.
type AggregatedData struct {
	QuestionID  string             `json:"questionId"`
	Counts      map[string]float64 `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
	Total       int                `json:"total"` // Response rows that contributed

	// Budget questions only
	Occurrences map[string]int     `json:"occurrences,omitempty"` // Rows contributing per target
	Averages    map[string]float64 `json:"averages,omitempty"`    // Per-target average allocation
	Average     *float64           `json:"average,omitempty"`     // Mean of per-target averages

	// Nil when the type produces no sentiment (multi-choice, budget, text)
	SentimentScore *float64 `json:"sentimentScore,omitempty"`
}

// QuestionInsight is the generated narrative for one question
type QuestionInsight struct {
	Insight     string         `json:"insight"`
	Explanation string         `json:"explanation"`
	Sentiment   SentimentLabel `json:"sentiment"`
	Priority    PriorityTier   `json:"priority"`
}

// QuestionWithPriority is the ranked unit the dashboard renders
type QuestionWithPriority struct {
	Question      Question        `json:"question"`
	Aggregated    AggregatedData  `json:"aggregated"`
	Insight       QuestionInsight `json:"insight"`
	PriorityScore float64         `json:"priorityScore"`
}

// QuickWin surfaces a strongly positive or negative question
type QuickWin struct {
	QuestionID   string  `json:"questionId"`
	QuestionText string  `json:"questionText"`
	Insight      string  `json:"insight"`
	Score        float64 `json:"score"`
	Percent      string  `json:"percent"` // Display string, e.g. "85%"
}

// OverallStats holds panorama-level statistics
type OverallStats struct {
	TotalResponses      int      `json:"totalResponses"`   // Raw rows
	TotalSubmissions    int      `json:"totalSubmissions"` // Distinct respondents
	OverallSatisfaction float64  `json:"overallSatisfaction"`
	ResponseRate        *float64 `json:"responseRate,omitempty"` // Unknown without an invite count
	TopPositiveID       string   `json:"topPositiveQuestionId,omitempty"`
	TopNegativeID       string   `json:"topNegativeQuestionId,omitempty"`
}

// DashboardConfig is the full output of one analytics run
type DashboardConfig struct {
	Questions    []QuestionWithPriority `json:"questions"` // Sorted by descending priority
	QuickWins    []QuickWin             `json:"quickWins"`
	Concerns     []QuickWin             `json:"concerns"`
	Overall      OverallStats           `json:"overall"`
	TextAnalyses map[string]*TextStats  `json:"textAnalyses,omitempty"` // Keyed by question id
}

// WordCount is one entry of a word frequency table
type WordCount struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// PhraseCount is a recurring 2- or 3-word phrase
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// TextStats is the TextAnalyzer output for one free-text question
type TextStats struct {
	Words         []WordCount `json:"words"` // Full table, descending by count
	TopWords      []WordCount `json:"topWords"`
	TotalTokens   int         `json:"totalTokens"`
	DistinctWords int         `json:"distinctWords"`
}

// ResponseGroup is one cluster of similar free-text responses
type ResponseGroup struct {
	Responses []string `json:"responses"`
}

// KeyMetric is one headline number of an executive summary
type KeyMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExecutiveSummary is the LLM-generated narrative for a panorama
type ExecutiveSummary struct {
	Summary    string      `json:"summary"`
	KeyMetrics []KeyMetric `json:"keyMetrics"`
}
