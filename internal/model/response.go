package model

import "time"

// Response is one raw answer row. Multi-choice answers are stored as
// one row per selected option; budget answers hold a JSON-encoded
// map of target id to allocated amount in Text.
type Response struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	PanoramaID   string    `json:"panoramaId" bson:"panoramaId"`
	QuestionID   string    `json:"questionId" bson:"questionId"`
	SubmissionID string    `json:"submissionId" bson:"submissionId"`
	Text         string    `json:"text" bson:"text"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// SubmissionAnswer is one answer inside an incoming submission
type SubmissionAnswer struct {
	QuestionID  string             `json:"questionId"`
	Text        string             `json:"text,omitempty"`        // Text, single-choice and likert answers
	Selected    []string           `json:"selected,omitempty"`    // Multi-choice selections
	Allocations map[string]float64 `json:"allocations,omitempty"` // Budget: target id -> amount
}

// Submission is one respondent's complete set of answers
type Submission struct {
	Answers []SubmissionAnswer `json:"answers"`
}
