package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"panorama/internal/model"
	"panorama/internal/repository"
)

var ErrEmptySubmission = errors.New("submission contains no answers")

// ResponseService handles anonymous response collection
type ResponseService struct {
	panoramaRepo repository.PanoramaRepo
	responseRepo repository.ResponseRepo
}

// NewResponseService creates a new response service
func NewResponseService(panoramaRepo repository.PanoramaRepo, responseRepo repository.ResponseRepo) *ResponseService {
	return &ResponseService{
		panoramaRepo: panoramaRepo,
		responseRepo: responseRepo,
	}
}

// Submit stores one respondent's submission as raw response rows and
// returns the generated submission id. Multi-choice answers fan out to
// one row per selected option; budget answers are stored as a JSON
// allocation map with explicit zero entries for every target, so
// per-target occurrence counts stay comparable across submissions.
// Answers referencing unknown questions are dropped.
func (s *ResponseService) Submit(ctx context.Context, panoramaID string, submission *model.Submission) (string, error) {
	p, err := s.panoramaRepo.GetByID(ctx, panoramaID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrPanoramaNotFound
	}

	submissionID := uuid.New().String()
	now := time.Now()

	var rows []model.Response
	for _, answer := range submission.Answers {
		q := p.QuestionByID(answer.QuestionID)
		if q == nil {
			continue
		}
		for _, text := range encodeAnswer(q, answer) {
			rows = append(rows, model.Response{
				ID:           uuid.New().String(),
				PanoramaID:   panoramaID,
				QuestionID:   q.ID,
				SubmissionID: submissionID,
				Text:         text,
				CreatedAt:    now,
			})
		}
	}
	if len(rows) == 0 {
		return "", ErrEmptySubmission
	}

	if err := s.responseRepo.InsertMany(ctx, rows); err != nil {
		return "", err
	}
	return submissionID, nil
}

// GetByPanoramaID returns every raw response row of a panorama
func (s *ResponseService) GetByPanoramaID(ctx context.Context, panoramaID string) ([]model.Response, error) {
	return s.responseRepo.GetByPanoramaID(ctx, panoramaID)
}

// CountByPanoramaID returns the number of raw response rows
func (s *ResponseService) CountByPanoramaID(ctx context.Context, panoramaID string) (int64, error) {
	return s.responseRepo.CountByPanoramaID(ctx, panoramaID)
}

// encodeAnswer converts one submitted answer into the raw text values
// stored as rows for its question type. An answer that carries nothing
// usable yields no rows.
func encodeAnswer(q *model.Question, answer model.SubmissionAnswer) []string {
	switch q.Type {
	case model.QuestionTypeMultiChoice:
		var texts []string
		for _, selected := range answer.Selected {
			if selected != "" {
				texts = append(texts, selected)
			}
		}
		return texts
	case model.QuestionTypeBudget:
		if q.Budget == nil || len(answer.Allocations) == 0 {
			return nil
		}
		allocations := make(map[string]float64, len(q.Budget.Targets))
		for _, target := range q.Budget.Targets {
			allocations[target.ID] = 0
		}
		for id, amount := range answer.Allocations {
			if _, ok := allocations[id]; ok {
				allocations[id] = amount
			}
		}
		data, err := json.Marshal(allocations)
		if err != nil {
			return nil
		}
		return []string{string(data)}
	default:
		if answer.Text == "" {
			return nil
		}
		return []string{answer.Text}
	}
}
