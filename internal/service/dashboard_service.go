package service

import (
	"context"

	"panorama/internal/analytics"
	"panorama/internal/model"
	"panorama/internal/repository"
)

// DashboardService assembles the analytics dashboard for a panorama.
// All computation happens in the analytics package; this service only
// loads the snapshot and attaches text analysis for free-text
// questions.
type DashboardService struct {
	panoramaRepo repository.PanoramaRepo
	responseRepo repository.ResponseRepo
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(panoramaRepo repository.PanoramaRepo, responseRepo repository.ResponseRepo) *DashboardService {
	return &DashboardService{
		panoramaRepo: panoramaRepo,
		responseRepo: responseRepo,
	}
}

// TextAnalysis bundles every text metric for one free-text question
type TextAnalysis struct {
	QuestionID string                `json:"questionId"`
	Stats      *model.TextStats      `json:"stats"`
	Phrases    []model.PhraseCount   `json:"phrases"`
	Groups     []model.ResponseGroup `json:"groups"`
}

// GetDashboard builds the full dashboard configuration for a panorama
func (s *DashboardService) GetDashboard(ctx context.Context, panoramaID string) (*model.DashboardConfig, error) {
	p, err := s.panoramaRepo.GetByID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPanoramaNotFound
	}

	responses, err := s.responseRepo.GetByPanoramaID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}

	cfg := analytics.BuildDashboard(p.Questions, responses)

	cfg.TextAnalyses = make(map[string]*model.TextStats)
	for _, q := range p.Questions {
		if !q.Type.IsText() {
			continue
		}
		cfg.TextAnalyses[q.ID] = analytics.AnalyzeText(questionTexts(q.ID, responses))
	}

	return cfg, nil
}

// GetTextAnalysis returns word, phrase and similarity statistics for
// one free-text question.
func (s *DashboardService) GetTextAnalysis(ctx context.Context, panoramaID, questionID string) (*TextAnalysis, error) {
	p, err := s.panoramaRepo.GetByID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPanoramaNotFound
	}
	q := p.QuestionByID(questionID)
	if q == nil || !q.Type.IsText() {
		return nil, ErrQuestionNotFound
	}

	responses, err := s.responseRepo.GetByQuestionID(ctx, panoramaID, questionID)
	if err != nil {
		return nil, err
	}
	texts := questionTexts(questionID, responses)

	return &TextAnalysis{
		QuestionID: questionID,
		Stats:      analytics.AnalyzeText(texts),
		Phrases:    analytics.ExtractPhrases(texts, 0),
		Groups:     analytics.GroupSimilar(texts, 0),
	}, nil
}

func questionTexts(questionID string, responses []model.Response) []string {
	var texts []string
	for _, r := range responses {
		if r.QuestionID == questionID && r.Text != "" {
			texts = append(texts, r.Text)
		}
	}
	return texts
}
