package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"panorama/internal/cache"
	"panorama/internal/model"
	"panorama/internal/repository"
)

var (
	ErrPanoramaNotFound = errors.New("panorama not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// PanoramaService handles panorama CRUD operations
type PanoramaService struct {
	panoramaRepo repository.PanoramaRepo
	responseRepo repository.ResponseRepo
	summaryCache cache.SummaryCache
}

// NewPanoramaService creates a new panorama service
func NewPanoramaService(panoramaRepo repository.PanoramaRepo, responseRepo repository.ResponseRepo, summaryCache cache.SummaryCache) *PanoramaService {
	return &PanoramaService{
		panoramaRepo: panoramaRepo,
		responseRepo: responseRepo,
		summaryCache: summaryCache,
	}
}

// Create creates a new panorama, assigning question ids and display order
func (s *PanoramaService) Create(ctx context.Context, p *model.Panorama) (string, error) {
	normalizeQuestions(p.Questions)
	return s.panoramaRepo.Create(ctx, p)
}

// GetByID retrieves a panorama by ID
func (s *PanoramaService) GetByID(ctx context.Context, id string) (*model.Panorama, error) {
	return s.panoramaRepo.GetByID(ctx, id)
}

// GetByOrganizerID retrieves all panoramas for an organizer
func (s *PanoramaService) GetByOrganizerID(ctx context.Context, organizerID string) ([]*model.Panorama, error) {
	return s.panoramaRepo.GetByOrganizerID(ctx, organizerID)
}

// Update replaces an existing panorama and invalidates its cached summary
func (s *PanoramaService) Update(ctx context.Context, p *model.Panorama) error {
	existing, err := s.panoramaRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPanoramaNotFound
	}

	p.OrganizerID = existing.OrganizerID
	p.CreatedAt = existing.CreatedAt
	normalizeQuestions(p.Questions)

	if err := s.panoramaRepo.Update(ctx, p); err != nil {
		return err
	}
	return s.summaryCache.Clear(ctx, p.ID)
}

// Delete removes a panorama together with its responses and cached summaries
func (s *PanoramaService) Delete(ctx context.Context, id string) error {
	existing, err := s.panoramaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPanoramaNotFound
	}

	if err := s.panoramaRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.responseRepo.DeleteByPanoramaID(ctx, id); err != nil {
		return err
	}
	return s.summaryCache.Clear(ctx, id)
}

// normalizeQuestions assigns ids to new questions and renumbers the
// display order sequentially so it stays unique within the panorama.
func normalizeQuestions(questions []model.Question) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
		questions[i].Order = i
	}
}
