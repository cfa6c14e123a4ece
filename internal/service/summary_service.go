package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"panorama/internal/analytics"
	"panorama/internal/cache"
	"panorama/internal/config"
	"panorama/internal/model"
	"panorama/internal/repository"
)

const summarySystemPrompt = `You are an analyst writing executive summaries of event feedback surveys.
Respond with a JSON object: {"summary": "...", "keyMetrics": [{"label": "...", "value": "..."}]}.
The summary is 2-3 plain sentences an event organizer can act on. Key metrics are at most four headline numbers.`

// SummaryService generates the LLM executive summary for a panorama.
// Results are cached per response count; when the API key is unset or
// the call fails it falls back to a deterministic summary built from
// the aggregated statistics.
type SummaryService struct {
	panoramaRepo repository.PanoramaRepo
	responseRepo repository.ResponseRepo
	summaryCache cache.SummaryCache
	config       *config.AIConfig
	client       *openai.Client
}

// NewSummaryService creates a new summary service
func NewSummaryService(panoramaRepo repository.PanoramaRepo, responseRepo repository.ResponseRepo, summaryCache cache.SummaryCache) *SummaryService {
	cfg := config.DefaultAIConfig()
	var client *openai.Client
	if cfg.IsEnabled() {
		client = openai.NewClient(cfg.APIKey)
	}
	return &SummaryService{
		panoramaRepo: panoramaRepo,
		responseRepo: responseRepo,
		summaryCache: summaryCache,
		config:       cfg,
		client:       client,
	}
}

// GenerateSummary returns the executive summary for a panorama,
// serving a cached copy when the response count has not changed.
func (s *SummaryService) GenerateSummary(ctx context.Context, panoramaID string) (*model.ExecutiveSummary, error) {
	p, err := s.panoramaRepo.GetByID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPanoramaNotFound
	}

	count, err := s.responseRepo.CountByPanoramaID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}
	if cached, err := s.summaryCache.GetSummary(ctx, panoramaID, count); err == nil && cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetByPanoramaID(ctx, panoramaID)
	if err != nil {
		return nil, err
	}
	dashboard := analytics.BuildDashboard(p.Questions, responses)
	samples := s.textSamples(p, responses)

	summary := s.generate(ctx, p, dashboard, samples)

	if err := s.summaryCache.SetSummary(ctx, panoramaID, count, summary); err != nil {
		log.Printf("summary cache write failed for %s: %v", panoramaID, err)
	}
	return summary, nil
}

// textSamples collects up to MaxTextSamples raw answers per free-text
// question for the prompt.
func (s *SummaryService) textSamples(p *model.Panorama, responses []model.Response) map[string][]string {
	samples := make(map[string][]string)
	for _, q := range p.Questions {
		if !q.Type.IsText() {
			continue
		}
		for _, r := range responses {
			if r.QuestionID != q.ID || r.Text == "" {
				continue
			}
			if len(samples[q.ID]) >= s.config.MaxTextSamples {
				break
			}
			samples[q.ID] = append(samples[q.ID], r.Text)
		}
	}
	return samples
}

func (s *SummaryService) generate(ctx context.Context, p *model.Panorama, dashboard *model.DashboardConfig, samples map[string][]string) *model.ExecutiveSummary {
	if s.client == nil {
		return s.fallbackSummary(p, dashboard)
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.TimeoutMS)*time.Millisecond)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: s.buildPrompt(p, dashboard, samples)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		log.Printf("summary generation failed for %s: %v", p.ID, err)
		return s.fallbackSummary(p, dashboard)
	}
	if len(resp.Choices) == 0 {
		return s.fallbackSummary(p, dashboard)
	}

	var summary model.ExecutiveSummary
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &summary); err != nil || summary.Summary == "" {
		return s.fallbackSummary(p, dashboard)
	}
	return &summary
}

func (s *SummaryService) buildPrompt(p *model.Panorama, dashboard *model.DashboardConfig, samples map[string][]string) string {
	var b strings.Builder

	name := p.EventName
	if name == "" {
		name = p.Name
	}
	fmt.Fprintf(&b, "Event: %s\n", name)
	fmt.Fprintf(&b, "Submissions: %d (%d raw answers)\n", dashboard.Overall.TotalSubmissions, dashboard.Overall.TotalResponses)
	fmt.Fprintf(&b, "Overall satisfaction: %.0f%%\n", dashboard.Overall.OverallSatisfaction*100)

	if text := s.questionLine(p, dashboard.Overall.TopPositiveID); text != "" {
		fmt.Fprintf(&b, "Strongest area: %s\n", text)
	}
	if text := s.questionLine(p, dashboard.Overall.TopNegativeID); text != "" {
		fmt.Fprintf(&b, "Biggest concern: %s\n", text)
	}

	b.WriteString("\nPer-question insights:\n")
	for _, item := range dashboard.Questions {
		fmt.Fprintf(&b, "- %s: %s\n", item.Question.Text, item.Insight.Insight)
	}

	if len(samples) > 0 {
		b.WriteString("\nSample free-text answers:\n")
		for _, q := range p.Questions {
			texts, ok := samples[q.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "Question: %s\n", q.Text)
			for _, text := range texts {
				fmt.Fprintf(&b, "  - %s\n", text)
			}
		}
	}

	return b.String()
}

func (s *SummaryService) questionLine(p *model.Panorama, questionID string) string {
	if questionID == "" {
		return ""
	}
	if q := p.QuestionByID(questionID); q != nil {
		return q.Text
	}
	return ""
}

// fallbackSummary builds a deterministic summary from the aggregated
// statistics when the LLM is unavailable.
func (s *SummaryService) fallbackSummary(p *model.Panorama, dashboard *model.DashboardConfig) *model.ExecutiveSummary {
	overall := dashboard.Overall

	name := p.EventName
	if name == "" {
		name = p.Name
	}
	summary := fmt.Sprintf("%s collected %d answers from %d submissions with an overall satisfaction of %.0f%%.",
		name, overall.TotalResponses, overall.TotalSubmissions, overall.OverallSatisfaction*100)
	if text := s.questionLine(p, overall.TopNegativeID); text != "" {
		summary += fmt.Sprintf(" The area most in need of attention is \"%s\".", text)
	}

	metrics := []model.KeyMetric{
		{Label: "Submissions", Value: fmt.Sprintf("%d", overall.TotalSubmissions)},
		{Label: "Satisfaction", Value: fmt.Sprintf("%.0f%%", overall.OverallSatisfaction*100)},
	}
	if text := s.questionLine(p, overall.TopPositiveID); text != "" {
		metrics = append(metrics, model.KeyMetric{Label: "Top strength", Value: text})
	}

	return &model.ExecutiveSummary{Summary: summary, KeyMetrics: metrics}
}
