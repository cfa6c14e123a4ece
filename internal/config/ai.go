package config

import "os"

// AIConfig holds settings for the executive summary LLM
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`

	// MaxTextSamples caps the raw free-text responses included per
	// question when prompting the summary model.
	MaxTextSamples int `json:"maxTextSamples"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		Model:          getEnv("OPENAI_MODEL", "gpt-4-turbo"),
		TimeoutMS:      30000,
		MaxTextSamples: 30,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}
