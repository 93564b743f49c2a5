package models

import "time"

// AIProvider names a supported language-model backend.
type AIProvider string

const (
	ProviderOpenAI    AIProvider = "openai"
	ProviderAnthropic AIProvider = "anthropic"
	ProviderGemini    AIProvider = "gemini"
)

// AIConfiguration is a gym-scoped language-model provider setup.
// APIKey is write-only: the server masks it in responses.
type AIConfiguration struct {
	ID          int64      `json:"id"`
	GymID       int64      `json:"gym_id"`
	Provider    AIProvider `json:"provider"`
	Model       string     `json:"model"`
	APIKey      string     `json:"api_key,omitempty"`
	Temperature float64    `json:"temperature,omitempty"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
	Enabled     bool       `json:"enabled"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateAIConfigurationRequest is the payload for creating a configuration.
type CreateAIConfigurationRequest struct {
	Provider    AIProvider `json:"provider"`
	Model       string     `json:"model"`
	APIKey      string     `json:"api_key"`
	Temperature float64    `json:"temperature,omitempty"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
	Enabled     bool       `json:"enabled"`
}

// UpdateAIConfigurationRequest is the payload for updating a configuration.
type UpdateAIConfigurationRequest struct {
	Provider    AIProvider `json:"provider,omitempty"`
	Model       string     `json:"model,omitempty"`
	APIKey      string     `json:"api_key,omitempty"`
	Temperature float64    `json:"temperature,omitempty"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
	Enabled     *bool      `json:"enabled,omitempty"`
}

// AIConfigurationTestResult reports the outcome of a connectivity test
// against the configured provider.
type AIConfigurationTestResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
}
