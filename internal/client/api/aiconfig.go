package api

import (
	"context"
	"fmt"

	"github.com/fitlab/fitadmin/internal/models"
)

// AIConfigurationsService maps the AI provider configuration endpoints,
// which are scoped under a gym.
type AIConfigurationsService struct {
	c *Client
}

// List returns every AI configuration of a gym.
func (s *AIConfigurationsService) List(ctx context.Context, gymID int64) ([]models.AIConfiguration, error) {
	var res envelope[[]models.AIConfiguration]
	if err := s.c.get(ctx, fmt.Sprintf("/gyms/%d/ai-configurations", gymID), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Get returns a single configuration.
func (s *AIConfigurationsService) Get(ctx context.Context, gymID, configID int64) (*models.AIConfiguration, error) {
	var res envelope[models.AIConfiguration]
	if err := s.c.get(ctx, fmt.Sprintf("/gyms/%d/ai-configurations/%d", gymID, configID), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Create adds a provider configuration to a gym.
func (s *AIConfigurationsService) Create(ctx context.Context, gymID int64, req models.CreateAIConfigurationRequest) (*models.AIConfiguration, error) {
	var res envelope[models.AIConfiguration]
	if err := s.c.post(ctx, fmt.Sprintf("/gyms/%d/ai-configurations", gymID), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Update applies req to a configuration.
func (s *AIConfigurationsService) Update(ctx context.Context, gymID, configID int64, req models.UpdateAIConfigurationRequest) (*models.AIConfiguration, error) {
	var res envelope[models.AIConfiguration]
	if err := s.c.put(ctx, fmt.Sprintf("/gyms/%d/ai-configurations/%d", gymID, configID), req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Delete removes a configuration.
func (s *AIConfigurationsService) Delete(ctx context.Context, gymID, configID int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/gyms/%d/ai-configurations/%d", gymID, configID))
}

// Test asks the server to exercise the configuration against its provider
// and report the outcome.
func (s *AIConfigurationsService) Test(ctx context.Context, gymID, configID int64) (*models.AIConfigurationTestResult, error) {
	var res models.AIConfigurationTestResult
	if err := s.c.post(ctx, fmt.Sprintf("/gyms/%d/ai-configurations/%d/test", gymID, configID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
