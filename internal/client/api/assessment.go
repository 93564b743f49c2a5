package api

import (
	"context"

	"github.com/fitlab/fitadmin/internal/models"
)

// AssessmentService maps the guided web-assessment endpoints. The flow is
// a linear walk driven entirely by server responses: read the status, fetch
// the current question, submit an answer, repeat until the server reports
// completion. The client keeps no state of its own between calls.
type AssessmentService struct {
	c *Client
}

// Status returns where the current user stands in the assessment.
func (s *AssessmentService) Status(ctx context.Context) (*models.WebAssessmentStatus, error) {
	var res models.WebAssessmentStatus
	if err := s.c.get(ctx, "/web-assessment/status", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Start begins a new assessment and returns its first question.
func (s *AssessmentService) Start(ctx context.Context) (*models.AssessmentQuestion, error) {
	var res envelope[models.AssessmentQuestion]
	if err := s.c.post(ctx, "/web-assessment/start", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Question returns the question the assessment is currently waiting on.
func (s *AssessmentService) Question(ctx context.Context) (*models.AssessmentQuestion, error) {
	var res envelope[models.AssessmentQuestion]
	if err := s.c.get(ctx, "/web-assessment/question", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// SubmitResponse records an answer and returns the updated status plus the
// next question, if any.
func (s *AssessmentService) SubmitResponse(ctx context.Context, answer models.AssessmentAnswer) (*models.SubmitResponseResult, error) {
	var res models.SubmitResponseResult
	if err := s.c.post(ctx, "/web-assessment/responses", answer, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Resume reopens an abandoned assessment at the question it stopped on.
func (s *AssessmentService) Resume(ctx context.Context) (*models.WebAssessmentStatus, error) {
	var res models.WebAssessmentStatus
	if err := s.c.post(ctx, "/web-assessment/resume", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Abandon marks the in-progress assessment as abandoned.
func (s *AssessmentService) Abandon(ctx context.Context) (*models.WebAssessmentStatus, error) {
	var res models.WebAssessmentStatus
	if err := s.c.post(ctx, "/web-assessment/abandon", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
