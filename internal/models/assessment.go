package models

import "time"

// AssessmentState is the server-reported state of a web assessment.
type AssessmentState string

const (
	AssessmentNotStarted AssessmentState = "not_started"
	AssessmentInProgress AssessmentState = "in_progress"
	AssessmentAbandoned  AssessmentState = "abandoned"
	AssessmentCompleted  AssessmentState = "completed"
)

// WebAssessmentStatus is the server's view of where the client stands in
// the multi-phase assessment. The client holds no state machine of its own;
// every decision is resolved by re-reading this record.
type WebAssessmentStatus struct {
	AssessmentID      int64           `json:"assessment_id,omitempty"`
	State             AssessmentState `json:"state"`
	Phase             string          `json:"phase,omitempty"`
	CurrentQuestionID int64           `json:"current_question_id,omitempty"`
	Progress          int             `json:"progress"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
}

// QuestionKind tells the consumer how to render and answer a question.
type QuestionKind string

const (
	QuestionSingleChoice QuestionKind = "single_choice"
	QuestionMultiChoice  QuestionKind = "multi_choice"
	QuestionNumber       QuestionKind = "number"
	QuestionText         QuestionKind = "text"
)

// AssessmentQuestion is the current question of an in-progress assessment.
type AssessmentQuestion struct {
	ID       int64              `json:"id"`
	Phase    string             `json:"phase"`
	Text     string             `json:"text"`
	Kind     QuestionKind       `json:"kind"`
	Options  []AssessmentOption `json:"options,omitempty"`
	Required bool               `json:"required"`
}

// AssessmentOption is one selectable answer for a choice question.
type AssessmentOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AssessmentAnswer is the payload for submitting a response. Value carries
// single answers; Values carries multi-choice selections. Whichever is unset
// is omitted from the request.
type AssessmentAnswer struct {
	QuestionID int64    `json:"question_id"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// SubmitResponseResult is returned after submitting an answer. NextQuestion
// is nil once the assessment is complete.
type SubmitResponseResult struct {
	Status       WebAssessmentStatus `json:"status"`
	NextQuestion *AssessmentQuestion `json:"next_question,omitempty"`
	Completed    bool                `json:"completed"`
}
