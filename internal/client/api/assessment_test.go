package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fitlab/fitadmin/internal/models"
)

// fakeAssessmentServer walks a fixed two-question assessment. All state
// lives here; the client under test must hold none of its own.
type fakeAssessmentServer struct {
	mu       sync.Mutex
	state    models.AssessmentState
	question int
	answers  []models.AssessmentAnswer
}

var assessmentQuestions = []models.AssessmentQuestion{
	{
		ID:       101,
		Phase:    "goals",
		Text:     "What is your primary goal?",
		Kind:     models.QuestionSingleChoice,
		Required: true,
		Options: []models.AssessmentOption{
			{Value: "lose_weight", Label: "Lose weight"},
			{Value: "gain_muscle", Label: "Gain muscle"},
		},
	},
	{
		ID:       102,
		Phase:    "lifestyle",
		Text:     "Which days can you train?",
		Kind:     models.QuestionMultiChoice,
		Required: true,
		Options: []models.AssessmentOption{
			{Value: "mon", Label: "Monday"},
			{Value: "wed", Label: "Wednesday"},
			{Value: "fri", Label: "Friday"},
		},
	},
}

func newFakeAssessmentServer() *fakeAssessmentServer {
	return &fakeAssessmentServer{state: models.AssessmentNotStarted}
}

func (f *fakeAssessmentServer) status() models.WebAssessmentStatus {
	st := models.WebAssessmentStatus{
		AssessmentID: 7,
		State:        f.state,
		Progress:     f.question * 100 / len(assessmentQuestions),
	}
	if f.question < len(assessmentQuestions) {
		st.Phase = assessmentQuestions[f.question].Phase
		st.CurrentQuestionID = assessmentQuestions[f.question].ID
	}
	return st
}

func (f *fakeAssessmentServer) router() http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	r := chi.NewRouter()
	r.Get("/web-assessment/status", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, f.status())
	})
	r.Post("/web-assessment/start", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.state != models.AssessmentNotStarted {
			w.WriteHeader(http.StatusConflict)
			writeJSON(w, map[string]string{"message": "Assessment already started"})
			return
		}
		f.state = models.AssessmentInProgress
		writeJSON(w, map[string]any{"data": assessmentQuestions[0]})
	})
	r.Get("/web-assessment/question", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.state != models.AssessmentInProgress {
			w.WriteHeader(http.StatusConflict)
			writeJSON(w, map[string]string{"message": "No question pending"})
			return
		}
		writeJSON(w, map[string]any{"data": assessmentQuestions[f.question]})
	})
	r.Post("/web-assessment/responses", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var answer models.AssessmentAnswer
		if err := json.NewDecoder(req.Body).Decode(&answer); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"message": "Invalid answer"})
			return
		}
		f.answers = append(f.answers, answer)
		f.question++

		res := models.SubmitResponseResult{}
		if f.question >= len(assessmentQuestions) {
			f.state = models.AssessmentCompleted
			res.Completed = true
		} else {
			q := assessmentQuestions[f.question]
			res.NextQuestion = &q
		}
		res.Status = f.status()
		writeJSON(w, res)
	})
	r.Post("/web-assessment/abandon", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.state = models.AssessmentAbandoned
		writeJSON(w, f.status())
	})
	r.Post("/web-assessment/resume", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.state != models.AssessmentAbandoned {
			w.WriteHeader(http.StatusConflict)
			writeJSON(w, map[string]string{"message": "Nothing to resume"})
			return
		}
		f.state = models.AssessmentInProgress
		writeJSON(w, f.status())
	})
	return r
}

func TestAssessment_FullWalk(t *testing.T) {
	srv := newFakeAssessmentServer()
	c, _ := newTestClient(t, srv.router(), WithTokenSource(staticTokens{tok: "t"}))
	ctx := context.Background()

	status, err := c.Assessment.Status(ctx)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.State != models.AssessmentNotStarted {
		t.Fatalf("State = %q, want not_started", status.State)
	}

	q1, err := c.Assessment.Start(ctx)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if q1.ID != 101 || q1.Kind != models.QuestionSingleChoice {
		t.Fatalf("unexpected first question: %+v", q1)
	}

	res, err := c.Assessment.SubmitResponse(ctx, models.AssessmentAnswer{
		QuestionID: q1.ID,
		Value:      "gain_muscle",
	})
	if err != nil {
		t.Fatalf("SubmitResponse failed: %v", err)
	}
	if res.Completed || res.NextQuestion == nil || res.NextQuestion.ID != 102 {
		t.Fatalf("unexpected submit result: %+v", res)
	}

	res, err = c.Assessment.SubmitResponse(ctx, models.AssessmentAnswer{
		QuestionID: res.NextQuestion.ID,
		Values:     []string{"mon", "fri"},
	})
	if err != nil {
		t.Fatalf("SubmitResponse failed: %v", err)
	}
	if !res.Completed || res.NextQuestion != nil {
		t.Fatalf("expected completion, got %+v", res)
	}
	if res.Status.State != models.AssessmentCompleted || res.Status.Progress != 100 {
		t.Errorf("final status = %+v", res.Status)
	}

	if len(srv.answers) != 2 || srv.answers[1].Values[0] != "mon" {
		t.Errorf("server recorded answers: %+v", srv.answers)
	}
}

func TestAssessment_AbandonResume(t *testing.T) {
	srv := newFakeAssessmentServer()
	c, _ := newTestClient(t, srv.router(), WithTokenSource(staticTokens{tok: "t"}))
	ctx := context.Background()

	if _, err := c.Assessment.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status, err := c.Assessment.Abandon(ctx)
	if err != nil {
		t.Fatalf("Abandon failed: %v", err)
	}
	if status.State != models.AssessmentAbandoned {
		t.Fatalf("State = %q, want abandoned", status.State)
	}

	status, err = c.Assessment.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if status.State != models.AssessmentInProgress {
		t.Fatalf("State = %q, want in_progress", status.State)
	}

	// The question is exactly where it was left.
	q, err := c.Assessment.Question(ctx)
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}
	if q.ID != 101 {
		t.Errorf("resumed at question %d, want 101", q.ID)
	}
}

func TestAssessment_ResumeWithoutAbandon(t *testing.T) {
	srv := newFakeAssessmentServer()
	rec := &recordingNotifier{}
	c, _ := newTestClient(t, srv.router(),
		WithTokenSource(staticTokens{tok: "t"}),
		WithNotifier(rec),
	)

	_, err := c.Assessment.Resume(context.Background())
	apiErr, ok := AsError(err)
	if !ok || apiErr.Status != http.StatusConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(rec.errors) != 1 || rec.errors[0] != "Nothing to resume" {
		t.Errorf("notifications = %v", rec.errors)
	}
}
