package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/models"
)

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Walk through the guided web assessment",
}

var assessmentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show assessment progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		status, err := current.client.Assessment.Status(cmd.Context())
		if err != nil {
			return err
		}
		printStatus(status)
		return nil
	},
}

var assessmentRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer questions until the assessment completes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := requireSession(ctx); err != nil {
			return err
		}
		status, err := current.client.Assessment.Status(ctx)
		if err != nil {
			return err
		}

		// The server owns the walk; the client only fetches whatever
		// question it is pointed at next.
		var question *models.AssessmentQuestion
		switch status.State {
		case models.AssessmentCompleted:
			current.notifier.Info("Assessment already completed")
			return nil
		case models.AssessmentNotStarted:
			if question, err = current.client.Assessment.Start(ctx); err != nil {
				return err
			}
		case models.AssessmentAbandoned:
			if _, err = current.client.Assessment.Resume(ctx); err != nil {
				return err
			}
			fallthrough
		default:
			if question, err = current.client.Assessment.Question(ctx); err != nil {
				return err
			}
		}

		for question != nil {
			answer, err := promptAnswer(question)
			if err != nil {
				return err
			}
			res, err := current.client.Assessment.SubmitResponse(ctx, answer)
			if err != nil {
				return err
			}
			if res.Completed {
				current.notifier.Success("Assessment completed")
				return nil
			}
			question = res.NextQuestion
		}
		return nil
	},
}

var assessmentAbandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Abandon the in-progress assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		status, err := current.client.Assessment.Abandon(cmd.Context())
		if err != nil {
			return err
		}
		current.notifier.Info(fmt.Sprintf("Assessment abandoned at %d%%", status.Progress))
		return nil
	},
}

var assessmentResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume an abandoned assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		status, err := current.client.Assessment.Resume(cmd.Context())
		if err != nil {
			return err
		}
		printStatus(status)
		return nil
	},
}

func printStatus(status *models.WebAssessmentStatus) {
	fmt.Printf("state: %s\n", status.State)
	if status.Phase != "" {
		fmt.Printf("phase: %s\n", status.Phase)
	}
	fmt.Printf("progress: %d%%\n", status.Progress)
	if status.CompletedAt != nil {
		fmt.Printf("completed: %s\n", formatTime(*status.CompletedAt))
	}
}

// promptAnswer renders a question and reads an answer from stdin.
// Multi-choice questions accept comma-separated values. An empty answer
// is sent as-is for optional questions; presence is the only thing
// checked locally.
func promptAnswer(q *models.AssessmentQuestion) (models.AssessmentAnswer, error) {
	fmt.Printf("\n[%s] %s\n", q.Phase, q.Text)
	for _, opt := range q.Options {
		fmt.Printf("  %s - %s\n", opt.Value, opt.Label)
	}

	for {
		raw := prompt("> ")
		if raw == "" && q.Required {
			fmt.Println("An answer is required.")
			continue
		}
		answer := models.AssessmentAnswer{QuestionID: q.ID}
		if q.Kind == models.QuestionMultiChoice {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					answer.Values = append(answer.Values, v)
				}
			}
		} else {
			answer.Value = raw
		}
		return answer, nil
	}
}

func init() {
	assessmentCmd.AddCommand(assessmentStatusCmd, assessmentRunCmd,
		assessmentAbandonCmd, assessmentResumeCmd)
	rootCmd.AddCommand(assessmentCmd)
}
