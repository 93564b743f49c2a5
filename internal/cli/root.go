// Package cli implements the fitadmin command tree. Commands are thin
// consumers of the API client and session manager: they parse arguments,
// invoke one typed resource call, and render what comes back.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fitlab/fitadmin/internal/client/api"
	"github.com/fitlab/fitadmin/internal/client/session"
	"github.com/fitlab/fitadmin/internal/client/token"
	"github.com/fitlab/fitadmin/internal/config"
	"github.com/fitlab/fitadmin/internal/logger"
	"github.com/fitlab/fitadmin/internal/notify"
)

var (
	flagAPIURL   string
	flagTokenDir string
	flagVerbose  bool
)

// app holds the wired components every command uses.
type app struct {
	cfg      *config.Options
	log      *zap.Logger
	tokens   *token.Store
	client   *api.Client
	sess     *session.Manager
	notifier notify.Notifier
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "fitadmin",
	Short: "Admin CLI for the fitness platform API",
	Long: `fitadmin manages staff users, gyms, subscription plans, diet plans,
AI provider configurations, and guided web assessments on a fitness
platform. All state lives behind the platform API; this tool is a thin
authenticated front end over it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	defer func() {
		if current != nil {
			_ = current.log.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		// API failures were already surfaced as notifications.
		if _, ok := api.AsError(err); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "platform API origin (overrides FITADMIN_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagTokenDir, "token-dir", "", "directory the credential is stored in")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.BaseURL = flagAPIURL
	}
	if flagTokenDir != "" {
		cfg.TokenDir = flagTokenDir
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dir := cfg.TokenDir
	if dir == "" {
		if dir, err = token.DefaultDir(); err != nil {
			return nil, fmt.Errorf("resolve credential dir: %w", err)
		}
	}
	tokens := token.NewStore(dir)
	notifier := notify.NewConsole(os.Stderr)

	client, err := api.New(cfg.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		api.WithTokenSource(tokens),
		api.WithNotifier(notifier),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		tokens:   tokens,
		client:   client,
		sess:     session.NewManager(client.Auth, tokens, log),
		notifier: notifier,
	}, nil
}

// requireSession bootstraps the session and fails unless it resolves to
// authenticated. Commands that talk to protected endpoints call this first.
func requireSession(ctx context.Context) error {
	_ = current.sess.Bootstrap(ctx)
	if current.sess.State() != session.StateAuthenticated {
		return errors.New("not logged in, run `fitadmin login` first")
	}
	return nil
}
