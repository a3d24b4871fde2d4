package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/kv"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

var (
	scorePositionID     string
	scoreUserID         string
	scoreApplicationKey string
	scoreConfigPath     string
	scoreJSONLogs       bool
	scoreDebug          bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one application's resume against its position requirements",
	Long: `Schedules a background scoring run for the given application and waits for
in-flight runs to drain before exiting. The outcome is written onto the stored
application record; use the status command to read it.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scorePositionID, "position-id", "", "Job position ID (required)")
	scoreCmd.Flags().StringVar(&scoreUserID, "user-id", "", "Candidate user ID (required)")
	scoreCmd.Flags().StringVar(&scoreApplicationKey, "application-key", "", "Application record key (defaults to the platform convention)")
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit logs as JSON")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug logging")
	_ = scoreCmd.MarkFlagRequired("position-id")
	_ = scoreCmd.MarkFlagRequired("user-id")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(scoreConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(scoreJSONLogs, scoreDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()

	store, err := kv.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	// The embedding model is expensive to reach; construct it lazily so a
	// run that fails before scoring never touches it.
	provider := embedding.NewLazyProvider(func(ctx context.Context) (embedding.Provider, error) {
		return embedding.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	})

	orc := pipeline.New(store, provider, log, pipeline.Config{
		Thresholds: scoring.Thresholds{
			Strength:    cfg.StrengthThreshold,
			Improvement: cfg.ImprovementThreshold,
		},
		EmbedTimeout: cfg.EmbedTimeout(),
		RunTimeout:   cfg.RunTimeout(),
	})

	applicationKey := scoreApplicationKey
	if applicationKey == "" {
		applicationKey = kv.ApplicationKey(scorePositionID, scoreUserID)
	}

	orc.ScoreResumeInBackground(applicationKey, scorePositionID, scoreUserID)

	// Scoring is fire-and-forget for the submission flow; this process is
	// only a host for the detached run and must outlive it.
	orc.Wait()
	return nil
}
