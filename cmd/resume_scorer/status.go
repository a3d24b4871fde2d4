package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/kv"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	statusPositionID     string
	statusUserID         string
	statusApplicationKey string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read the scoring status of an application record",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusPositionID, "position-id", "", "Job position ID (required)")
	statusCmd.Flags().StringVar(&statusUserID, "user-id", "", "Candidate user ID (required)")
	statusCmd.Flags().StringVar(&statusApplicationKey, "application-key", "", "Application record key (defaults to the platform convention)")
	_ = statusCmd.MarkFlagRequired("position-id")
	_ = statusCmd.MarkFlagRequired("user-id")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()

	store, err := kv.NewPostgresStore(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	applicationKey := statusApplicationKey
	if applicationKey == "" {
		applicationKey = kv.ApplicationKey(statusPositionID, statusUserID)
	}

	raw, err := store.Get(ctx, applicationKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return fmt.Errorf("application not found: %s", applicationKey)
		}
		return err
	}

	var app types.Application
	if err := json.Unmarshal(raw, &app); err != nil {
		return fmt.Errorf("failed to decode application record: %w", err)
	}

	switch {
	case app.ScorePending():
		fmt.Println("Resume score: pending")
	case app.ScoreCompleted():
		fmt.Printf("Resume score: %d%% overall\n", app.ResumeScore.Analysis.OverallScore)
		for _, rs := range app.ResumeScore.SectionScores {
			fmt.Printf("  %3d%%  %s\n", rs.MatchPercentage, rs.Requirement)
		}
		if len(app.ResumeScore.Analysis.Strengths) > 0 {
			fmt.Printf("Strengths: %v\n", app.ResumeScore.Analysis.Strengths)
		}
		if len(app.ResumeScore.Analysis.Improvements) > 0 {
			fmt.Printf("Improvement areas: %v\n", app.ResumeScore.Analysis.Improvements)
		}
	default:
		fmt.Println("Resume score: unavailable (scoring failed)")
	}
	return nil
}
