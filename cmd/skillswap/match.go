package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"skillswap/internal/schemas"
	"skillswap/internal/service/matching"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match one user against a profile snapshot",
	Long:  "Validates a JSON profile snapshot, runs the matching engine for one user and prints the ranked matches, or the skill recommendations with --recommend.",
	RunE:  runMatch,
}

var (
	matchSnapshotFile string
	matchUserID       string
	matchSortBy       string
	matchPage         int
	matchLimit        int
	matchWorkers      int
	matchRecommend    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchSnapshotFile, "snapshot", "s", "", "Path to profile snapshot JSON file (required)")
	matchCmd.Flags().StringVarP(&matchUserID, "user", "u", "", "Id of the requesting profile (required)")
	matchCmd.Flags().StringVar(&matchSortBy, "sort", matching.SortByCompatibility, "compatibility | rating | recent")
	matchCmd.Flags().IntVar(&matchPage, "page", matching.DefaultPage, "Page number")
	matchCmd.Flags().IntVar(&matchLimit, "limit", matching.DefaultLimit, "Page size")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 1, "Goroutines used to score large snapshots")
	matchCmd.Flags().BoolVar(&matchRecommend, "recommend", false, "Print skill recommendations instead of matches")

	for _, name := range []string{"snapshot", "user"} {
		if err := matchCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(matchCmd)
}

// snapshot is the offline input: every profile the engine may consider.
type snapshot struct {
	Profiles []*matching.Profile `json:"profiles"`
}

func runMatch(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(matchSnapshotFile)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	engine := matching.NewEngine(matching.WithWorkers(matchWorkers))

	var out any
	if matchRecommend {
		out, err = recommendFromSnapshot(engine, data, matchUserID)
	} else {
		out, err = matchSnapshot(cmd.Context(), engine, data, matchUserID, matching.Options{
			Page:              matchPage,
			Limit:             matchLimit,
			SortBy:            matchSortBy,
			IncludeMatchScore: true,
		})
	}
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), out)
}

func loadSnapshot(data []byte, userID string) (*matching.Profile, []*matching.Profile, error) {
	if err := schemas.ValidateProfileSnapshot(data); err != nil {
		return nil, nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	for _, p := range snap.Profiles {
		if p.ID == userID {
			return p, snap.Profiles, nil
		}
	}
	return nil, nil, fmt.Errorf("user %q: %w", userID, matching.ErrProfileNotFound)
}

func matchSnapshot(ctx context.Context, engine *matching.Engine, data []byte, userID string, opts matching.Options) (*matching.MatchingResult, error) {
	requester, pool, err := loadSnapshot(data, userID)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return engine.FindMatches(ctx, requester, pool, opts)
}

func recommendFromSnapshot(engine *matching.Engine, data []byte, userID string) (*matching.SkillRecommendationsResponse, error) {
	requester, pool, err := loadSnapshot(data, userID)
	if err != nil {
		return nil, err
	}
	recs := engine.RecommendSkills(requester, pool)
	return &matching.SkillRecommendationsResponse{Recommendations: recs, Total: len(recs)}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
