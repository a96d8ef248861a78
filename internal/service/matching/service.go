package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap/pkg/logger"
)

// ProfileStore supplies materialized, already-authorized profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ListVisibleProfiles(ctx context.Context, excludeUserID string) ([]*Profile, error)
}

// Config bounds the work done per request.
type Config struct {
	MaxCandidates int
	Timeout       time.Duration
}

type Service struct {
	store   ProfileStore
	matcher Matcher
	metrics *Metrics
	logger  logger.Logger
	cfg     Config
}

func NewService(store ProfileStore, matcher Matcher, metrics *Metrics, logger logger.Logger, cfg Config) *Service {
	return &Service{
		store:   store,
		matcher: matcher,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
	}
}

// FindMatches loads the requester and the visible pool, applies the request
// filters and returns the requested page of ranked matches.
func (s *Service) FindMatches(ctx context.Context, userID string, opts Options, filters Filters) (result *MatchingResult, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("find_matches", start, err) }()

	requester, candidates, err := s.loadPool(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	candidates = s.boundPool(ctx, userID, candidates)
	candidates, err = filters.Apply(ctx, s.matcher, requester, candidates)
	if err == nil {
		s.metrics.observePool(len(candidates))
		result, err = s.matcher.FindMatches(ctx, requester, candidates, opts)
	}
	if err != nil {
		s.logger.Error(ctx, "failed to find matches",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, err
	}

	s.metrics.observeMatches(result.Matches)
	s.logger.Info(ctx, "matches computed",
		logger.Field{Key: "user_id", Value: userID},
		logger.Field{Key: "candidates", Value: len(candidates)},
		logger.Field{Key: "total", Value: result.TotalCount},
		logger.Field{Key: "sort_by", Value: opts.SortBy},
		logger.Field{Key: "duration", Value: time.Since(start).String()},
	)

	return result, nil
}

// GetMatch explains how one candidate scores against the requester.
func (s *Service) GetMatch(ctx context.Context, userID, candidateID string) (match *UserMatch, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("get_match", start, err) }()

	if userID == candidateID {
		return nil, ErrCandidateNotFound
	}

	requester, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get requester: %w", err)
	}

	candidate, err := s.store.GetProfile(ctx, candidateID)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if !candidate.Visibility {
		return nil, ErrCandidateNotFound
	}

	score := s.matcher.ComputeScore(requester, candidate)
	mutual := s.matcher.FindMutualSkills(requester, candidate)

	return &UserMatch{
		Profile:      candidate,
		Score:        &score,
		MutualSkills: mutual,
		MatchType:    s.matcher.Classify(score, mutual),
		Explanation:  s.matcher.Explain(mutual),
	}, nil
}

// RecommendSkills returns the skill recommendation report for userID.
func (s *Service) RecommendSkills(ctx context.Context, userID string) (recs []SkillRecommendation, err error) {
	start := time.Now()
	defer func() { s.metrics.observe("recommend_skills", start, err) }()

	requester, candidates, err := s.loadPool(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs = s.matcher.RecommendSkills(requester, candidates)

	s.logger.Info(ctx, "skill recommendations computed",
		logger.Field{Key: "user_id", Value: userID},
		logger.Field{Key: "count", Value: len(recs)},
	)
	return recs, nil
}

func (s *Service) loadPool(ctx context.Context, userID string) (*Profile, []*Profile, error) {
	requester, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get requester profile",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, nil, fmt.Errorf("get requester: %w", err)
	}

	candidates, err := s.store.ListVisibleProfiles(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list candidates",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, nil, fmt.Errorf("list candidates: %w", err)
	}

	return requester, candidates, nil
}

func (s *Service) boundPool(ctx context.Context, userID string, candidates []*Profile) []*Profile {
	if s.cfg.MaxCandidates <= 0 || len(candidates) <= s.cfg.MaxCandidates {
		return candidates
	}

	s.logger.Warn(ctx, "candidate pool truncated",
		logger.Field{Key: "user_id", Value: userID},
		logger.Field{Key: "pool", Value: len(candidates)},
		logger.Field{Key: "max", Value: s.cfg.MaxCandidates},
	)
	return candidates[:s.cfg.MaxCandidates]
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}
