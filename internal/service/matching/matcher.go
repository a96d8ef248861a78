package matching

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20

	defaultParallelThreshold = 64
)

// Matcher defines the operations of the compatibility engine.
type Matcher interface {
	ComputeScore(a, b *Profile) MatchScore
	FindMutualSkills(a, b *Profile) []SkillMatch
	Classify(score MatchScore, mutualSkills []SkillMatch) MatchType
	Explain(mutualSkills []SkillMatch) string
	FindMatches(ctx context.Context, requester *Profile, candidates []*Profile, opts Options) (*MatchingResult, error)
	RecommendSkills(requester *Profile, candidates []*Profile) []SkillRecommendation
}

// Engine is the in-memory Matcher. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	aggregator        *Aggregator
	workers           int
	parallelThreshold int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides DefaultWeights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.aggregator = NewAggregator(w)
	}
}

// WithWorkers bounds the goroutines used to score large candidate pools.
// Zero or one disables parallel scoring.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithParallelThreshold sets the pool size from which scoring fans out.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		e.parallelThreshold = n
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		aggregator:        NewAggregator(DefaultWeights()),
		workers:           1,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) ComputeScore(a, b *Profile) MatchScore {
	return e.aggregator.Score(a, b)
}

func (e *Engine) FindMutualSkills(a, b *Profile) []SkillMatch {
	return FindMutualSkills(a, b)
}

func (e *Engine) Classify(score MatchScore, mutualSkills []SkillMatch) MatchType {
	return Classify(score, mutualSkills)
}

func (e *Engine) Explain(mutualSkills []SkillMatch) string {
	return Explain(mutualSkills)
}

// Match scores a single candidate against the requester.
func (e *Engine) Match(requester, candidate *Profile) UserMatch {
	score := e.ComputeScore(requester, candidate)
	mutual := e.FindMutualSkills(requester, candidate)

	return UserMatch{
		Profile:      candidate,
		Score:        &score,
		MutualSkills: mutual,
		MatchType:    e.Classify(score, mutual),
		Explanation:  e.Explain(mutual),
	}
}

// FindMatches scores every eligible candidate, sorts the full list by
// opts.SortBy and returns the requested page.
func (e *Engine) FindMatches(ctx context.Context, requester *Profile, candidates []*Profile, opts Options) (*MatchingResult, error) {
	opts = normalizeOptions(opts)

	eligible := eligibleCandidates(requester, candidates)

	matches, err := e.scoreAll(ctx, requester, eligible)
	if err != nil {
		return nil, err
	}

	sortMatches(matches, opts.SortBy)

	return paginate(matches, opts.Page, opts.Limit), nil
}

// scoreAll returns one UserMatch per candidate in candidate order.
func (e *Engine) scoreAll(ctx context.Context, requester *Profile, candidates []*Profile) ([]UserMatch, error) {
	matches := make([]UserMatch, len(candidates))

	if e.workers <= 1 || len(candidates) < e.parallelThreshold {
		for i, candidate := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("score candidates: %w", err)
			}
			matches[i] = e.Match(requester, candidate)
		}
		return matches, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matches[i] = e.Match(requester, candidate)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}
	return matches, nil
}

// eligibleCandidates drops the requester and private profiles.
func eligibleCandidates(requester *Profile, candidates []*Profile) []*Profile {
	eligible := make([]*Profile, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || !c.Visibility {
			continue
		}
		if requester != nil && c.ID == requester.ID {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

func normalizeOptions(opts Options) Options {
	if opts.Page < 1 {
		opts.Page = DefaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultLimit
	}
	return opts
}

// sortMatches orders matches in place. Unknown keys sort by compatibility.
// Ties keep candidate order.
func sortMatches(matches []UserMatch, sortBy string) {
	var less func(i, j int) bool

	switch sortBy {
	case SortByRating:
		less = func(i, j int) bool {
			return matches[i].Profile.Rating > matches[j].Profile.Rating
		}
	case SortByRecent:
		less = func(i, j int) bool {
			return matches[i].Profile.CreatedAt.After(matches[j].Profile.CreatedAt)
		}
	default:
		less = func(i, j int) bool {
			return matches[i].Score.TotalScore > matches[j].Score.TotalScore
		}
	}

	sort.SliceStable(matches, less)
}

func paginate(matches []UserMatch, page, limit int) *MatchingResult {
	total := len(matches)

	// Compare in page units first so (page-1)*limit cannot overflow.
	start, end := total, total
	if page-1 < total/limit+1 {
		start = min((page-1)*limit, total)
		end = start + min(limit, total-start)
	}
	hasMore := end < total

	return &MatchingResult{
		Matches:    matches[start:end],
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		HasMore:    hasMore,
	}
}
