package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap/internal/service/matching"
	"skillswap/pkg/cache"
	"skillswap/pkg/logger"
	"skillswap/pkg/timeutil"
)

const (
	cacheKeyPrefix  = "profile:"
	DefaultCacheTTL = 5 * time.Minute
)

// Service is the Profile Store. Single-profile reads go through a Redis
// read-through cache; candidate listings always hit the database.
type Service struct {
	repo     Repository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   logger.Logger
}

var _ matching.ProfileStore = (*Service)(nil)

func NewService(repo Repository, c cache.Cache, ttl time.Duration, logger logger.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		repo:     repo,
		cache:    c,
		cacheTTL: ttl,
		logger:   logger,
	}
}

func cacheKey(userID string) string {
	return cacheKeyPrefix + userID
}

// GetProfile returns the profile for userID regardless of visibility.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if p, ok := s.getCached(ctx, userID); ok {
		return p, nil
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			s.logger.Error(ctx, "failed to get profile",
				logger.Field{Key: "user_id", Value: userID},
				logger.Field{Key: "error", Value: err},
			)
		}
		return nil, err
	}

	s.setCached(ctx, p)
	return p, nil
}

// GetPublicProfile hides private profiles behind ErrProfileNotFound.
func (s *Service) GetPublicProfile(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.Visibility {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// ListVisibleProfiles returns the candidate pool for excludeUserID.
func (s *Service) ListVisibleProfiles(ctx context.Context, excludeUserID string) ([]*Profile, error) {
	profiles, err := s.repo.ListVisibleProfiles(ctx, excludeUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to list visible profiles",
			logger.Field{Key: "exclude_user_id", Value: excludeUserID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile applies the provided fields and drops the cached copy.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error) {
	slots, err := availabilityFromRequest(req.Availability)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Location != "" {
		p.Location = req.Location
	}
	if req.AvatarURL != "" {
		p.AvatarURL = req.AvatarURL
	}
	if req.Visibility != nil {
		p.Visibility = *req.Visibility
	}
	if req.Availability != nil {
		p.Availability = slots
	}

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		s.logger.Error(ctx, "failed to update profile",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, err
	}

	if err := s.cache.Del(ctx, cacheKey(userID)); err != nil {
		s.logger.Warn(ctx, "failed to invalidate cached profile",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
	}

	s.logger.Info(ctx, "profile updated", logger.Field{Key: "user_id", Value: userID})
	return p, nil
}

func (s *Service) getCached(ctx context.Context, userID string) (*Profile, bool) {
	raw, err := s.cache.Get(ctx, cacheKey(userID))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn(ctx, "profile cache read failed",
				logger.Field{Key: "user_id", Value: userID},
				logger.Field{Key: "error", Value: err},
			)
		}
		return nil, false
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn(ctx, "discarding corrupt cached profile",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "error", Value: err},
		)
		return nil, false
	}
	return &p, true
}

func (s *Service) setCached(ctx context.Context, p *Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(p.ID), string(raw), s.cacheTTL); err != nil {
		s.logger.Warn(ctx, "profile cache write failed",
			logger.Field{Key: "user_id", Value: p.ID},
			logger.Field{Key: "error", Value: err},
		)
	}
}

func availabilityFromRequest(in []AvailabilityInput) ([]matching.AvailabilitySlot, error) {
	slots := make([]matching.AvailabilitySlot, 0, len(in))
	for i, a := range in {
		if _, _, ok := timeutil.Interval(a.StartTime, a.EndTime); !ok {
			return nil, fmt.Errorf("%w: slot %d %s-%s is not a valid range", ErrInvalidAvailability, i, a.StartTime, a.EndTime)
		}
		slots = append(slots, matching.AvailabilitySlot{
			Weekday:   a.Weekday,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	return slots, nil
}
