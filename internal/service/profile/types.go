package profile

import "skillswap/internal/service/matching"

// Domain Models
//
// Profiles are stored and cached in the shape the matching engine consumes,
// so the store hands out matching.Profile values directly.
type Profile = matching.Profile

// DTOs
type UpdateProfileRequest struct {
	Name         string              `json:"name" binding:"omitempty,min=2,max=255"`
	Location     string              `json:"location" binding:"omitempty,max=255"`
	AvatarURL    string              `json:"avatar_url" binding:"omitempty,url"`
	Visibility   *bool               `json:"visibility"`
	Availability []AvailabilityInput `json:"availability" binding:"omitempty,max=50,dive"`
}

// AvailabilityInput is one weekly slot. Weekday 0 is Sunday.
type AvailabilityInput struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

type PublicProfileResponse struct {
	*Profile
}
