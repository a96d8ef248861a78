package matching

import "time"

// MatchType is the qualitative category assigned to a match.
type MatchType string

// Match types, in classification priority order.
const (
	MatchTypePerfect            MatchType = "PERFECT_MATCH"
	MatchTypeGood               MatchType = "GOOD_MATCH"
	MatchTypeSkillComplementary MatchType = "SKILL_COMPLEMENTARY"
	MatchTypeAvailability       MatchType = "AVAILABILITY_MATCH"
	MatchTypeLocationBased      MatchType = "LOCATION_BASED"
	MatchTypeSimilarInterests   MatchType = "SIMILAR_INTERESTS"
)

// Sort keys accepted by FindMatches.
const (
	SortByCompatibility = "compatibility"
	SortByRating        = "rating"
	SortByRecent        = "recent"
)

// Domain Models
type Profile struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Location      string             `json:"location,omitempty"`
	AvatarURL     string             `json:"avatar_url,omitempty"`
	Visibility    bool               `json:"visibility"`
	Rating        float64            `json:"rating"`
	CreatedAt     time.Time          `json:"created_at"`
	Skills        []OfferedSkill     `json:"skills"`
	DesiredSkills []DesiredSkill     `json:"desired_skills"`
	Availability  []AvailabilitySlot `json:"availability"`
}

type OfferedSkill struct {
	SkillID     string `json:"skill_id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type DesiredSkill struct {
	SkillID  string `json:"skill_id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// AvailabilitySlot is a weekly time window. Weekday 0 is Sunday.
type AvailabilitySlot struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SkillMatch is one side teaching a skill the other side wants.
type SkillMatch struct {
	SkillName     string  `json:"skill_name"`
	Proficiency   int     `json:"proficiency"`
	Priority      int     `json:"priority"`
	Compatibility float64 `json:"compatibility"`
}

type MatchScore struct {
	SkillCompatibility  float64        `json:"skill_compatibility"`
	AvailabilityOverlap float64        `json:"availability_overlap"`
	LocationProximity   float64        `json:"location_proximity"`
	ReputationScore     float64        `json:"reputation_score"`
	TotalScore          float64        `json:"total_score"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
}

type ScoreBreakdown struct {
	MatchedSkills    []SkillMatch `json:"matched_skills"`
	OverlappingSlots int          `json:"overlapping_slots"`
	RatingDifference float64      `json:"rating_difference"`
}

type UserMatch struct {
	Profile      *Profile     `json:"profile"`
	Score        *MatchScore  `json:"score,omitempty"`
	MutualSkills []SkillMatch `json:"mutual_skills"`
	MatchType    MatchType    `json:"match_type"`
	Explanation  string       `json:"explanation"`
}

type MatchingResult struct {
	Matches    []UserMatch `json:"matches"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	HasMore    bool        `json:"has_more"`
}

type SkillRecommendation struct {
	SkillName      string  `json:"skill_name"`
	TeacherCount   int     `json:"teacher_count"`
	AverageRating  float64 `json:"average_rating"`
	RelevanceScore float64 `json:"relevance_score"`
	Reason         string  `json:"reason"`
}

// Options controls ordering and pagination of FindMatches.
type Options struct {
	Page              int
	Limit             int
	SortBy            string
	IncludeMatchScore bool
}

// DTOs
type FindMatchesRequest struct {
	Page              int      `form:"page" binding:"omitempty,min=1,max=100000"`
	Limit             int      `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy            string   `form:"sortBy"`
	IncludeMatchScore *bool    `form:"includeMatchScore"`
	MinCompatibility  *float64 `form:"minCompatibility" binding:"omitempty,min=0,max=1"`
	MinProficiency    int      `form:"minProficiency" binding:"omitempty,min=1,max=5"`
	MaxProficiency    int      `form:"maxProficiency" binding:"omitempty,min=1,max=5"`
	Weekday           *int     `form:"weekday" binding:"omitempty,min=0,max=6"`
	StartTime         string   `form:"startTime" binding:"omitempty,hhmm"`
	EndTime           string   `form:"endTime" binding:"omitempty,hhmm"`
}

type SkillRecommendationsResponse struct {
	Recommendations []SkillRecommendation `json:"recommendations"`
	Total           int                   `json:"total"`
}
