package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	two := make([]SkillMatch, 2)
	three := make([]SkillMatch, 3)
	one := make([]SkillMatch, 1)

	tests := []struct {
		name   string
		score  MatchScore
		mutual []SkillMatch
		want   MatchType
	}{
		{"perfect beats good", MatchScore{TotalScore: 0.95}, three, MatchTypePerfect},
		{"perfect at threshold", MatchScore{TotalScore: 0.9}, two, MatchTypePerfect},
		{"high score with one skill is good", MatchScore{TotalScore: 0.95}, one, MatchTypeGood},
		{"good at threshold", MatchScore{TotalScore: 0.7}, nil, MatchTypeGood},
		{"skill complementary", MatchScore{TotalScore: 0.69, SkillCompatibility: 0.8, AvailabilityOverlap: 1}, two, MatchTypeSkillComplementary},
		{"availability", MatchScore{TotalScore: 0.5, SkillCompatibility: 0.79, AvailabilityOverlap: 0.7, LocationProximity: 1}, nil, MatchTypeAvailability},
		{"location", MatchScore{TotalScore: 0.5, AvailabilityOverlap: 0.69, LocationProximity: 0.8}, nil, MatchTypeLocationBased},
		{"fallback", MatchScore{TotalScore: 0.3, AvailabilityOverlap: 0.5, LocationProximity: 0.7}, nil, MatchTypeSimilarInterests},
		{"zero value", MatchScore{}, nil, MatchTypeSimilarInterests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score, tt.mutual))
		})
	}
}
