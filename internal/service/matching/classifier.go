package matching

const (
	perfectMinScore        = 0.9
	perfectMinMutualSkills = 2
	goodMinScore           = 0.7
	complementaryMinSkill  = 0.8
	availabilityMinOverlap = 0.7
	locationMinProximity   = 0.8
)

// Classify maps a score and its mutual skills to a MatchType. Rules are
// checked in priority order and the first hit wins.
func Classify(score MatchScore, mutualSkills []SkillMatch) MatchType {
	switch {
	case score.TotalScore >= perfectMinScore && len(mutualSkills) >= perfectMinMutualSkills:
		return MatchTypePerfect
	case score.TotalScore >= goodMinScore:
		return MatchTypeGood
	case score.SkillCompatibility >= complementaryMinSkill:
		return MatchTypeSkillComplementary
	case score.AvailabilityOverlap >= availabilityMinOverlap:
		return MatchTypeAvailability
	case score.LocationProximity >= locationMinProximity:
		return MatchTypeLocationBased
	default:
		return MatchTypeSimilarInterests
	}
}
