package matching

import "fmt"

// Weights sets how much each sub-score contributes to the total.
type Weights struct {
	Skill        float64 `json:"skill"`
	Availability float64 `json:"availability"`
	Location     float64 `json:"location"`
	Reputation   float64 `json:"reputation"`

	// Activity is reserved for an activity-level factor. No sub-score feeds
	// it yet, so any value here leaves the total unchanged.
	Activity float64 `json:"activity"`
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{
		Skill:        0.40,
		Availability: 0.30,
		Location:     0.20,
		Reputation:   0.10,
		Activity:     0,
	}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skill":        w.Skill,
		"availability": w.Availability,
		"location":     w.Location,
		"reputation":   w.Reputation,
		"activity":     w.Activity,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, v)
		}
	}
	return nil
}

// Aggregator combines the sub-scores of two profiles into a MatchScore.
type Aggregator struct {
	weights Weights
}

func NewAggregator(weights Weights) *Aggregator {
	return &Aggregator{weights: weights}
}

// Weights returns the weighting in use.
func (g *Aggregator) Weights() Weights {
	return g.weights
}

// Score computes every sub-score, the weighted total rounded to two
// decimals, and the breakdown.
func (g *Aggregator) Score(a, b *Profile) MatchScore {
	score := MatchScore{
		SkillCompatibility:  SkillCompatibility(a, b),
		AvailabilityOverlap: AvailabilityOverlap(a, b),
		LocationProximity:   LocationProximity(a, b),
		ReputationScore:     ReputationScore(a, b),
	}

	score.TotalScore = g.Total(score)
	score.Breakdown = ScoreBreakdown{
		MatchedSkills:    FindMutualSkills(a, b),
		OverlappingSlots: countOverlappingSlots(a.Availability, b.Availability),
		RatingDifference: absDiff(a.Rating, b.Rating),
	}
	return score
}

// Total applies the weights to the sub-scores of s.
func (g *Aggregator) Total(s MatchScore) float64 {
	total := s.SkillCompatibility*g.weights.Skill +
		s.AvailabilityOverlap*g.weights.Availability +
		s.LocationProximity*g.weights.Location +
		s.ReputationScore*g.weights.Reputation
	return round2(total)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
