package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_PythonDesignExchange(t *testing.T) {
	requester := newProfile("req").offers("Python", 5).wants("Design", 4).
		at("Austin, TX").rated(4).free(2, "18:00", "20:00")
	candidate := newProfile("cand").offers("Design", 3).wants("Python", 5).
		at("austin, tx").rated(4).free(2, "18:00", "20:00")

	score := NewAggregator(DefaultWeights()).Score(requester, candidate)

	assert.InDelta(t, 0.74, score.SkillCompatibility, 1e-9)
	assert.Equal(t, 1.0, score.AvailabilityOverlap)
	assert.Equal(t, 1.0, score.LocationProximity)
	assert.Equal(t, 1.0, score.ReputationScore)
	assert.InDelta(t, 0.90, score.TotalScore, 1e-9)

	require.Len(t, score.Breakdown.MatchedSkills, 2)
	assert.Equal(t, "Python", score.Breakdown.MatchedSkills[0].SkillName)
	assert.Equal(t, "Design", score.Breakdown.MatchedSkills[1].SkillName)
	assert.Equal(t, 1, score.Breakdown.OverlappingSlots)
	assert.Equal(t, 0.0, score.Breakdown.RatingDifference)

	assert.Equal(t, MatchTypePerfect, Classify(score, score.Breakdown.MatchedSkills))
}

func TestAggregator_NothingInCommon(t *testing.T) {
	a := newProfile("a")
	b := newProfile("b")

	score := NewAggregator(DefaultWeights()).Score(a, b)

	// 0.4*0 + 0.3*0.5 + 0.2*0.5 + 0.1*0.5
	assert.Equal(t, 0.0, score.SkillCompatibility)
	assert.Equal(t, 0.5, score.AvailabilityOverlap)
	assert.Equal(t, 0.5, score.LocationProximity)
	assert.Equal(t, 0.5, score.ReputationScore)
	assert.InDelta(t, 0.30, score.TotalScore, 1e-9)
	assert.Empty(t, score.Breakdown.MatchedSkills)
	assert.Equal(t, MatchTypeSimilarInterests, Classify(score, nil))
}

func TestAggregator_BreakdownCountsSlotPairs(t *testing.T) {
	a := newProfile("a").free(1, "09:00", "12:00").free(3, "09:00", "10:00").rated(4.5)
	b := newProfile("b").free(1, "10:00", "11:00").free(1, "11:30", "13:00").free(3, "10:00", "11:00").rated(3)

	score := NewAggregator(DefaultWeights()).Score(a, b)

	assert.Equal(t, 2, score.Breakdown.OverlappingSlots, "touching slots on day 3 do not count")
	assert.InDelta(t, 1.5, score.Breakdown.RatingDifference, 1e-9)
}

func TestAggregator_TotalIsWeightedSum(t *testing.T) {
	sub := MatchScore{
		SkillCompatibility:  0.5,
		AvailabilityOverlap: 0.5,
		LocationProximity:   0.7,
		ReputationScore:     0.9,
	}

	total := NewAggregator(DefaultWeights()).Total(sub)
	// 0.2 + 0.15 + 0.14 + 0.09
	assert.InDelta(t, 0.58, total, 1e-9)
}

func TestAggregator_TotalMonotonicInEachWeight(t *testing.T) {
	sub := MatchScore{
		SkillCompatibility:  0.8,
		AvailabilityOverlap: 0.6,
		LocationProximity:   0.7,
		ReputationScore:     0.9,
	}

	bump := map[string]func(w *Weights, v float64){
		"skill":        func(w *Weights, v float64) { w.Skill = v },
		"availability": func(w *Weights, v float64) { w.Availability = v },
		"location":     func(w *Weights, v float64) { w.Location = v },
		"reputation":   func(w *Weights, v float64) { w.Reputation = v },
	}

	for name, set := range bump {
		t.Run(name, func(t *testing.T) {
			prev := -1.0
			for _, v := range []float64{0, 0.1, 0.3, 0.6} {
				w := DefaultWeights()
				set(&w, v)
				total := NewAggregator(w).Total(sub)
				assert.Greater(t, total, prev)
				prev = total
			}
		})
	}
}

func TestAggregator_ActivityWeightIsNoOp(t *testing.T) {
	sub := MatchScore{SkillCompatibility: 0.3, AvailabilityOverlap: 0.4, LocationProximity: 0.5, ReputationScore: 0.6}

	w := DefaultWeights()
	base := NewAggregator(w).Total(sub)

	w.Activity = 0.5
	assert.Equal(t, base, NewAggregator(w).Total(sub))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	w.Location = -0.1
	assert.ErrorContains(t, w.Validate(), "location")
}
