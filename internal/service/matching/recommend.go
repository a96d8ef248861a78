package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	maxSkillRecommendations = 10
	popularTeacherCount     = 10.0
)

type skillTally struct {
	name    string
	ratings []float64
}

// RecommendSkills reports the skills other users teach that the requester
// does not offer yet, ranked by how many teachers they have and how well
// those teachers are rated.
func (e *Engine) RecommendSkills(requester *Profile, candidates []*Profile) []SkillRecommendation {
	owned := make(map[string]struct{}, len(requester.Skills))
	for _, s := range requester.Skills {
		owned[strings.ToLower(s.Name)] = struct{}{}
	}

	// Slice plus index keeps first-seen order for ties.
	var tallies []*skillTally
	index := make(map[string]*skillTally)

	for _, candidate := range eligibleCandidates(requester, candidates) {
		for _, skill := range candidate.Skills {
			key := strings.ToLower(skill.Name)
			if _, ok := owned[key]; ok {
				continue
			}
			t, ok := index[key]
			if !ok {
				t = &skillTally{name: skill.Name}
				index[key] = t
				tallies = append(tallies, t)
			}
			t.ratings = append(t.ratings, candidate.Rating)
		}
	}

	recommendations := make([]SkillRecommendation, 0, len(tallies))
	for _, t := range tallies {
		count := len(t.ratings)
		avg := mean(t.ratings)
		relevance := (math.Min(float64(count)/popularTeacherCount, 1) + avg/maxRating) / 2

		recommendations = append(recommendations, SkillRecommendation{
			SkillName:      t.name,
			TeacherCount:   count,
			AverageRating:  round2(avg),
			RelevanceScore: relevance,
			Reason:         fmt.Sprintf("Popular skill with %d available teachers", count),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].RelevanceScore > recommendations[j].RelevanceScore
	})

	if len(recommendations) > maxSkillRecommendations {
		recommendations = recommendations[:maxSkillRecommendations]
	}
	for i := range recommendations {
		recommendations[i].RelevanceScore = round2(recommendations[i].RelevanceScore)
	}
	return recommendations
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
