package matching

import (
	"fmt"
	"sort"
)

const noSharedSkillsExplanation = "Similar interests and compatible schedules"

// Explain builds a one-sentence reason from the strongest mutual skills.
// Equal compatibilities keep their input order.
func Explain(mutualSkills []SkillMatch) string {
	if len(mutualSkills) == 0 {
		return noSharedSkillsExplanation
	}

	ranked := make([]SkillMatch, len(mutualSkills))
	copy(ranked, mutualSkills)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Compatibility > ranked[j].Compatibility
	})

	switch len(ranked) {
	case 1:
		return fmt.Sprintf("Great fit to exchange %s", ranked[0].SkillName)
	case 2:
		return fmt.Sprintf("Great fit to exchange %s and %s", ranked[0].SkillName, ranked[1].SkillName)
	default:
		return fmt.Sprintf("Great fit to exchange %s, %s and %d more skills",
			ranked[0].SkillName, ranked[1].SkillName, len(ranked)-2)
	}
}
