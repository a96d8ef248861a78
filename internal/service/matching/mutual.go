package matching

// FindMutualSkills lists every concrete exchange between a and b: first the
// skills a can teach that b wants, then the skills b can teach that a wants.
// A skill appears twice when both sides teach and want it.
func FindMutualSkills(a, b *Profile) []SkillMatch {
	matches := make([]SkillMatch, 0)

	for _, desired := range b.DesiredSkills {
		if offered, ok := findOffered(a.Skills, desired.Name); ok {
			matches = append(matches, newSkillMatch(offered, desired))
		}
	}

	for _, desired := range a.DesiredSkills {
		if offered, ok := findOffered(b.Skills, desired.Name); ok {
			matches = append(matches, newSkillMatch(offered, desired))
		}
	}

	return matches
}

func newSkillMatch(offered OfferedSkill, desired DesiredSkill) SkillMatch {
	return SkillMatch{
		SkillName:     offered.Name,
		Proficiency:   offered.Proficiency,
		Priority:      desired.Priority,
		Compatibility: pairCompatibility(offered.Proficiency, desired.Priority),
	}
}
