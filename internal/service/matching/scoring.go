package matching

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxLevel  = 5.0
	maxRating = 5.0

	neutralScore = 0.5

	locationExact      = 1.0
	locationSharedWord = 0.7
	locationDifferent  = 0.3
	minLocationToken   = 3
)

// SkillCompatibility measures how well each side's offered skills cover the
// other side's desired skills. Every desired skill counts once in the
// denominator whether or not it is matched.
func SkillCompatibility(a, b *Profile) float64 {
	var total float64
	slots := 0

	for _, desired := range b.DesiredSkills {
		if offered, ok := findOffered(a.Skills, desired.Name); ok {
			total += pairCompatibility(offered.Proficiency, desired.Priority)
		}
		slots++
	}

	for _, desired := range a.DesiredSkills {
		if offered, ok := findOffered(b.Skills, desired.Name); ok {
			total += pairCompatibility(offered.Proficiency, desired.Priority)
		}
		slots++
	}

	if slots == 0 {
		return 0
	}
	return clamp01(total / float64(slots))
}

// AvailabilityOverlap returns the share of a's weekly minutes that b can
// also attend. The denominator is a's total only, so the score is not
// symmetric. Missing schedules on either side score neutral. Overlapping
// slots within b can push the raw ratio past 1, so it is capped.
func AvailabilityOverlap(a, b *Profile) float64 {
	if len(a.Availability) == 0 || len(b.Availability) == 0 {
		return neutralScore
	}

	overlapping := 0
	for _, sa := range a.Availability {
		for _, sb := range b.Availability {
			overlapping += SlotOverlap(sa, sb)
		}
	}

	total := 0
	for _, sa := range a.Availability {
		total += SlotDuration(sa)
	}

	if total == 0 {
		return 0
	}
	return clamp01(float64(overlapping) / float64(total))
}

// LocationProximity is a coarse text heuristic, not geocoding.
func LocationProximity(a, b *Profile) float64 {
	la := strings.TrimSpace(a.Location)
	lb := strings.TrimSpace(b.Location)
	if la == "" || lb == "" {
		return neutralScore
	}

	if strings.EqualFold(la, lb) {
		return locationExact
	}

	tokens := make(map[string]struct{})
	for _, tok := range locationTokens(la) {
		tokens[tok] = struct{}{}
	}
	for _, tok := range locationTokens(lb) {
		if _, ok := tokens[tok]; ok {
			return locationSharedWord
		}
	}
	return locationDifferent
}

// ReputationScore compares two aggregate ratings. Two unrated users are neutral.
func ReputationScore(a, b *Profile) float64 {
	if a.Rating == 0 && b.Rating == 0 {
		return neutralScore
	}
	return clamp01(1 - math.Abs(a.Rating-b.Rating)/maxRating)
}

func locationTokens(location string) []string {
	fields := strings.FieldsFunc(strings.ToLower(location), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minLocationToken {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// findOffered returns the first offered skill whose name matches, ignoring case.
func findOffered(skills []OfferedSkill, name string) (OfferedSkill, bool) {
	for _, s := range skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return OfferedSkill{}, false
}

func pairCompatibility(proficiency, priority int) float64 {
	return float64(proficiency) / maxLevel * float64(priority) / maxLevel
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
