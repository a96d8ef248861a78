package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillCompatibility_NoDesiredSkills(t *testing.T) {
	a := newProfile("a").offers("Go", 5)
	b := newProfile("b").offers("Rust", 4)

	assert.Equal(t, 0.0, SkillCompatibility(a, b))
}

func TestSkillCompatibility_MutualExchange(t *testing.T) {
	a := newProfile("a").offers("Python", 5).wants("Design", 4)
	b := newProfile("b").offers("Design", 3).wants("Python", 5)

	// (5/5*5/5 + 3/5*4/5) / 2 desired slots
	assert.InDelta(t, 0.74, SkillCompatibility(a, b), 1e-9)
	assert.InDelta(t, 0.74, SkillCompatibility(b, a), 1e-9)
}

func TestSkillCompatibility_UnmatchedDesiresPenalize(t *testing.T) {
	a := newProfile("a").offers("Python", 5)
	b := newProfile("b").wants("Python", 5).wants("Go", 5).wants("Rust", 5)

	assert.InDelta(t, 1.0/3.0, SkillCompatibility(a, b), 1e-9)
}

func TestSkillCompatibility_CaseInsensitive(t *testing.T) {
	a := newProfile("a").offers("python", 5)
	b := newProfile("b").wants("PYTHON", 5)

	assert.Equal(t, 1.0, SkillCompatibility(a, b))
}

func TestSkillCompatibility_DuplicateDesiresCountedIndependently(t *testing.T) {
	a := newProfile("a").offers("Go", 5)
	b := newProfile("b").wants("Go", 5).wants("go", 5)

	assert.Equal(t, 1.0, SkillCompatibility(a, b))
}

func TestSkillCompatibility_InRange(t *testing.T) {
	a := newProfile("a").offers("Go", 5).offers("SQL", 1).wants("Design", 5).wants("Piano", 1)
	b := newProfile("b").offers("Design", 2).offers("Piano", 5).wants("Go", 3).wants("SQL", 5).wants("Chess", 2)

	score := SkillCompatibility(a, b)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestAvailabilityOverlap_NeutralWithoutSlots(t *testing.T) {
	a := newProfile("a")
	b := newProfile("b").free(1, "09:00", "10:00")

	assert.Equal(t, 0.5, AvailabilityOverlap(a, b))
	assert.Equal(t, 0.5, AvailabilityOverlap(b, a))
	assert.Equal(t, 0.5, AvailabilityOverlap(a, newProfile("c")))
}

func TestAvailabilityOverlap_PartialOverlap(t *testing.T) {
	a := newProfile("a").free(1, "09:00", "11:00")
	b := newProfile("b").free(1, "10:00", "12:00")

	assert.Equal(t, 0.5, AvailabilityOverlap(a, b))
}

func TestAvailabilityOverlap_IsAsymmetric(t *testing.T) {
	a := newProfile("a").free(1, "09:00", "10:00")
	b := newProfile("b").free(1, "09:00", "13:00")

	assert.Equal(t, 1.0, AvailabilityOverlap(a, b), "all of a's hour is covered by b")
	assert.Equal(t, 0.25, AvailabilityOverlap(b, a), "only one of b's four hours is covered by a")
}

func TestAvailabilityOverlap_DifferentWeekdays(t *testing.T) {
	a := newProfile("a").free(1, "09:00", "10:00")
	b := newProfile("b").free(2, "09:00", "10:00")

	assert.Equal(t, 0.0, AvailabilityOverlap(a, b))
}

func TestAvailabilityOverlap_MalformedSlotsDegradeToZero(t *testing.T) {
	a := newProfile("a").free(1, "9am", "10:00")
	b := newProfile("b").free(1, "09:00", "10:00")
	assert.Equal(t, 0.0, AvailabilityOverlap(a, b))

	a = newProfile("a").free(1, "10:00", "09:00")
	assert.Equal(t, 0.0, AvailabilityOverlap(a, b), "reversed slot has no duration")

	a = newProfile("a").free(1, "xx:yy", "10:00").free(1, "09:00", "10:00")
	assert.Equal(t, 1.0, AvailabilityOverlap(a, b), "valid slots still count")
}

func TestAvailabilityOverlap_Capped(t *testing.T) {
	a := newProfile("a").free(1, "09:00", "10:00")
	b := newProfile("b").free(1, "09:00", "10:00").free(1, "09:00", "10:00")

	assert.Equal(t, 1.0, AvailabilityOverlap(a, b))
}

func TestLocationProximity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both absent", "", "", 0.5},
		{"one absent", "Berlin", "", 0.5},
		{"whitespace is absent", "  ", "Berlin", 0.5},
		{"exact ignoring case", "Berlin, Germany", "berlin, GERMANY", 1.0},
		{"shared token", "Berlin, Germany", "Munich, Germany", 0.7},
		{"short tokens ignored", "NY, UK", "NY", 0.3},
		{"shared long token only", "NY, USA", "LA, USA", 0.7},
		{"different", "Paris", "London", 0.3},
		{"short multibyte tokens ignored", "東京, 日本", "東京, 大阪府", 0.3},
		{"shared multibyte token", "大阪府 北区", "大阪府 中央区", 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a").at(tt.a)
			b := newProfile("b").at(tt.b)
			assert.Equal(t, tt.want, LocationProximity(a, b))
		})
	}
}

func TestReputationScore(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"both unrated", 0, 0, 0.5},
		{"equal ratings", 4, 4, 1.0},
		{"max difference", 5, 0, 0.0},
		{"one unrated", 0, 2, 0.6},
		{"close ratings", 4.5, 3.5, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a").rated(tt.a)
			b := newProfile("b").rated(tt.b)
			assert.InDelta(t, tt.want, ReputationScore(a, b), 1e-9)
		})
	}
}
