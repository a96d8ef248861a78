package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMutualSkills_Order(t *testing.T) {
	a := newProfile("a").offers("Go", 4).offers("SQL", 2).wants("Spanish", 5)
	b := newProfile("b").offers("Spanish", 5).wants("sql", 3).wants("Go", 5).wants("Chess", 1)

	matches := FindMutualSkills(a, b)

	require.Len(t, matches, 3)
	// b's desires satisfied by a, in b's desire order
	assert.Equal(t, "SQL", matches[0].SkillName)
	assert.Equal(t, 2, matches[0].Proficiency)
	assert.Equal(t, 3, matches[0].Priority)
	assert.InDelta(t, 0.24, matches[0].Compatibility, 1e-9)
	assert.Equal(t, "Go", matches[1].SkillName)
	assert.InDelta(t, 0.8, matches[1].Compatibility, 1e-9)
	// then a's desires satisfied by b
	assert.Equal(t, "Spanish", matches[2].SkillName)
	assert.Equal(t, 1.0, matches[2].Compatibility)
}

func TestFindMutualSkills_SameSkillBothWays(t *testing.T) {
	a := newProfile("a").offers("Go", 4).wants("Go", 2)
	b := newProfile("b").offers("go", 5).wants("Go", 3)

	matches := FindMutualSkills(a, b)

	require.Len(t, matches, 2)
	assert.Equal(t, 4, matches[0].Proficiency)
	assert.Equal(t, 3, matches[0].Priority)
	assert.Equal(t, "go", matches[1].SkillName)
	assert.Equal(t, 5, matches[1].Proficiency)
	assert.Equal(t, 2, matches[1].Priority)
}

func TestFindMutualSkills_None(t *testing.T) {
	matches := FindMutualSkills(newProfile("a").offers("Go", 3), newProfile("b").wants("Rust", 3))

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
