package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"skillswap/internal/schemas"
	"skillswap/internal/service/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
  "profiles": [
    {
      "id": "ana", "name": "Ana", "location": "Austin, TX", "visibility": true, "rating": 4,
      "skills": [{"name": "Python", "proficiency": 5}],
      "desired_skills": [{"name": "Design", "priority": 4}],
      "availability": [{"weekday": 2, "start_time": "18:00", "end_time": "20:00"}]
    },
    {
      "id": "ben", "name": "Ben", "location": "austin, tx", "visibility": true, "rating": 4,
      "skills": [{"name": "Design", "proficiency": 3}],
      "desired_skills": [{"name": "Python", "priority": 5}],
      "availability": [{"weekday": 2, "start_time": "18:00", "end_time": "20:00"}]
    },
    {
      "id": "cy", "name": "Cy", "visibility": true,
      "skills": [{"name": "Chess", "proficiency": 2}]
    },
    {
      "id": "dee", "name": "Dee", "visibility": false, "rating": 5,
      "skills": [{"name": "Piano", "proficiency": 5}]
    }
  ]
}`

func TestMatchSnapshot(t *testing.T) {
	result, err := matchSnapshot(context.Background(), matching.NewEngine(), []byte(snapshotJSON), "ana", matching.Options{})
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalCount)
	top := result.Matches[0]
	assert.Equal(t, "ben", top.Profile.ID)
	assert.Equal(t, matching.MatchTypePerfect, top.MatchType)
	assert.InDelta(t, 0.90, top.Score.TotalScore, 1e-9)
	assert.Equal(t, "cy", result.Matches[1].Profile.ID)
}

func TestMatchSnapshot_UnknownUser(t *testing.T) {
	_, err := matchSnapshot(context.Background(), matching.NewEngine(), []byte(snapshotJSON), "zed", matching.Options{})
	assert.ErrorIs(t, err, matching.ErrProfileNotFound)
}

func TestMatchSnapshot_InvalidSnapshot(t *testing.T) {
	doc := `{"profiles": [{"id": "ana", "visibility": true, "availability": [{"weekday": 9, "start_time": "18:00", "end_time": "20:00"}]}]}`

	_, err := matchSnapshot(context.Background(), matching.NewEngine(), []byte(doc), "ana", matching.Options{})

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestRecommendFromSnapshot(t *testing.T) {
	resp, err := recommendFromSnapshot(matching.NewEngine(), []byte(snapshotJSON), "ana")
	require.NoError(t, err)

	names := make([]string, 0, resp.Total)
	for _, r := range resp.Recommendations {
		names = append(names, r.SkillName)
	}
	// Piano is only taught by a private profile
	assert.Equal(t, []string{"Design", "Chess"}, names)
}

func TestMatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"match", "--snapshot", path, "--user", "ana", "--sort", "rating", "--limit", "1"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var result matching.MatchingResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 2, result.TotalCount)
	assert.True(t, result.HasMore)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "ben", result.Matches[0].Profile.ID)
}
