package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileSnapshot_Valid(t *testing.T) {
	doc := `{
		"profiles": [{
			"id": "u1",
			"name": "Ana",
			"visibility": true,
			"rating": 4.5,
			"created_at": "2024-03-01T12:00:00Z",
			"skills": [{"name": "Go", "proficiency": 4}],
			"desired_skills": [{"name": "Piano", "priority": 2}],
			"availability": [{"weekday": 1, "start_time": "9:00", "end_time": "10:30"}]
		}]
	}`

	assert.NoError(t, ValidateProfileSnapshot([]byte(doc)))
}

func TestValidateProfileSnapshot_Invalid(t *testing.T) {
	doc := `{
		"profiles": [{
			"id": "u1",
			"visibility": true,
			"skills": [{"name": "Go", "proficiency": 9}],
			"availability": [{"weekday": 1, "start_time": "24:00", "end_time": "10:30"}]
		}]
	}`

	err := ValidateProfileSnapshot([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
	assert.Contains(t, err.Error(), "proficiency")
	assert.Contains(t, err.Error(), "start_time")
}

func TestValidateProfileSnapshot_MissingProfiles(t *testing.T) {
	err := ValidateProfileSnapshot([]byte(`{}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestValidateProfileSnapshot_NotJSON(t *testing.T) {
	err := ValidateProfileSnapshot([]byte(`{"profiles": [`))
	require.Error(t, err)

	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}
