package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFlattenData(t *testing.T) {
	id := uuid.MustParse("0195d7a4-0000-7000-8000-000000000001")

	got := FlattenData(map[string]any{
		"type":        "motivational_verse",
		"verse_id":    id,
		"ayah_number": 255,
		"ratio":       0.5,
		"urgent":      true,
		"meta":        map[string]any{"a": 1},
		"list":        []string{"x", "y"},
		"empty":       nil,
	})

	assert.Equal(t, map[string]string{
		"type":        "motivational_verse",
		"verse_id":    id.String(),
		"ayah_number": "255",
		"ratio":       "0.5",
		"urgent":      "true",
		"meta":        `{"a":1}`,
		"list":        `["x","y"]`,
	}, got)
}

func TestPushBatchResult(t *testing.T) {
	result := &PushBatchResult{SuccessCount: 1}
	result.Merge(&PushBatchResult{
		FailureCount: 2,
		Failures: []TokenFailure{
			{Token: "a", Invalid: true},
			{Token: "b"},
		},
	})
	result.Merge(nil)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	assert.Equal(t, []string{"a"}, result.InvalidTokens())

	var nilResult *PushBatchResult
	assert.Nil(t, nilResult.InvalidTokens())
}
