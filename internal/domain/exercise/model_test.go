package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDEncodeRoundTrip(t *testing.T) {
	id := ID{
		Name:       "Incline Hammer Curls",
		Type:       "strength",
		Muscle:     "biceps",
		Difficulty: "beginner",
	}

	encoded, err := id.Encode()
	require.NoError(t, err)
	assert.Equal(t, "Incline Hammer Curls&strength&biceps&beginner", encoded)

	parsed, err := ParseID(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestIDEncodeRejectsDelimiter(t *testing.T) {
	id := ID{
		Name:       "Push & Pull",
		Type:       "strength",
		Muscle:     "chest",
		Difficulty: "beginner",
	}

	_, err := id.Encode()
	assert.ErrorIs(t, err, ErrUnsafeField)
}

func TestParseIDMalformed(t *testing.T) {
	for _, raw := range []string{"", "just-a-name", "a&b&c", "a&b&c&d&e"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrMalformedID, "raw=%q", raw)
	}
}

func TestNewFavouritePushesEvent(t *testing.T) {
	f := NewFavourite("u-1", ID{
		Name:       "Squat",
		Type:       "strength",
		Muscle:     "quadriceps",
		Difficulty: "intermediate",
	}, "Barbell", "Stand with feet shoulder width apart.", "https://example.com/squat.jpg")

	events := f.PopEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventFavouriteAdded, events[0].Type())
}
