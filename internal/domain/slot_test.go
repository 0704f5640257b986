package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityFor_ExactSlotMatch(t *testing.T) {
	slots := []Slot{
		{Hour: 9, Score: 0.85},
		{Hour: 13, Score: 0.5},
		{Hour: 21, Score: 0.2},
	}

	assert.Equal(t, PriorityHigh, PriorityFor(9, slots))
	assert.Equal(t, PriorityMedium, PriorityFor(13, slots))
	assert.Equal(t, PriorityLow, PriorityFor(21, slots))
}

func TestPriorityFor_StaticRuleWhenUncovered(t *testing.T) {
	// Slots cover only hour 9; other hours fall back to the static rule.
	slots := []Slot{{Hour: 9, Score: 0.9}}

	assert.Equal(t, PriorityHigh, PriorityFor(10, slots))
	assert.Equal(t, PriorityHigh, PriorityFor(15, slots))
	assert.Equal(t, PriorityLow, PriorityFor(6, slots))
	assert.Equal(t, PriorityLow, PriorityFor(22, slots))
	assert.Equal(t, PriorityMedium, PriorityFor(13, slots))
}

func TestPriorityFor_NoSlots(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityFor(11, nil))
	assert.Equal(t, PriorityMedium, PriorityFor(8, nil))
	assert.Equal(t, PriorityLow, PriorityFor(7, nil))
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "High", PriorityHigh.Label())
	assert.Equal(t, "Medium", PriorityMedium.Label())
	assert.Equal(t, "Low", PriorityLow.Label())
}

func TestRequestValidate(t *testing.T) {
	valid := Request{
		Duration:       "1 week",
		Goals:          "learn Go",
		AvailableHours: 8,
		Considerations: "morning meetings",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		mod  func(*Request)
		want error
	}{
		{"empty duration", func(r *Request) { r.Duration = "  " }, ErrEmptyDuration},
		{"empty goals", func(r *Request) { r.Goals = "" }, ErrEmptyGoals},
		{"empty considerations", func(r *Request) { r.Considerations = "" }, ErrEmptyConsiderations},
		{"zero hours", func(r *Request) { r.AvailableHours = 0 }, ErrInvalidHours},
		{"negative hours", func(r *Request) { r.AvailableHours = -2 }, ErrInvalidHours},
		{"too many hours", func(r *Request) { r.AvailableHours = 25 }, ErrInvalidHours},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mod(&r)
			assert.ErrorIs(t, r.Validate(), tc.want)
		})
	}
}
