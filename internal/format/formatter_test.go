package format

import (
	"strings"
	"testing"

	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() domain.Request {
	return domain.Request{
		Duration:       "1 week",
		Goals:          "design a new onboarding flow",
		AvailableHours: 8,
		Considerations: "morning meetings, avoid evenings",
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2pm", "14:00"},
		{"2 PM", "14:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"9:30 AM", "09:00"},
		{"11 PM", "23:00"},
		{"9:00", "9:00"}, // no marker: passes through unchanged
	}
	for _, tc := range cases {
		got, err := normalizeTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeTime_NoDigits(t *testing.T) {
	_, err := normalizeTime("sometime pm")
	assert.Error(t, err)
}

func TestTimeBlock_SplitsAfterTimeExpression(t *testing.T) {
	slots := []domain.Slot{{Hour: 9, Score: 0.9}}

	cases := []struct {
		in   string
		want string
	}{
		{"9:00 AM: Design review [60 min]", "09:00 - Design review (High)"},
		{"9:00AM: Standup", "09:00 - Standup (High)"},
		{"9 AM: Inbox", "09:00 - Inbox (High)"},
		{"21:30: Reading", "21:30 - Reading (Low)"},
		{"12:00 PM: Lunch", "12:00 - Lunch (Medium)"},
	}
	for _, tc := range cases {
		got, err := timeBlock(tc.in, slots)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTimeBlock_RejectsNonTimeLines(t *testing.T) {
	for _, in := range []string{"garbage::::", "Notes: bring laptop", "- 9:00 AM: bulleted"} {
		_, err := timeBlock(in, nil)
		assert.Error(t, err, "input %q", in)
	}
}

func TestRender_HeaderBlock(t *testing.T) {
	res := Render("MONDAY:\n9:00 AM: Kickoff", testRequest(), nil)

	lines := strings.Split(res.Text, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Schedule Overview", lines[0])
	assert.Equal(t, "----------------", lines[1])
	assert.Equal(t, "Duration: 1 week", lines[2])
	assert.Equal(t, "Goals: design a new onboarding flow", lines[3])
	assert.Equal(t, "Hours per day: 8", lines[4])
	assert.Equal(t, "Notes: morning meetings, avoid evenings", lines[5])
	assert.Equal(t, "----------------", lines[6])
}

func TestRender_TimeBlockAnnotation(t *testing.T) {
	slots := []domain.Slot{{Hour: 9, Score: 0.9}, {Hour: 14, Score: 0.5}}

	res := Render("9:00 AM: Design review [60 min]\n2 PM: Sketching (rough)", testRequest(), slots)

	assert.Contains(t, res.Text, "09:00 - Design review (High)")
	assert.Contains(t, res.Text, "14:00 - Sketching (Medium)")
	assert.NotContains(t, res.Text, "[60 min]")
	assert.NotContains(t, res.Text, "(rough)")
	assert.Empty(t, res.Warnings)
}

func TestRender_StaticPriorityWhenSlotsMissing(t *testing.T) {
	res := Render("10:00: Deep work\n22:00: Wind down", testRequest(), nil)

	assert.Contains(t, res.Text, "10:00 - Deep work (High)")
	assert.Contains(t, res.Text, "22:00 - Wind down (Low)")
}

func TestRender_DayAndSectionHeaders(t *testing.T) {
	raw := strings.Join([]string{
		"QUARTER 1",
		"**Week 1 - Foundations**",
		"MONDAY: plans",
		"9:00 AM: Kickoff",
	}, "\n")

	res := Render(raw, testRequest(), nil)

	assert.Contains(t, res.Text, "\n\nQUARTER 1")
	assert.Contains(t, res.Text, "\n\nWeek 1 - Foundations")
	assert.Contains(t, res.Text, "\n\nMonday\n")
	assert.NotContains(t, res.Text, "**")
}

func TestRender_DropsContinuationAndRestLines(t *testing.T) {
	raw := strings.Join([]string{
		"9:00 AM: Work",
		"[Continue similarly for other days]",
		"Take a rest day on Sunday",
		"Restructure as needed", // "rest" substring match drops this too
	}, "\n")

	res := Render(raw, testRequest(), nil)

	assert.Contains(t, res.Text, "09:00 - Work")
	assert.NotContains(t, res.Text, "Continue")
	assert.NotContains(t, res.Text, "Sunday")
	assert.NotContains(t, res.Text, "Restructure")
}

func TestRender_NarrativeLines(t *testing.T) {
	raw := strings.Join([]string{
		"Focus on one theme per day",
		"* bulleted leftovers are dropped",
	}, "\n")

	res := Render(raw, testRequest(), nil)

	assert.Contains(t, res.Text, "Focus on one theme per day")
	assert.NotContains(t, res.Text, "bulleted")
}

func TestRender_MalformedTimeBlockPassesThrough(t *testing.T) {
	res := Render("garbage::::", testRequest(), []domain.Slot{{Hour: 9, Score: 0.9}})

	assert.Contains(t, res.Text, "garbage::::")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "garbage")
}

func TestRender_EndToEndScenario(t *testing.T) {
	slots := []domain.Slot{
		{Hour: 8, Score: 0.7}, {Hour: 9, Score: 0.9}, {Hour: 10, Score: 0.9},
		{Hour: 11, Score: 0.9}, {Hour: 12, Score: 0.7}, {Hour: 13, Score: 0.7},
		{Hour: 14, Score: 0.8}, {Hour: 15, Score: 0.8},
	}
	raw := strings.Join([]string{
		"MONDAY:",
		"8:00 AM: Morning meetings [recurring]",
		"9:00 AM: Onboarding flow wireframes",
		"2:00 PM: Review session (with team)",
	}, "\n")

	res := Render(raw, testRequest(), slots)

	assert.Contains(t, res.Text, "Schedule Overview")
	assert.Contains(t, res.Text, "Monday")
	assert.Contains(t, res.Text, "08:00 - Morning meetings (High)")
	assert.Contains(t, res.Text, "09:00 - Onboarding flow wireframes (High)")
	assert.Contains(t, res.Text, "14:00 - Review session (High)")
	assert.NotContains(t, res.Text, "[")
	assert.Empty(t, res.Warnings)
}
