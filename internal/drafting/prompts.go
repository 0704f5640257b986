package drafting

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempora/internal/domain"
)

// draftSystemPrompt instructs the model to emit a plain-text schedule the
// formatter can reclassify line by line.
const draftSystemPrompt = `You are a schedule planner. You turn goals and preferred time slots into a concrete plain-text schedule.

Formatting rules:
- Day lines are the day name followed by a colon, e.g. "MONDAY:"
- Time blocks are one per line as "9:00 AM: task description"
- For multi-week plans, introduce each week as "Week 1 - focus area"
- For multi-month plans, group months under quarters as "QUARTER 1"
- No markdown tables, no bullet characters, no closing commentary
- Schedule tasks only inside the preferred time slots provided`

// buildWeeklyPrompt is the default strategy: a single detailed week.
func buildWeeklyPrompt(goals string, slots []domain.Slot, considerations string) string {
	var b strings.Builder
	b.WriteString("Create a 7-day schedule, Monday through Sunday.\n\n")
	writePromptContext(&b, goals, slots, considerations)
	b.WriteString("\nLay out every day with concrete time blocks in the preferred slots.")
	return b.String()
}

// buildMonthlyPrompt covers roughly four themed weeks.
func buildMonthlyPrompt(goals string, slots []domain.Slot, considerations string) string {
	var b strings.Builder
	b.WriteString("Create a one-month schedule organized as four weeks.\n\n")
	writePromptContext(&b, goals, slots, considerations)
	b.WriteString("\nIntroduce each week as \"Week N - theme\", then give representative daily time blocks for that week.")
	return b.String()
}

// buildYearlyPrompt works at quarter granularity.
func buildYearlyPrompt(goals string, slots []domain.Slot, considerations string) string {
	var b strings.Builder
	b.WriteString("Create a one-year schedule organized by quarters.\n\n")
	writePromptContext(&b, goals, slots, considerations)
	b.WriteString("\nIntroduce each quarter as \"QUARTER N\", break it into milestone weeks, and include representative daily time blocks.")
	return b.String()
}

func writePromptContext(b *strings.Builder, goals string, slots []domain.Slot, considerations string) {
	b.WriteString("Goals: ")
	b.WriteString(goals)
	b.WriteString("\nConstraints: ")
	b.WriteString(considerations)
	b.WriteString("\nPreferred time slots, best first:\n")
	for _, s := range slots {
		fmt.Fprintf(b, "- %02d:00 (score %.2f)\n", s.Hour, s.Score)
	}
}

// strategy pairs a duration-text predicate with a prompt builder. The
// table is ordered; the first match wins and weekly is the named default.
type strategy struct {
	match string
	op    string
	build func(goals string, slots []domain.Slot, considerations string) string
}

var strategies = []strategy{
	{match: "year", op: "draft_yearly", build: buildYearlyPrompt},
	{match: "month", op: "draft_monthly", build: buildMonthlyPrompt},
}

var defaultStrategy = strategy{op: "draft_weekly", build: buildWeeklyPrompt}

// strategyFor selects the prompt strategy by substring match on the
// duration text.
func strategyFor(duration string) strategy {
	lower := strings.ToLower(duration)
	for _, s := range strategies {
		if strings.Contains(lower, s.match) {
			return s
		}
	}
	return defaultStrategy
}
