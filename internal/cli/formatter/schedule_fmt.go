package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tempora/internal/domain"
)

// FormatPlan formats a freshly generated schedule: the ranked slots, the
// rendered schedule body and any degradation warnings.
func FormatPlan(schedule *domain.Schedule, slots []domain.Slot, warnings []string) string {
	var b strings.Builder

	b.WriteString(Header("Recommended Slots"))
	b.WriteString("\n")
	for _, slot := range slots {
		p := domain.PriorityFor(slot.Hour, slots)
		label := PriorityStyle(p).Render(p.Label())
		b.WriteString(fmt.Sprintf("  %02d:00  %s  %s\n",
			slot.Hour,
			StyleFg.Render(fmt.Sprintf("%.2f", slot.Score)),
			label,
		))
	}

	b.WriteString("\n")
	b.WriteString(schedule.Body)
	if !strings.HasSuffix(schedule.Body, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	source := "rule-based scoring"
	if schedule.Source == domain.SourceClassifier {
		source = "classifier scoring"
	}
	b.WriteString(Dim(fmt.Sprintf("Saved as %s (%s, %s)", TruncID(schedule.ID), schedule.Model, source)) + "\n")

	b.WriteString(FormatWarnings(warnings))

	return b.String()
}

// FormatHistory formats a list of stored schedules, newest first.
func FormatHistory(schedules []*domain.Schedule) string {
	if len(schedules) == 0 {
		return Dim("No schedules yet. Run `tempora plan` to create one.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Schedule History"))
	b.WriteString("\n")

	for _, s := range schedules {
		goals := s.Goals
		if len(goals) > 60 {
			goals = goals[:57] + "..."
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			StyleYellow.Render(TruncID(s.ID)),
			Dim(s.CreatedAt.Format("2006-01-02 15:04")),
			StyleFg.Render(goals),
		))
		b.WriteString(fmt.Sprintf("          %s\n",
			Dim(fmt.Sprintf("%s, %sh/day", s.Duration, strconv.FormatFloat(s.AvailableHours, 'g', -1, 64))),
		))
	}

	return b.String()
}

// FormatSchedule formats one stored schedule in full.
func FormatSchedule(s *domain.Schedule) string {
	var b strings.Builder

	b.WriteString(s.Body)
	if !strings.HasSuffix(s.Body, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s  created %s  model %s",
		TruncID(s.ID),
		s.CreatedAt.Format("2006-01-02 15:04"),
		s.Model,
	)) + "\n")

	return b.String()
}

// FormatWarnings formats degradation warnings, one per line. Empty input
// produces no output.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  ! "+w) + "\n")
	}
	return b.String()
}
