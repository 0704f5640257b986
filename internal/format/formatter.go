package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/tempora/internal/domain"
)

// dayNames classify day-header lines. Matching is case-insensitive and
// positional: day headers win over time-block classification.
var dayNames = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// bracketed matches [..] and (..) annotations the model likes to append
// to task text.
var bracketed = regexp.MustCompile(`\s*[\[\(][^)\]]*[\]\)]\s*`)

var leadingDigits = regexp.MustCompile(`\d+`)

// timeExpr splits a time-block line at the colon that terminates the time
// expression, so "9:00 AM: task" keeps its minutes and AM/PM marker on the
// time side.
var timeExpr = regexp.MustCompile(`^(\d{1,2}(?::\d{2})?\s*(?:[AaPp][Mm])?)\s*:\s*(.*)$`)

// Result is the final formatted schedule plus any line-local parse
// failures recorded along the way. A bad line never aborts the pass; it
// is emitted unmodified and noted here.
type Result struct {
	Text     string
	Warnings []string
}

// Render parses the raw drafted schedule line by line, reclassifies
// structural lines, normalizes times, annotates time blocks with a
// priority derived from the scored slots, and prepends a fixed header.
func Render(raw string, req domain.Request, slots []domain.Slot) Result {
	header := strings.Join([]string{
		"Schedule Overview",
		"----------------",
		"Duration: " + req.Duration,
		"Goals: " + req.Goals,
		"Hours per day: " + strconv.FormatFloat(req.AvailableHours, 'g', -1, 64),
		"Notes: " + req.Considerations,
		"----------------",
	}, "\n")

	var out []string
	var warnings []string

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "[Continue") || strings.Contains(strings.ToLower(line), "rest") {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.Contains(upper, "QUARTER"):
			out = append(out, "", line)

		case strings.Contains(upper, "WEEK") && strings.Contains(line, "-"):
			out = append(out, "", strings.TrimSpace(strings.ReplaceAll(line, "**", "")))

		case containsDayName(upper):
			out = append(out, "", dayHeader(line))

		case strings.Contains(line, ":"):
			formatted, err := timeBlock(line, slots)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("line %q: %v", line, err))
				out = append(out, line)
				continue
			}
			out = append(out, formatted)

		case !strings.ContainsAny(line, "*[]"):
			out = append(out, line)

		// Markup-bearing lines that classified as nothing else are dropped.
		}
	}

	return Result{
		Text:     header + "\n\n" + strings.Join(out, "\n"),
		Warnings: warnings,
	}
}

func containsDayName(upper string) bool {
	for _, day := range dayNames {
		if strings.Contains(upper, day) {
			return true
		}
	}
	return false
}

// dayHeader reduces a day line to just the capitalized day name: the text
// before the first colon, stripped of emphasis markup.
func dayHeader(line string) string {
	name := strings.SplitN(line, ":", 2)[0]
	name = strings.TrimSpace(strings.ReplaceAll(name, "*", ""))
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// timeBlock splits a line into time and task at the colon ending the time
// expression, normalizes the time, strips bracketed annotations from the
// task, and appends the priority label. A line not opening with a time
// expression is an error; the caller passes the original line through.
func timeBlock(line string, slots []domain.Slot) (string, error) {
	m := timeExpr.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("no leading time expression")
	}

	timeStr, err := normalizeTime(m[1])
	if err != nil {
		return "", err
	}

	task := strings.TrimSpace(bracketed.ReplaceAllString(m[2], ""))

	hour, err := strconv.Atoi(strings.SplitN(timeStr, ":", 2)[0])
	if err != nil {
		return "", fmt.Errorf("invalid time format %q", timeStr)
	}

	priority := domain.PriorityFor(hour, slots)
	return fmt.Sprintf("%s - %s (%s)", timeStr, task, priority.Label()), nil
}

// normalizeTime strips spaces and uppercases. An AM/PM marker converts to
// zero-padded 24-hour HH:00 (12 AM is 00, PM adds 12 unless already 12);
// without a marker the time text passes through as already canonical.
func normalizeTime(t string) (string, error) {
	s := strings.ToUpper(strings.ReplaceAll(t, " ", ""))

	if !strings.Contains(s, "AM") && !strings.Contains(s, "PM") {
		return s, nil
	}

	digits := leadingDigits.FindString(strings.SplitN(s, ":", 2)[0])
	if digits == "" {
		return "", fmt.Errorf("no hour digits in %q", t)
	}
	hour, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("parsing hour in %q: %w", t, err)
	}

	if strings.Contains(s, "PM") && hour != 12 {
		hour += 12
	} else if strings.Contains(s, "AM") && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:00", hour), nil
}
