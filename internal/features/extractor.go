package features

import (
	"math"
	"strings"
)

// Vector is a fixed-order numeric feature encoding of a schedule request.
// Field order is stable across calls so a classifier trained on a specific
// schema always receives compatible input. Vectors are never mutated after
// creation; Align returns a new vector.
type Vector struct {
	names  []string
	values []float64
}

// NewVector builds a vector from parallel name/value slices. Both slices
// are copied.
func NewVector(names []string, values []float64) Vector {
	return Vector{
		names:  append([]string(nil), names...),
		values: append([]float64(nil), values...),
	}
}

// Names returns a copy of the ordered feature names.
func (v Vector) Names() []string {
	return append([]string(nil), v.names...)
}

// Values returns a copy of the ordered feature values.
func (v Vector) Values() []float64 {
	return append([]float64(nil), v.values...)
}

// Value looks up a feature by name.
func (v Vector) Value(name string) (float64, bool) {
	for i, n := range v.names {
		if n == name {
			return v.values[i], true
		}
	}
	return 0, false
}

// Len returns the number of features.
func (v Vector) Len() int {
	return len(v.names)
}

// keywordCategories are the nine binary intent/preference/style indicators,
// in canonical field order. A flag is set when any keyword appears as a
// whole token of the goal text or as a substring of the considerations
// text. Substring matching on considerations is intentional: it catches
// phrases like "10am meeting" that never tokenize cleanly.
var keywordCategories = []struct {
	name     string
	keywords []string
}{
	{"is_creative", []string{"design", "create", "develop", "build", "implement"}},
	{"is_analytical", []string{"analyze", "research", "study", "investigate", "solve"}},
	{"is_planning", []string{"plan", "organize", "schedule", "coordinate", "arrange"}},
	{"prefers_morning", []string{"morning", "early", "am"}},
	{"prefers_afternoon", []string{"afternoon", "lunch", "pm"}},
	{"prefers_evening", []string{"evening", "night", "late"}},
	{"style_visual", []string{"visual", "see", "watch", "look"}},
	{"style_auditory", []string{"listen", "hear", "discuss", "talk"}},
	{"style_kinesthetic", []string{"practice", "hands-on", "do", "experience"}},
}

// deadlineKeywords drive the urgency score: the fraction of this set found
// as substrings of the considerations text.
var deadlineKeywords = []string{"deadline", "due", "urgent", "asap", "priority"}

// Extract maps a goal description, daily hour budget, and considerations
// text to the canonical feature vector.
func Extract(goals string, availableHours float64, considerations string) Vector {
	startHour := math.Max(6, 24-availableHours)
	endHour := math.Min(22, startHour+availableHours)

	tokens := strings.Fields(strings.ToLower(goals))
	unique := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		unique[tok] = true
	}

	// An empty goal text should be rejected upstream; if it reaches here,
	// diversity is defined as 0 rather than dividing by zero.
	diversity := 0.0
	if len(tokens) > 0 {
		diversity = float64(len(unique)) / float64(len(tokens))
	}

	considerationsLower := strings.ToLower(considerations)

	names := []string{"available_hours", "start_hour", "end_hour", "duration_blocks", "task_complexity", "task_diversity"}
	values := []float64{availableHours, startHour, endHour, availableHours / 2, float64(len(tokens)) / 10, diversity}

	for _, cat := range keywordCategories {
		flag := 0.0
		for _, kw := range cat.keywords {
			if unique[kw] || strings.Contains(considerationsLower, kw) {
				flag = 1.0
				break
			}
		}
		names = append(names, cat.name)
		values = append(values, flag)
	}

	urgencyHits := 0
	for _, kw := range deadlineKeywords {
		if strings.Contains(considerationsLower, kw) {
			urgencyHits++
		}
	}

	hasMeetings := 0.0
	if strings.Contains(considerationsLower, "meeting") {
		hasMeetings = 1.0
	}
	hasBreaks := 0.0
	if strings.Contains(considerationsLower, "break") {
		hasBreaks = 1.0
	}

	names = append(names, "urgency_score", "has_meetings", "has_breaks", "meeting_frequency")
	values = append(values,
		float64(urgencyHits)/float64(len(deadlineKeywords)),
		hasMeetings,
		hasBreaks,
		float64(strings.Count(considerationsLower, "meeting")),
	)

	return Vector{names: names, values: values}
}

// Align reindexes v to the exact ordered name set a classifier expects,
// filling missing names with 0 and dropping unrecognized ones. It never
// fails: two completely divergent schemas produce an all-zero vector.
// Aligning an already-aligned vector to the same schema is a no-op.
func Align(v Vector, names []string) Vector {
	values := make([]float64, len(names))
	for i, name := range names {
		if val, ok := v.Value(name); ok {
			values[i] = val
		}
	}
	return Vector{
		names:  append([]string(nil), names...),
		values: values,
	}
}
