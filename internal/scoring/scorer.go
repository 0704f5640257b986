package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/tempora/internal/classifier"
	"github.com/alexanderramin/tempora/internal/domain"
)

// Candidate hours the classifier path considers.
const (
	minCandidateHour = 5
	maxCandidateHour = 22
)

// maxSlots caps how many hour slots a single day plan can request.
const maxSlots = 12

// Result is a ranked slot list plus which path produced it and any
// degradations recorded along the way.
type Result struct {
	Slots    []domain.Slot
	Source   domain.ScoreSource
	Warnings []string
}

// Scorer ranks candidate hours of the day for a request. With a trained
// forest it scores hours from class probabilities; without one, or when
// prediction fails, it falls back to deterministic time-of-day rules.
type Scorer struct {
	forest *classifier.Forest
}

// NewScorer creates a Scorer. forest may be nil.
func NewScorer(forest *classifier.Forest) *Scorer {
	return &Scorer{forest: forest}
}

// Score produces at most min(int(availableHours), 12) slots, highest score
// first. Classifier failures never propagate; they degrade to the rule
// path with a warning.
func (s *Scorer) Score(featureValues []float64, availableHours float64, considerations string) Result {
	hoursNeeded := int(availableHours)
	if hoursNeeded > maxSlots {
		hoursNeeded = maxSlots
	}

	if s.forest != nil {
		slots, err := s.classifierSlots(featureValues, hoursNeeded)
		if err == nil {
			return Result{Slots: slots, Source: domain.SourceClassifier}
		}
		return Result{
			Slots:    fallbackSlots(considerations, hoursNeeded),
			Source:   domain.SourceRules,
			Warnings: []string{fmt.Sprintf("classifier prediction failed, using rule-based scoring: %v", err)},
		}
	}

	return Result{
		Slots:  fallbackSlots(considerations, hoursNeeded),
		Source: domain.SourceRules,
	}
}

// classifierSlots scores candidate hours [5,22] from the favorable class
// probability, boosts mornings (x1.2 for 9-11) and afternoons (x1.1 for
// 14-16), penalizes edges (x0.8 outside 7-20), clamps to [0,1], and keeps
// the top hoursNeeded slots renormalized to sum to 1.
func (s *Scorer) classifierSlots(featureValues []float64, hoursNeeded int) ([]domain.Slot, error) {
	probs, err := s.forest.PredictProba(featureValues)
	if err != nil {
		return nil, err
	}
	if len(probs) == 0 {
		return nil, classifier.ErrNoProbabilities
	}

	favorable := probs[0]
	if len(probs) > 1 {
		favorable = probs[1]
	}

	slots := make([]domain.Slot, 0, maxCandidateHour-minCandidateHour+1)
	for hour := minCandidateHour; hour <= maxCandidateHour; hour++ {
		score := favorable * adjustment(hour)
		if score > 1 {
			score = 1
		}
		if score < 0 {
			score = 0
		}
		slots = append(slots, domain.Slot{Hour: hour, Score: score})
	}

	// Stable sort keeps earlier hours first on score ties.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Score > slots[j].Score
	})

	if len(slots) > hoursNeeded {
		slots = slots[:hoursNeeded]
	}

	total := 0.0
	for _, sl := range slots {
		total += sl.Score
	}
	if total > 0 {
		for i := range slots {
			slots[i].Score /= total
		}
	}
	return slots, nil
}

// adjustment composes the three independent multiplicative boosts for an
// hour. The factors are order-independent.
func adjustment(hour int) float64 {
	adj := 1.0
	if hour >= 9 && hour <= 11 {
		adj *= 1.2
	}
	if hour >= 14 && hour <= 16 {
		adj *= 1.1
	}
	if hour < 7 || hour > 20 {
		adj *= 0.8
	}
	return adj
}

// timePreferences map considerations keywords to a preferred start hour.
// Declaration order is the tie-break: the first category keeps the win.
var timePreferences = []struct {
	keywords  []string
	startHour int
}{
	{[]string{"morning", "early", "am"}, 8},
	{[]string{"afternoon", "lunch", "pm"}, 12},
	{[]string{"evening", "night", "late"}, 16},
}

// fallbackSlots generates hoursNeeded consecutive wrapped hour slots from
// the preferred start. Scores are raw priority bands, not probabilities,
// so they are never renormalized: base 0.7, overridden in fixed order by
// morning 0.9 (9-11), afternoon 0.8 (14-16), and edge 0.6 (wrapped hour
// <7 or >20). The last matching override wins.
func fallbackSlots(considerations string, hoursNeeded int) []domain.Slot {
	lower := strings.ToLower(considerations)

	startHour := 9
	best := 0
	for _, pref := range timePreferences {
		hits := 0
		for _, kw := range pref.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > best {
			best = hits
			startHour = pref.startHour
		}
	}

	slots := make([]domain.Slot, 0, hoursNeeded)
	for i := 0; i < hoursNeeded; i++ {
		hour := (startHour + i) % 24
		score := 0.7
		if hour >= 9 && hour <= 11 {
			score = 0.9
		}
		if hour >= 14 && hour <= 16 {
			score = 0.8
		}
		if hour < 7 || hour > 20 {
			score = 0.6
		}
		slots = append(slots, domain.Slot{Hour: hour, Score: score})
	}
	return slots
}
