package scoring

import (
	"testing"

	"github.com/alexanderramin/tempora/internal/classifier"
	"github.com/alexanderramin/tempora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// favorableForest always predicts the favorable class with probability ~0.75.
func favorableForest() *classifier.Forest {
	leafOnly := classifier.Tree{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{0},
		Value:         [][]float64{{1, 3}},
	}
	return &classifier.Forest{NClasses: 2, Trees: []classifier.Tree{leafOnly}}
}

// brokenForest fails prediction: its only split references feature 5 while
// tests pass shorter vectors.
func brokenForest() *classifier.Forest {
	return &classifier.Forest{
		NClasses: 2,
		Trees: []classifier.Tree{{
			ChildrenLeft:  []int{1, -1, -1},
			ChildrenRight: []int{2, -1, -1},
			Feature:       []int{5, -2, -2},
			Threshold:     []float64{0.5, 0, 0},
			Value:         [][]float64{{2, 2}, {1, 1}, {1, 1}},
		}},
	}
}

func TestScore_FallbackStartHour(t *testing.T) {
	s := NewScorer(nil)

	cases := []struct {
		considerations string
		wantStart      int
	}{
		{"morning meetings, avoid evenings", 8}, // one hit each, first-declared category wins the tie
		{"prefer afternoon and lunch slots", 12},
		{"late night owl, evening work", 16},
		{"no preference at all", 9},
	}
	for _, tc := range cases {
		res := s.Score(nil, 4, tc.considerations)
		require.Equal(t, domain.SourceRules, res.Source)
		require.NotEmpty(t, res.Slots)
		assert.Equal(t, tc.wantStart, res.Slots[0].Hour, "considerations=%q", tc.considerations)
	}
}

func TestScore_SlotCountCappedAtTwelve(t *testing.T) {
	s := NewScorer(nil)

	for _, hours := range []float64{0.5, 1, 3, 8, 12, 18, 24} {
		res := s.Score(nil, hours, "none")
		want := int(hours)
		if want > 12 {
			want = 12
		}
		assert.Len(t, res.Slots, want, "availableHours=%v", hours)
	}
}

func TestScore_FallbackOverrideBands(t *testing.T) {
	s := NewScorer(nil)

	// Start 8, 12 slots: hours 8..19.
	res := s.Score(nil, 12, "morning focus")
	require.Len(t, res.Slots, 12)

	byHour := map[int]float64{}
	for _, sl := range res.Slots {
		byHour[sl.Hour] = sl.Score
	}

	assert.Equal(t, 0.7, byHour[8])
	for h := 9; h <= 11; h++ {
		assert.Equal(t, 0.9, byHour[h], "hour %d", h)
		assert.Greater(t, byHour[h], 0.7)
	}
	for h := 14; h <= 16; h++ {
		assert.Equal(t, 0.8, byHour[h], "hour %d", h)
		assert.Greater(t, byHour[h], 0.7)
	}
	assert.Equal(t, 0.7, byHour[13])
	assert.Equal(t, 0.7, byHour[19])
}

func TestScore_FallbackWrappedEdgeHours(t *testing.T) {
	s := NewScorer(nil)

	// Evening start 16 with 12 slots wraps through 23..03.
	res := s.Score(nil, 12, "evening work")
	require.Len(t, res.Slots, 12)

	for _, sl := range res.Slots {
		if sl.Hour < 7 || sl.Hour > 20 {
			assert.Equal(t, 0.6, sl.Score, "wrapped edge hour %d", sl.Hour)
		}
	}
}

func TestScore_FallbackScoresNotRenormalized(t *testing.T) {
	s := NewScorer(nil)
	res := s.Score(nil, 6, "none")

	sum := 0.0
	for _, sl := range res.Slots {
		sum += sl.Score
	}
	assert.Greater(t, sum, 1.0, "fallback scores are raw bands, not probabilities")
}

func TestScore_ClassifierPath(t *testing.T) {
	s := NewScorer(favorableForest())

	res := s.Score([]float64{1, 2, 3}, 8, "whatever")
	require.Equal(t, domain.SourceClassifier, res.Source)
	require.Len(t, res.Slots, 8)
	assert.Empty(t, res.Warnings)

	// Boosted morning hours rank first; stable sort keeps 9 before 10.
	assert.Equal(t, 9, res.Slots[0].Hour)
	assert.Equal(t, 10, res.Slots[1].Hour)
	assert.Equal(t, 11, res.Slots[2].Hour)

	sum := 0.0
	for i, sl := range res.Slots {
		assert.GreaterOrEqual(t, sl.Score, 0.0)
		assert.LessOrEqual(t, sl.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, sl.Score, res.Slots[i-1].Score)
		}
		sum += sl.Score
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "classifier scores renormalize to 1")
}

func TestScore_ClassifierScoresClamped(t *testing.T) {
	// A forest predicting near-certain favorable probability: 0.9x1.2 > 1
	// before clamping.
	certain := classifier.Tree{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{0},
		Value:         [][]float64{{1, 9}},
	}
	s := NewScorer(&classifier.Forest{NClasses: 2, Trees: []classifier.Tree{certain}})

	res := s.Score([]float64{0}, 24, "none")
	require.Equal(t, domain.SourceClassifier, res.Source)
	require.Len(t, res.Slots, 12)
}

func TestScore_ClassifierFailureFallsBack(t *testing.T) {
	s := NewScorer(brokenForest())

	res := s.Score([]float64{1}, 6, "morning routine")
	assert.Equal(t, domain.SourceRules, res.Source)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "rule-based")
	require.Len(t, res.Slots, 6)
	assert.Equal(t, 8, res.Slots[0].Hour)
}

func TestAdjustment_ComposesMultiplicatively(t *testing.T) {
	assert.InDelta(t, 1.2, adjustment(9), 1e-9)
	assert.InDelta(t, 1.1, adjustment(15), 1e-9)
	assert.InDelta(t, 0.8, adjustment(6), 1e-9)
	assert.InDelta(t, 0.8, adjustment(21), 1e-9)
	assert.InDelta(t, 1.0, adjustment(13), 1e-9)
	assert.InDelta(t, 1.0, adjustment(20), 1e-9)
}
