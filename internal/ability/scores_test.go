package ability

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBlend(t *testing.T) {
	old := Neutral()
	sample := Scores{Expression: 5, Logic: 1, Exploration: 3, Creativity: 4, Habit: 2}

	got := Blend(old, sample, 0.3)

	want := Scores{
		Expression:  3*0.7 + 5*0.3,
		Logic:       3*0.7 + 1*0.3,
		Exploration: 3,
		Creativity:  3*0.7 + 4*0.3,
		Habit:       3*0.7 + 2*0.3,
	}
	for _, a := range All() {
		if !approx(got.Get(a), want.Get(a)) {
			t.Errorf("%s = %v, want %v", a, got.Get(a), want.Get(a))
		}
	}
}

func TestBlend_FullWeightReplaces(t *testing.T) {
	sample := Scores{Expression: 4.5, Logic: 2, Exploration: 1, Creativity: 5, Habit: 3.5}
	got := Blend(Neutral(), sample, 1)
	if got != sample {
		t.Errorf("Blend(w=1) = %+v, want %+v", got, sample)
	}
}

func TestWeakest(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Ability
	}{
		{"single minimum", Scores{4, 4, 2.5, 4, 4}, Exploration},
		{"last is minimum", Scores{4, 4, 4, 4, 1}, Habit},
		{"tie resolves to canonical order", Scores{3, 2, 4, 2, 5}, Logic},
		{"all equal", Neutral(), Expression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weakest(tt.scores); got != tt.want {
				t.Errorf("Weakest = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStrongest(t *testing.T) {
	if got := Strongest(Scores{3, 4.8, 4.8, 1, 2}); got != Logic {
		t.Errorf("Strongest = %s, want logic", got)
	}
}

func TestClamp(t *testing.T) {
	got := Scores{Expression: 0, Logic: -2, Exploration: 7, Creativity: 4.2, Habit: math.NaN()}.Clamp()
	want := Scores{Expression: 3, Logic: 1, Exploration: 5, Creativity: 4.2, Habit: 3}
	if got != want {
		t.Errorf("Clamp = %+v, want %+v", got, want)
	}
}

func TestMeanAndAverage(t *testing.T) {
	m := Mean([]Scores{
		{Expression: 2, Logic: 2, Exploration: 2, Creativity: 2, Habit: 2},
		{Expression: 4, Logic: 4, Exploration: 4, Creativity: 4, Habit: 5},
	})
	if !approx(m.Expression, 3) || !approx(m.Habit, 3.5) {
		t.Errorf("Mean = %+v", m)
	}
	if !approx(m.Average(), 3.1) {
		t.Errorf("Average = %v, want 3.1", m.Average())
	}
	if Mean(nil) != Neutral() {
		t.Error("Mean(nil) should be neutral")
	}
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.2, 1},
		{1.4, 1},
		{2.5, 3},
		{3.49, 3},
		{4.6, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := DifficultyFor(tt.score); got != tt.want {
			t.Errorf("DifficultyFor(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	a, err := Parse("creativity")
	if err != nil || a != Creativity {
		t.Fatalf("Parse(creativity) = %v, %v", a, err)
	}
	if _, err := Parse("inquiry"); err == nil {
		t.Fatal("expected error for unknown ability")
	}
}
