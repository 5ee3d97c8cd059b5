package ability

import "math"

// Scores holds one value per ability.
type Scores struct {
	Expression  float64 `json:"expression"`
	Logic       float64 `json:"logic"`
	Exploration float64 `json:"exploration"`
	Creativity  float64 `json:"creativity"`
	Habit       float64 `json:"habit"`
}

// Neutral returns scores at the midpoint of the scale.
func Neutral() Scores {
	return Scores{
		Expression:  NeutralScore,
		Logic:       NeutralScore,
		Exploration: NeutralScore,
		Creativity:  NeutralScore,
		Habit:       NeutralScore,
	}
}

// Get returns the score for a.
func (s Scores) Get(a Ability) float64 {
	switch a {
	case Expression:
		return s.Expression
	case Logic:
		return s.Logic
	case Exploration:
		return s.Exploration
	case Creativity:
		return s.Creativity
	case Habit:
		return s.Habit
	default:
		return 0
	}
}

// Set returns a copy of s with the score for a replaced.
func (s Scores) Set(a Ability, v float64) Scores {
	switch a {
	case Expression:
		s.Expression = v
	case Logic:
		s.Logic = v
	case Exploration:
		s.Exploration = v
	case Creativity:
		s.Creativity = v
	case Habit:
		s.Habit = v
	}
	return s
}

// Map returns the scores keyed by ability name.
func (s Scores) Map() map[Ability]float64 {
	m := make(map[Ability]float64, 5)
	for _, a := range All() {
		m[a] = s.Get(a)
	}
	return m
}

// Clamp bounds every score to [MinScore, MaxScore]. Zero values, which
// mean "missing" in LLM output, become the neutral score.
func (s Scores) Clamp() Scores {
	for _, a := range All() {
		v := s.Get(a)
		switch {
		case v == 0 || math.IsNaN(v):
			v = NeutralScore
		case v < MinScore:
			v = MinScore
		case v > MaxScore:
			v = MaxScore
		}
		s = s.Set(a, v)
	}
	return s
}

// Average returns the mean of the five scores.
func (s Scores) Average() float64 {
	var sum float64
	for _, a := range All() {
		sum += s.Get(a)
	}
	return sum / float64(len(All()))
}

// Min returns the smallest of the five scores.
func (s Scores) Min() float64 {
	return s.Get(Weakest(s))
}

// Blend folds a new sample into a rolling score:
// new = old*(1-w) + sample*w, per ability.
func Blend(old, sample Scores, w float64) Scores {
	var out Scores
	for _, a := range All() {
		out = out.Set(a, old.Get(a)*(1-w)+sample.Get(a)*w)
	}
	return out
}

// Weakest returns the ability with the lowest score.
func Weakest(s Scores) Ability {
	best := Expression
	for _, a := range All()[1:] {
		if s.Get(a) < s.Get(best) {
			best = a
		}
	}
	return best
}

// Strongest returns the ability with the highest score.
func Strongest(s Scores) Ability {
	best := Expression
	for _, a := range All()[1:] {
		if s.Get(a) > s.Get(best) {
			best = a
		}
	}
	return best
}

// Delta returns after - before per ability.
func Delta(before, after Scores) Scores {
	var out Scores
	for _, a := range All() {
		out = out.Set(a, after.Get(a)-before.Get(a))
	}
	return out
}

// Mean averages a set of samples. Returns Neutral for an empty set.
func Mean(samples []Scores) Scores {
	if len(samples) == 0 {
		return Neutral()
	}
	var sum Scores
	for _, s := range samples {
		for _, a := range All() {
			sum = sum.Set(a, sum.Get(a)+s.Get(a))
		}
	}
	n := float64(len(samples))
	for _, a := range All() {
		sum = sum.Set(a, sum.Get(a)/n)
	}
	return sum
}

// Round returns the scores rounded to two decimals, for presentation.
func (s Scores) Round() Scores {
	for _, a := range All() {
		s = s.Set(a, math.Round(s.Get(a)*100)/100)
	}
	return s
}
