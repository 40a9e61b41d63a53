package domain

// scriptedRandom replays fixed fractions for Uniform and fixed values for
// IntN, cycling when exhausted.
type scriptedRandom struct {
	fractions []float64
	ints      []int
	fi, ii    int
}

func (s *scriptedRandom) Uniform(lo, hi float64) float64 {
	f := 0.5
	if len(s.fractions) > 0 {
		f = s.fractions[s.fi%len(s.fractions)]
		s.fi++
	}
	return lo + f*(hi-lo)
}

func (s *scriptedRandom) IntN(n int) int {
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[s.ii%len(s.ints)]
		s.ii++
	}
	return v % n
}

func constant(f float64) *scriptedRandom {
	return &scriptedRandom{fractions: []float64{f}}
}
