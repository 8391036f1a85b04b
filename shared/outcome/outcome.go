package outcome

import (
	"math/rand"
	"sync"
)

// Source produces the next simulated decision. The slot generator draws
// availability from it and the booking resolver draws approvals from it,
// so tests can replace the randomness with a fixed sequence.
type Source interface {
	Next() bool
}

type randomSource struct {
	mu   sync.Mutex
	rng  *rand.Rand
	rate float64
}

// NewRandom returns a Source that yields true with the given probability.
// Rate is clamped to [0, 1].
func NewRandom(rate float64, seed int64) Source {
	if rate < 0 {
		rate = 0
	}

	if rate > 1 {
		rate = 1
	}

	return &randomSource{
		rng:  rand.New(rand.NewSource(seed)),
		rate: rate,
	}
}

func (s *randomSource) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64() < s.rate
}

type fixedSource struct {
	mu       sync.Mutex
	sequence []bool
	index    int
}

// NewFixed returns a Source that replays the given sequence and repeats
// the last value once the sequence is exhausted. An empty sequence
// always yields true.
func NewFixed(sequence ...bool) Source {
	return &fixedSource{sequence: sequence}
}

func (s *fixedSource) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sequence) == 0 {
		return true
	}

	value := s.sequence[s.index]
	if s.index < len(s.sequence)-1 {
		s.index++
	}

	return value
}
