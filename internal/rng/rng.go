package rng

// Package rng wraps the process random source behind a small interface so
// the simulation engine can be driven by a deterministic sequence in tests.

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the random interface consumed by the engine. Float64 returns a
// value in [0,1) and Intn returns an int in [0,n).
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// Default returns a time-seeded Source suitable for production use.
func Default() Source {
	return New(time.Now().UnixNano())
}

// lockedSource guards a *rand.Rand so a single Source can be shared by the
// HTTP handlers without data races.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Script replays a fixed sequence of float draws. Intn maps the next draw
// onto [0,n). When the sequence is exhausted it wraps around. Intended for
// tests that need exact control over probabilistic branches.
type Script struct {
	Seq []float64
	pos int
}

func (s *Script) next() float64 {
	if len(s.Seq) == 0 {
		return 0
	}
	v := s.Seq[s.pos%len(s.Seq)]
	s.pos++
	return v
}

func (s *Script) Float64() float64 { return s.next() }

func (s *Script) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
