package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"war/meta"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source. A session seeds exactly one.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

func rollDie(src Source) int {
	return src.Intn(meta.DIE_FACES) + 1
}

// ScriptedSource replays a fixed sequence of draws, for deterministic games.
type ScriptedSource struct {
	draws []int
	next  int
}

func NewScriptedSource(draws ...int) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

// NewLoadedDice scripts die faces (1..6) instead of raw draws.
func NewLoadedDice(faces ...int) *ScriptedSource {
	draws := make([]int, len(faces))
	for i, face := range faces {
		draws[i] = face - 1
	}
	return NewScriptedSource(draws...)
}

func (s *ScriptedSource) Intn(n int) int {
	if s.next >= len(s.draws) {
		panic("scripted source exhausted")
	}
	draw := s.draws[s.next]
	s.next++
	if draw < 0 || draw >= n {
		panic(fmt.Sprintf("scripted draw %d outside [0, %d)", draw, n))
	}
	return draw
}

// Remaining reports how many scripted draws have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.draws) - s.next
}
