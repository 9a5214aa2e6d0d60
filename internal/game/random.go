package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// RandomSource draws uniform integers. Selection and the autopilot take one so
// tests can substitute a fixed sequence.
type RandomSource interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// DiceRoller handles dice rolling for the game
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller creates a dice roller. A zero seed draws a fresh one.
func NewDiceRoller(seed int64) *DiceRoller {
	if seed == 0 {
		if s, err := NewSeed(); err == nil {
			seed = s
		} else {
			seed = time.Now().UnixNano()
		}
	}
	return &DiceRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Intn returns a uniform value in [0, n)
func (dr *DiceRoller) Intn(n int) int {
	return dr.rng.Intn(n)
}

// SequenceSource replays a fixed list of draws, wrapping around when
// exhausted. Each draw is reduced modulo n.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource creates a deterministic source. With no values every draw is 0.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// Intn returns the next value of the sequence reduced into [0, n)
func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// roll is a d<sides> roll on any random source
func roll(rng RandomSource, sides int) int {
	return rng.Intn(sides) + 1
}
