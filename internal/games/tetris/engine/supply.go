package engine

import (
	"encoding/binary"
	"math/rand"

	"github.com/google/uuid"
)

// PreviewSize is the number of upcoming pieces the supply keeps visible.
const PreviewSize = 3

// Supply draws pieces uniformly at random, with replacement, and keeps a
// preview of the next three. Slots 1 and 2 of the preview never hold the same
// kind after Next returns; slots 0 and 1 may.
type Supply struct {
	rng     *rand.Rand
	preview []Kind
}

// NewSupply creates a supply drawing from rng and fills the preview.
func NewSupply(rng *rand.Rand) *Supply {
	s := &Supply{
		rng:     rng,
		preview: make([]Kind, 0, PreviewSize),
	}
	for range PreviewSize {
		s.preview = append(s.preview, s.draw())
	}
	return s
}

// EntropySeed returns a seed taken from a random UUID. Two sessions created in
// the same instant get unrelated sequences.
func EntropySeed() int64 {
	id := uuid.New()
	return int64(binary.LittleEndian.Uint64(id[:8]))
}

func (s *Supply) draw() Kind {
	return Kinds[s.rng.Intn(KindCount)]
}

// Next removes and returns the first preview entry, refills the preview, then
// redraws the last slot while it repeats the middle one.
func (s *Supply) Next() Piece {
	k := s.preview[0]
	s.preview = append(s.preview[:0], s.preview[1:]...)
	s.preview = append(s.preview, s.draw())

	for s.preview[1] == s.preview[2] {
		s.preview[2] = s.draw()
	}

	return NewPiece(k)
}

// Peek returns the kind at preview slot i without consuming it.
func (s *Supply) Peek(i int) Kind {
	return s.preview[i]
}

// Preview returns a copy of the upcoming kinds, next first.
func (s *Supply) Preview() [PreviewSize]Kind {
	var out [PreviewSize]Kind
	copy(out[:], s.preview)
	return out
}
