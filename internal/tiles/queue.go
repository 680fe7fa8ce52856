// Package tiles implements the letter-tile queue of a spelling round: a
// shuffled supply of tiles and the ordered answer slots they are placed in.
package tiles

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/pismenka/internal/shuffle"
)

// Diagnostics returned by queue operations. The queue is never modified
// when one of these is returned.
var (
	ErrAlreadySelected = errors.New("tiles: tile already selected")
	ErrNoRoom          = errors.New("tiles: no active position available")
	ErrScored          = errors.New("tiles: round already scored")
	ErrUnknownTile     = errors.New("tiles: unknown tile")
	ErrOutOfRange      = errors.New("tiles: index out of bounds")
)

// Tile is a single letter available for placement.
type Tile struct {
	Letter   string
	ID       int
	Selected bool
}

// Queue holds the tiles of one round and the player's answer slots.
type Queue struct {
	rng    *rand.Rand
	tiles  []*Tile
	slots  []*Tile
	active int
	scored bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithRand sets the random source used to shuffle the supply.
func WithRand(r *rand.Rand) Option {
	return func(q *Queue) { q.rng = r }
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{}
	for _, o := range opts {
		o(q)
	}
	return q
}

// SetQueue loads a new tile set, shuffled once, and empties wordLength slots.
func (q *Queue) SetQueue(tiles []Tile, wordLength int) {
	supply := make([]*Tile, len(tiles))
	for i := range tiles {
		t := tiles[i]
		t.Selected = false
		supply[i] = &t
	}
	q.tiles = shuffle.ShuffleWith(q.rng, supply)
	q.slots = make([]*Tile, max(wordLength, 0))
	q.active = 0
	q.scored = false
}

// Select places the tile with the given id into the active slot and moves
// the active position to the next empty slot, wrapping around. A tile
// already in the active slot is returned to the supply.
func (q *Queue) Select(id int) error {
	if q.scored {
		return ErrScored
	}
	t := q.find(id)
	if t == nil {
		return ErrUnknownTile
	}
	if t.Selected {
		return ErrAlreadySelected
	}
	if q.active >= len(q.slots) {
		return ErrNoRoom
	}

	if prev := q.slots[q.active]; prev != nil {
		prev.Selected = false
	}
	t.Selected = true
	q.slots[q.active] = t
	q.advance()
	return nil
}

func (q *Queue) advance() {
	for i := q.active + 1; i < len(q.slots); i++ {
		if q.slots[i] == nil {
			q.active = i
			return
		}
	}
	for i := 0; i < q.active; i++ {
		if q.slots[i] == nil {
			q.active = i
			return
		}
	}
}

// RemoveSelected empties the slot at index, returns its tile to the supply
// and makes index the active position. Removing from an empty slot is a no-op.
func (q *Queue) RemoveSelected(index int) error {
	if q.scored {
		return ErrScored
	}
	if index < 0 || index >= len(q.slots) {
		return ErrOutOfRange
	}
	if t := q.slots[index]; t != nil {
		t.Selected = false
		q.slots[index] = nil
		q.active = index
	}
	return nil
}

// SetActivePosition moves the cursor to position.
func (q *Queue) SetActivePosition(position int) error {
	if q.scored {
		return ErrScored
	}
	if position < 0 || position >= len(q.slots) {
		return ErrOutOfRange
	}
	q.active = position
	return nil
}

// ResetSelections returns every placed tile to the supply, empties all
// slots and lifts the scored guard.
func (q *Queue) ResetSelections() {
	for _, t := range q.slots {
		if t != nil {
			t.Selected = false
		}
	}
	q.slots = make([]*Tile, len(q.slots))
	q.active = 0
	q.scored = false
}

// Freeze marks the round as scored. Editing operations fail with ErrScored
// until ResetSelections or SetQueue.
func (q *Queue) Freeze() { q.scored = true }

// Frozen reports whether the round has been scored.
func (q *Queue) Frozen() bool { return q.scored }

// Tiles returns a snapshot of the whole supply in shuffled order.
func (q *Queue) Tiles() []Tile {
	out := make([]Tile, len(q.tiles))
	for i, t := range q.tiles {
		out[i] = *t
	}
	return out
}

// Available returns the tiles not currently placed in a slot.
func (q *Queue) Available() []Tile {
	var out []Tile
	for _, t := range q.tiles {
		if !t.Selected {
			out = append(out, *t)
		}
	}
	return out
}

// Slots returns a snapshot of the answer slots; nil marks an empty slot.
func (q *Queue) Slots() []*Tile {
	out := make([]*Tile, len(q.slots))
	for i, t := range q.slots {
		if t != nil {
			c := *t
			out[i] = &c
		}
	}
	return out
}

// ActivePosition returns the slot that receives the next tile.
func (q *Queue) ActivePosition() int { return q.active }

// Len returns the number of slots.
func (q *Queue) Len() int { return len(q.slots) }

// Filled returns the number of occupied slots.
func (q *Queue) Filled() int {
	n := 0
	for _, t := range q.slots {
		if t != nil {
			n++
		}
	}
	return n
}

// IsComplete reports whether every slot holds a tile.
func (q *Queue) IsComplete() bool {
	return q.Filled() == len(q.slots)
}

// Word concatenates the letters in slot order, skipping empty slots.
func (q *Queue) Word() string {
	var b strings.Builder
	for _, t := range q.slots {
		if t != nil {
			b.WriteString(t.Letter)
		}
	}
	return b.String()
}

func (q *Queue) find(id int) *Tile {
	for _, t := range q.tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}
