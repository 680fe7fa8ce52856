package tiles

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func newQueue(t *testing.T, word string, extra ...string) *Queue {
	t.Helper()
	q := New(WithRand(rand.New(rand.NewPCG(7, 11))))
	var ts []Tile
	id := 0
	for _, r := range word {
		ts = append(ts, Tile{Letter: string(r), ID: id})
		id++
	}
	for _, l := range extra {
		ts = append(ts, Tile{Letter: l, ID: id})
		id++
	}
	q.SetQueue(ts, len([]rune(word)))
	return q
}

func mustSelect(t *testing.T, q *Queue, id int) {
	t.Helper()
	if err := q.Select(id); err != nil {
		t.Fatalf("Select(%d): %v", id, err)
	}
}

// checkInvariant verifies occupied slots match selected tiles one to one.
func checkInvariant(t *testing.T, q *Queue) {
	t.Helper()
	selected := 0
	for _, tile := range q.Tiles() {
		if tile.Selected {
			selected++
		}
	}
	seen := map[int]bool{}
	for _, s := range q.Slots() {
		if s == nil {
			continue
		}
		if !s.Selected {
			t.Errorf("slot tile %d not marked selected", s.ID)
		}
		if seen[s.ID] {
			t.Errorf("tile %d in two slots", s.ID)
		}
		seen[s.ID] = true
	}
	if selected != q.Filled() {
		t.Errorf("selected tiles = %d, filled slots = %d", selected, q.Filled())
	}
	if q.Len() > 0 && (q.ActivePosition() < 0 || q.ActivePosition() >= q.Len()) {
		t.Errorf("active position %d outside 0..%d", q.ActivePosition(), q.Len()-1)
	}
}

func TestSetQueue_ShufflesWithoutLosingTiles(t *testing.T) {
	q := newQueue(t, "abc", "x", "y")
	ids := map[int]bool{}
	for _, tile := range q.Tiles() {
		ids[tile.ID] = true
	}
	if len(ids) != 5 {
		t.Errorf("distinct tiles = %d, want 5", len(ids))
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	if q.ActivePosition() != 0 {
		t.Errorf("ActivePosition() = %d, want 0", q.ActivePosition())
	}
	if got := len(q.Available()); got != 5 {
		t.Errorf("available = %d, want 5", got)
	}
}

func TestSelect_FillsInOrder(t *testing.T) {
	q := newQueue(t, "abc")
	for id := 0; id < 3; id++ {
		mustSelect(t, q, id)
		checkInvariant(t, q)
	}
	if q.Word() != "abc" {
		t.Errorf("Word() = %q, want abc", q.Word())
	}
	if !q.IsComplete() {
		t.Error("queue should be complete")
	}
	if len(q.Available()) != 0 {
		t.Errorf("available = %d, want 0", len(q.Available()))
	}
}

func TestSelect_Errors(t *testing.T) {
	q := newQueue(t, "ab")
	mustSelect(t, q, 0)
	if err := q.Select(0); !errors.Is(err, ErrAlreadySelected) {
		t.Errorf("Select(0) again = %v, want ErrAlreadySelected", err)
	}
	if err := q.Select(99); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("Select(99) = %v, want ErrUnknownTile", err)
	}
	mustSelect(t, q, 1)
	checkInvariant(t, q)
}

func TestSelect_NoRoomWithoutSlots(t *testing.T) {
	q := New()
	q.SetQueue([]Tile{{Letter: "a", ID: 0}}, 0)
	if err := q.Select(0); !errors.Is(err, ErrNoRoom) {
		t.Errorf("Select = %v, want ErrNoRoom", err)
	}
	if q.Tiles()[0].Selected {
		t.Error("tile should stay in the supply")
	}
}

func TestSelect_ReplacesOccupiedActiveSlot(t *testing.T) {
	q := newQueue(t, "abc")
	mustSelect(t, q, 0)
	if err := q.SetActivePosition(0); err != nil {
		t.Fatal(err)
	}

	mustSelect(t, q, 1)
	checkInvariant(t, q)

	if got := q.Slots()[0]; got == nil || got.ID != 1 {
		t.Fatalf("slot 0 = %v, want tile 1", got)
	}
	for _, tile := range q.Available() {
		if tile.ID == 0 {
			if q.ActivePosition() != 1 {
				t.Errorf("ActivePosition() = %d, want 1", q.ActivePosition())
			}
			return
		}
	}
	t.Error("displaced tile 0 should be back in the supply")
}

func TestSelect_FullQueueReplacesActiveSlot(t *testing.T) {
	q := newQueue(t, "ab", "z")
	mustSelect(t, q, 0)
	mustSelect(t, q, 1)
	if q.ActivePosition() != 1 {
		t.Fatalf("ActivePosition() = %d, want 1 when full", q.ActivePosition())
	}

	mustSelect(t, q, 2)
	if q.Word() != "az" {
		t.Errorf("Word() = %q, want az", q.Word())
	}
	if q.ActivePosition() != 1 {
		t.Errorf("ActivePosition() = %d, want 1", q.ActivePosition())
	}
	checkInvariant(t, q)
}

func TestSelect_WrapsToEarlierEmptySlot(t *testing.T) {
	q := newQueue(t, "abcd")
	if err := q.SetActivePosition(2); err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		id         int
		wantActive int
	}{
		{2, 3},
		{3, 0},
		{0, 1},
	}
	for _, s := range steps {
		mustSelect(t, q, s.id)
		if q.ActivePosition() != s.wantActive {
			t.Errorf("after Select(%d): active = %d, want %d", s.id, q.ActivePosition(), s.wantActive)
		}
	}
	mustSelect(t, q, 1)
	if q.Word() != "abcd" {
		t.Errorf("Word() = %q, want abcd", q.Word())
	}
	checkInvariant(t, q)
}

func TestRemoveSelected(t *testing.T) {
	q := newQueue(t, "abc")
	for id := 0; id < 3; id++ {
		mustSelect(t, q, id)
	}

	if err := q.RemoveSelected(1); err != nil {
		t.Fatal(err)
	}
	if q.ActivePosition() != 1 {
		t.Errorf("ActivePosition() = %d, want 1", q.ActivePosition())
	}
	if q.Word() != "ac" {
		t.Errorf("Word() = %q, want ac", q.Word())
	}
	if q.Slots()[1] != nil {
		t.Error("slot 1 should be empty")
	}
	checkInvariant(t, q)

	for _, i := range []int{-1, 3} {
		if err := q.RemoveSelected(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("RemoveSelected(%d) = %v, want ErrOutOfRange", i, err)
		}
	}

	// Empty slot: nothing happens.
	if err := q.SetActivePosition(0); err != nil {
		t.Fatal(err)
	}
	if err := q.RemoveSelected(1); err != nil {
		t.Fatal(err)
	}
	if q.ActivePosition() != 0 {
		t.Errorf("ActivePosition() = %d, want 0", q.ActivePosition())
	}
}

func TestSetActivePosition_Bounds(t *testing.T) {
	q := newQueue(t, "ab")
	for _, p := range []int{2, -1} {
		if err := q.SetActivePosition(p); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetActivePosition(%d) = %v, want ErrOutOfRange", p, err)
		}
	}
	if q.ActivePosition() != 0 {
		t.Errorf("ActivePosition() = %d, want 0", q.ActivePosition())
	}
	if err := q.SetActivePosition(1); err != nil {
		t.Fatal(err)
	}
	if q.ActivePosition() != 1 {
		t.Errorf("ActivePosition() = %d, want 1", q.ActivePosition())
	}
}

func TestFreezeGuardsEditing(t *testing.T) {
	q := newQueue(t, "abc")
	mustSelect(t, q, 0)
	q.Freeze()

	if err := q.Select(1); !errors.Is(err, ErrScored) {
		t.Errorf("Select = %v, want ErrScored", err)
	}
	if err := q.RemoveSelected(0); !errors.Is(err, ErrScored) {
		t.Errorf("RemoveSelected = %v, want ErrScored", err)
	}
	if err := q.SetActivePosition(2); !errors.Is(err, ErrScored) {
		t.Errorf("SetActivePosition = %v, want ErrScored", err)
	}
	if q.Word() != "a" {
		t.Errorf("Word() = %q, want a", q.Word())
	}

	q.ResetSelections()
	if q.Frozen() {
		t.Error("reset should unfreeze")
	}
	mustSelect(t, q, 1)
}

func TestResetSelections(t *testing.T) {
	q := newQueue(t, "abc", "x")
	mustSelect(t, q, 3)
	mustSelect(t, q, 0)

	q.ResetSelections()
	if q.Filled() != 0 {
		t.Errorf("Filled() = %d, want 0", q.Filled())
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	if q.ActivePosition() != 0 {
		t.Errorf("ActivePosition() = %d, want 0", q.ActivePosition())
	}
	for _, tile := range q.Tiles() {
		if tile.Selected {
			t.Errorf("tile %d still selected", tile.ID)
		}
	}
	checkInvariant(t, q)
}

func TestInvariant_RandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	q := newQueue(t, "slovo", "k", "m")
	for i := 0; i < 2000; i++ {
		switch r.IntN(5) {
		case 0, 1:
			_ = q.Select(r.IntN(8))
		case 2:
			_ = q.RemoveSelected(r.IntN(6))
		case 3:
			_ = q.SetActivePosition(r.IntN(6) - 1)
		case 4:
			if r.IntN(10) == 0 {
				q.ResetSelections()
			}
		}
		checkInvariant(t, q)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	q := newQueue(t, "ab")
	mustSelect(t, q, 0)
	q.Slots()[0].Selected = false
	q.Tiles()[0].Selected = true
	checkInvariant(t, q)
}
