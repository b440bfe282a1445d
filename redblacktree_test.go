package redblacktree

import (
	"errors"
	"testing"
)

type intKey int

func (k intKey) Compare(other intKey) int { return int(k) - int(other) }

func TestOrderedMapSetGetDelete(t *testing.T) {
	m := NewOrderedMap[intKey, string]()
	if _, ok := m.Get(5); ok {
		t.Fatalf("expected miss on empty map")
	}
	if _, existed := m.Set(5, "five"); existed {
		t.Fatalf("did not expect a previous value")
	}
	if _, existed := m.Set(3, "three"); existed {
		t.Fatalf("did not expect a previous value")
	}
	previous, existed := m.Set(5, "FIVE")
	if !existed || previous != "five" {
		t.Fatalf("expected overwrite to report previous value, got %q existed=%v", previous, existed)
	}
	if v, ok := m.Get(5); !ok || v != "FIVE" {
		t.Fatalf("Get(5) = %q, %v", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	v, ok := m.Delete(3)
	if !ok || v != "three" {
		t.Fatalf("Delete(3) = %q, %v", v, ok)
	}
	if _, ok := m.Delete(3); ok {
		t.Fatalf("expected second Delete(3) to miss")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestOrderedMapAllIteratesInKeyOrder(t *testing.T) {
	m := NewOrderedMap[intKey, string]()
	for _, k := range []intKey{5, 1, 4, 2, 3} {
		m.Set(k, "")
	}
	var seen []intKey
	for k := range m.All() {
		seen = append(seen, k)
	}
	want := []intKey{1, 2, 3, 4, 5}
	if len(seen) != len(want) {
		t.Fatalf("All() yielded %d keys, want %d", len(seen), len(want))
	}
	for i, k := range want {
		if seen[i] != k {
			t.Fatalf("All()[%d] = %v, want %v", i, seen[i], k)
		}
	}
}

func TestOrderedMapAllStopsOnFalse(t *testing.T) {
	m := NewOrderedMap[intKey, string]()
	for _, k := range []intKey{1, 2, 3} {
		m.Set(k, "")
	}
	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected iteration to stop after 2, got %d", count)
	}
}

func TestSequenceAppendPrependInsertAt(t *testing.T) {
	s := NewSequence[string]()
	s.Append("b")
	s.Append("c")
	s.Prepend("a")
	s.InsertAt(2, "B.5") // between "b" (index 1) and "c" (index 2)
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := []string{"a", "b", "B.5", "c"}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, v := range want {
		got, ok := s.At(i)
		if !ok || got != v {
			t.Fatalf("At(%d) = %q, %v, want %q", i, got, ok, v)
		}
	}
	if _, ok := s.At(len(want)); ok {
		t.Fatalf("expected out-of-range At to miss")
	}
}

func TestSequenceRemoveAtShiftsLaterIndices(t *testing.T) {
	s := NewSequenceFrom([]string{"a", "b", "c"})
	removed, ok := s.RemoveAt(1)
	if !ok || removed != "b" {
		t.Fatalf("RemoveAt(1) = %q, %v, want %q", removed, ok, "b")
	}
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	got, _ := s.At(1)
	if got != "c" {
		t.Fatalf("At(1) after removal = %q, want %q", got, "c")
	}
}

func TestSequenceAllIteratesInOrder(t *testing.T) {
	s := NewSequenceFrom([]int{10, 20, 30})
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
	}
	if len(seen) != 3 || seen[0] != 10 || seen[1] != 20 || seen[2] != 30 {
		t.Fatalf("All() = %v, want [10 20 30]", seen)
	}
}

func TestWeightedSequenceSeekWeight(t *testing.T) {
	s := NewWeightedSequence[string]()
	s.Append(3, "first")  // range [0, 3)
	s.Append(5, "second") // range [3, 8)
	s.Append(2, "third")  // range [8, 10)
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if got := s.TotalWeight(); got != 10 {
		t.Fatalf("TotalWeight() = %v, want 10", got)
	}
	cases := []struct {
		target float64
		want   string
		start  float64
	}{
		{0, "first", 0},
		{2.9, "first", 0},
		{3, "second", 3},
		{7.9, "second", 3},
		{8, "third", 8},
		{9.9, "third", 8},
	}
	for _, c := range cases {
		v, start, ok := s.SeekWeight(c.target)
		if !ok || v != c.want || start != c.start {
			t.Fatalf("SeekWeight(%v) = %q, %v, %v; want %q, %v, true", c.target, v, start, ok, c.want, c.start)
		}
	}
	if _, _, ok := s.SeekWeight(10); ok {
		t.Fatalf("SeekWeight at total weight should miss")
	}
	if _, _, ok := s.SeekWeight(-1); ok {
		t.Fatalf("SeekWeight of negative target should miss")
	}
}

func TestNewOrderedMapFromRejectsUnsortedKeys(t *testing.T) {
	_, err := NewOrderedMapFrom([]intKey{1, 3, 2}, []string{"a", "b", "c"})
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestNewOrderedMapFromRejectsMismatchedLengths(t *testing.T) {
	_, err := NewOrderedMapFrom([]intKey{1, 2}, []string{"a"})
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestNewOrderedMapFromBuildsOrderedMap(t *testing.T) {
	m, err := NewOrderedMapFrom([]intKey{1, 2, 3}, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewOrderedMapFrom: %v", err)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v, ok := m.Get(2); !ok || v != "b" {
		t.Fatalf("Get(2) = %q, %v, want %q", v, ok, "b")
	}
}

func TestNewWeightedSequenceFromRejectsNegativeWeight(t *testing.T) {
	_, err := NewWeightedSequenceFrom([]float64{1, -1}, []string{"a", "b"})
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}
