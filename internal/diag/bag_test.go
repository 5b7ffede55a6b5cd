package diag

import (
	"testing"
)

func TestBagAddRespectsLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(UnknownCharacter(0)) || !b.Add(UnknownCharacter(1)) {
		t.Fatalf("expected first two diagnostics to be accepted")
	}
	if b.Add(UnknownCharacter(2)) {
		t.Fatalf("expected third diagnostic to be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("expected len 2, got %d", b.Len())
	}
	b.Add(UnknownCharacter(3))
	if b.Dropped() != 2 {
		t.Fatalf("expected 2 dropped, got %d", b.Dropped())
	}

	other := NewBag(1)
	other.Add(InvalidDigit(0))
	other.Add(InvalidDigit(1))
	other.NoteDropped(3)
	b.Merge(other)
	if b.Dropped() != 6 {
		t.Fatalf("merge must sum dropped counts, got %d", b.Dropped())
	}
}

func TestBagUnbounded(t *testing.T) {
	for _, max := range []int{0, -5} {
		b := NewBag(max)
		for i := range 100 {
			if !b.Add(InvalidDigit(0)) {
				t.Fatalf("max=%d: add #%d rejected", max, i)
			}
		}
		if b.Cap() != 0 {
			t.Fatalf("max=%d: expected cap 0, got %d", max, b.Cap())
		}
	}
}

func TestBagMergeKeepsReceiverFirst(t *testing.T) {
	d1 := UnknownCharacter(1)
	d2 := UnknownCharacter(2)
	d3 := InvalidDigit(3)
	d4 := MissingCommentTerminator()

	left := NewBag(2)
	left.Add(d1)
	left.Add(d2)
	right := NewBag(0)
	right.Add(d3)
	right.Add(d4)

	left.Merge(right)

	want := []Diag{d1, d2, d3, d4}
	got := left.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if left.Cap() != 4 {
		t.Fatalf("expected cap to grow to 4, got %d", left.Cap())
	}
	if right.Len() != 2 {
		t.Fatalf("merge must not modify the argument, len=%d", right.Len())
	}
	left.Merge(nil)
	if left.Len() != 4 {
		t.Fatalf("merge with nil changed the bag")
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	if b.HasErrors() {
		t.Fatalf("empty bag reports errors")
	}
	b.Add(InvalidDigit(7))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after adding a diagnostic")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(MissingCommentTerminator())
	b.Add(UnknownCharacter(9))
	b.Add(InvalidDigit(2))
	b.Add(UnknownCharacter(2))
	b.Sort()

	want := []Diag{UnknownCharacter(2), InvalidDigit(2), UnknownCharacter(9), MissingCommentTerminator()}
	for i, d := range b.Items() {
		if d != want[i] {
			t.Fatalf("item %d: expected %v, got %v", i, want[i], d)
		}
	}
}
