package diag

import (
	"sort"
)

// Bag is an ordered, append-only collection of diagnostics.
type Bag struct {
	items   []Diag
	max     int // 0: без лимита
	dropped int // отброшено из-за лимита
}

// NewBag returns an empty bag; max <= 0 means unbounded.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diag, 0, min(max, 64)),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diag) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped returns how many diagnostics Add rejected at the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// NoteDropped records n diagnostics rejected elsewhere, e.g. by the scan a
// cached result came from.
func (b *Bag) NoteDropped(n int) {
	if n > 0 {
		b.dropped += n
	}
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity() >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик в порядке появления.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diag {
	return b.items
}

// Merge appends other's diagnostics after b's, preserving both orders.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if b.max > 0 && newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders diagnostics by position (positionless ones last), then by code.
// Diagnostics of one scan are already in position order; Sort is for bags
// assembled from several sources.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.HasPos() != dj.HasPos() {
			return di.HasPos()
		}
		if di.Pos != dj.Pos {
			return di.Pos < dj.Pos
		}
		return di.Code() < dj.Code()
	})
}
