package imcore

import (
	"cmp"
	"slices"
)

// poolSlot wraps a value with frame tracking for staleness detection.
type poolSlot[T any] struct {
	id        ID
	value     T
	used      bool
	lastFrame uint64
}

// Pool is a type-safe, ID-keyed store whose slots are recycled after removal.
// Values are heap-allocated once per slot so pointers returned by Get stay
// valid until the entry is removed.
//
// Usage:
//
//	var inputs = imcore.NewPool[InputTextState]()
//	st, _ := inputs.GetOrAdd(id, frame)
//	st.CursorPos = 3 // direct modification
type Pool[T any] struct {
	slots []*poolSlot[T]
	byID  map[ID]int
	free  []int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{byID: make(map[ID]int)}
}

// GetOrAdd returns the value for id, creating a zero value if missing.
// The entry is marked as used in frame.
func (p *Pool[T]) GetOrAdd(id ID, frame uint64) (v *T, created bool) {
	if idx, ok := p.byID[id]; ok {
		s := p.slots[idx]
		s.lastFrame = frame
		return &s.value, false
	}
	var idx int
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = len(p.slots)
		p.slots = append(p.slots, &poolSlot[T]{})
	}
	s := p.slots[idx]
	*s = poolSlot[T]{id: id, used: true, lastFrame: frame}
	p.byID[id] = idx
	return &s.value, true
}

// Get returns the value for id, or nil. It does not mark the entry as used.
func (p *Pool[T]) Get(id ID) *T {
	if idx, ok := p.byID[id]; ok {
		return &p.slots[idx].value
	}
	return nil
}

// Touch marks id as used in frame.
func (p *Pool[T]) Touch(id ID, frame uint64) {
	if idx, ok := p.byID[id]; ok {
		p.slots[idx].lastFrame = frame
	}
}

// LastFrame returns the last frame id was used in.
func (p *Pool[T]) LastFrame(id ID) (uint64, bool) {
	if idx, ok := p.byID[id]; ok {
		return p.slots[idx].lastFrame, true
	}
	return 0, false
}

// Index returns the slot index of id, or -1.
func (p *Pool[T]) Index(id ID) int {
	if idx, ok := p.byID[id]; ok {
		return idx
	}
	return -1
}

// GetByIndex returns the value in slot idx. Out-of-range or free slots
// return nil rather than failing.
func (p *Pool[T]) GetByIndex(idx int) *T {
	if idx < 0 || idx >= len(p.slots) || !p.slots[idx].used {
		return nil
	}
	return &p.slots[idx].value
}

// Remove deletes id and frees its slot for reuse.
func (p *Pool[T]) Remove(id ID) bool {
	idx, ok := p.byID[id]
	if !ok {
		return false
	}
	delete(p.byID, id)
	*p.slots[idx] = poolSlot[T]{}
	p.free = append(p.free, idx)
	return true
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int {
	return len(p.byID)
}

// Cap returns the number of slots, live or free.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Each calls fn for every live entry in slot order.
func (p *Pool[T]) Each(fn func(id ID, v *T)) {
	for _, s := range p.slots {
		if s.used {
			fn(s.id, &s.value)
		}
	}
}

// Evict removes entries not used during the last maxAge frames, least
// recently used first, calling onEvict (if non-nil) before each removal.
// It returns the number of evicted entries.
func (p *Pool[T]) Evict(frame, maxAge uint64, onEvict func(id ID, v *T)) int {
	if frame <= maxAge {
		return 0
	}
	threshold := frame - maxAge
	var stale []*poolSlot[T]
	for _, s := range p.slots {
		if s.used && s.lastFrame < threshold {
			stale = append(stale, s)
		}
	}
	slices.SortStableFunc(stale, func(a, b *poolSlot[T]) int {
		return cmp.Compare(a.lastFrame, b.lastFrame)
	})
	for _, s := range stale {
		if onEvict != nil {
			onEvict(s.id, &s.value)
		}
		p.Remove(s.id)
	}
	return len(stale)
}

// Clear removes all entries immediately.
func (p *Pool[T]) Clear() {
	p.slots = p.slots[:0]
	p.free = p.free[:0]
	clear(p.byID)
}
