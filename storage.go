package imcore

import "math"

// Storage is a sparse ID-keyed table of small scalar values that must outlive
// the frame in which they were declared (tree open flags, scroll offsets,
// column widths). Each window owns one; it is in-memory only and is the hook
// point for a settings serializer.
//
// Values share one slot per ID, so reading a key with a different getter than
// it was written with reinterprets the bits.
type Storage struct {
	data map[ID]uint64
	refs map[ID]any
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{data: make(map[ID]uint64)}
}

// Len returns the number of stored keys.
func (s *Storage) Len() int {
	return len(s.data) + len(s.refs)
}

// Clear removes all entries.
func (s *Storage) Clear() {
	clear(s.data)
	clear(s.refs)
}

// Delete removes key.
func (s *Storage) Delete(key ID) {
	delete(s.data, key)
	delete(s.refs, key)
}

// Has reports whether a scalar value is stored for key.
func (s *Storage) Has(key ID) bool {
	_, ok := s.data[key]
	return ok
}

// Int returns the value for key, or def when unset.
func (s *Storage) Int(key ID, def int) int {
	if v, ok := s.data[key]; ok {
		return int(int64(v))
	}
	return def
}

// SetInt stores an int.
func (s *Storage) SetInt(key ID, v int) {
	s.data[key] = uint64(int64(v))
}

// Bool returns the value for key, or def when unset.
func (s *Storage) Bool(key ID, def bool) bool {
	if v, ok := s.data[key]; ok {
		return v != 0
	}
	return def
}

// SetBool stores a bool.
func (s *Storage) SetBool(key ID, v bool) {
	if v {
		s.data[key] = 1
	} else {
		s.data[key] = 0
	}
}

// Float returns the value for key, or def when unset.
func (s *Storage) Float(key ID, def float32) float32 {
	if v, ok := s.data[key]; ok {
		return math.Float32frombits(uint32(v))
	}
	return def
}

// SetFloat stores a float32.
func (s *Storage) SetFloat(key ID, v float32) {
	s.data[key] = uint64(math.Float32bits(v))
}

// Ref returns the reference stored for key, or nil.
func (s *Storage) Ref(key ID) any {
	return s.refs[key]
}

// SetRef stores an arbitrary reference.
func (s *Storage) SetRef(key ID, v any) {
	if s.refs == nil {
		s.refs = make(map[ID]any)
	}
	s.refs[key] = v
}

// Keys calls fn for every scalar key.
func (s *Storage) Keys(fn func(ID)) {
	for k := range s.data {
		fn(k)
	}
}

// StorageValue reads a typed reference from storage, returning def when the
// key is unset or holds another type.
func StorageValue[T any](s *Storage, key ID, def T) T {
	if v, ok := s.refs[key].(T); ok {
		return v
	}
	return def
}
