package imcore

import (
	"encoding/binary"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames and across runs for the same (scope, label) pair.
type ID uint32

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// Hash returns the FNV-1a hash of label chained onto seed.
// A zero seed starts from the standard FNV offset basis.
func Hash(label string, seed ID) ID {
	h := fnvOffset32
	if seed != 0 {
		h = uint32(seed)
	}
	for i := 0; i < len(label); i++ {
		h ^= uint32(label[i])
		h *= fnvPrime32
	}
	return ID(h)
}

// HashBytes is Hash over raw bytes.
func HashBytes(data []byte, seed ID) ID {
	h := fnvOffset32
	if seed != 0 {
		h = uint32(seed)
	}
	for _, c := range data {
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return ID(h)
}

// HashInt hashes the little-endian bytes of n onto seed.
func HashInt(n int, seed ID) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(n)))
	return HashBytes(buf[:], seed)
}

// VisibleLabel returns the part of label rendered on screen.
// Everything from "##" on is a hidden disambiguator that still feeds the hash.
func VisibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// GetID returns the ID of label in the current ID scope.
func (ctx *Context) GetID(label string) ID {
	return Hash(label, ctx.CurrentID())
}

// GetIDInt returns the ID of an integer in the current ID scope.
// Useful for items in arrays/slices.
func (ctx *Context) GetIDInt(n int) ID {
	return HashInt(n, ctx.CurrentID())
}

// PushID opens a new ID scope seeded by label.
// All GetID calls will be relative to this scope until PopID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt opens a new ID scope seeded by an integer.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDInt(n))
}

// PushRawID opens a scope whose seed is id itself.
func (ctx *Context) PushRawID(id ID) {
	ctx.idStack = append(ctx.idStack, id)
}

// PopID closes the scope opened by the matching PushID.
// Popping the scope owned by the current window is a usage error.
func (ctx *Context) PopID() {
	floor := 0
	if w := ctx.currentWindow; w != nil {
		floor = w.idStackBase
	}
	if len(ctx.idStack) <= floor {
		panic(usageErrorf("PopID", "ID stack underflow; every PopID needs a matching PushID"))
	}
	ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
}

// CurrentID returns the seed of the innermost ID scope, or 0 outside any scope.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
