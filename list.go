package nbt

import "fmt"

// NewList returns an empty list tag. Its intern type starts as End and is
// fixed by the first element appended.
func NewList() *Tag {
	return &Tag{kind: List, elem: End}
}

// ElementKind returns the list's intern type: the kind every element must
// have. An empty list that never held an element reports End. For any other
// tag kind it returns End.
func (t *Tag) ElementKind() Kind {
	if t == nil || t.kind != List {
		return End
	}
	return t.elem
}

// At returns the i-th list element, or nil if the tag is not a list or the
// index is out of range.
func (t *Tag) At(i int) *Tag {
	if t == nil || t.kind != List || i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// Append adds an element to a list. The first element fixes the list's
// intern type; appending a tag of any other kind afterwards fails with
// ErrTypeMismatch. End tags are never valid elements.
func (t *Tag) Append(child *Tag) error {
	if t.kind != List {
		return fmt.Errorf("append to %s tag: %w", t.kind, ErrTypeMismatch)
	}
	if child.Kind() == End {
		return fmt.Errorf("append end tag to list: %w", ErrTypeMismatch)
	}
	if t.elem == End {
		t.elem = child.kind
	} else if child.kind != t.elem {
		return fmt.Errorf("append %s to list of %s: %w", child.kind, t.elem, ErrTypeMismatch)
	}
	t.items = append(t.items, child)
	return nil
}

// SetAt replaces the i-th list element. The replacement must match the
// list's intern type.
func (t *Tag) SetAt(i int, child *Tag) error {
	if t.kind != List {
		return fmt.Errorf("set element on %s tag: %w", t.kind, ErrTypeMismatch)
	}
	if i < 0 || i >= len(t.items) {
		return fmt.Errorf("list index %d out of range [0,%d)", i, len(t.items))
	}
	if child.Kind() != t.elem {
		return fmt.Errorf("set %s in list of %s: %w", child.Kind(), t.elem, ErrTypeMismatch)
	}
	t.items[i] = child
	return nil
}

// RemoveAt deletes the i-th list element, shifting later elements down. It
// reports whether the index was valid. Removing the last element leaves the
// intern type in place.
func (t *Tag) RemoveAt(i int) bool {
	if t == nil || t.kind != List || i < 0 || i >= len(t.items) {
		return false
	}
	copy(t.items[i:], t.items[i+1:])
	t.items[len(t.items)-1] = nil
	t.items = t.items[:len(t.items)-1]
	return true
}

// Clear removes every element. A list keeps its intern type so the same
// element kind is enforced on refill; a compound forgets all entries.
func (t *Tag) Clear() {
	if t == nil {
		return
	}
	switch t.kind {
	case List:
		t.items = nil
	case Compound:
		t.entries = nil
		t.index = nil
	case ByteArray:
		t.raw = nil
	case IntArray:
		t.ints = nil
	case LongArray:
		t.longs = nil
	}
}
