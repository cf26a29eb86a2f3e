package nbt

import "fmt"

// NewCompound returns an empty compound tag.
func NewCompound() *Tag {
	return &Tag{kind: Compound}
}

// Put inserts or replaces the entry named name. A first insert appends to
// the iteration order; replacing an existing name keeps its ordinal
// position. Put on a non-compound tag is a no-op.
func (t *Tag) Put(name string, child *Tag) {
	if t == nil || t.kind != Compound || child == nil {
		return
	}
	if i, ok := t.index[name]; ok {
		t.entries[i].tag = child
		return
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, tag: child})
}

// Get returns the entry named name.
func (t *Tag) Get(name string) (*Tag, bool) {
	if t == nil || t.kind != Compound {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.entries[i].tag, true
}

// Has reports whether an entry named name exists.
func (t *Tag) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// EntryAt returns the entry at ordinal i in iteration order. Iteration
// order is insertion order until a Remove, which swaps the last entry into
// the vacated slot.
func (t *Tag) EntryAt(i int) (string, *Tag) {
	if t == nil || t.kind != Compound || i < 0 || i >= len(t.entries) {
		return "", nil
	}
	e := t.entries[i]
	return e.name, e.tag
}

// Names returns the entry names in iteration order.
func (t *Tag) Names() []string {
	if t == nil || t.kind != Compound || len(t.entries) == 0 {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}

// Remove deletes the entry named name and reports whether it existed. The
// last entry is swapped into the vacated slot, so deletion is O(1) at the
// cost of perturbing iteration order.
func (t *Tag) Remove(name string) bool {
	if t == nil || t.kind != Compound {
		return false
	}
	i, ok := t.index[name]
	if !ok {
		return false
	}
	last := len(t.entries) - 1
	if i != last {
		t.entries[i] = t.entries[last]
		t.index[t.entries[i].name] = i
	}
	t.entries[last] = entry{}
	t.entries = t.entries[:last]
	delete(t.index, name)
	return true
}

// getPrimitive looks up name and checks that the entry can act as the
// requested primitive: want itself, any number, or a string for numeric
// lookups (legacy saves store numbers as strings; the parse-or-zero
// coercion is applied by the caller's accessor).
func (t *Tag) getPrimitive(name string, want Kind) (*Tag, error) {
	child, ok := t.Get(name)
	if !ok {
		return nil, &MissingError{Key: name}
	}
	k := child.Kind()
	if k == want {
		return child, nil
	}
	if want.IsNumber() && (k.IsNumber() || k == String) {
		return child, nil
	}
	return nil, fmt.Errorf("entry %q is %s, want %s: %w", name, k, want, ErrTypeMismatch)
}

// GetCompound returns the compound entry named name, failing with
// MissingError when absent and ErrTypeMismatch on any other kind.
func (t *Tag) GetCompound(name string) (*Tag, error) {
	child, ok := t.Get(name)
	if !ok {
		return nil, &MissingError{Key: name}
	}
	if child.Kind() != Compound {
		return nil, fmt.Errorf("entry %q is %s, want %s: %w", name, child.Kind(), Compound, ErrTypeMismatch)
	}
	return child, nil
}

// CompoundOr returns the compound entry named name, or def when the entry
// is absent or of another kind.
func (t *Tag) CompoundOr(name string, def *Tag) *Tag {
	child, err := t.GetCompound(name)
	if err != nil {
		return def
	}
	return child
}

// GetList returns the list entry named name.
func (t *Tag) GetList(name string) (*Tag, error) {
	child, ok := t.Get(name)
	if !ok {
		return nil, &MissingError{Key: name}
	}
	if child.Kind() != List {
		return nil, fmt.Errorf("entry %q is %s, want %s: %w", name, child.Kind(), List, ErrTypeMismatch)
	}
	return child, nil
}

// GetString returns the string entry named name.
func (t *Tag) GetString(name string) (string, error) {
	child, ok := t.Get(name)
	if !ok {
		return "", &MissingError{Key: name}
	}
	if child.Kind() != String {
		return "", fmt.Errorf("entry %q is %s, want %s: %w", name, child.Kind(), String, ErrTypeMismatch)
	}
	return child.Text(), nil
}

// StringOr returns the string entry named name, or def when absent or of
// another kind.
func (t *Tag) StringOr(name, def string) string {
	v, err := t.GetString(name)
	if err != nil {
		return def
	}
	return v
}

// GetByte returns the entry named name as an int8. Numeric entries narrow;
// string entries parse as decimal, yielding 0 on non-numeric content.
func (t *Tag) GetByte(name string) (int8, error) {
	child, err := t.getPrimitive(name, Byte)
	if err != nil {
		return 0, err
	}
	return child.Int8(), nil
}

// ByteOr returns the entry named name as an int8, or def when absent or of
// a non-coercible kind.
func (t *Tag) ByteOr(name string, def int8) int8 {
	v, err := t.GetByte(name)
	if err != nil {
		return def
	}
	return v
}

// GetShort returns the entry named name as an int16.
func (t *Tag) GetShort(name string) (int16, error) {
	child, err := t.getPrimitive(name, Short)
	if err != nil {
		return 0, err
	}
	return child.Int16(), nil
}

// ShortOr returns the entry named name as an int16, or def.
func (t *Tag) ShortOr(name string, def int16) int16 {
	v, err := t.GetShort(name)
	if err != nil {
		return def
	}
	return v
}

// GetInt returns the entry named name as an int32.
func (t *Tag) GetInt(name string) (int32, error) {
	child, err := t.getPrimitive(name, Int)
	if err != nil {
		return 0, err
	}
	return child.Int32(), nil
}

// IntOr returns the entry named name as an int32, or def.
func (t *Tag) IntOr(name string, def int32) int32 {
	v, err := t.GetInt(name)
	if err != nil {
		return def
	}
	return v
}

// GetLong returns the entry named name as an int64.
func (t *Tag) GetLong(name string) (int64, error) {
	child, err := t.getPrimitive(name, Long)
	if err != nil {
		return 0, err
	}
	return child.Int64(), nil
}

// LongOr returns the entry named name as an int64, or def.
func (t *Tag) LongOr(name string, def int64) int64 {
	v, err := t.GetLong(name)
	if err != nil {
		return def
	}
	return v
}

// GetFloat returns the entry named name as a float32.
func (t *Tag) GetFloat(name string) (float32, error) {
	child, err := t.getPrimitive(name, Float)
	if err != nil {
		return 0, err
	}
	return child.Float32(), nil
}

// FloatOr returns the entry named name as a float32, or def.
func (t *Tag) FloatOr(name string, def float32) float32 {
	v, err := t.GetFloat(name)
	if err != nil {
		return def
	}
	return v
}

// GetDouble returns the entry named name as a float64.
func (t *Tag) GetDouble(name string) (float64, error) {
	child, err := t.getPrimitive(name, Double)
	if err != nil {
		return 0, err
	}
	return child.Float64(), nil
}

// DoubleOr returns the entry named name as a float64, or def.
func (t *Tag) DoubleOr(name string, def float64) float64 {
	v, err := t.GetDouble(name)
	if err != nil {
		return def
	}
	return v
}

// BoolOr returns the entry named name as a boolean (byte nonzero), or def.
func (t *Tag) BoolOr(name string, def bool) bool {
	v, err := t.GetByte(name)
	if err != nil {
		return def
	}
	return v != 0
}
