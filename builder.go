package nbt

// CompoundBuilder assembles a compound tag fluently. Entries land in the
// order they are added.
type CompoundBuilder struct {
	tag *Tag
}

// BuildCompound starts a new compound builder.
func BuildCompound() *CompoundBuilder {
	return &CompoundBuilder{tag: NewCompound()}
}

// Put adds or replaces a child tag.
func (b *CompoundBuilder) Put(name string, child *Tag) *CompoundBuilder {
	b.tag.Put(name, child)
	return b
}

// PutByte adds a byte scalar.
func (b *CompoundBuilder) PutByte(name string, v int8) *CompoundBuilder {
	return b.Put(name, NewByte(v))
}

// PutBool adds a byte scalar holding 0 or 1.
func (b *CompoundBuilder) PutBool(name string, v bool) *CompoundBuilder {
	return b.Put(name, NewBool(v))
}

// PutShort adds a short scalar.
func (b *CompoundBuilder) PutShort(name string, v int16) *CompoundBuilder {
	return b.Put(name, NewShort(v))
}

// PutInt adds an int scalar.
func (b *CompoundBuilder) PutInt(name string, v int32) *CompoundBuilder {
	return b.Put(name, NewInt(v))
}

// PutLong adds a long scalar.
func (b *CompoundBuilder) PutLong(name string, v int64) *CompoundBuilder {
	return b.Put(name, NewLong(v))
}

// PutFloat adds a float scalar.
func (b *CompoundBuilder) PutFloat(name string, v float32) *CompoundBuilder {
	return b.Put(name, NewFloat(v))
}

// PutDouble adds a double scalar.
func (b *CompoundBuilder) PutDouble(name string, v float64) *CompoundBuilder {
	return b.Put(name, NewDouble(v))
}

// PutString adds a string tag.
func (b *CompoundBuilder) PutString(name, v string) *CompoundBuilder {
	return b.Put(name, NewString(v))
}

// PutByteArray adds a byte-array tag owning v.
func (b *CompoundBuilder) PutByteArray(name string, v []byte) *CompoundBuilder {
	return b.Put(name, NewByteArray(v))
}

// PutIntArray adds an int-array tag owning v.
func (b *CompoundBuilder) PutIntArray(name string, v []int32) *CompoundBuilder {
	return b.Put(name, NewIntArray(v))
}

// PutLongArray adds a long-array tag owning v.
func (b *CompoundBuilder) PutLongArray(name string, v []int64) *CompoundBuilder {
	return b.Put(name, NewLongArray(v))
}

// Build transfers the accumulated compound to the caller. The builder must
// not be reused afterwards.
func (b *CompoundBuilder) Build() *Tag {
	t := b.tag
	b.tag = nil
	return t
}

// ListBuilder assembles a list tag fluently. The first element fixes the
// intern type; a later element of another kind is recorded as an error and
// surfaced by Build.
type ListBuilder struct {
	tag *Tag
	err error
}

// BuildList starts a new list builder.
func BuildList() *ListBuilder {
	return &ListBuilder{tag: NewList()}
}

// Add appends an element. The first add error sticks.
func (b *ListBuilder) Add(child *Tag) *ListBuilder {
	if b.err == nil {
		b.err = b.tag.Append(child)
	}
	return b
}

// AddByte appends a byte scalar.
func (b *ListBuilder) AddByte(v int8) *ListBuilder { return b.Add(NewByte(v)) }

// AddShort appends a short scalar.
func (b *ListBuilder) AddShort(v int16) *ListBuilder { return b.Add(NewShort(v)) }

// AddInt appends an int scalar.
func (b *ListBuilder) AddInt(v int32) *ListBuilder { return b.Add(NewInt(v)) }

// AddLong appends a long scalar.
func (b *ListBuilder) AddLong(v int64) *ListBuilder { return b.Add(NewLong(v)) }

// AddFloat appends a float scalar.
func (b *ListBuilder) AddFloat(v float32) *ListBuilder { return b.Add(NewFloat(v)) }

// AddDouble appends a double scalar.
func (b *ListBuilder) AddDouble(v float64) *ListBuilder { return b.Add(NewDouble(v)) }

// AddString appends a string tag.
func (b *ListBuilder) AddString(v string) *ListBuilder { return b.Add(NewString(v)) }

// Build transfers the accumulated list to the caller, or reports the first
// element kind mismatch.
func (b *ListBuilder) Build() (*Tag, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.tag
	b.tag = nil
	return t, nil
}

// ByteArrayBuilder accumulates a byte array in unboxed storage.
type ByteArrayBuilder struct {
	data []byte
}

// BuildByteArray starts a new byte-array builder.
func BuildByteArray() *ByteArrayBuilder {
	return &ByteArrayBuilder{}
}

// Reserve grows the backing storage to hold at least n elements.
func (b *ByteArrayBuilder) Reserve(n int) *ByteArrayBuilder {
	if n > cap(b.data) {
		grown := make([]byte, len(b.data), n)
		copy(grown, b.data)
		b.data = grown
	}
	return b
}

// Add appends elements.
func (b *ByteArrayBuilder) Add(vs ...int8) *ByteArrayBuilder {
	for _, v := range vs {
		b.data = append(b.data, byte(v))
	}
	return b
}

// AddBytes appends raw bytes.
func (b *ByteArrayBuilder) AddBytes(vs ...byte) *ByteArrayBuilder {
	b.data = append(b.data, vs...)
	return b
}

// Build transfers ownership of the accumulated storage into a tag.
func (b *ByteArrayBuilder) Build() *Tag {
	t := NewByteArray(b.data)
	b.data = nil
	return t
}

// IntArrayBuilder accumulates an int array in unboxed storage.
type IntArrayBuilder struct {
	data []int32
}

// BuildIntArray starts a new int-array builder.
func BuildIntArray() *IntArrayBuilder {
	return &IntArrayBuilder{}
}

// Reserve grows the backing storage to hold at least n elements.
func (b *IntArrayBuilder) Reserve(n int) *IntArrayBuilder {
	if n > cap(b.data) {
		grown := make([]int32, len(b.data), n)
		copy(grown, b.data)
		b.data = grown
	}
	return b
}

// Add appends elements.
func (b *IntArrayBuilder) Add(vs ...int32) *IntArrayBuilder {
	b.data = append(b.data, vs...)
	return b
}

// Build transfers ownership of the accumulated storage into a tag.
func (b *IntArrayBuilder) Build() *Tag {
	t := NewIntArray(b.data)
	b.data = nil
	return t
}

// LongArrayBuilder accumulates a long array in unboxed storage.
type LongArrayBuilder struct {
	data []int64
}

// BuildLongArray starts a new long-array builder.
func BuildLongArray() *LongArrayBuilder {
	return &LongArrayBuilder{}
}

// Reserve grows the backing storage to hold at least n elements.
func (b *LongArrayBuilder) Reserve(n int) *LongArrayBuilder {
	if n > cap(b.data) {
		grown := make([]int64, len(b.data), n)
		copy(grown, b.data)
		b.data = grown
	}
	return b
}

// Add appends elements.
func (b *LongArrayBuilder) Add(vs ...int64) *LongArrayBuilder {
	b.data = append(b.data, vs...)
	return b
}

// Build transfers ownership of the accumulated storage into a tag.
func (b *LongArrayBuilder) Build() *Tag {
	t := NewLongArray(b.data)
	b.data = nil
	return t
}
