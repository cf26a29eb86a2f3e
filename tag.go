package nbt

import (
	"math"
	"strconv"
)

// Tag is one node of an NBT tree: a scalar, a string, a primitive array, a
// list, or a compound. The zero value is the End sentinel; real nodes are
// produced by the New* constructors, the builders, or the decoders.
//
// Scalar payloads are stored as raw bits in a single word; the three array
// kinds store their elements in native slices so chunk-scale payloads carry
// no per-element overhead. A Tag exclusively owns its children and is not
// safe for concurrent mutation.
type Tag struct {
	kind Kind

	// num holds every scalar payload: integers sign-extended to 64 bits,
	// floats as their IEEE bit patterns.
	num uint64
	str string

	raw   []byte
	ints  []int32
	longs []int64

	elem  Kind // list intern kind; End while the list is empty
	items []*Tag

	entries []entry
	index   map[string]int
}

// entry is one named compound member.
type entry struct {
	name string
	tag  *Tag
}

// NewByte returns a byte scalar tag.
func NewByte(v int8) *Tag {
	return &Tag{kind: Byte, num: uint64(int64(v))}
}

// NewBool returns a byte scalar tag holding 1 for true and 0 for false.
func NewBool(v bool) *Tag {
	if v {
		return NewByte(1)
	}
	return NewByte(0)
}

// NewShort returns a short scalar tag.
func NewShort(v int16) *Tag {
	return &Tag{kind: Short, num: uint64(int64(v))}
}

// NewInt returns an int scalar tag.
func NewInt(v int32) *Tag {
	return &Tag{kind: Int, num: uint64(int64(v))}
}

// NewLong returns a long scalar tag.
func NewLong(v int64) *Tag {
	return &Tag{kind: Long, num: uint64(v)}
}

// NewFloat returns a float scalar tag.
func NewFloat(v float32) *Tag {
	return &Tag{kind: Float, num: uint64(math.Float32bits(v))}
}

// NewDouble returns a double scalar tag.
func NewDouble(v float64) *Tag {
	return &Tag{kind: Double, num: math.Float64bits(v)}
}

// NewString returns a string tag. The text is stored decoded; the 65535
// byte wire limit is enforced by the binary writer, not here.
func NewString(s string) *Tag {
	return &Tag{kind: String, str: s}
}

// NewByteArray returns a byte-array tag that takes ownership of v.
func NewByteArray(v []byte) *Tag {
	return &Tag{kind: ByteArray, raw: v}
}

// NewIntArray returns an int-array tag that takes ownership of v.
func NewIntArray(v []int32) *Tag {
	return &Tag{kind: IntArray, ints: v}
}

// NewLongArray returns a long-array tag that takes ownership of v.
func NewLongArray(v []int64) *Tag {
	return &Tag{kind: LongArray, longs: v}
}

// Kind returns the tag's kind.
func (t *Tag) Kind() Kind {
	if t == nil {
		return End
	}
	return t.kind
}

// Len returns the element count of an array, list, or compound, the length
// in bytes of a string payload, and 0 for everything else.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch t.kind {
	case ByteArray:
		return len(t.raw)
	case IntArray:
		return len(t.ints)
	case LongArray:
		return len(t.longs)
	case List:
		return len(t.items)
	case Compound:
		return len(t.entries)
	case String:
		return len(t.str)
	default:
		return 0
	}
}

// Text returns the payload of a string tag, or "" for any other kind.
func (t *Tag) Text() string {
	if t == nil || t.kind != String {
		return ""
	}
	return t.str
}

// ByteArrayData returns the backing slice of a byte-array tag, or nil for
// any other kind. The slice is the tag's own storage: mutations are visible
// to subsequent reads and serializations.
func (t *Tag) ByteArrayData() []byte {
	if t == nil || t.kind != ByteArray {
		return nil
	}
	return t.raw
}

// IntArrayData returns the backing slice of an int-array tag, or nil for
// any other kind.
func (t *Tag) IntArrayData() []int32 {
	if t == nil || t.kind != IntArray {
		return nil
	}
	return t.ints
}

// LongArrayData returns the backing slice of a long-array tag, or nil for
// any other kind.
func (t *Tag) LongArrayData() []int64 {
	if t == nil || t.kind != LongArray {
		return nil
	}
	return t.longs
}

// Int64 returns the tag's value widened or narrowed to int64. Integer
// scalars sign-extend, floats truncate toward zero, and string payloads are
// parsed as decimal, yielding 0 on non-numeric content. Non-primitive kinds
// yield 0.
func (t *Tag) Int64() int64 {
	if t == nil {
		return 0
	}
	switch t.kind {
	case Byte, Short, Int, Long:
		return int64(t.num)
	case Float:
		return truncFloat(float64(math.Float32frombits(uint32(t.num))))
	case Double:
		return truncFloat(math.Float64frombits(t.num))
	case String:
		if v, err := strconv.ParseInt(t.str, 10, 64); err == nil {
			return v
		}
		return 0
	default:
		return 0
	}
}

// Int32 narrows the tag's value to int32 by two's-complement truncation.
func (t *Tag) Int32() int32 {
	if t != nil && t.kind == String {
		if v, err := strconv.ParseInt(t.str, 10, 32); err == nil {
			return int32(v)
		}
		return 0
	}
	return int32(t.Int64())
}

// Int16 narrows the tag's value to int16 by two's-complement truncation.
func (t *Tag) Int16() int16 {
	if t != nil && t.kind == String {
		if v, err := strconv.ParseInt(t.str, 10, 16); err == nil {
			return int16(v)
		}
		return 0
	}
	return int16(t.Int64())
}

// Int8 narrows the tag's value to int8 by two's-complement truncation.
func (t *Tag) Int8() int8 {
	if t != nil && t.kind == String {
		if v, err := strconv.ParseInt(t.str, 10, 8); err == nil {
			return int8(v)
		}
		return 0
	}
	return int8(t.Int64())
}

// Bool reports whether the tag's byte value is nonzero.
func (t *Tag) Bool() bool {
	return t.Int8() != 0
}

// Float64 returns the tag's value converted to float64, parsing string
// payloads and yielding 0 for non-numeric content or non-primitive kinds.
func (t *Tag) Float64() float64 {
	if t == nil {
		return 0
	}
	switch t.kind {
	case Byte, Short, Int, Long:
		return float64(int64(t.num))
	case Float:
		return float64(math.Float32frombits(uint32(t.num)))
	case Double:
		return math.Float64frombits(t.num)
	case String:
		if v, err := strconv.ParseFloat(t.str, 64); err == nil {
			return v
		}
		return 0
	default:
		return 0
	}
}

// Float32 returns the tag's value rounded to float32.
func (t *Tag) Float32() float32 {
	if t == nil {
		return 0
	}
	if t.kind == Float {
		return math.Float32frombits(uint32(t.num))
	}
	return float32(t.Float64())
}

// truncFloat converts a float to int64 the way a two's-complement cast
// does: truncation toward zero, saturating at the int64 range, 0 for NaN.
func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Clone returns a deep copy of the tag. The copy shares no storage with the
// original; callers who hand trees across goroutines clone first.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	dst := &Tag{kind: t.kind, num: t.num, str: t.str, elem: t.elem}
	switch t.kind {
	case ByteArray:
		dst.raw = append([]byte(nil), t.raw...)
	case IntArray:
		dst.ints = append([]int32(nil), t.ints...)
	case LongArray:
		dst.longs = append([]int64(nil), t.longs...)
	case List:
		if t.items != nil {
			dst.items = make([]*Tag, len(t.items))
			for i, it := range t.items {
				dst.items[i] = it.Clone()
			}
		}
	case Compound:
		if t.entries != nil {
			dst.entries = make([]entry, len(t.entries))
			dst.index = make(map[string]int, len(t.entries))
			for i, e := range t.entries {
				dst.entries[i] = entry{name: e.name, tag: e.tag.Clone()}
				dst.index[e.name] = i
			}
		}
	}
	return dst
}

// Equal reports whether two trees hold the same data. Scalars compare by
// bit pattern, so NaN payloads compare equal to themselves; lists compare in
// order; compounds compare by name, ignoring entry order.
func (t *Tag) Equal(o *Tag) bool {
	if t == nil || o == nil {
		return t.Kind() == End && o.Kind() == End
	}
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case End:
		return true
	case Byte, Short, Int, Long, Float, Double:
		return t.num == o.num
	case String:
		return t.str == o.str
	case ByteArray:
		if len(t.raw) != len(o.raw) {
			return false
		}
		for i := range t.raw {
			if t.raw[i] != o.raw[i] {
				return false
			}
		}
		return true
	case IntArray:
		if len(t.ints) != len(o.ints) {
			return false
		}
		for i := range t.ints {
			if t.ints[i] != o.ints[i] {
				return false
			}
		}
		return true
	case LongArray:
		if len(t.longs) != len(o.longs) {
			return false
		}
		for i := range t.longs {
			if t.longs[i] != o.longs[i] {
				return false
			}
		}
		return true
	case List:
		if len(t.items) != len(o.items) {
			return false
		}
		for i := range t.items {
			if !t.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case Compound:
		if len(t.entries) != len(o.entries) {
			return false
		}
		for _, e := range t.entries {
			other, ok := o.Get(e.name)
			if !ok || !e.tag.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the tag as modern SNBT for debugging.
func (t *Tag) String() string {
	return FormatSNBT(t, V1_21_5)
}
