package nbt

import "fmt"

// Kind identifies one of the 13 NBT tag types. The numeric values match the
// ids used on the wire.
type Kind uint8

// The NBT tag types in wire-id order.
const (
	End Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	ByteArray
	String
	List
	Compound
	IntArray
	LongArray

	numKinds
)

var kindNames = [numKinds]string{
	End:       "",
	Byte:      "byte",
	Short:     "short",
	Int:       "int",
	Long:      "long",
	Float:     "float",
	Double:    "double",
	ByteArray: "byte_array",
	String:    "string",
	List:      "list",
	Compound:  "compound",
	IntArray:  "int_array",
	LongArray: "long_array",
}

// kindsByName is the inverse of kindNames. End is absent: it has no name.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds-1)
	for k := Byte; k < numKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindFromID maps a wire id to its Kind. It reports false for ids outside
// the valid range.
func KindFromID(id byte) (Kind, bool) {
	if id >= byte(numKinds) {
		return End, false
	}
	return Kind(id), true
}

// KindByName maps a lowercase type token ("byte", "long_array", ...) back to
// its Kind. End has no name, so no input resolves to it.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// ID returns the wire id of the kind.
func (k Kind) ID() byte {
	return byte(k)
}

// Name returns the stable lowercase token for the kind, or "" for End.
func (k Kind) Name() string {
	if k >= numKinds {
		return ""
	}
	return kindNames[k]
}

// String implements fmt.Stringer for debugging output.
func (k Kind) String() string {
	if k == End {
		return "end"
	}
	if k >= numKinds {
		return fmt.Sprintf("kind(0x%02x)", byte(k))
	}
	return kindNames[k]
}

// IsNumber reports whether the kind is one of the six numeric scalars.
func (k Kind) IsNumber() bool {
	return k >= Byte && k <= Double
}

// IsPrimitive reports whether the kind is a numeric scalar or a string.
func (k Kind) IsPrimitive() bool {
	return k.IsNumber() || k == String
}

// IsArray reports whether the kind is one of the three primitive arrays.
func (k Kind) IsArray() bool {
	return k == ByteArray || k == IntArray || k == LongArray
}

// IsList reports whether the kind is List.
func (k Kind) IsList() bool {
	return k == List
}

// IsCompound reports whether the kind is Compound.
func (k Kind) IsCompound() bool {
	return k == Compound
}

// IsIterable reports whether the kind holds child elements: an array, a
// list, or a compound.
func (k Kind) IsIterable() bool {
	return k.IsArray() || k == List || k == Compound
}
