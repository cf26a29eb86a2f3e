package nbt

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/scigolib/nbt/internal/cursor"
)

// ReadNamed decodes one named tag from the start of data and returns its
// name, the decoded tree, and the number of bytes consumed. A lone End id
// decodes to a tag of kind End with an empty name; callers iterating a
// byte stream treat it as end-of-stream.
//
// All failures are fatal: ErrUnexpectedEOF, ErrNegativeLength,
// ErrInvalidUTF8, or an UnknownTagError. No recovery is attempted.
func ReadNamed(data []byte) (string, *Tag, int, error) {
	r := cursor.NewReader(data)
	name, tag, err := readNamed(r)
	if err != nil {
		return "", nil, r.Pos(), err
	}
	return name, tag, r.Pos(), nil
}

// readNamed reads a tag frame: id, name, payload. An End id yields a tag of
// kind End with no name or payload.
func readNamed(r *cursor.Reader) (string, *Tag, error) {
	id, err := r.ReadUint8()
	if err != nil {
		return "", nil, err
	}
	if id == End.ID() {
		return "", &Tag{}, nil
	}
	kind, ok := KindFromID(id)
	if !ok {
		return "", nil, &UnknownTagError{ID: id}
	}
	name, err := readString(r)
	if err != nil {
		return "", nil, fmt.Errorf("read tag name: %w", err)
	}
	tag, err := readPayload(r, kind)
	if err != nil {
		return "", nil, err
	}
	return name, tag, nil
}

// readPayload decodes the payload of a tag whose kind is already known,
// which is also how unnamed list elements are read.
func readPayload(r *cursor.Reader, kind Kind) (*Tag, error) {
	switch kind {
	case Byte:
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return NewByte(int8(v)), nil
	case Short:
		v, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		return NewShort(int16(v)), nil
	case Int:
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return NewInt(int32(v)), nil
	case Long:
		v, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		return NewLong(int64(v)), nil
	case Float:
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return &Tag{kind: Float, num: uint64(v)}, nil
	case Double:
		v, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		return &Tag{kind: Double, num: v}, nil
	case String:
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case ByteArray:
		return readByteArray(r)
	case IntArray:
		return readIntArray(r)
	case LongArray:
		return readLongArray(r)
	case List:
		return readList(r)
	case Compound:
		return readCompound(r)
	default:
		return nil, &UnknownTagError{ID: kind.ID()}
	}
}

// readString decodes a length-prefixed UTF-8 string payload.
func readString(r *cursor.Reader) (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	buf, err := r.View(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// readArrayLength decodes the signed 32-bit element count shared by the
// three array payloads and validates it against the remaining input.
func readArrayLength(r *cursor.Reader, elemSize int) (int, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("array length %d: %w", n, ErrNegativeLength)
	}
	if err := r.Require(int(n), elemSize); err != nil {
		return 0, err
	}
	return int(n), nil
}

func readByteArray(r *cursor.Reader) (*Tag, error) {
	n, err := readArrayLength(r, 1)
	if err != nil {
		return nil, err
	}
	buf, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewByteArray(buf), nil
}

func readIntArray(r *cursor.Reader) (*Tag, error) {
	n, err := readArrayLength(r, 4)
	if err != nil {
		return nil, err
	}
	view, err := r.View(n * 4)
	if err != nil {
		return nil, err
	}
	ints := make([]int32, n)
	for i := range ints {
		ints[i] = int32(binary.BigEndian.Uint32(view[i*4:]))
	}
	return NewIntArray(ints), nil
}

func readLongArray(r *cursor.Reader) (*Tag, error) {
	n, err := readArrayLength(r, 8)
	if err != nil {
		return nil, err
	}
	view, err := r.View(n * 8)
	if err != nil {
		return nil, err
	}
	longs := make([]int64, n)
	for i := range longs {
		longs[i] = int64(binary.BigEndian.Uint64(view[i*8:]))
	}
	return NewLongArray(longs), nil
}

// minPayloadSize is the smallest serialized payload per kind, used to bound
// list preallocation against the remaining input.
var minPayloadSize = [numKinds]int{
	Byte: 1, Short: 2, Int: 4, Long: 8, Float: 4, Double: 8,
	ByteArray: 4, String: 2, List: 5, Compound: 1, IntArray: 4, LongArray: 4,
}

func readList(r *cursor.Reader) (*Tag, error) {
	id, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	elem, ok := KindFromID(id)
	if !ok {
		return nil, &UnknownTagError{ID: id}
	}
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("list length %d: %w", n, ErrNegativeLength)
	}
	list := NewList()
	if elem == End {
		// A nonzero declared length with an End element kind appears in
		// old Notchian output; the list is still empty.
		return list, nil
	}
	if err := r.Require(int(n), minPayloadSize[elem]); err != nil {
		return nil, err
	}
	list.elem = elem
	list.items = make([]*Tag, 0, n)
	for i := 0; i < int(n); i++ {
		child, err := readPayload(r, elem)
		if err != nil {
			return nil, fmt.Errorf("read list element %d: %w", i, err)
		}
		list.items = append(list.items, child)
	}
	return list, nil
}

func readCompound(r *cursor.Reader) (*Tag, error) {
	c := NewCompound()
	for {
		name, child, err := readNamed(r)
		if err != nil {
			return nil, err
		}
		if child.Kind() == End {
			return c, nil
		}
		c.Put(name, child)
	}
}
