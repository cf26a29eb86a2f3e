package nbt

import (
	"fmt"

	"github.com/scigolib/nbt/internal/cursor"
)

// maxStringBytes is the wire format's unsigned 16-bit string length limit.
const maxStringBytes = 65535

// AppendNamed serializes a named tag onto dst and returns the extended
// buffer. The output is bit-exact: feeding it back through ReadNamed yields
// a structurally equal tree. Writing a tag of kind End fails; the compound
// terminator is emitted internally.
func AppendNamed(dst []byte, name string, t *Tag) ([]byte, error) {
	w := cursor.NewWriter(dst)
	if err := writeNamed(w, name, t); err != nil {
		return dst, err
	}
	return w.Bytes(), nil
}

// MarshalNamed serializes a named tag into a buffer pre-sized with
// EstimateNamed, so the append path never reallocates.
func MarshalNamed(name string, t *Tag) ([]byte, error) {
	return AppendNamed(make([]byte, 0, EstimateNamed(name, t)), name, t)
}

func writeNamed(w *cursor.Writer, name string, t *Tag) error {
	kind := t.Kind()
	if kind == End {
		return fmt.Errorf("write end tag: %w", ErrTypeMismatch)
	}
	w.WriteUint8(kind.ID())
	if err := writeString(w, name); err != nil {
		return fmt.Errorf("write tag name: %w", err)
	}
	return writePayload(w, t)
}

func writePayload(w *cursor.Writer, t *Tag) error {
	switch t.kind {
	case Byte:
		w.WriteUint8(uint8(t.num))
	case Short:
		w.WriteUint16(uint16(t.num))
	case Int, Float:
		w.WriteUint32(uint32(t.num))
	case Long, Double:
		w.WriteUint64(t.num)
	case String:
		return writeString(w, t.str)
	case ByteArray:
		w.WriteInt32(int32(len(t.raw)))
		w.WriteBytes(t.raw)
	case IntArray:
		w.WriteInt32(int32(len(t.ints)))
		for _, v := range t.ints {
			w.WriteUint32(uint32(v))
		}
	case LongArray:
		w.WriteInt32(int32(len(t.longs)))
		for _, v := range t.longs {
			w.WriteUint64(uint64(v))
		}
	case List:
		return writeList(w, t)
	case Compound:
		return writeCompound(w, t)
	default:
		return fmt.Errorf("write %s tag: %w", t.kind, ErrTypeMismatch)
	}
	return nil
}

func writeString(w *cursor.Writer, s string) error {
	if len(s) > maxStringBytes {
		return fmt.Errorf("string of %d bytes: %w", len(s), ErrStringTooLong)
	}
	w.WriteUint16(uint16(len(s)))
	w.WriteString(s)
	return nil
}

func writeList(w *cursor.Writer, t *Tag) error {
	if len(t.items) == 0 {
		// An empty list always serializes with the End element kind, even
		// when a cleared list still remembers its intern type.
		w.WriteUint8(End.ID())
		w.WriteInt32(0)
		return nil
	}
	w.WriteUint8(t.elem.ID())
	w.WriteInt32(int32(len(t.items)))
	for i, child := range t.items {
		if err := writePayload(w, child); err != nil {
			return fmt.Errorf("write list element %d: %w", i, err)
		}
	}
	return nil
}

func writeCompound(w *cursor.Writer, t *Tag) error {
	for _, e := range t.entries {
		if err := writeNamed(w, e.name, e.tag); err != nil {
			return err
		}
	}
	w.WriteUint8(End.ID())
	return nil
}
