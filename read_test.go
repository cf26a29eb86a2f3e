package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// helloWorldBytes is the canonical "hello world" payload: a root compound
// with an empty name holding name="Hello".
var helloWorldBytes = []byte{
	0x0A,       // compound
	0x00, 0x00, // root name length 0
	0x08,       // string
	0x00, 0x04, // name length 4
	'n', 'a', 'm', 'e',
	0x00, 0x05, // value length 5
	'H', 'e', 'l', 'l', 'o',
	0x00, // end
}

func TestReadNamed_SimpleCompound(t *testing.T) {
	name, tag, n, err := ReadNamed(helloWorldBytes)
	require.NoError(t, err)
	require.Equal(t, "", name)
	require.Equal(t, len(helloWorldBytes), n)
	require.Equal(t, Compound, tag.Kind())
	require.Equal(t, 1, tag.Len())

	v, err := tag.GetString("name")
	require.NoError(t, err)
	require.Equal(t, "Hello", v)
}

func TestReadNamed_Scalars(t *testing.T) {
	data := []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'b', 0x80, // byte -128
		0x02, 0x00, 0x01, 's', 0x7F, 0xFF, // short 32767
		0x03, 0x00, 0x01, 'i', 0xFF, 0xFF, 0xFF, 0xFE, // int -2
		0x04, 0x00, 0x01, 'l', 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, // long 1<<32
		0x05, 0x00, 0x01, 'f', 0x3F, 0x80, 0x00, 0x00, // float 1.0
		0x06, 0x00, 0x01, 'd', 0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18, // double pi
		0x00,
	}

	_, tag, _, err := ReadNamed(data)
	require.NoError(t, err)

	b, err := tag.GetByte("b")
	require.NoError(t, err)
	require.Equal(t, int8(-128), b)

	s, err := tag.GetShort("s")
	require.NoError(t, err)
	require.Equal(t, int16(32767), s)

	i, err := tag.GetInt("i")
	require.NoError(t, err)
	require.Equal(t, int32(-2), i)

	l, err := tag.GetLong("l")
	require.NoError(t, err)
	require.Equal(t, int64(1)<<32, l)

	f, err := tag.GetFloat("f")
	require.NoError(t, err)
	require.Equal(t, float32(1.0), f)

	d, err := tag.GetDouble("d")
	require.NoError(t, err)
	require.InDelta(t, 3.14159265358979, d, 1e-14)
}

func TestReadNamed_EmptyList(t *testing.T) {
	data := []byte{
		0x0A, 0x00, 0x00,
		0x09,       // list
		0x00, 0x02, // name length 2
		'x', 's',
		0x00,                   // element kind End
		0x00, 0x00, 0x00, 0x00, // length 0
		0x00,
	}

	_, tag, _, err := ReadNamed(data)
	require.NoError(t, err)

	list, err := tag.GetList("xs")
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())
	require.Equal(t, End, list.ElementKind())
}

func TestReadNamed_EndElementListToleratesDeclaredLength(t *testing.T) {
	// Old Notchian output occasionally declares a nonzero length with an
	// End element kind; the list is still empty.
	data := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x02, 'x', 's',
		0x00,                   // element kind End
		0x00, 0x00, 0x00, 0x03, // declared length 3
		0x00,
	}

	_, tag, _, err := ReadNamed(data)
	require.NoError(t, err)

	list, err := tag.GetList("xs")
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())
	require.Equal(t, End, list.ElementKind())
}

func TestReadNamed_LongArray(t *testing.T) {
	data := []byte{
		0x0A, 0x00, 0x00,
		0x0C,       // long array
		0x00, 0x01, // name length 1
		'L',
		0x00, 0x00, 0x00, 0x02, // 2 elements
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0x00,
	}

	_, tag, _, err := ReadNamed(data)
	require.NoError(t, err)

	arr, ok := tag.Get("L")
	require.True(t, ok)
	require.Equal(t, []int64{0x0102030405060708, 0x1122334455667788}, arr.LongArrayData())
}

func TestReadNamed_ListOfCompounds(t *testing.T) {
	data := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x03, 'x', 'y', 'z',
		0x0A,                   // element kind compound
		0x00, 0x00, 0x00, 0x02, // 2 elements
		// element 0: {v: byte 1}
		0x01, 0x00, 0x01, 'v', 0x01, 0x00,
		// element 1: {v: byte 2}
		0x01, 0x00, 0x01, 'v', 0x02, 0x00,
		0x00,
	}

	_, tag, _, err := ReadNamed(data)
	require.NoError(t, err)

	list, err := tag.GetList("xyz")
	require.NoError(t, err)
	require.Equal(t, Compound, list.ElementKind())
	require.Equal(t, 2, list.Len())
	require.Equal(t, int8(2), list.At(1).ByteOr("v", 0))
}

func TestReadNamed_EndSentinel(t *testing.T) {
	name, tag, n, err := ReadNamed([]byte{0x00, 0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, "", name)
	require.Equal(t, End, tag.Kind())
	require.Equal(t, 1, n)
}

func TestReadNamed_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "empty input",
			data: nil,
			want: ErrUnexpectedEOF,
		},
		{
			name: "unknown tag id",
			data: []byte{0x0D, 0x00, 0x00},
			want: &UnknownTagError{ID: 0x0D},
		},
		{
			name: "truncated name",
			data: []byte{0x03, 0x00, 0x04, 'a', 'b'},
			want: ErrUnexpectedEOF,
		},
		{
			name: "truncated int payload",
			data: []byte{0x03, 0x00, 0x01, 'i', 0x00, 0x00},
			want: ErrUnexpectedEOF,
		},
		{
			name: "negative byte array length",
			data: []byte{0x07, 0x00, 0x01, 'a', 0xFF, 0xFF, 0xFF, 0xFF},
			want: ErrNegativeLength,
		},
		{
			name: "negative list length",
			data: []byte{0x09, 0x00, 0x01, 'l', 0x03, 0xFF, 0xFF, 0xFF, 0xFF},
			want: ErrNegativeLength,
		},
		{
			name: "unknown list element kind",
			data: []byte{0x09, 0x00, 0x01, 'l', 0x20, 0x00, 0x00, 0x00, 0x00},
			want: &UnknownTagError{ID: 0x20},
		},
		{
			name: "invalid utf8 in string",
			data: []byte{0x08, 0x00, 0x01, 's', 0x00, 0x02, 0xC3, 0x28},
			want: ErrInvalidUTF8,
		},
		{
			name: "invalid utf8 in name",
			data: []byte{0x03, 0x00, 0x02, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x01},
			want: ErrInvalidUTF8,
		},
		{
			name: "array length exceeds input",
			data: []byte{0x0B, 0x00, 0x01, 'a', 0x7F, 0xFF, 0xFF, 0xFF, 0x00},
			want: ErrUnexpectedEOF,
		},
		{
			name: "unterminated compound",
			data: []byte{0x0A, 0x00, 0x00, 0x01, 0x00, 0x01, 'v', 0x05},
			want: ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ReadNamed(tt.data)
			require.Error(t, err)

			if unknown, ok := tt.want.(*UnknownTagError); ok {
				var got *UnknownTagError
				require.ErrorAs(t, err, &got)
				require.Equal(t, unknown.ID, got.ID)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func BenchmarkReadNamed_LongArray(b *testing.B) {
	longs := make([]int64, 4096)
	for i := range longs {
		longs[i] = int64(i) * 0x0101010101010101
	}
	data, err := MarshalNamed("", BuildCompound().PutLongArray("states", longs).Build())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, _, err := ReadNamed(data); err != nil {
			b.Fatal(err)
		}
	}
}
