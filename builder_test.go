package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompoundBuilder(t *testing.T) {
	c := BuildCompound().
		PutByte("byte", 1).
		PutBool("bool", true).
		PutShort("short", 2).
		PutInt("int", 3).
		PutLong("long", 4).
		PutFloat("float", 5).
		PutDouble("double", 6).
		PutString("string", "seven").
		PutByteArray("bytes", []byte{8}).
		PutIntArray("ints", []int32{9}).
		PutLongArray("longs", []int64{10}).
		Build()

	require.Equal(t, 11, c.Len())
	require.Equal(t, []string{
		"byte", "bool", "short", "int", "long", "float", "double",
		"string", "bytes", "ints", "longs",
	}, c.Names())

	v, err := c.GetDouble("double")
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestListBuilder(t *testing.T) {
	list, err := BuildList().AddFloat(1).AddFloat(2).Build()
	require.NoError(t, err)
	require.Equal(t, Float, list.ElementKind())
	require.Equal(t, 2, list.Len())
}

func TestListBuilderKindMismatchSurfacesAtBuild(t *testing.T) {
	_, err := BuildList().AddInt(1).AddString("x").AddInt(2).Build()
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestArrayBuilders(t *testing.T) {
	ba := BuildByteArray().Reserve(4).Add(-1, 2).AddBytes(0xFF).Build()
	require.Equal(t, []byte{0xFF, 2, 0xFF}, ba.ByteArrayData())

	ia := BuildIntArray().Reserve(2).Add(1, 2, 3).Build()
	require.Equal(t, []int32{1, 2, 3}, ia.IntArrayData())

	la := BuildLongArray().Add(1 << 40).Build()
	require.Equal(t, []int64{1 << 40}, la.LongArrayData())
}

func TestBuilderTransfersOwnership(t *testing.T) {
	b := BuildIntArray().Add(1)
	tag := b.Build()

	// Adding after Build must not disturb the built tag.
	b.Add(2)
	require.Equal(t, []int32{1}, tag.IntArrayData())
}
