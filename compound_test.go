package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompoundPutGet(t *testing.T) {
	c := NewCompound()
	c.Put("a", NewInt(1))
	c.Put("b", NewInt(2))

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, int32(1), v.Int32())

	_, ok = c.Get("missing")
	require.False(t, ok)

	require.True(t, c.Has("b"))
	require.False(t, c.Has("c"))
}

func TestCompoundPutReplacesInPlace(t *testing.T) {
	c := NewCompound()
	c.Put("first", NewInt(1))
	c.Put("second", NewInt(2))
	c.Put("third", NewInt(3))

	// Replacing an existing entry keeps its ordinal position and does not
	// grow the compound.
	c.Put("second", NewString("replaced"))
	require.Equal(t, 3, c.Len())

	name, tag := c.EntryAt(1)
	require.Equal(t, "second", name)
	require.Equal(t, String, tag.Kind())
	require.Equal(t, []string{"first", "second", "third"}, c.Names())
}

func TestCompoundIterationOrder(t *testing.T) {
	c := NewCompound()
	names := []string{"zebra", "apple", "mango", "kiwi"}
	for i, n := range names {
		c.Put(n, NewInt(int32(i)))
	}
	require.Equal(t, names, c.Names())

	for i, n := range names {
		gotName, gotTag := c.EntryAt(i)
		require.Equal(t, n, gotName)
		require.Equal(t, int32(i), gotTag.Int32())
	}
}

func TestCompoundRemoveSwapsLast(t *testing.T) {
	c := NewCompound()
	c.Put("a", NewInt(1))
	c.Put("b", NewInt(2))
	c.Put("c", NewInt(3))
	c.Put("d", NewInt(4))

	require.True(t, c.Remove("b"))
	require.Equal(t, 3, c.Len())

	// The previously-last entry moved into the vacated slot.
	name, tag := c.EntryAt(1)
	require.Equal(t, "d", name)
	require.Equal(t, int32(4), tag.Int32())

	// Name lookups stay correct after the swap.
	for _, n := range []string{"a", "c", "d"} {
		v, ok := c.Get(n)
		require.True(t, ok, n)
		require.NotNil(t, v)
	}
	_, ok := c.Get("b")
	require.False(t, ok)

	// Removing the last entry needs no swap.
	require.True(t, c.Remove("c"))
	require.Equal(t, []string{"a", "d"}, c.Names())

	require.False(t, c.Remove("b"))
}

func TestCompoundUniqueness(t *testing.T) {
	c := NewCompound()
	for i := 0; i < 10; i++ {
		c.Put("k", NewInt(int32(i)))
	}
	require.Equal(t, 1, c.Len())
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, int32(9), v.Int32())
}

func TestTypedAccessorsStrict(t *testing.T) {
	c := BuildCompound().
		PutByte("b", 7).
		PutShort("s", 300).
		PutInt("i", 70000).
		PutLong("l", 1<<40).
		PutFloat("f", 1.5).
		PutDouble("d", 2.5).
		PutString("str", "text").
		Put("nested", BuildCompound().PutInt("x", 1).Build()).
		Build()

	b, err := c.GetByte("b")
	require.NoError(t, err)
	require.Equal(t, int8(7), b)

	s, err := c.GetShort("s")
	require.NoError(t, err)
	require.Equal(t, int16(300), s)

	i, err := c.GetInt("i")
	require.NoError(t, err)
	require.Equal(t, int32(70000), i)

	l, err := c.GetLong("l")
	require.NoError(t, err)
	require.Equal(t, int64(1)<<40, l)

	f, err := c.GetFloat("f")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f)

	d, err := c.GetDouble("d")
	require.NoError(t, err)
	require.Equal(t, 2.5, d)

	str, err := c.GetString("str")
	require.NoError(t, err)
	require.Equal(t, "text", str)

	nested, err := c.GetCompound("nested")
	require.NoError(t, err)
	require.Equal(t, Compound, nested.Kind())
}

func TestTypedAccessorsMissing(t *testing.T) {
	c := NewCompound()

	_, err := c.GetInt("absent")
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "absent", missing.Key)

	_, err = c.GetCompound("absent")
	require.ErrorAs(t, err, &missing)

	_, err = c.GetString("absent")
	require.ErrorAs(t, err, &missing)
}

func TestTypedAccessorsMismatch(t *testing.T) {
	c := BuildCompound().
		PutString("str", "text").
		PutInt("i", 5).
		Build()

	_, err := c.GetCompound("str")
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = c.GetString("i")
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = c.GetList("i")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTypedAccessorsNumericCoercion(t *testing.T) {
	c := BuildCompound().
		PutString("strnum", "35").
		PutString("strjunk", "minecraft:stone").
		PutLong("wide", 0x100000001).
		Build()

	// Numbers stored as strings parse; junk strings coerce to zero. Both
	// behaviors match legacy save data handling.
	i, err := c.GetInt("strnum")
	require.NoError(t, err)
	require.Equal(t, int32(35), i)

	j, err := c.GetInt("strjunk")
	require.NoError(t, err)
	require.Equal(t, int32(0), j)

	// Numeric entries narrow to the requested width.
	b, err := c.GetInt("wide")
	require.NoError(t, err)
	require.Equal(t, int32(1), b)
}

func TestOrDefaultAccessors(t *testing.T) {
	c := BuildCompound().
		PutInt("i", 5).
		PutString("s", "x").
		Build()

	require.Equal(t, int32(5), c.IntOr("i", 9))
	require.Equal(t, int32(9), c.IntOr("missing", 9))
	require.Equal(t, "x", c.StringOr("s", "def"))
	require.Equal(t, "def", c.StringOr("i", "def"))
	require.Equal(t, int8(3), c.ByteOr("missing", 3))
	require.Equal(t, int16(4), c.ShortOr("missing", 4))
	require.Equal(t, int64(6), c.LongOr("missing", 6))
	require.Equal(t, float32(1.5), c.FloatOr("missing", 1.5))
	require.Equal(t, 2.5, c.DoubleOr("missing", 2.5))
	require.True(t, c.BoolOr("missing", true))

	def := NewCompound()
	require.Same(t, def, c.CompoundOr("missing", def))
	require.Same(t, def, c.CompoundOr("i", def))
}
