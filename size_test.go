package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateNamed_ExactForScalarsAndArrays(t *testing.T) {
	tests := []struct {
		name string
		tag  *Tag
	}{
		{"byte", NewByte(1)},
		{"short", NewShort(2)},
		{"int", NewInt(3)},
		{"long", NewLong(4)},
		{"float", NewFloat(5)},
		{"double", NewDouble(6)},
		{"byte array", NewByteArray(make([]byte, 100))},
		{"int array", NewIntArray(make([]int32, 100))},
		{"long array", NewLongArray(make([]int64, 100))},
		{"empty list", NewList()},
		{"empty compound", NewCompound()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := MarshalNamed("tag", tt.tag)
			require.NoError(t, err)
			require.Equal(t, EstimateNamed("tag", tt.tag), len(buf))
		})
	}
}

func TestEstimateNamed_NeverUndercounts(t *testing.T) {
	root := sampleTree(t)

	buf, err := MarshalNamed("root", root)
	require.NoError(t, err)

	estimate := EstimateNamed("root", root)
	require.GreaterOrEqual(t, estimate, len(buf))

	// Go strings report UTF-8 byte length directly, so the estimate is
	// exact even for multi-byte string payloads.
	require.Equal(t, estimate, len(buf))
}

func TestEstimateNamed_PresizedBufferNeverGrows(t *testing.T) {
	root := sampleTree(t)

	buf := make([]byte, 0, EstimateNamed("root", root))
	out, err := AppendNamed(buf, "root", root)
	require.NoError(t, err)

	// The append path must fit in the estimated capacity: same backing
	// array, no reallocation.
	require.Equal(t, cap(buf), cap(out))
}

func TestEstimateNamed_MultiByteStrings(t *testing.T) {
	// Each rune below is 3 bytes in UTF-8.
	tag := NewString("世界")
	buf, err := MarshalNamed("名", tag)
	require.NoError(t, err)
	require.Equal(t, EstimateNamed("名", tag), len(buf))
}
