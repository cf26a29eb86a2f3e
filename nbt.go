// Package nbt implements Minecraft's Named Binary Tag format: a typed
// in-memory tree model, a bit-exact big-endian binary codec with a size
// estimator for pre-allocated writes, and a version-aware codec for the
// stringified text dialect (SNBT) used by commands and debug output.
//
// The package handles neither compression nor framing. World saves and
// network packets wrap NBT payloads in gzip/zlib or length prefixes; strip
// those before handing bytes to ReadNamed and apply them to the output of
// AppendNamed.
//
// Trees are single-owner mutable values. Nothing in this package starts
// goroutines or keeps global mutable state; callers sharing a tree across
// goroutines must synchronize externally or work on a Clone.
package nbt

import (
	"fmt"
	"io"
)

// ReadNamedFrom reads the remainder of r and decodes one named tag from it.
// Bytes past the root tag are ignored. Embedders holding a decompressed
// stream use this instead of buffering by hand.
func ReadNamedFrom(r io.Reader) (string, *Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	name, tag, _, err := ReadNamed(data)
	return name, tag, err
}

// WriteNamedTo serializes a named tag to w and returns the number of bytes
// written.
func WriteNamedTo(w io.Writer, name string, t *Tag) (int, error) {
	buf, err := MarshalNamed(name, t)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}
