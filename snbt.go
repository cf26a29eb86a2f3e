package nbt

// Dialect selects the SNBT syntax rules of a Minecraft version family. The
// text format drifted across versions: 1.7/1.8 used a lax hand-split
// parser, 1.12 introduced the strict grammar and typed numeric suffixes,
// 1.14 added single-quoted strings, and 1.21.5 dropped the element suffixes
// inside typed arrays.
type Dialect uint8

// The supported SNBT dialects, oldest first.
const (
	V1_7 Dialect = iota
	V1_8
	V1_12
	V1_13
	V1_14
	V1_21_5
)

var dialectNames = [...]string{"1.7", "1.8", "1.12", "1.13", "1.14", "1.21.5"}

// String returns the Minecraft version family the dialect models.
func (d Dialect) String() string {
	if int(d) >= len(dialectNames) {
		return "unknown"
	}
	return dialectNames[d]
}

// legacyParser reports whether the dialect parses with the 1.7/1.8
// string-splitting parser instead of the strict cursor parser.
func (d Dialect) legacyParser() bool {
	return d <= V1_8
}

// allowSingleQuotes reports whether '\'' delimits strings in addition
// to '"'.
func (d Dialect) allowSingleQuotes() bool {
	return d >= V1_14
}

// useTypeSuffix reports whether the writer emits numeric kind suffixes
// (1b, 2s, 4L, 5.0f, 6.0d).
func (d Dialect) useTypeSuffix() bool {
	return d >= V1_12
}

// modernArrays reports whether typed-array elements are written without
// per-element suffixes ([B;1,2,3] rather than [B;1b,2b,3b]).
func (d Dialect) modernArrays() bool {
	return d >= V1_21_5
}

// ParseSNBT parses stringified NBT under the given dialect and returns the
// root value. Non-whitespace input after the root fails with a SyntaxError
// wrapping ErrTrailingData. All parse failures are *SyntaxError values
// whose message ends with an excerpt of the input and the <--[HERE] marker.
func ParseSNBT(input string, d Dialect) (*Tag, error) {
	if d.legacyParser() {
		return parseLegacySNBT(input)
	}
	p := &snbtParser{src: input, dialect: d}
	t, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.canRead() {
		return nil, p.syntaxErr("unexpected trailing data", ErrTrailingData)
	}
	return t, nil
}

// FormatSNBT renders a tree as stringified NBT under the given dialect.
// The output is deterministic: one fixed string per (tree, dialect) pair.
func FormatSNBT(t *Tag, d Dialect) string {
	return string(AppendSNBT(nil, t, d))
}

// AppendSNBT appends the SNBT rendering of a tree to dst and returns the
// extended buffer.
func AppendSNBT(dst []byte, t *Tag, d Dialect) []byte {
	return appendSnbtValue(dst, t, d)
}
