package nbt

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// unquotedKeyPattern matches compound keys that modern dialects emit
// without quotes.
var unquotedKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

func appendSnbtValue(dst []byte, t *Tag, d Dialect) []byte {
	switch t.Kind() {
	case End:
		return dst
	case Byte:
		dst = strconv.AppendInt(dst, int64(t.Int8()), 10)
		if d.useTypeSuffix() {
			dst = append(dst, 'b')
		}
		return dst
	case Short:
		dst = strconv.AppendInt(dst, int64(t.Int16()), 10)
		if d.useTypeSuffix() {
			dst = append(dst, 's')
		}
		return dst
	case Int:
		return strconv.AppendInt(dst, int64(t.Int32()), 10)
	case Long:
		dst = strconv.AppendInt(dst, t.Int64(), 10)
		if d.useTypeSuffix() {
			dst = append(dst, 'L')
		}
		return dst
	case Float:
		dst = appendSnbtFloat(dst, float64(t.Float32()), 32)
		if d.useTypeSuffix() {
			dst = append(dst, 'f')
		}
		return dst
	case Double:
		dst = appendSnbtFloat(dst, t.Float64(), 64)
		if d.useTypeSuffix() {
			dst = append(dst, 'd')
		}
		return dst
	case String:
		return appendSnbtQuoted(dst, t.Text(), d)
	case ByteArray:
		dst = append(dst, '[', 'B', ';')
		for i, v := range t.ByteArrayData() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(int8(v)), 10)
			if !d.modernArrays() {
				dst = append(dst, 'b')
			}
		}
		return append(dst, ']')
	case IntArray:
		dst = append(dst, '[', 'I', ';')
		for i, v := range t.IntArrayData() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(v), 10)
		}
		return append(dst, ']')
	case LongArray:
		dst = append(dst, '[', 'L', ';')
		for i, v := range t.LongArrayData() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, v, 10)
			if !d.modernArrays() {
				dst = append(dst, 'L')
			}
		}
		return append(dst, ']')
	case List:
		dst = append(dst, '[')
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendSnbtValue(dst, t.At(i), d)
		}
		return append(dst, ']')
	case Compound:
		dst = append(dst, '{')
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			name, child := t.EntryAt(i)
			dst = appendSnbtKey(dst, name, d)
			dst = append(dst, ':')
			dst = appendSnbtValue(dst, child, d)
		}
		return append(dst, '}')
	default:
		return dst
	}
}

// appendSnbtKey writes a compound key. Legacy dialects emit keys raw the
// way the old chat-command parser expected them; modern dialects quote any
// key that strays outside the unquoted identifier set.
func appendSnbtKey(dst []byte, key string, d Dialect) []byte {
	if d.legacyParser() {
		return append(dst, key...)
	}
	if unquotedKeyPattern.MatchString(key) {
		return append(dst, key...)
	}
	return appendSnbtQuoted(dst, key, d)
}

// appendSnbtQuoted writes a quoted string. The double quote is the default
// delimiter; dialects that permit single quotes flip to them when the value
// contains a double quote but no single quote, avoiding escapes.
func appendSnbtQuoted(dst []byte, s string, d Dialect) []byte {
	quote := byte('"')
	if d.allowSingleQuotes() && strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		quote = '\''
	}
	dst = append(dst, quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || c == '\\' {
			dst = append(dst, '\\')
		}
		dst = append(dst, c)
	}
	return append(dst, quote)
}

// appendSnbtFloat renders a float so it reparses to the same kind: integral
// finite values keep a trailing ".0" the way Java's Float/Double toString
// does.
func appendSnbtFloat(dst []byte, v float64, bits int) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// Not expressible in SNBT; match Java's toString output.
		switch {
		case math.IsNaN(v):
			return append(dst, "NaN"...)
		case v > 0:
			return append(dst, "Infinity"...)
		default:
			return append(dst, "-Infinity"...)
		}
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	dst = append(dst, s...)
	if !strings.ContainsAny(s, ".eE") {
		dst = append(dst, '.', '0')
	}
	return dst
}
