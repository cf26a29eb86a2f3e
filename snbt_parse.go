package nbt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unquoted-token classifiers, tried in this exact order; the first match
// wins, so 1.0f is a float even though the double rule would also accept
// it. The tables are immutable and shared process-wide.
var (
	snbtFloatPattern     = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?|[0-9]*\.[0-9]+)(?:[eE][-+]?[0-9]+)?[fF]$`)
	snbtBytePattern      = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)[bB]$`)
	snbtShortPattern     = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)[sS]$`)
	snbtLongPattern      = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)[lL]$`)
	snbtIntPattern       = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	snbtDoubleSufPattern = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?|[0-9]*\.[0-9]+)(?:[eE][-+]?[0-9]+)?[dD]$`)
	snbtDoublePattern    = regexp.MustCompile(`^[-+]?(?:[0-9]+\.|[0-9]*\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
)

// snbtParser is the strict cursor parser used by the 1.12+ dialects.
type snbtParser struct {
	src     string
	pos     int
	dialect Dialect
}

func (p *snbtParser) syntaxErr(msg string, cause error) error {
	return newSyntaxError(msg, p.src, p.pos, cause)
}

func (p *snbtParser) canRead() bool {
	return p.pos < len(p.src)
}

func (p *snbtParser) peek() byte {
	return p.src[p.pos]
}

func (p *snbtParser) next() byte {
	c := p.src[p.pos]
	p.pos++
	return c
}

func (p *snbtParser) skipWhitespace() {
	for p.canRead() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// expect consumes c or fails.
func (p *snbtParser) expect(c byte) error {
	if !p.canRead() || p.peek() != c {
		return p.syntaxErr(fmt.Sprintf("expected '%c'", c), nil)
	}
	p.pos++
	return nil
}

// isQuote reports whether c opens a quoted string under the dialect.
func (p *snbtParser) isQuote(c byte) bool {
	return c == '"' || (c == '\'' && p.dialect.allowSingleQuotes())
}

// isUnquotedChar reports whether c may appear in an unquoted token or key.
func isUnquotedChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '+' || c == '-' || c == '.'
}

func (p *snbtParser) parseValue() (*Tag, error) {
	p.skipWhitespace()
	if !p.canRead() {
		return nil, p.syntaxErr("expected value", nil)
	}
	switch {
	case p.peek() == '{':
		return p.parseCompound()
	case p.peek() == '[':
		return p.parseListOrArray()
	default:
		return p.parsePrimitive()
	}
}

func (p *snbtParser) parseCompound() (*Tag, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	c := NewCompound()
	p.skipWhitespace()
	if p.canRead() && p.peek() == '}' {
		p.pos++
		return c, nil
	}
	for {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		c.Put(key, value)
		p.skipWhitespace()
		if !p.canRead() {
			return nil, p.syntaxErr("expected ',' or '}'", nil)
		}
		switch p.next() {
		case ',':
			p.skipWhitespace()
		case '}':
			return c, nil
		default:
			p.pos--
			return nil, p.syntaxErr("expected ',' or '}'", nil)
		}
	}
}

func (p *snbtParser) parseKey() (string, error) {
	p.skipWhitespace()
	if !p.canRead() {
		return "", p.syntaxErr("expected key", nil)
	}
	if p.isQuote(p.peek()) {
		return p.readQuoted()
	}
	key := p.readUnquoted()
	if key == "" {
		return "", p.syntaxErr("expected key", nil)
	}
	return key, nil
}

// parseListOrArray disambiguates after '[': a non-quote character followed
// by ';' marks a typed array, anything else a list.
func (p *snbtParser) parseListOrArray() (*Tag, error) {
	if p.pos+2 < len(p.src) && p.src[p.pos+2] == ';' && !p.isQuote(p.src[p.pos+1]) {
		return p.parseTypedArray()
	}
	return p.parseList()
}

func (p *snbtParser) parseList() (*Tag, error) {
	p.pos++ // consume '['
	list := NewList()
	p.skipWhitespace()
	if p.canRead() && p.peek() == ']' {
		p.pos++
		return list, nil
	}
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := list.Append(value); err != nil {
			return nil, p.syntaxErr(
				fmt.Sprintf("cannot insert %s into list of %s", value.Kind(), list.ElementKind()),
				ErrTypeMismatch)
		}
		p.skipWhitespace()
		if !p.canRead() {
			return nil, p.syntaxErr("expected ',' or ']'", nil)
		}
		switch p.next() {
		case ',':
		case ']':
			return list, nil
		default:
			p.pos--
			return nil, p.syntaxErr("expected ',' or ']'", nil)
		}
	}
}

func (p *snbtParser) parseTypedArray() (*Tag, error) {
	p.pos++ // consume '['
	arrayType := p.next()
	p.pos++ // consume ';'
	switch arrayType {
	case 'B':
		b := BuildByteArray()
		err := p.parseArrayElements(func(tok string) error {
			v, err := parseArrayInt(tok, 'b', 8)
			if err != nil {
				return err
			}
			b.Add(int8(v))
			return nil
		})
		if err != nil {
			return nil, err
		}
		return b.Build(), nil
	case 'I':
		b := BuildIntArray()
		err := p.parseArrayElements(func(tok string) error {
			v, err := parseArrayInt(tok, 0, 32)
			if err != nil {
				return err
			}
			b.Add(int32(v))
			return nil
		})
		if err != nil {
			return nil, err
		}
		return b.Build(), nil
	case 'L':
		b := BuildLongArray()
		err := p.parseArrayElements(func(tok string) error {
			v, err := parseArrayInt(tok, 'l', 64)
			if err != nil {
				return err
			}
			b.Add(v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return b.Build(), nil
	default:
		p.pos -= 2
		return nil, p.syntaxErr(fmt.Sprintf("invalid array type '%c'", arrayType), nil)
	}
}

// parseArrayElements walks the comma-separated numeric tokens of a typed
// array, handing each to add.
func (p *snbtParser) parseArrayElements(add func(tok string) error) error {
	p.skipWhitespace()
	if p.canRead() && p.peek() == ']' {
		p.pos++
		return nil
	}
	for {
		p.skipWhitespace()
		if !p.canRead() {
			return p.syntaxErr("expected value", nil)
		}
		if p.isQuote(p.peek()) {
			return p.syntaxErr("expected a numeric array element", ErrTypeMismatch)
		}
		tok := p.readUnquoted()
		if tok == "" {
			return p.syntaxErr("expected value", nil)
		}
		if err := add(tok); err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.Offset = p.pos
				se.Excerpt = excerptBefore(p.src, p.pos)
				return se
			}
			return err
		}
		p.skipWhitespace()
		if !p.canRead() {
			return p.syntaxErr("expected ',' or ']'", nil)
		}
		switch p.next() {
		case ',':
		case ']':
			return nil
		default:
			p.pos--
			return p.syntaxErr("expected ',' or ']'", nil)
		}
	}
}

// parseArrayInt parses one typed-array element. The token must be shaped
// like an integer, optionally carrying the array's own suffix letter;
// boolean literals and foreign suffixes are kind mismatches, not values.
func parseArrayInt(tok string, suffix byte, bits int) (int64, error) {
	body := tok
	if suffix != 0 && len(tok) > 1 {
		last := tok[len(tok)-1]
		if last == suffix || last == suffix-('a'-'A') {
			body = tok[:len(tok)-1]
		}
	}
	if !snbtIntPattern.MatchString(body) {
		return 0, &SyntaxError{
			Msg: fmt.Sprintf("invalid array element %q", tok),
			Err: ErrTypeMismatch,
		}
	}
	v, err := strconv.ParseInt(body, 10, bits)
	if err != nil {
		return 0, &SyntaxError{
			Msg: fmt.Sprintf("array element %q out of range", tok),
			Err: ErrTypeMismatch,
		}
	}
	return v, nil
}

func (p *snbtParser) parsePrimitive() (*Tag, error) {
	if p.isQuote(p.peek()) {
		s, err := p.readQuoted()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	}
	tok := p.readUnquoted()
	if tok == "" {
		return nil, p.syntaxErr("expected value", nil)
	}
	return classifySnbtToken(tok), nil
}

// readQuoted consumes a quoted string starting at the opening quote. Only
// the active quote and the backslash itself may be escaped.
func (p *snbtParser) readQuoted() (string, error) {
	quote := p.next()
	var sb strings.Builder
	for p.canRead() {
		c := p.next()
		switch c {
		case '\\':
			if !p.canRead() {
				return "", p.syntaxErr("unterminated quoted string", nil)
			}
			e := p.next()
			if e != quote && e != '\\' {
				p.pos--
				return "", p.syntaxErr(fmt.Sprintf("invalid escape '\\%c'", e), nil)
			}
			sb.WriteByte(e)
		case quote:
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", p.syntaxErr("unterminated quoted string", nil)
}

// readUnquoted consumes the maximal run of unquoted-token characters.
func (p *snbtParser) readUnquoted() string {
	start := p.pos
	for p.canRead() && isUnquotedChar(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// classifySnbtToken types an unquoted token. Rules run in the contract
// order; a token whose digits overflow its matched width falls through and
// ultimately classifies as a string, which is what the Notchian parser's
// NumberFormatException fallback did.
func classifySnbtToken(tok string) *Tag {
	if snbtFloatPattern.MatchString(tok) {
		if v, err := strconv.ParseFloat(tok[:len(tok)-1], 32); err == nil {
			return NewFloat(float32(v))
		}
	}
	if snbtBytePattern.MatchString(tok) {
		if v, err := strconv.ParseInt(tok[:len(tok)-1], 10, 8); err == nil {
			return NewByte(int8(v))
		}
	}
	if snbtShortPattern.MatchString(tok) {
		if v, err := strconv.ParseInt(tok[:len(tok)-1], 10, 16); err == nil {
			return NewShort(int16(v))
		}
	}
	if snbtLongPattern.MatchString(tok) {
		if v, err := strconv.ParseInt(tok[:len(tok)-1], 10, 64); err == nil {
			return NewLong(v)
		}
	}
	if snbtIntPattern.MatchString(tok) {
		if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
			return NewInt(int32(v))
		}
	}
	if snbtDoubleSufPattern.MatchString(tok) {
		if v, err := strconv.ParseFloat(tok[:len(tok)-1], 64); err == nil {
			return NewDouble(v)
		}
	}
	if snbtDoublePattern.MatchString(tok) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return NewDouble(v)
		}
	}
	if strings.EqualFold(tok, "true") {
		return NewByte(1)
	}
	if strings.EqualFold(tok, "false") {
		return NewByte(0)
	}
	return NewString(tok)
}

// excerptBefore returns the up-to-35-character window of src ending at pos,
// matching what newSyntaxError embeds.
func excerptBefore(src string, pos int) string {
	if pos > len(src) {
		pos = len(src)
	}
	start := pos - syntaxExcerptLen
	if start < 0 {
		start = 0
	}
	return src[start:pos]
}
