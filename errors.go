package nbt

import (
	"errors"
	"fmt"

	"github.com/scigolib/nbt/internal/cursor"
)

// Sentinel errors shared by the binary and SNBT codecs. Decoders wrap these
// with positional context; use errors.Is to classify a failure.
var (
	// ErrUnexpectedEOF means the binary reader ran out of bytes.
	ErrUnexpectedEOF = cursor.ErrUnexpectedEOF

	// ErrNegativeLength means an array or list declared a length < 0.
	ErrNegativeLength = errors.New("negative length prefix")

	// ErrInvalidUTF8 means string bytes on the wire are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string payload is not valid UTF-8")

	// ErrStringTooLong means a string's UTF-8 encoding exceeds the 65535
	// byte limit of the wire format.
	ErrStringTooLong = errors.New("string payload exceeds 65535 bytes")

	// ErrTypeMismatch means a tag of the wrong kind was supplied: a list or
	// typed array received a foreign element, or a typed compound accessor
	// found an entry of another kind.
	ErrTypeMismatch = errors.New("tag kind mismatch")

	// ErrTrailingData means the SNBT parser found non-whitespace input
	// after the root value.
	ErrTrailingData = errors.New("trailing data after root value")
)

// UnknownTagError reports a wire tag id outside the valid [0,12] range.
type UnknownTagError struct {
	ID byte
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag id 0x%02x", e.ID)
}

// MissingError reports a strict compound accessor called with an absent key.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("no entry named %q", e.Key)
}

// syntaxExcerptLen is how many characters of already-consumed input a
// SyntaxError keeps as context.
const syntaxExcerptLen = 35

// SyntaxError reports an SNBT parse failure. It carries the cursor offset
// and an excerpt of the input leading up to it; the rendered message ends
// with the excerpt followed by the "<--[HERE]" marker.
type SyntaxError struct {
	Msg     string // what the parser expected or found
	Offset  int    // cursor index into the input
	Excerpt string // up to 35 characters of input before Offset
	Err     error  // optional sentinel cause, for errors.Is
}

func (e *SyntaxError) Error() string {
	excerpt := e.Excerpt
	if e.Offset > syntaxExcerptLen {
		excerpt = "..." + excerpt
	}
	return fmt.Sprintf("%s at position %d: %s<--[HERE]", e.Msg, e.Offset, excerpt)
}

// Unwrap exposes the sentinel cause to errors.Is and errors.As.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// newSyntaxError builds a SyntaxError for position pos in src.
func newSyntaxError(msg string, src string, pos int, cause error) *SyntaxError {
	if pos > len(src) {
		pos = len(src)
	}
	start := pos - syntaxExcerptLen
	if start < 0 {
		start = 0
	}
	return &SyntaxError{
		Msg:     msg,
		Offset:  pos,
		Excerpt: src[start:pos],
		Err:     cause,
	}
}
