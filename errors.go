package altiumsch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the category of a decode failure, one constant per entry
// of the error taxonomy that SPEC_FULL.md §7 describes.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindIniFormat
	KindMissingSection
	KindMissingUniqueID
	KindInvalidUniqueID
	KindInvalidStorageData
	KindFileType
	KindInvalidStream
	KindInvalidHeader
	KindRequiredSplit
	KindUtf8
	KindExpectedInt
	KindExpectedFloat
	KindExpectedBool
	KindExpectedColor
	KindExpectedNul
	KindBufferTooShort
	KindSheetStyle
	KindReadOnlyState
	KindJustification
	KindElectricalType
	KindPin
	KindImage
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindIniFormat:
		return "ini-format"
	case KindMissingSection:
		return "missing-section"
	case KindMissingUniqueID:
		return "missing-unique-id"
	case KindInvalidUniqueID:
		return "invalid-unique-id"
	case KindInvalidStorageData:
		return "invalid-storage-data"
	case KindFileType:
		return "file-type"
	case KindInvalidStream:
		return "invalid-stream"
	case KindInvalidHeader:
		return "invalid-header"
	case KindRequiredSplit:
		return "required-split"
	case KindUtf8:
		return "utf8"
	case KindExpectedInt:
		return "expected-int"
	case KindExpectedFloat:
		return "expected-float"
	case KindExpectedBool:
		return "expected-bool"
	case KindExpectedColor:
		return "expected-color"
	case KindExpectedNul:
		return "expected-nul"
	case KindBufferTooShort:
		return "buffer-too-short"
	case KindSheetStyle:
		return "sheet-style"
	case KindReadOnlyState:
		return "read-only-state"
	case KindJustification:
		return "justification"
	case KindElectricalType:
		return "electrical-type"
	case KindPin:
		return "pin"
	case KindImage:
		return "image"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Error is the library's error type: a Kind, an optional wrapped cause, and
// a stack of free-form context frames pushed as the decode unwinds.
type Error struct {
	Kind   Kind
	Cause  error
	frames []string
}

// NewError builds a bare error of the given kind with a formatted message
// as its cause.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

// WithContext appends a context frame and returns the same error, so calls
// can be chained: `return nil, err.WithContext("while matching X")`.
func (e *Error) WithContext(format string, args ...any) *Error {
	e.frames = append(e.frames, fmt.Sprintf(format, args...))
	return e
}

// Frames returns the context-frame stack in the order the frames were
// added while unwinding: innermost (closest to the failure) first.
func (e *Error) Frames() []string {
	return e.frames
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Cause != nil {
		b.WriteString(e.Cause.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	for i, f := range e.frames {
		fmt.Fprintf(&b, "\n  %2d: %s", i, f)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// wrapContext appends a context frame to err if it is already an *Error,
// otherwise wraps it as one of KindUnknown. Callers use this at the seams
// where a lower-level error (e.g. from a Source) needs a frame added.
func wrapContext(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e.WithContext(format, args...)
	}
	return (&Error{Kind: KindUnknown, Cause: err}).WithContext(format, args...)
}

// TruncBuf renders a byte slice truncated to its first (or last) 16 bytes in
// hex, for compact inclusion in error messages without dumping megabytes.
type TruncBuf struct {
	buf      []byte
	fromEnd  bool
	origSize int
}

// NewTruncBuf truncates to the first 16 bytes.
func NewTruncBuf(buf []byte) TruncBuf {
	return newTruncBuf(buf, false)
}

// NewTruncBufEnd truncates to the last 16 bytes.
func NewTruncBufEnd(buf []byte) TruncBuf {
	return newTruncBuf(buf, true)
}

func newTruncBuf(buf []byte, fromEnd bool) TruncBuf {
	const limit = 16
	if len(buf) <= limit {
		return TruncBuf{buf: buf, origSize: len(buf)}
	}
	if fromEnd {
		return TruncBuf{buf: buf[len(buf)-limit:], fromEnd: true, origSize: len(buf)}
	}
	return TruncBuf{buf: buf[:limit], origSize: len(buf)}
}

func (t TruncBuf) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if t.fromEnd && t.origSize > len(t.buf) {
		b.WriteString("..., ")
	}
	for i, c := range t.buf {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("0x" + strconv.FormatUint(uint64(c), 16))
	}
	if !t.fromEnd && t.origSize > len(t.buf) {
		b.WriteString(", ...")
	}
	b.WriteByte(']')
	return b.String()
}
