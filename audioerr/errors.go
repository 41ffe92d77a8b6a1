// SPDX-License-Identifier: EPL-2.0

// Package audioerr classifies failures reported by audtensor packages.
//
// Every failure carries a Kind. Callers test for a kind with errors.Is
// against the matching sentinel:
//
//	if errors.Is(err, audioerr.ErrSpecification) {
//	    // caller broke a shape or argument contract
//	}
//
// Errors coming from third-party codecs keep their category when one
// matches and fall back to Other.
package audioerr

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Kind is the category of a failure.
type Kind uint8

const (
	Other Kind = iota
	IO
	Decode
	Seek
	ResourceLimit
	Resample
	Specification
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case Decode:
		return "decode"
	case Seek:
		return "seek"
	case ResourceLimit:
		return "resource limit"
	case Resample:
		return "resample"
	case Specification:
		return "specification"
	case Other:
		return "other"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrIO            = errors.New("io failure")
	ErrDecode        = errors.New("decode failure")
	ErrSeek          = errors.New("seek failure")
	ErrResourceLimit = errors.New("resource limit exceeded")
	ErrResample      = errors.New("resample failure")
	ErrSpecification = errors.New("specification violated")
	ErrOther         = errors.New("unclassified failure")
)

func (k Kind) sentinel() error {
	switch k {
	case IO:
		return ErrIO
	case Decode:
		return ErrDecode
	case Seek:
		return ErrSeek
	case ResourceLimit:
		return ErrResourceLimit
	case Resample:
		return ErrResample
	case Specification:
		return ErrSpecification
	case Other:
		return ErrOther
	}

	return ErrOther
}

// Error is a classified failure.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "array.New".
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind.sentinel())
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// New returns an error of kind k for operation op.
func New(k Kind, op string, err error) *Error {
	return &Error{Kind: k, Op: op, Err: err}
}

// Specf returns a Specification error with a formatted message.
func Specf(op, format string, args ...any) *Error {
	return &Error{Kind: Specification, Op: op, Err: fmt.Errorf(format, args...)}
}

// Limitf returns a ResourceLimit error with a formatted message.
func Limitf(op, format string, args ...any) *Error {
	return &Error{Kind: ResourceLimit, Op: op, Err: fmt.Errorf(format, args...)}
}

// SeekError marks a failure of a Seek call on an underlying byte source.
type SeekError struct {
	Offset int64
	Whence int
	Err    error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seek to %d (whence %d): %v", e.Offset, e.Whence, e.Err)
}

func (e *SeekError) Unwrap() error { return e.Err }

// Classify wraps err for operation op, keeping its category where one can
// be recognised. A nil err yields nil. io.EOF is returned unchanged since it
// marks a normal end of stream.
func Classify(op string, err error) error {
	if err == nil || err == io.EOF {
		return err
	}

	var ae *Error
	if errors.As(err, &ae) {
		return err
	}

	return New(KindOf(err), op, err)
}

// KindOf reports the category of err. Unrecognised errors are Other.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}

	var se *SeekError
	if errors.As(err, &se) {
		return Seek
	}

	var pe *fs.PathError
	switch {
	case errors.As(err, &pe),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, io.ErrClosedPipe),
		errors.Is(err, io.ErrShortWrite):
		return IO
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Decode
	}

	return Other
}

// ClassifyDecode is Classify for errors raised while parsing a stream:
// failures with no recognised category count as Decode instead of Other.
func ClassifyDecode(op string, err error) error {
	if err == nil || err == io.EOF {
		return err
	}
	if KindOf(err) == Other {
		return New(Decode, op, err)
	}

	return Classify(op, err)
}
