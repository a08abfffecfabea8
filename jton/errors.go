package jton

import "fmt"

// ErrorCode classifies why Compress or Decompress failed.
type ErrorCode uint8

const (
	// UnsupportedValue means the input contains a value outside the JSON
	// domain: NaN, Infinity, or another non-finite float. Raised only by
	// Compress. (ParseJSON reads an integer literal too wide for int64 as
	// a Float rather than reporting it.)
	UnsupportedValue ErrorCode = iota

	// InvalidJson means Decompress was given text that is not valid JSON.
	InvalidJson

	// MalformedInput means Decompress was given a JSON value that looks
	// like a JTON envelope (both "d" and "m" present) but violates the
	// descriptor grammar: an unknown binary prefix, bad base64, a missing
	// "n", a key token absent from "m", etc.
	MalformedInput

	// DepthExceeded means the recursion guard tripped while walking a
	// deeply nested value.
	DepthExceeded
)

func (c ErrorCode) String() string {
	switch c {
	case UnsupportedValue:
		return "UnsupportedValue"
	case InvalidJson:
		return "InvalidJson"
	case MalformedInput:
		return "MalformedInput"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

// CodecError is the error type returned by Compress and Decompress. Path
// records a JSON-pointer-ish breadcrumb through the value tree when one is
// available, to help locate the offending node.
type CodecError struct {
	Code    ErrorCode
	Path    string
	Message string
}

func (e *CodecError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jton: %s at %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("jton: %s: %s", e.Code, e.Message)
}

func newErr(code ErrorCode, path, format string, args ...any) *CodecError {
	return &CodecError{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err is a *CodecError with the given code.
func IsCode(err error, code ErrorCode) bool {
	ce, ok := err.(*CodecError)
	return ok && ce.Code == code
}
