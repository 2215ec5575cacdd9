// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Scramble errors
	CodeScrambleIndexOutOfRange      Code = "SCRAMBLE_INDEX_OUT_OF_RANGE"
	CodeScrambleExponentiatorMissing Code = "SCRAMBLE_EXPONENTIATOR_MISSING"
	CodeScrambleBaseOffsetInvalid    Code = "SCRAMBLE_BASE_OFFSET_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// OutOfRange - input past the designed identifier space
	case CodeScrambleIndexOutOfRange:
		return codes.OutOfRange

	// InvalidArgument - validation failures, bad input
	case CodeScrambleBaseOffsetInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - service configured without a required capability
	case CodeScrambleExponentiatorMissing:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
