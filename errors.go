package encodepacked

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrWidthOutOfRange indicates a NumberWithShift width outside [1, 32] bytes.
	ErrWidthOutOfRange = errors.New("encodepacked: width out of range (must be 1-32 bytes)")

	// ErrValueTooLarge indicates a number does not fit in its requested width.
	ErrValueTooLarge = errors.New("encodepacked: value too large for width")

	// ErrInvalidAddressLength indicates an address payload that is not 20 bytes.
	ErrInvalidAddressLength = errors.New("encodepacked: address must be exactly 20 bytes")

	// ErrInvalidAddressHex indicates an address string containing non-hex characters.
	ErrInvalidAddressHex = errors.New("encodepacked: address is not valid hex")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("encodepacked: string is not valid UTF-8")

	// ErrNegativeNumber indicates a negative integer was given for an unsigned type.
	ErrNegativeNumber = errors.New("encodepacked: negative number for unsigned type")

	// ErrNumberOverflow indicates an integer does not fit in 256 bits.
	ErrNumberOverflow = errors.New("encodepacked: number overflows 256 bits")

	// ErrOutputTooLarge indicates the packed output would exceed the configured limit.
	ErrOutputTooLarge = errors.New("encodepacked: packed output exceeds size limit")

	// ErrNilValue indicates a nil Value in the input sequence.
	ErrNilValue = errors.New("encodepacked: nil value")

	// ErrUnsupportedType indicates a Solidity type with no packed encoding here.
	ErrUnsupportedType = errors.New("encodepacked: unsupported type")

	// ErrInvalidFixedBytesLength indicates a bytesN payload of the wrong length.
	ErrInvalidFixedBytesLength = errors.New("encodepacked: fixed bytes length mismatch")
)

// EncodingError identifies which input value failed to encode.
type EncodingError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encodepacked: value %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// WidthError reports an invalid NumberWithShift width.
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrWidthOutOfRange, e.Width)
}

func (e *WidthError) Unwrap() error {
	return ErrWidthOutOfRange
}

// ValueTooLargeError reports a number that needs more than Width bytes.
type ValueTooLargeError struct {
	Value string
	Width int
}

func (e *ValueTooLargeError) Error() string {
	return fmt.Sprintf("%v: %s does not fit in %d byte(s)", ErrValueTooLarge, e.Value, e.Width)
}

func (e *ValueTooLargeError) Unwrap() error {
	return ErrValueTooLarge
}

// TypeError indicates a Go value could not be converted to the named Solidity type.
type TypeError struct {
	Type  string
	Value any
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("encodepacked: cannot use %T as %s: %v", e.Value, e.Type, e.Err)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
