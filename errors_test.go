package encodepacked

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrWidthOutOfRange", ErrWidthOutOfRange, "encodepacked: width out of range (must be 1-32 bytes)"},
		{"ErrValueTooLarge", ErrValueTooLarge, "encodepacked: value too large for width"},
		{"ErrInvalidAddressLength", ErrInvalidAddressLength, "encodepacked: address must be exactly 20 bytes"},
		{"ErrInvalidAddressHex", ErrInvalidAddressHex, "encodepacked: address is not valid hex"},
		{"ErrInvalidUTF8", ErrInvalidUTF8, "encodepacked: string is not valid UTF-8"},
		{"ErrNegativeNumber", ErrNegativeNumber, "encodepacked: negative number for unsigned type"},
		{"ErrNumberOverflow", ErrNumberOverflow, "encodepacked: number overflows 256 bits"},
		{"ErrOutputTooLarge", ErrOutputTooLarge, "encodepacked: packed output exceeds size limit"},
		{"ErrNilValue", ErrNilValue, "encodepacked: nil value"},
		{"ErrUnsupportedType", ErrUnsupportedType, "encodepacked: unsupported type"},
		{"ErrInvalidFixedBytesLength", ErrInvalidFixedBytesLength, "encodepacked: fixed bytes length mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestEncodingError(t *testing.T) {
	err := &EncodingError{
		Index: 2,
		Kind:  KindNumberWithShift,
		Err:   &WidthError{Width: 40},
	}

	expected := "encodepacked: value 2 (number-with-shift): encodepacked: width out of range (must be 1-32 bytes): got 40"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrWidthOutOfRange) {
		t.Error("errors.Is should find ErrWidthOutOfRange in chain")
	}

	var widthErr *WidthError
	if !errors.As(err, &widthErr) || widthErr.Width != 40 {
		t.Error("errors.As should find *WidthError in chain")
	}
}

func TestValueTooLargeError(t *testing.T) {
	err := &ValueTooLargeError{Value: "256", Width: 1}

	expected := "encodepacked: value too large for width: 256 does not fit in 1 byte(s)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if err.Unwrap() != ErrValueTooLarge {
		t.Error("Unwrap should return ErrValueTooLarge")
	}
}

func TestTypeError(t *testing.T) {
	err := &TypeError{Type: "uint8", Value: "x", Err: ErrUnsupportedType}

	expected := "encodepacked: cannot use string as uint8: encodepacked: unsupported type"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnsupportedType) {
		t.Error("errors.Is should find ErrUnsupportedType in chain")
	}
}

func TestEncodeErrorFromValueTooLarge(t *testing.T) {
	_, _, err := EncodePacked(Bool(true), NumberWithShift(uint256.NewInt(70000), 2))

	var tooLarge *ValueTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("Expected *ValueTooLargeError, got %T", err)
	}
	if tooLarge.Value != "70000" || tooLarge.Width != 2 {
		t.Errorf("Unexpected error fields: %+v", tooLarge)
	}
}
