package encodepacked

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Kind identifies the packing rule a Value follows.
type Kind uint8

const (
	// KindNumber is a full-width uint256, packed as 32 bytes.
	KindNumber Kind = iota

	// KindNumberWithShift is a uintN packed as its low N/8 bytes.
	KindNumberWithShift

	// KindString is UTF-8 text packed as its raw bytes.
	KindString

	// KindBytes is a byte sequence packed verbatim.
	KindBytes

	// KindAddress is a 20-byte address.
	KindAddress

	// KindBool is a single 0x00 or 0x01 byte.
	KindBool

	kindUnknown Kind = 0xFF
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindNumberWithShift:
		return "number-with-shift"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a typed value that can be packed.
// This is a sealed interface - only types within this package can implement it.
type Value interface {
	// isValue is unexported to seal the interface.
	isValue()

	// Kind returns the variant of this value.
	Kind() Kind

	// Size returns the length of the byte run this value contributes.
	Size() int

	// check validates the value against the encoder configuration.
	check(cfg *encoderConfig) error

	// appendPacked appends the value's byte run to dst.
	appendPacked(dst []byte) []byte
}

// NumberValue is a uint256 packed as a full 32-byte big-endian word.
type NumberValue struct {
	v uint256.Int
}

func (v *NumberValue) isValue() {}

// Kind returns KindNumber.
func (v *NumberValue) Kind() Kind { return KindNumber }

// Size is always WordSize.
func (v *NumberValue) Size() int { return WordSize }

// Int returns a copy of the number.
func (v *NumberValue) Int() *uint256.Int {
	return v.v.Clone()
}

func (v *NumberValue) check(*encoderConfig) error { return nil }

func (v *NumberValue) appendPacked(dst []byte) []byte {
	word := v.v.Bytes32()
	return append(dst, word[:]...)
}

// Number creates a full-width uint256 value. A nil n is zero.
func Number(n *uint256.Int) *NumberValue {
	v := &NumberValue{}
	if n != nil {
		v.v.Set(n)
	}
	return v
}

// NumberFromUint64 creates a full-width uint256 value from a uint64.
func NumberFromUint64(n uint64) *NumberValue {
	v := &NumberValue{}
	v.v.SetUint64(n)
	return v
}

// NumberFromBig creates a full-width uint256 value from a *big.Int.
// It fails for negative numbers and for numbers of 2^256 or more.
func NumberFromBig(n *big.Int) (*NumberValue, error) {
	u, err := bigToUint256(n)
	if err != nil {
		return nil, err
	}
	return &NumberValue{v: *u}, nil
}

// ShiftedNumberValue is a uintN packed as the low Width bytes of its
// 32-byte big-endian representation.
type ShiftedNumberValue struct {
	v     uint256.Int
	width int
}

func (v *ShiftedNumberValue) isValue() {}

// Kind returns KindNumberWithShift.
func (v *ShiftedNumberValue) Kind() Kind { return KindNumberWithShift }

// Size returns the width in bytes.
func (v *ShiftedNumberValue) Size() int { return v.width }

// Width returns the byte width (N/8 for uintN).
func (v *ShiftedNumberValue) Width() int { return v.width }

// Int returns a copy of the number.
func (v *ShiftedNumberValue) Int() *uint256.Int {
	return v.v.Clone()
}

func (v *ShiftedNumberValue) check(cfg *encoderConfig) error {
	if v.width < 1 || v.width > WordSize {
		return &WidthError{Width: v.width}
	}
	if !cfg.truncate && !fitsWidth(&v.v, v.width) {
		return &ValueTooLargeError{Value: v.v.Dec(), Width: v.width}
	}
	return nil
}

func (v *ShiftedNumberValue) appendPacked(dst []byte) []byte {
	return append(dst, lowBytes(&v.v, v.width)...)
}

// NumberWithShift creates a uintN value packed into width bytes
// (width = N/8). The width is validated when the value is encoded.
// A nil n is zero.
func NumberWithShift(n *uint256.Int, width int) *ShiftedNumberValue {
	v := &ShiftedNumberValue{width: width}
	if n != nil {
		v.v.Set(n)
	}
	return v
}

// UintN creates a uintN value from its bit size, e.g. UintN(24, n) for uint24.
// Bits must be a multiple of 8 in [8, 256]; UintN(256, n) packs a full word.
func UintN(bits int, n *uint256.Int) (Value, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrWidthOutOfRange, bits)
	}
	if bits == 256 {
		return Number(n), nil
	}
	return NumberWithShift(n, bits/8), nil
}

// StringValue is UTF-8 text packed as raw bytes with no length prefix.
type StringValue struct {
	s string
}

func (v *StringValue) isValue() {}

// Kind returns KindString.
func (v *StringValue) Kind() Kind { return KindString }

// Size returns the length of the string in bytes.
func (v *StringValue) Size() int { return len(v.s) }

// String returns the text.
func (v *StringValue) String() string { return v.s }

func (v *StringValue) check(*encoderConfig) error { return nil }

func (v *StringValue) appendPacked(dst []byte) []byte {
	return append(dst, v.s...)
}

// NewString creates a string value. Malformed UTF-8 is rejected; use Bytes
// for arbitrary byte sequences.
func NewString(s string) (*StringValue, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return &StringValue{s: s}, nil
}

// MustString is like NewString but panics on error.
// Use only with compile-time constant values.
func MustString(s string) *StringValue {
	v, err := NewString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// BytesValue is a byte sequence packed verbatim with no length prefix.
type BytesValue struct {
	b []byte
}

func (v *BytesValue) isValue() {}

// Kind returns KindBytes.
func (v *BytesValue) Kind() Kind { return KindBytes }

// Size returns the payload length.
func (v *BytesValue) Size() int { return len(v.b) }

// Bytes returns a copy of the payload.
func (v *BytesValue) Bytes() []byte {
	return common.CopyBytes(v.b)
}

func (v *BytesValue) check(*encoderConfig) error { return nil }

func (v *BytesValue) appendPacked(dst []byte) []byte {
	return append(dst, v.b...)
}

// Bytes creates a bytes value. The input is copied.
func Bytes(b []byte) *BytesValue {
	return &BytesValue{b: common.CopyBytes(b)}
}

// AddressValue is a 20-byte address packed unpadded.
type AddressValue struct {
	a common.Address
}

func (v *AddressValue) isValue() {}

// Kind returns KindAddress.
func (v *AddressValue) Kind() Kind { return KindAddress }

// Size is always common.AddressLength.
func (v *AddressValue) Size() int { return common.AddressLength }

// Address returns the address.
func (v *AddressValue) Address() common.Address { return v.a }

func (v *AddressValue) check(*encoderConfig) error { return nil }

func (v *AddressValue) appendPacked(dst []byte) []byte {
	return append(dst, v.a[:]...)
}

// Address creates an address value.
func Address(a common.Address) *AddressValue {
	return &AddressValue{a: a}
}

// AddressFromBytes creates an address value from exactly 20 bytes.
func AddressFromBytes(b []byte) (*AddressValue, error) {
	if len(b) != common.AddressLength {
		return nil, ErrInvalidAddressLength
	}
	var a common.Address
	copy(a[:], b)
	return &AddressValue{a: a}, nil
}

// AddressFromHex creates an address value from a hex string, with or
// without 0x prefix. Checksum casing is not enforced.
func AddressFromHex(s string) (*AddressValue, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) != 2*common.AddressLength {
		return nil, fmt.Errorf("%w: got %d hex digits", ErrInvalidAddressLength, len(digits))
	}
	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddressHex, s)
	}
	return &AddressValue{a: common.HexToAddress(s)}, nil
}

// BoolValue is packed as a single byte.
type BoolValue struct {
	b bool
}

func (v *BoolValue) isValue() {}

// Kind returns KindBool.
func (v *BoolValue) Kind() Kind { return KindBool }

// Size is always 1.
func (v *BoolValue) Size() int { return 1 }

// Bool returns the boolean.
func (v *BoolValue) Bool() bool { return v.b }

func (v *BoolValue) check(*encoderConfig) error { return nil }

func (v *BoolValue) appendPacked(dst []byte) []byte {
	if v.b {
		return append(dst, 0x01)
	}
	return append(dst, 0x00)
}

// Bool creates a bool value.
func Bool(b bool) *BoolValue {
	return &BoolValue{b: b}
}

// bigToUint256 converts a non-negative *big.Int below 2^256. A nil n is zero.
func bigToUint256(n *big.Int) (*uint256.Int, error) {
	if n == nil {
		return new(uint256.Int), nil
	}
	if n.Sign() < 0 {
		return nil, ErrNegativeNumber
	}
	u, overflow := uint256.FromBig(n)
	if overflow {
		return nil, ErrNumberOverflow
	}
	return u, nil
}
