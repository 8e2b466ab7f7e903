package encodepacked

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Packed is the result of packed encoding.
type Packed []byte

// Bytes returns the packed bytes.
func (p Packed) Bytes() []byte {
	return []byte(p)
}

// Len returns the number of packed bytes.
func (p Packed) Len() int {
	return len(p)
}

// Hex returns the packed bytes as a 0x-prefixed lowercase hex string.
// Empty output renders as "0x".
func (p Packed) Hex() string {
	return hexutil.Encode(p)
}

// String implements fmt.Stringer.
func (p Packed) String() string {
	return p.Hex()
}

// Keccak256 returns keccak256(packed), the digest Solidity computes for
// keccak256(abi.encodePacked(...)).
func (p Packed) Keccak256() common.Hash {
	return crypto.Keccak256Hash(p)
}

// Encoder packs value sequences the way Solidity's abi.encodePacked does.
// An Encoder holds only configuration and is safe for concurrent use.
type Encoder struct {
	config *encoderConfig
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts ...EncoderOption) *Encoder {
	config := defaultEncoderConfig()
	for _, opt := range opts {
		opt(config)
	}
	return &Encoder{config: config}
}

var defaultEncoder = NewEncoder()

// Encode concatenates the byte runs of values in order, with no padding,
// alignment or length prefixes. On error no output is returned.
func (e *Encoder) Encode(values ...Value) (Packed, error) {
	size, err := e.size(values)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	for _, v := range values {
		out = v.appendPacked(out)
	}
	return Packed(out), nil
}

// size validates every value and returns the total output length.
func (e *Encoder) size(values []Value) (int, error) {
	total := 0
	for i, v := range values {
		if isNilValue(v) {
			return 0, &EncodingError{Index: i, Kind: kindOf(v), Err: ErrNilValue}
		}
		if err := v.check(e.config); err != nil {
			return 0, &EncodingError{Index: i, Kind: v.Kind(), Err: err}
		}
		total += v.Size()
		if e.config.maxSize > 0 && total > e.config.maxSize {
			return 0, &EncodingError{Index: i, Kind: v.Kind(), Err: ErrOutputTooLarge}
		}
	}
	return total, nil
}

// EncodePacked packs values with the default encoder and returns the raw
// bytes together with their 0x-prefixed lowercase hex rendering.
func EncodePacked(values ...Value) ([]byte, string, error) {
	packed, err := defaultEncoder.Encode(values...)
	if err != nil {
		return nil, "", err
	}
	return packed.Bytes(), packed.Hex(), nil
}

// MustEncodePacked is like EncodePacked but panics on error.
func MustEncodePacked(values ...Value) ([]byte, string) {
	b, h, err := EncodePacked(values...)
	if err != nil {
		panic(err)
	}
	return b, h
}

// isNilValue reports whether v is a nil interface or a typed nil pointer.
func isNilValue(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *NumberValue:
		return x == nil
	case *ShiftedNumberValue:
		return x == nil
	case *StringValue:
		return x == nil
	case *BytesValue:
		return x == nil
	case *AddressValue:
		return x == nil
	case *BoolValue:
		return x == nil
	default:
		return false
	}
}

// kindOf returns the kind of a possibly nil value.
func kindOf(v Value) Kind {
	switch v.(type) {
	case *NumberValue:
		return KindNumber
	case *ShiftedNumberValue:
		return KindNumberWithShift
	case *StringValue:
		return KindString
	case *BytesValue:
		return KindBytes
	case *AddressValue:
		return KindAddress
	case *BoolValue:
		return KindBool
	default:
		return kindUnknown
	}
}
