package encodepacked

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// NewValue creates a Value from a Solidity type string and a Go value.
// Supported types and inputs:
//   - uint8 ... uint256: *uint256.Int, *big.Int, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8
//     (negative values are rejected)
//   - address: common.Address, 20-byte []byte, hex string
//   - bool: bool
//   - string: string
//   - bytes: []byte, hexutil.Bytes
//   - bytes1 ... bytes32: []byte or [N]byte of exactly N bytes, common.Hash for bytes32
//
// Signed integers, arrays and tuples are not supported.
func NewValue(solidityType string, value any) (Value, error) {
	t, err := abi.NewType(solidityType, "", nil)
	if err != nil {
		return nil, &TypeError{Type: solidityType, Value: value, Err: err}
	}

	v, err := newValue(t, value)
	if err != nil {
		return nil, &TypeError{Type: t.String(), Value: value, Err: err}
	}
	return v, nil
}

// MustValue is like NewValue but panics on error.
// Use only with compile-time constant values.
func MustValue(solidityType string, value any) Value {
	v, err := NewValue(solidityType, value)
	if err != nil {
		panic(err)
	}
	return v
}

func newValue(t abi.Type, value any) (Value, error) {
	switch t.T {
	case abi.UintTy:
		n, err := toUint256(value)
		if err != nil {
			return nil, err
		}
		return UintN(t.Size, n)
	case abi.AddressTy:
		return toAddress(value)
	case abi.BoolTy:
		b, ok := value.(bool)
		if !ok {
			return nil, ErrUnsupportedType
		}
		return Bool(b), nil
	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, ErrUnsupportedType
		}
		return NewString(s)
	case abi.BytesTy:
		b, ok := toByteSlice(value)
		if !ok {
			return nil, ErrUnsupportedType
		}
		return Bytes(b), nil
	case abi.FixedBytesTy:
		b, ok := toByteSlice(value)
		if !ok {
			return nil, ErrUnsupportedType
		}
		if len(b) != t.Size {
			return nil, ErrInvalidFixedBytesLength
		}
		return Bytes(b), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// toUint256 handles common Go integer types.
func toUint256(value any) (*uint256.Int, error) {
	switch v := value.(type) {
	case *uint256.Int:
		if v == nil {
			return new(uint256.Int), nil
		}
		return v.Clone(), nil
	case *big.Int:
		return bigToUint256(v)
	case int:
		return signedToUint256(int64(v))
	case int64:
		return signedToUint256(v)
	case int32:
		return signedToUint256(int64(v))
	case int16:
		return signedToUint256(int64(v))
	case int8:
		return signedToUint256(int64(v))
	case uint:
		return uint256.NewInt(uint64(v)), nil
	case uint64:
		return uint256.NewInt(v), nil
	case uint32:
		return uint256.NewInt(uint64(v)), nil
	case uint16:
		return uint256.NewInt(uint64(v)), nil
	case uint8:
		return uint256.NewInt(uint64(v)), nil
	default:
		return nil, ErrUnsupportedType
	}
}

func signedToUint256(v int64) (*uint256.Int, error) {
	if v < 0 {
		return nil, ErrNegativeNumber
	}
	return uint256.NewInt(uint64(v)), nil
}

func toAddress(value any) (*AddressValue, error) {
	switch v := value.(type) {
	case common.Address:
		return Address(v), nil
	case *common.Address:
		if v == nil {
			return nil, ErrNilValue
		}
		return Address(*v), nil
	case []byte:
		return AddressFromBytes(v)
	case string:
		return AddressFromHex(v)
	default:
		return nil, ErrUnsupportedType
	}
}

// toByteSlice accepts byte slices and arrays of any uint8-kinded element type.
func toByteSlice(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case hexutil.Bytes:
		return v, true
	case common.Hash:
		return v.Bytes(), true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	b := make([]byte, rv.Len())
	for i := range b {
		b[i] = byte(rv.Index(i).Uint())
	}
	return b, true
}
