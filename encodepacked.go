// Package encodepacked reproduces Solidity's abi.encodePacked in Go.
//
// Packed encoding concatenates the raw bytes of each value in order, with
// no padding, alignment, or length prefixes. It is typically hashed to
// rebuild a digest a contract computes on chain, for example to verify a
// signature off chain.
//
// # Basic Usage
//
//	user := common.HexToAddress("0xd8b934580fcE35a11B58C6D73aDeE468a2833fa8")
//
//	raw, hex, err := encodepacked.EncodePacked(
//	    encodepacked.NumberWithShift(uint256.NewInt(3838), 3), // uint24
//	    encodepacked.NumberFromUint64(4001),                   // uint256
//	    encodepacked.MustString("this-is-a-sample-string"),
//	    encodepacked.Address(user),
//	    encodepacked.NumberFromUint64(1),
//	)
//
// Values can also be built from Solidity type names:
//
//	v, err := encodepacked.NewValue("uint24", 3838)
//
// # Packing Rules
//
//   - Number (uint256): 32-byte big-endian word
//   - NumberWithShift (uintN): low N/8 bytes of the big-endian word
//   - String: raw UTF-8 bytes
//   - Bytes, bytesN: raw bytes
//   - Address: raw 20 bytes
//   - Bool: one byte, 0x01 or 0x00
//
// # Oversized Numbers
//
// By default a NumberWithShift whose value needs more than its width is
// rejected with ErrValueTooLarge. Encoders created with WithTruncation(true)
// drop the high-order bytes instead.
//
// # Hashing
//
// Packed.Keccak256 returns keccak256 of the packed bytes, matching
// keccak256(abi.encodePacked(...)) in Solidity.
package encodepacked
