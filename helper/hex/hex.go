package hex

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

type DecError struct{ msg string }

func (err DecError) Error() string { return err.msg }

// EncodeToHex generates a hex string based on the byte representation, with the '0x' prefix
func EncodeToHex(str []byte) string {
	return "0x" + hex.EncodeToString(str)
}

// DecodeHex converts a hex string to a byte array
func DecodeHex(str string) ([]byte, error) {
	str = strings.TrimPrefix(str, "0x")

	return hex.DecodeString(str)
}

// DecodeHexByte parses a two-character hexadecimal token into a byte
func DecodeHexByte(str string) (byte, error) {
	if len(str) != 2 {
		return 0, DecError{fmt.Sprintf("token %q is not two hex characters", str)}
	}

	v, err := strconv.ParseUint(str, 16, 8)
	if err != nil {
		return 0, DecError{fmt.Sprintf("token %q is not a hex byte", str)}
	}

	return byte(v), nil
}

// TokenizeHex splits a hex string, with or without the '0x' prefix,
// into two-character tokens
func TokenizeHex(str string) ([]string, error) {
	str = strings.TrimPrefix(str, "0x")

	if len(str)%2 != 0 {
		return nil, DecError{fmt.Sprintf("hex string of odd length %d", len(str))}
	}

	tokens := make([]string, 0, len(str)/2)
	for i := 0; i < len(str); i += 2 {
		tokens = append(tokens, str[i:i+2])
	}

	return tokens, nil
}

// EncodeUint64 encodes a number as a hex string with 0x prefix.
func EncodeUint64(i uint64) string {
	enc := make([]byte, 2, 10)
	copy(enc, "0x")

	return string(strconv.AppendUint(enc, i, 16))
}

// DecodeUint64 decodes a hex string with 0x prefix to uint64
func DecodeUint64(hexStr string) (uint64, error) {
	// remove 0x suffix if found in the input string
	cleaned := strings.TrimPrefix(hexStr, "0x")

	return strconv.ParseUint(cleaned, 16, 64)
}

// EncodeBig encodes bigint as a hex string with 0x prefix.
// The sign of the integer is ignored.
func EncodeBig(bigint *big.Int) string {
	if bigint.BitLen() == 0 {
		return "0x0"
	}

	return fmt.Sprintf("%#x", bigint)
}
