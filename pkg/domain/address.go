package domain

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	dErrors "opendid/pkg/domain-errors"
)

// Address identifies a caller or role holder: 0x followed by 40 hex digits.
// Invariant: a parsed Address is lower-case and never the zero address.
//
// Usage: construct via ParseAddress at trust boundaries; direct casting
// bypasses checksum and zero checks.
type Address string

const addressHexLen = 40

// ZeroAddress is the all-zero identity. It can never hold a role.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// ParseAddress validates s and returns its canonical form.
//
// Errors: CodeInvalidInput for empty, malformed, zero or wrongly checksummed
// input. Mixed-case input must carry a valid EIP-55 checksum; all-lower and
// all-upper input is accepted as is.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "Target address cannot be zero")
	}
	body, ok := strings.CutPrefix(s, "0x")
	if !ok {
		body, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || len(body) != addressHexLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must be 0x followed by 40 hex characters")
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address contains non-hex characters")
	}

	lower := strings.ToLower(body)
	if isMixedCase(body) && checksumHex(lower) != body {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address checksum mismatch")
	}

	addr := Address("0x" + lower)
	if addr == ZeroAddress {
		return "", dErrors.New(dErrors.CodeInvalidInput, "Target address cannot be zero")
	}
	return addr, nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || strings.EqualFold(string(a), string(ZeroAddress))
}

// Checksum returns the EIP-55 mixed-case rendering of a.
func (a Address) Checksum() string {
	body := strings.TrimPrefix(strings.ToLower(string(a)), "0x")
	return "0x" + checksumHex(body)
}

func checksumHex(lower string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func isMixedCase(s string) bool {
	return s != strings.ToLower(s) && s != strings.ToUpper(s)
}
