// Package multibase encodes and decodes self-describing base strings: a
// single prefix character names the base of the payload that follows.
package multibase

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	dErrors "opendid/pkg/domain-errors"
)

// Base names an encoding supported by the codec.
type Base string

const (
	Base58BTC Base = "base58btc"
	Base64    Base = "base64"
	Base64URL Base = "base64url"
	Base16    Base = "base16"
)

// Prefixes, one per Base.
const (
	prefixBase58BTC = 'z'
	prefixBase64    = 'm'
	prefixBase64URL = 'u'
	prefixBase16    = 'f'
)

var baseAliases = map[string]Base{
	"base58":    Base58BTC,
	"base58btc": Base58BTC,
	"base64":    Base64,
	"base64url": Base64URL,
	"base16":    Base16,
	"hex":       Base16,
}

// ParseBase resolves a base name, accepting common aliases.
func ParseBase(name string) (Base, error) {
	if b, ok := baseAliases[strings.ToLower(name)]; ok {
		return b, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported multibase encoding: "+name)
}

// Codec is stateless and safe for concurrent use.
type Codec struct{}

// New returns a Codec.
func New() *Codec {
	return &Codec{}
}

// Encode renders data in base with its prefix. base64 output keeps standard
// padding.
func (c *Codec) Encode(data []byte, base Base) (string, error) {
	switch base {
	case Base58BTC:
		return string(prefixBase58BTC) + base58.Encode(data), nil
	case Base64:
		return string(prefixBase64) + base64.StdEncoding.EncodeToString(data), nil
	case Base64URL:
		return string(prefixBase64URL) + base64.RawURLEncoding.EncodeToString(data), nil
	case Base16:
		return string(prefixBase16) + hex.EncodeToString(data), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported multibase encoding: "+string(base))
	}
}

// Decode dispatches on the prefix of s and returns the payload bytes along
// with the base it was encoded in.
//
// Errors: CodeInvalidInput for empty input, an unknown prefix, or a payload
// that does not decode in the named base.
func (c *Codec) Decode(s string) ([]byte, Base, error) {
	if len(s) < 2 {
		return nil, "", dErrors.New(dErrors.CodeInvalidInput, "multibase string too short")
	}
	payload := s[1:]

	var (
		out  []byte
		base Base
		err  error
	)
	switch s[0] {
	case prefixBase58BTC:
		base = Base58BTC
		out, err = base58.Decode(payload)
	case prefixBase64:
		base = Base64
		// padded and unpadded forms are both in circulation
		if strings.HasSuffix(payload, "=") {
			out, err = base64.StdEncoding.DecodeString(payload)
		} else {
			out, err = base64.RawStdEncoding.DecodeString(payload)
		}
	case prefixBase64URL:
		base = Base64URL
		out, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	case prefixBase16:
		base = Base16
		out, err = hex.DecodeString(strings.ToLower(payload))
	default:
		return nil, "", dErrors.New(dErrors.CodeInvalidInput, "unknown multibase prefix: "+string(s[0]))
	}
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeInvalidInput, "malformed "+string(base)+" payload")
	}
	return out, base, nil
}
