package domain

import (
	"strings"
	"testing"
)

// FuzzParseAddress checks that parsing never panics and that every accepted
// address is canonical and round-trips through its checksum form.
func FuzzParseAddress(f *testing.F) {
	f.Add("")
	f.Add("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	f.Add("0x0000000000000000000000000000000000000000")
	f.Add("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed\x00")
	f.Add("'; DROP TABLE role_assignments;--")

	f.Fuzz(func(t *testing.T, input string) {
		addr, err := ParseAddress(input)
		if err != nil {
			return
		}
		if addr.IsZero() {
			t.Error("zero address accepted")
		}
		if string(addr) != strings.ToLower(string(addr)) {
			t.Error("parsed address is not canonical")
		}
		again, err := ParseAddress(addr.Checksum())
		if err != nil {
			t.Errorf("checksum form rejected: %v", err)
		}
		if again != addr {
			t.Error("checksum round-trip changed the address")
		}
	})
}
