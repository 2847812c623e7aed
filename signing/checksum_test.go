package signing

import (
	"strings"
	"testing"
)

func TestChecksum_PublishedVector(t *testing.T) {
	got, err := AddChecksum(checksumAddress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != checksumAddressWithCS {
		t.Fatalf("got=%s", got)
	}
	stripped, err := RemoveChecksum(checksumAddressWithCS)
	if err != nil || stripped != checksumAddress {
		t.Fatalf("remove: %s %v", stripped, err)
	}
	same, err := RemoveChecksum(checksumAddress)
	if err != nil || same != checksumAddress {
		t.Fatalf("remove on bare address: %s %v", same, err)
	}
	ok, err := IsValidChecksum(checksumAddressWithCS)
	if err != nil || !ok {
		t.Fatalf("valid checksum rejected: %v", err)
	}
}

func TestChecksum_RoundTrip(t *testing.T) {
	for _, addr := range []string{
		strings.Repeat("9", 81),
		strings.Repeat("Z", 81),
		strings.Repeat("ABC", 27),
		checksumAddress,
	} {
		with, err := AddChecksum(addr)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(with) != 90 {
			t.Fatalf("len=%d", len(with))
		}
		back, err := RemoveChecksum(with)
		if err != nil || back != addr {
			t.Fatalf("round trip mismatch: %s %v", back, err)
		}
		ok, err := IsValidChecksum(with)
		if err != nil || !ok {
			t.Fatalf("checksum of %s rejected", addr[:9])
		}
		ok, err = IsValidChecksum(mutateTryte(with, 85))
		if err != nil || ok {
			t.Fatalf("mutated checksum accepted")
		}
	}
}

func TestChecksum_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "ABC", strings.Repeat("A", 82), strings.Repeat("a", 81)} {
		if _, err := RemoveChecksum(addr); mustSigErrCode(t, err) != ERR_INVALID_ADDRESS {
			t.Fatalf("%q: expected ERR_INVALID_ADDRESS", addr)
		}
		if _, err := IsValidChecksum(addr); mustSigErrCode(t, err) != ERR_INVALID_ADDRESS {
			t.Fatalf("%q: expected ERR_INVALID_ADDRESS", addr)
		}
	}
	if _, err := AddChecksum(checksumAddressWithCS); mustSigErrCode(t, err) != ERR_INVALID_ADDRESS {
		t.Fatalf("expected ERR_INVALID_ADDRESS for address that already has a checksum")
	}
}
