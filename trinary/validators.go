package trinary

// IsTrytes reports whether s is non-empty and made only of tryte characters.
func IsTrytes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if tryteIndex(s[i]) < 0 {
			return false
		}
	}
	return true
}

// IsTrytesOfLength reports whether s is exactly n trytes.
func IsTrytesOfLength(s string, n int) bool {
	return len(s) == n && IsTrytes(s)
}

// IsTrytesOfMaxLength reports whether s is a tryte string of at most n characters.
func IsTrytesOfMaxLength(s string, n int) bool {
	return len(s) <= n && IsTrytes(s)
}

// IsNineTrytes reports whether s is a non-empty run of '9' trytes, the marker of
// an unsigned or empty fragment.
func IsNineTrytes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '9' {
			return false
		}
	}
	return true
}

// IsHash reports whether s is an 81-tryte hash.
func IsHash(s string) bool {
	return IsTrytesOfLength(s, HashTrytesSize)
}

// IsAddress reports whether s is an address with or without its 9-tryte checksum.
func IsAddress(s string) bool {
	return IsTrytesOfLength(s, HashTrytesSize) || IsTrytesOfLength(s, AddressWithChecksumTrytesSize)
}
