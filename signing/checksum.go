package signing

import (
	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/trinary"
)

const checksumStart = trinary.HashTrytesSize - trinary.AddressChecksumTrytesSize

func checksum(address trinary.Trytes) (trinary.Trytes, error) {
	trits, err := trinary.TrytesToTrits(address)
	if err != nil {
		return "", err
	}
	h, err := crypto.HashTrits(crypto.NewKerl(), trits)
	if err != nil {
		return "", err
	}
	trytes, err := trinary.TritsToTrytes(h)
	if err != nil {
		return "", err
	}
	return trytes[checksumStart:], nil
}

// AddChecksum appends the 9-tryte checksum to an 81-tryte address.
func AddChecksum(address trinary.Trytes) (trinary.Trytes, error) {
	if !trinary.IsHash(address) {
		return "", sigerr(ERR_INVALID_ADDRESS, "want 81 trytes")
	}
	cs, err := checksum(address)
	if err != nil {
		return "", err
	}
	return address + cs, nil
}

// RemoveChecksum strips the checksum from a 90-tryte address and returns an
// 81-tryte address unchanged.
func RemoveChecksum(address trinary.Trytes) (trinary.Trytes, error) {
	switch {
	case trinary.IsTrytesOfLength(address, trinary.AddressWithChecksumTrytesSize):
		return address[:trinary.HashTrytesSize], nil
	case trinary.IsHash(address):
		return address, nil
	default:
		return "", sigerr(ERR_INVALID_ADDRESS, "want 81 or 90 trytes")
	}
}

// IsValidChecksum reports whether address equals its checksum-free form with a
// freshly computed checksum appended.
func IsValidChecksum(address trinary.Trytes) (bool, error) {
	stripped, err := RemoveChecksum(address)
	if err != nil {
		return false, err
	}
	cs, err := checksum(stripped)
	if err != nil {
		return false, err
	}
	return address == stripped+cs, nil
}
