package signing

import (
	"fmt"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/trinary"
)

// ValidateSignatures recomputes the address signed by fragments over bundleHash
// and compares it with expected. Fragment i uses normalized group i mod 3.
// A mismatch is a false result; malformed input is an error.
func ValidateSignatures(expected trinary.Trytes, fragments []trinary.Trytes, bundleHash trinary.Trytes) (bool, error) {
	normalized, err := bundle.NormalizedBundleHash(bundleHash)
	if err != nil {
		return false, sigerr(ERR_INVALID_BUNDLE_HASH, err.Error())
	}
	if len(fragments) == 0 {
		return false, nil
	}
	digests := make(trinary.Trits, len(fragments)*trinary.HashTrinarySize)
	for i, f := range fragments {
		trits, err := trinary.TrytesToTrits(f)
		if err != nil {
			return false, sigerr(ERR_INVALID_FRAGMENT, fmt.Sprintf("fragment %d: %v", i, err))
		}
		g := i % bundle.NormalizedGroups
		d, err := Digest(normalized[g*bundle.NormalizedGroupSize:(g+1)*bundle.NormalizedGroupSize], trits)
		if err != nil {
			return false, err
		}
		copy(digests[i*trinary.HashTrinarySize:], d)
	}
	addr, err := Address(digests)
	if err != nil {
		return false, err
	}
	got, err := trinary.TritsToTrytes(addr)
	if err != nil {
		return false, err
	}
	return got == expected, nil
}

// ValidateBundleSignatures gathers the fragments of every transaction spending
// from address, up to the first all-'9' fragment, and validates them against the
// bundle hash of the first such transaction.
func ValidateBundleSignatures(b bundle.Bundle, address trinary.Trytes) (bool, error) {
	var (
		bundleHash trinary.Trytes
		fragments  []trinary.Trytes
		found      bool
	)
	for i := range b {
		tx := &b[i]
		if tx.Address != address {
			continue
		}
		if !found {
			bundleHash = tx.Bundle
			found = true
		}
		if trinary.IsNineTrytes(tx.SignatureFragments) {
			break
		}
		fragments = append(fragments, tx.SignatureFragments)
	}
	if !found {
		return false, nil
	}
	return ValidateSignatures(address, fragments, bundleHash)
}
