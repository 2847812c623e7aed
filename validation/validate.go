// Package validation checks bundle integrity: value conservation, index order,
// the bundle hash over transaction essences and, optionally, input signatures.
package validation

import (
	"math"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/signing"
	"ternary.dev/ledger/trinary"
)

type Options struct {
	// VerifySignatures also validates the signature of every input against the
	// bundle hash. Off by default: integrity checks alone do not prove the
	// inputs were authorised.
	VerifySignatures bool
	// Sponge creates the bundle hash sponge. Nil means Kerl.
	Sponge crypto.SpongeFunc
}

// IsBundle reports whether b is an internally consistent bundle. It does not
// verify input signatures; see Validate.
func IsBundle(b bundle.Bundle) (bool, error) {
	return Validate(b, Options{})
}

func addValue(sum, v int64) (int64, bool) {
	if (v > 0 && sum > math.MaxInt64-v) || (v < 0 && sum < math.MinInt64-v) {
		return 0, false
	}
	return sum + v, true
}

// inputSignatures groups, for every input, its own fragment and the fragments of
// later zero-value transactions of the same address.
func inputSignatures(b bundle.Bundle) []bundle.Signature {
	var sigs []bundle.Signature
	for i := range b {
		if b[i].Value >= 0 {
			continue
		}
		sig := bundle.Signature{Address: b[i].Address}
		sig.AddFragment(trinary.Pad(b[i].SignatureFragments, bundle.SignatureFragmentsTrytesSize))
		for j := i + 1; j < len(b); j++ {
			if b[j].Address == b[i].Address && b[j].Value == 0 {
				sig.AddFragment(trinary.Pad(b[j].SignatureFragments, bundle.SignatureFragmentsTrytesSize))
			}
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// Validate runs the bundle integrity checks and, if opts.VerifySignatures is
// set, signature verification. Any failed check yields false; errors are
// reserved for conversion and hashing failures.
func Validate(b bundle.Bundle, opts Options) (bool, error) {
	if !bundle.IsSliceOfTransactions(b) {
		return false, nil
	}
	newSponge := opts.Sponge
	if newSponge == nil {
		newSponge = crypto.NewKerlSponge
	}
	s := newSponge()
	s.Reset()

	var sum int64
	for i := range b {
		tx := &b[i]
		var ok bool
		if sum, ok = addValue(sum, tx.Value); !ok {
			return false, nil
		}
		if tx.CurrentIndex != uint64(i) {
			return false, nil
		}
		essence, err := tx.Essence()
		if err != nil {
			return false, err
		}
		if err := s.Absorb(essence); err != nil {
			return false, err
		}
	}
	if sum != 0 {
		return false, nil
	}

	hash := make(trinary.Trits, trinary.HashTrinarySize)
	if err := s.Squeeze(hash); err != nil {
		return false, err
	}
	got, err := trinary.TritsToTrytes(hash)
	if err != nil {
		return false, err
	}
	if got != b[0].Bundle {
		return false, nil
	}
	last := &b[len(b)-1]
	if last.CurrentIndex != last.LastIndex {
		return false, nil
	}

	if !opts.VerifySignatures {
		return true, nil
	}
	for _, sig := range inputSignatures(b) {
		ok, err := signing.ValidateSignatures(sig.Address, sig.SignatureFragments, b[0].Bundle)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
