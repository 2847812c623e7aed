package bundle

import (
	"fmt"
	"slices"

	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/trinary"
)

const (
	// NormalizedGroups is the number of 27-value groups in a normalized hash, one
	// per security level.
	NormalizedGroups    = trinary.MaxSecurityLevel
	NormalizedGroupSize = trinary.KeySegmentsPerFragment
)

// AddEntry appends signatureMessageLength transactions for address. The first
// carries value; the rest are zero-value continuations.
func (b *Bundle) AddEntry(signatureMessageLength int, address trinary.Trytes, value int64, tag trinary.Trytes, timestamp uint64) {
	for i := 0; i < signatureMessageLength; i++ {
		v := int64(0)
		if i == 0 {
			v = value
		}
		*b = append(*b, Transaction{
			Address:     address,
			Value:       v,
			ObsoleteTag: tag,
			Tag:         tag,
			Timestamp:   timestamp,
		})
	}
}

// AddTrytes sets the signature message fragments in order. Transactions past the
// end of fragments get an all-'9' fragment.
func (b Bundle) AddTrytes(fragments []trinary.Trytes) {
	for i := range b {
		var f trinary.Trytes
		if i < len(fragments) {
			f = fragments[i]
		}
		b[i].SignatureFragments = trinary.Pad(f, SignatureFragmentsTrytesSize)
	}
}

// Hash absorbs every essence into s and returns the squeezed bundle hash.
func (b Bundle) Hash(s crypto.Sponge) (trinary.Trytes, error) {
	if len(b) == 0 {
		return "", txerr(BUNDLE_ERR_EMPTY, "")
	}
	if s == nil {
		return "", crypto.ErrNilSponge
	}
	s.Reset()
	for i := range b {
		essence, err := b[i].Essence()
		if err != nil {
			return "", fmt.Errorf("transaction %d: %w", i, err)
		}
		if err := s.Absorb(essence); err != nil {
			return "", fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	hash := make(trinary.Trits, trinary.HashTrinarySize)
	if err := s.Squeeze(hash); err != nil {
		return "", err
	}
	return trinary.TritsToTrytes(hash)
}

// Finalize assigns indices, computes the bundle hash and writes it into every
// transaction. The first obsolete tag is incremented until the normalized hash
// has no 13, since signing against a 13 would publish a raw key segment.
func (b Bundle) Finalize(newSponge crypto.SpongeFunc) error {
	if len(b) == 0 {
		return txerr(BUNDLE_ERR_EMPTY, "")
	}
	if newSponge == nil {
		newSponge = crypto.NewKerlSponge
	}
	last := uint64(len(b) - 1)
	for i := range b {
		b[i].CurrentIndex = uint64(i)
		b[i].LastIndex = last
		if b[i].ObsoleteTag == "" {
			b[i].ObsoleteTag = b[i].Tag
		}
	}

	s := newSponge()
	var hash trinary.Trytes
	for {
		h, err := b.Hash(s)
		if err != nil {
			return err
		}
		normalized, err := NormalizedBundleHash(h)
		if err != nil {
			return err
		}
		if !slices.Contains(normalized, trinary.MaxTryteValue) {
			hash = h
			break
		}
		tag, err := trinary.TrytesToTrits(trinary.Pad(b[0].ObsoleteTag, ObsoleteTagTrytesSize))
		if err != nil {
			return txerr(TX_ERR_FIELD_INVALID, "obsolete_tag: not trytes")
		}
		trinary.Increment(tag)
		b[0].ObsoleteTag = trinary.MustTritsToTrytes(tag)
	}

	for i := range b {
		b[i].Bundle = hash
		if b[i].SignatureFragments == "" {
			b[i].SignatureFragments = trinary.Pad("", SignatureFragmentsTrytesSize)
		}
	}
	return nil
}

// NormalizedBundleHash maps an 81-tryte hash to 81 values in [-13, 13] such that
// each group of 27 sums to zero.
func NormalizedBundleHash(hash trinary.Trytes) ([]int8, error) {
	if !trinary.IsHash(hash) {
		return nil, txerr(BUNDLE_ERR_HASH_INVALID, fmt.Sprintf("want %d trytes", trinary.HashTrytesSize))
	}
	out := make([]int8, trinary.HashTrytesSize)
	for g := 0; g < NormalizedGroups; g++ {
		group := out[g*NormalizedGroupSize : (g+1)*NormalizedGroupSize]
		sum := 0
		for i := range group {
			v, _ := trinary.TryteValue(hash[g*NormalizedGroupSize+i])
			group[i] = v
			sum += int(v)
		}
		for sum > 0 {
			for i := range group {
				if group[i] > trinary.MinTryteValue {
					group[i]--
					break
				}
			}
			sum--
		}
		for sum < 0 {
			for i := range group {
				if group[i] < trinary.MaxTryteValue {
					group[i]++
					break
				}
			}
			sum++
		}
	}
	return out, nil
}
