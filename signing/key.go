// Package signing implements the Winternitz one-time signature scheme over Kerl:
// key derivation, addresses, signature fragments, verification, address checksums
// and bundle HMAC tags.
package signing

import (
	"fmt"
	"math"
	"slices"

	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/trinary"
)

// digestRounds is the number of hash rounds separating a key segment from its
// public digest segment.
const digestRounds = 2 * trinary.MaxTryteValue

// Key derives the private key for seed at index. The key is security*6561 trits.
func Key(seed trinary.Trits, index uint64, security int) (trinary.Trits, error) {
	if security < 1 {
		return nil, sigerr(ERR_INVALID_SECURITY_LEVEL, fmt.Sprintf("security %d", security))
	}
	if len(seed) == 0 || len(seed)%trinary.HashTrinarySize != 0 {
		return nil, sigerr(ERR_INVALID_SEED, fmt.Sprintf("seed of %d trits", len(seed)))
	}
	if index > math.MaxInt64 {
		return nil, sigerr(ERR_INVALID_KEY_INDEX, fmt.Sprintf("index %d", index))
	}
	if err := trinary.ValidTrits(seed); err != nil {
		return nil, sigerr(ERR_INVALID_SEED, err.Error())
	}

	subseed := slices.Clone(seed)
	addIndex(subseed, index)

	k := crypto.NewKerl()
	if err := k.Absorb(subseed); err != nil {
		return nil, err
	}
	if err := k.Squeeze(subseed); err != nil {
		return nil, err
	}
	k.Reset()
	if err := k.Absorb(subseed); err != nil {
		return nil, err
	}
	key := make(trinary.Trits, security*trinary.KeyFragmentLength)
	if err := k.Squeeze(key); err != nil {
		return nil, err
	}
	return key, nil
}

// addIndex adds index to trits with carry, wrapping on overflow. It equals
// index successive trinary.Increment calls.
func addIndex(trits trinary.Trits, index uint64) {
	if index == 0 {
		return
	}
	sum := trinary.AddTrits(trits, trinary.IntToTrits(int64(index), 0))
	copy(trits, sum)
}

func hashRounds(s crypto.Sponge, segment trinary.Trits, rounds int) error {
	for r := 0; r < rounds; r++ {
		s.Reset()
		if err := s.Absorb(segment); err != nil {
			return err
		}
		if err := s.Squeeze(segment); err != nil {
			return err
		}
	}
	return nil
}

// Digests computes one 243-trit digest per 6561-trit fragment of key. Trailing
// trits short of a full fragment are ignored.
func Digests(key trinary.Trits) (trinary.Trits, error) {
	security := len(key) / trinary.KeyFragmentLength
	if security == 0 {
		return nil, sigerr(ERR_INVALID_KEY_LENGTH, fmt.Sprintf("key of %d trits", len(key)))
	}
	out := make(trinary.Trits, security*trinary.HashTrinarySize)
	fragment := make(trinary.Trits, trinary.KeyFragmentLength)
	k := crypto.NewKerl()
	for i := 0; i < security; i++ {
		copy(fragment, key[i*trinary.KeyFragmentLength:(i+1)*trinary.KeyFragmentLength])
		for j := 0; j < trinary.KeySegmentsPerFragment; j++ {
			segment := fragment[j*trinary.HashTrinarySize : (j+1)*trinary.HashTrinarySize]
			if err := hashRounds(k, segment, digestRounds); err != nil {
				return nil, err
			}
		}
		k.Reset()
		if err := k.Absorb(fragment); err != nil {
			return nil, err
		}
		if err := k.Squeeze(out[i*trinary.HashTrinarySize : (i+1)*trinary.HashTrinarySize]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Address hashes the concatenated digests into a 243-trit address.
func Address(digests trinary.Trits) (trinary.Trits, error) {
	if len(digests) == 0 || len(digests)%trinary.HashTrinarySize != 0 {
		return nil, sigerr(ERR_INVALID_KEY_LENGTH, fmt.Sprintf("digests of %d trits", len(digests)))
	}
	return crypto.HashTrits(crypto.NewKerl(), digests)
}

// SubseedAddress derives the 81-tryte address of seed at index.
func SubseedAddress(seed trinary.Trits, index uint64, security int) (trinary.Trytes, error) {
	key, err := Key(seed, index, security)
	if err != nil {
		return "", err
	}
	digests, err := Digests(key)
	if err != nil {
		return "", err
	}
	addr, err := Address(digests)
	if err != nil {
		return "", err
	}
	return trinary.TritsToTrytes(addr)
}
