// Package crypto holds the ternary sponge primitives used by signing and bundle
// validation, plus the AES key wrap that seals stored seeds.
package crypto

import (
	"errors"

	"ternary.dev/ledger/trinary"
)

var (
	ErrInvalidLength = errors.New("sponge: length must be a multiple of 243 trits")
	ErrNilSponge     = errors.New("sponge: nil")
)

// Sponge is the narrow hash interface used by signing and validation code.
// A Sponge is single-owner: callers running in parallel must each create their own.
type Sponge interface {
	Reset()
	Absorb(in trinary.Trits) error
	// Squeeze fills out with len(out) trits from the running state.
	Squeeze(out trinary.Trits) error
}

// SpongeFunc creates a fresh Sponge.
type SpongeFunc func() Sponge

// NewKerlSponge is the default SpongeFunc for signing, checksums and bundle hashes.
func NewKerlSponge() Sponge { return NewKerl() }

// NewCurlP27Sponge is the SpongeFunc used for bundle HMAC tags.
func NewCurlP27Sponge() Sponge { return NewCurl(CurlP27) }

// HashTrits resets s, absorbs every input in order and squeezes one hash.
func HashTrits(s Sponge, in ...trinary.Trits) (trinary.Trits, error) {
	if s == nil {
		return nil, ErrNilSponge
	}
	s.Reset()
	for _, t := range in {
		if err := s.Absorb(t); err != nil {
			return nil, err
		}
	}
	out := make(trinary.Trits, trinary.HashTrinarySize)
	if err := s.Squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}
