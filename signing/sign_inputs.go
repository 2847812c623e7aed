package signing

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/trinary"
)

// Input names the key that controls one input address of a bundle.
type Input struct {
	Address  trinary.Trytes `json:"address"`
	KeyIndex uint64         `json:"key_index"`
	Security int            `json:"security"`
}

func findInput(inputs []Input, address trinary.Trytes) (Input, bool) {
	for _, in := range inputs {
		a, err := RemoveChecksum(in.Address)
		if err == nil && a == address {
			return in, true
		}
	}
	return Input{}, false
}

// SignInputs writes signature fragments into every negative-value transaction of
// a finalized bundle and the zero-value transactions that follow it for the same
// address, one fragment per security level.
func SignInputs(b bundle.Bundle, seed trinary.Trits, inputs []Input) error {
	if len(b) == 0 {
		return sigerr(ERR_INVALID_BUNDLE_HASH, "empty bundle")
	}
	normalized, err := bundle.NormalizedBundleHash(b[0].Bundle)
	if err != nil {
		return sigerr(ERR_INVALID_BUNDLE_HASH, err.Error())
	}
	if slices.Contains(normalized, trinary.MaxTryteValue) {
		return sigerr(ERR_INVALID_BUNDLE_HASH, "normalized hash contains 13, finalize the bundle first")
	}

	for i := range b {
		if b[i].Value >= 0 {
			continue
		}
		in, ok := findInput(inputs, b[i].Address)
		if !ok {
			return sigerr(ERR_INPUT_NOT_FOUND, fmt.Sprintf("transaction %d address %s", i, b[i].Address))
		}
		key, err := Key(seed, in.KeyIndex, in.Security)
		if err != nil {
			return err
		}
		for j := 0; j < in.Security; j++ {
			pos := i + j
			if pos >= len(b) || b[pos].Address != b[i].Address || (j > 0 && b[pos].Value != 0) {
				return sigerr(ERR_INSUFFICIENT_FRAGMENTS,
					fmt.Sprintf("transaction %d needs %d fragments, found %d", i, in.Security, j))
			}
			g := j % bundle.NormalizedGroups
			fragment, err := SignatureFragment(
				normalized[g*bundle.NormalizedGroupSize:(g+1)*bundle.NormalizedGroupSize],
				key[j*trinary.KeyFragmentLength:(j+1)*trinary.KeyFragmentLength],
			)
			if err != nil {
				return err
			}
			b[pos].SignatureFragments = trinary.MustTritsToTrytes(fragment)
		}
	}
	return nil
}

// SpentRegistry records addresses whose one-time key has signed a bundle.
type SpentRegistry interface {
	IsSpent(address trinary.Trytes) (bool, error)
	MarkSpent(address trinary.Trytes, keyIndex uint64, security int, bundleHash trinary.Trytes) error
}

// Signer signs bundles for one seed and refuses to reuse an address.
type Signer struct {
	seed     trinary.Trits
	registry SpentRegistry
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewSigner returns a Signer for seed. A nil registry disables reuse checks.
func NewSigner(seed trinary.Trytes, registry SpentRegistry, logger *slog.Logger) (*Signer, error) {
	trits, err := trinary.TrytesToTrits(seed)
	if err != nil || len(trits) == 0 || len(trits)%trinary.HashTrinarySize != 0 {
		return nil, sigerr(ERR_INVALID_SEED, "seed must be a multiple of 81 trytes")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Signer{seed: trits, registry: registry, logger: logger}, nil
}

// Address returns the checksummed address at index.
func (s *Signer) Address(index uint64, security int) (trinary.Trytes, error) {
	addr, err := SubseedAddress(s.seed, index, security)
	if err != nil {
		return "", err
	}
	return AddChecksum(addr)
}

// Sign signs every input of a finalized bundle and marks the input addresses as
// spent. Inputs must derive from the signer's seed.
func (s *Signer) Sign(b bundle.Bundle, inputs []Input) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := make([]Input, 0, len(inputs))
	for i := range b {
		if b[i].Value >= 0 {
			continue
		}
		in, ok := findInput(inputs, b[i].Address)
		if !ok {
			return sigerr(ERR_INPUT_NOT_FOUND, fmt.Sprintf("transaction %d address %s", i, b[i].Address))
		}
		derived, err := SubseedAddress(s.seed, in.KeyIndex, in.Security)
		if err != nil {
			return err
		}
		if derived != b[i].Address {
			return sigerr(ERR_INVALID_ADDRESS, fmt.Sprintf("key index %d does not derive %s", in.KeyIndex, b[i].Address))
		}
		if s.registry != nil {
			spent, err := s.registry.IsSpent(derived)
			if err != nil {
				return fmt.Errorf("spent lookup: %w", err)
			}
			if spent {
				return sigerr(ERR_ADDRESS_SPENT, derived)
			}
		}
		in.Address = derived
		used = append(used, in)
	}

	// signatures reach b only once every input is recorded as spent
	signed := slices.Clone(b)
	if err := SignInputs(signed, s.seed, used); err != nil {
		return err
	}
	if s.registry != nil {
		for _, in := range used {
			if err := s.registry.MarkSpent(in.Address, in.KeyIndex, in.Security, signed[0].Bundle); err != nil {
				return fmt.Errorf("mark spent: %w", err)
			}
		}
	}
	copy(b, signed)

	for _, in := range used {
		s.logger.Info("input signed",
			"address", in.Address,
			"key_index", in.KeyIndex,
			"security", in.Security,
			"bundle", b[0].Bundle,
		)
	}
	return nil
}
