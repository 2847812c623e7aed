package crypto

import (
	"fmt"
	"slices"

	"github.com/iotaledger/iota.go/kerl"

	"ternary.dev/ledger/trinary"
)

// Kerl is the Keccak-384 based ternary sponge.
type Kerl struct {
	k *kerl.Kerl
}

func NewKerl() *Kerl {
	return &Kerl{k: kerl.NewKerl()}
}

func (k *Kerl) Reset() {
	k.k.Reset()
}

// Absorb consumes in, 243 trits at a time. The last trit of every chunk is ignored.
func (k *Kerl) Absorb(in trinary.Trits) error {
	if len(in)%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("kerl absorb %d trits: %w", len(in), ErrInvalidLength)
	}
	if err := trinary.ValidTrits(in); err != nil {
		return fmt.Errorf("kerl absorb: %w", err)
	}
	if len(in) == 0 {
		return nil
	}
	chunks := slices.Clone(in)
	for off := trinary.HashTrinarySize - 1; off < len(chunks); off += trinary.HashTrinarySize {
		chunks[off] = 0
	}
	if err := k.k.Absorb(chunks); err != nil {
		return fmt.Errorf("kerl absorb: %w", err)
	}
	return nil
}

// Squeeze writes len(out) trits. Each 243-trit block re-seeds the state with the
// complement of the previous digest.
func (k *Kerl) Squeeze(out trinary.Trits) error {
	if len(out)%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("kerl squeeze %d trits: %w", len(out), ErrInvalidLength)
	}
	if len(out) == 0 {
		return nil
	}
	trits, err := k.k.Squeeze(len(out))
	if err != nil {
		return fmt.Errorf("kerl squeeze: %w", err)
	}
	copy(out, trits)
	return nil
}
