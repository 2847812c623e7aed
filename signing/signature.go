package signing

import (
	"fmt"
	"slices"

	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/trinary"
)

func checkNormalized(normalized []int8) error {
	if len(normalized) < trinary.KeySegmentsPerFragment {
		return sigerr(ERR_INVALID_FRAGMENT, fmt.Sprintf("normalized fragment of %d values", len(normalized)))
	}
	for _, v := range normalized[:trinary.KeySegmentsPerFragment] {
		if v < trinary.MinTryteValue || v > trinary.MaxTryteValue {
			return sigerr(ERR_INVALID_FRAGMENT, fmt.Sprintf("normalized value %d out of range", v))
		}
	}
	return nil
}

// SignatureFragment signs one 27-value normalized bundle hash fragment with a
// 6561-trit key fragment. Segment i is hashed 13-normalized[i] times.
func SignatureFragment(normalized []int8, keyFragment trinary.Trits) (trinary.Trits, error) {
	if err := checkNormalized(normalized); err != nil {
		return nil, err
	}
	if len(keyFragment) < trinary.KeyFragmentLength {
		return nil, sigerr(ERR_INVALID_KEY_LENGTH, fmt.Sprintf("key fragment of %d trits", len(keyFragment)))
	}
	out := slices.Clone(keyFragment[:trinary.KeyFragmentLength])
	k := crypto.NewKerl()
	for i := 0; i < trinary.KeySegmentsPerFragment; i++ {
		segment := out[i*trinary.HashTrinarySize : (i+1)*trinary.HashTrinarySize]
		if err := hashRounds(k, segment, trinary.MaxTryteValue-int(normalized[i])); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Digest completes every segment of a signature fragment to the full digest
// round count and returns the resulting 243-trit digest.
func Digest(normalized []int8, fragment trinary.Trits) (trinary.Trits, error) {
	if err := checkNormalized(normalized); err != nil {
		return nil, err
	}
	if len(fragment) < trinary.KeyFragmentLength {
		return nil, sigerr(ERR_INVALID_FRAGMENT, fmt.Sprintf("signature fragment of %d trits", len(fragment)))
	}
	acc := crypto.NewKerl()
	round := crypto.NewKerl()
	buf := make(trinary.Trits, trinary.HashTrinarySize)
	for i := 0; i < trinary.KeySegmentsPerFragment; i++ {
		copy(buf, fragment[i*trinary.HashTrinarySize:(i+1)*trinary.HashTrinarySize])
		if err := hashRounds(round, buf, int(normalized[i])+trinary.MaxTryteValue); err != nil {
			return nil, err
		}
		if err := acc.Absorb(buf); err != nil {
			return nil, err
		}
	}
	out := make(trinary.Trits, trinary.HashTrinarySize)
	if err := acc.Squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}
