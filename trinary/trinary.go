// Package trinary converts between tryte strings and balanced-ternary trits.
package trinary

import (
	"errors"
	"fmt"
	"strings"

	iotatrinary "github.com/iotaledger/iota.go/trinary"
)

// Trits is a sequence of balanced-ternary digits, each in {-1, 0, 1}.
type Trits []int8

// Trytes is a tryte-encoded string over TryteAlphabet.
type Trytes = string

const (
	TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	TritsPerTryte = 3
	TryteRadix    = 27
	MaxTryteValue = 13
	MinTryteValue = -13

	HashTrinarySize        = 243
	HashTrytesSize         = HashTrinarySize / TritsPerTryte
	KeySegmentsPerFragment = 27
	KeyFragmentLength      = HashTrinarySize * KeySegmentsPerFragment
	MaxSecurityLevel       = 3

	AddressChecksumTrytesSize     = 9
	AddressWithChecksumTrytesSize = HashTrytesSize + AddressChecksumTrytesSize
)

var (
	ErrInvalidTrytes     = errors.New("trinary: invalid trytes")
	ErrInvalidTrit       = errors.New("trinary: invalid trit")
	ErrInvalidTritLength = errors.New("trinary: trit length is not a multiple of 3")
)

func tryteIndex(c byte) int {
	switch {
	case c == '9':
		return 0
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 1
	default:
		return -1
	}
}

// TryteValue returns the integer value of a single tryte character in [-13, 13].
// The second result is false if c is not a tryte.
func TryteValue(c byte) (int8, bool) {
	if tryteIndex(c) < 0 {
		return 0, false
	}
	return iotatrinary.MustTryteToTryteValue(c), true
}

// TrytesToTrits converts trytes into trits, three per tryte. The empty string
// converts to no trits.
func TrytesToTrits(trytes Trytes) (Trits, error) {
	if trytes == "" {
		return Trits{}, nil
	}
	for i := 0; i < len(trytes); i++ {
		if tryteIndex(trytes[i]) < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidTrytes, trytes[i], i)
		}
	}
	trits, err := iotatrinary.TrytesToTrits(trytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrytes, err)
	}
	return trits, nil
}

// MustTrytesToTrits is TrytesToTrits for constant inputs; it panics on malformed trytes.
func MustTrytesToTrits(trytes Trytes) Trits {
	t, err := TrytesToTrits(trytes)
	if err != nil {
		panic(err)
	}
	return t
}

// TritsToTrytes converts trits into trytes. len(trits) must be a multiple of 3.
func TritsToTrytes(trits Trits) (Trytes, error) {
	if len(trits)%TritsPerTryte != 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidTritLength, len(trits))
	}
	if err := ValidTrits(trits); err != nil {
		return "", err
	}
	if len(trits) == 0 {
		return "", nil
	}
	return iotatrinary.MustTritsToTrytes(trits), nil
}

// MustTritsToTrytes is TritsToTrytes for inputs known to be well formed.
func MustTritsToTrytes(trits Trits) Trytes {
	t, err := TritsToTrytes(trits)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidTrits reports an error if any element is outside {-1, 0, 1}.
func ValidTrits(trits Trits) error {
	for i, t := range trits {
		if t < -1 || t > 1 {
			return fmt.Errorf("%w: %d at offset %d", ErrInvalidTrit, t, i)
		}
	}
	return nil
}

// IntToTrits encodes v in balanced ternary, least significant trit first,
// zero-padded to at least n trits.
func IntToTrits(v int64, n int) Trits {
	out := make(Trits, 0, n)
	neg := v < 0
	// work on the magnitude so MinInt64 does not overflow on negation
	mag := uint64(v)
	if neg {
		mag = ^mag + 1
	}
	for mag != 0 {
		rem := int8(mag % 3)
		mag /= 3
		if rem == 2 {
			rem = -1
			mag++
		}
		if neg {
			rem = -rem
		}
		out = append(out, rem)
	}
	for len(out) < n {
		out = append(out, 0)
	}
	return out
}

// TritsToInt decodes balanced-ternary trits, least significant first.
func TritsToInt(trits Trits) int64 {
	return iotatrinary.TritsToInt(trits)
}

// Pad right-pads trytes with '9' up to n characters.
func Pad(trytes Trytes, n int) Trytes {
	if len(trytes) >= n {
		return trytes
	}
	return trytes + strings.Repeat("9", n-len(trytes))
}

// AddTrits returns a+b with the length of the longer operand. A carry out of the
// last trit is dropped.
func AddTrits(a, b Trits) Trits {
	if len(a) == 0 && len(b) == 0 {
		return Trits{}
	}
	return iotatrinary.AddTrits(a, b)
}

// Increment adds one to trits in place, least significant first, carrying 1 -> -1.
func Increment(trits Trits) {
	if len(trits) == 0 {
		return
	}
	copy(trits, iotatrinary.AddTrits(trits, Trits{1}))
}
