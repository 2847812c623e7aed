package crypto

import (
	"fmt"

	"ternary.dev/ledger/trinary"
)

// Curl-P round counts.
const (
	CurlP27 = 27
	CurlP81 = 81
)

const curlStateSize = 3 * trinary.HashTrinarySize

var curlTruthTable = [11]int8{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

// Curl is the Curl-P ternary sponge. The trailing partial chunk of an Absorb or
// Squeeze is processed like a full one.
type Curl struct {
	rounds  int
	state   [curlStateSize]int8
	scratch [curlStateSize]int8
}

func NewCurl(rounds int) *Curl {
	return &Curl{rounds: rounds}
}

func (c *Curl) Reset() {
	c.state = [curlStateSize]int8{}
}

func (c *Curl) Absorb(in trinary.Trits) error {
	if err := trinary.ValidTrits(in); err != nil {
		return fmt.Errorf("curl absorb: %w", err)
	}
	for off := 0; off < len(in); off += trinary.HashTrinarySize {
		end := min(off+trinary.HashTrinarySize, len(in))
		copy(c.state[:], in[off:end])
		c.transform()
	}
	return nil
}

func (c *Curl) Squeeze(out trinary.Trits) error {
	for off := 0; off < len(out); off += trinary.HashTrinarySize {
		end := min(off+trinary.HashTrinarySize, len(out))
		copy(out[off:end], c.state[:])
		c.transform()
	}
	return nil
}

func (c *Curl) transform() {
	idx := 0
	for round := 0; round < c.rounds; round++ {
		c.scratch = c.state
		for i := 0; i < curlStateSize; i++ {
			prev := idx
			if idx < 365 {
				idx += 364
			} else {
				idx -= 365
			}
			c.state[i] = curlTruthTable[c.scratch[prev]+(c.scratch[idx]<<2)+5]
		}
	}
}
