package crypto

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"ternary.dev/ledger/trinary"
)

func randomTrits(r *rand.Rand, n int) trinary.Trits {
	out := make(trinary.Trits, n)
	for i := range out {
		out[i] = int8(r.Intn(3) - 1)
	}
	return out
}

func TestKerl_IgnoresLastTritOfEachChunk(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	in := randomTrits(r, 2*trinary.HashTrinarySize)
	in[trinary.HashTrinarySize-1] = 1
	in[2*trinary.HashTrinarySize-1] = -1
	orig := slices.Clone(in)

	zeroed := slices.Clone(in)
	zeroed[trinary.HashTrinarySize-1] = 0
	zeroed[2*trinary.HashTrinarySize-1] = 0

	h1, err := HashTrits(NewKerl(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashTrits(NewKerl(), zeroed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(h1, h2) {
		t.Fatalf("last trit of a chunk changed the hash")
	}
	if !slices.Equal(in, orig) {
		t.Fatalf("absorb modified its input")
	}
}

func TestKerl_LengthChecks(t *testing.T) {
	k := NewKerl()
	if err := k.Absorb(make(trinary.Trits, 242)); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if err := k.Squeeze(make(trinary.Trits, 10)); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	bad := make(trinary.Trits, trinary.HashTrinarySize)
	bad[3] = 2
	if err := k.Absorb(bad); !errors.Is(err, trinary.ErrInvalidTrit) {
		t.Fatalf("expected ErrInvalidTrit, got %v", err)
	}
}

func TestKerl_DeterministicAndResettable(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	in := randomTrits(r, 2*trinary.HashTrinarySize)

	h1, err := HashTrits(NewKerl(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k := NewKerl()
	_ = k.Absorb(randomTrits(r, trinary.HashTrinarySize))
	h2, err := HashTrits(k, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(h1, h2) {
		t.Fatalf("reset did not clear state")
	}
	if h1[trinary.HashTrinarySize-1] != 0 {
		t.Fatalf("last trit must be zero")
	}

	// absorbing in two calls equals absorbing the concatenation
	k.Reset()
	_ = k.Absorb(in[:trinary.HashTrinarySize])
	_ = k.Absorb(in[trinary.HashTrinarySize:])
	h3 := make(trinary.Trits, trinary.HashTrinarySize)
	if err := k.Squeeze(h3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(h1, h3) {
		t.Fatalf("split absorb mismatch")
	}
}

func TestKerl_MultiBlockSqueeze(t *testing.T) {
	in := trinary.MustTrytesToTrits("ABCDEFGHIJKLMNOPQRSTUVWXYZ9ABCDEFGHIJKLMNOPQRSTUVWXYZ9ABCDEFGHIJKLMNOPQRSTUVWXYZ9")
	k := NewKerl()
	_ = k.Absorb(in)
	two := make(trinary.Trits, 2*trinary.HashTrinarySize)
	if err := k.Squeeze(two); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	k.Reset()
	_ = k.Absorb(in)
	first := make(trinary.Trits, trinary.HashTrinarySize)
	second := make(trinary.Trits, trinary.HashTrinarySize)
	_ = k.Squeeze(first)
	_ = k.Squeeze(second)
	if !slices.Equal(two[:trinary.HashTrinarySize], first) || !slices.Equal(two[trinary.HashTrinarySize:], second) {
		t.Fatalf("block-wise squeeze mismatch")
	}
	if slices.Equal(first, second) {
		t.Fatalf("consecutive squeezes must differ")
	}
}

func TestCurl_PartialChunksAndReset(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	key := randomTrits(r, 30)
	msg := randomTrits(r, trinary.HashTrinarySize)

	c := NewCurl(CurlP27)
	h1, err := HashTrits(c, key, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashTrits(c, key, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(h1, h2) {
		t.Fatalf("curl not deterministic across reset")
	}
	if err := trinary.ValidTrits(h1); err != nil {
		t.Fatalf("invalid output: %v", err)
	}

	h81, err := HashTrits(NewCurl(CurlP81), key, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Equal(h1, h81) {
		t.Fatalf("round count must change the output")
	}
	if err := c.Absorb(trinary.Trits{0, 5}); !errors.Is(err, trinary.ErrInvalidTrit) {
		t.Fatalf("expected ErrInvalidTrit, got %v", err)
	}
}

func TestCurl_KnownAnswers(t *testing.T) {
	tests := []struct {
		rounds int
		in     trinary.Trytes
		want   trinary.Trytes
	}{
		{
			rounds: CurlP81,
			in:     "QZELVPOZTGSBCMEIZWZBGFSRPQNSMBREV9QD9JINWPNHHVCIFFGMHUH99OLWPXUZ9AWKJVYEC9JDTKRZO",
			want:   "9MMGDFTUNMXVFRWTMVYWHKIUMJRWZPYVYDYHNATZWSLWPUSULDZVSJJXQPKXENXJFLTSEEMBJIWZLLXBX",
		},
		{
			rounds: CurlP81,
			in:     "ZYMHMWWBGGZYFLBGVBIUIRBWBIZOJEVOBUSIVUEIHI9S9EHIVZPZWGHG9THDDPBNIXDLCPYIAVQELZEFD",
			want:   "KMNWODCXRXYVGKSTRTAOV9SQDHIVKACSHGQQINUNVFITWFHOCEWEZDVVUBDVJJLTESKTOUAXBSBICGL9K",
		},
		{
			rounds: CurlP27,
			in:     "QZELVPOZTGSBCMEIZWZBGFSRPQNSMBREV9QD9JINWPNHHVCIFFGMHUH99OLWPXUZ9AWKJVYEC9JDTKRZO",
			want:   "QTITWGGXJKXUNUXWZWRQWBMIGUOXQYEUECRRY9P9ZODTHUIACWWPFWPDSZVMQOSPFWKIETWFWR9DIDWVH",
		},
	}
	for _, tc := range tests {
		h, err := HashTrits(NewCurl(tc.rounds), trinary.MustTrytesToTrits(tc.in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := trinary.MustTritsToTrytes(h); got != tc.want {
			t.Fatalf("P%d(%s): got=%s want=%s", tc.rounds, tc.in[:9], got, tc.want)
		}
	}
}

func TestHashTrits_NilSponge(t *testing.T) {
	if _, err := HashTrits(nil); !errors.Is(err, ErrNilSponge) {
		t.Fatalf("expected ErrNilSponge, got %v", err)
	}
}
