package signing

import (
	"fmt"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/trinary"
)

// hmacTailTrytes is how much of the original fragment survives after the tag.
const hmacTailTrytes = bundle.SignatureFragmentsTrytesSize - trinary.HashTrytesSize

// HMAC tags the output transactions of a bundle with a Curl-P-27 hash of a
// shared key and the bundle hash.
type HMAC struct {
	key trinary.Trits
}

func NewHMAC(key trinary.Trytes) (*HMAC, error) {
	if !trinary.IsTrytes(key) {
		return nil, sigerr(ERR_INVALID_HMAC_KEY, "key must be non-empty trytes")
	}
	return &HMAC{key: trinary.MustTrytesToTrits(key)}, nil
}

// AddHMAC replaces the first 81 trytes of the fragment of every positive-value
// transaction with its tag and keeps the rest of the fragment. Every output's
// bundle hash is checked before any fragment is written.
func (h *HMAC) AddHMAC(b bundle.Bundle) error {
	hashes := make([]trinary.Trits, len(b))
	for i := range b {
		if b[i].Value <= 0 {
			continue
		}
		if !trinary.IsHash(b[i].Bundle) {
			return sigerr(ERR_INVALID_BUNDLE_HASH, fmt.Sprintf("transaction %d bundle hash %q", i, b[i].Bundle))
		}
		hashes[i] = trinary.MustTrytesToTrits(b[i].Bundle)
	}

	curl := crypto.NewCurl(crypto.CurlP27)
	tags := make([]trinary.Trytes, len(b))
	for i, hash := range hashes {
		if hash == nil {
			continue
		}
		tag, err := crypto.HashTrits(curl, h.key, hash)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		tags[i] = trinary.MustTritsToTrytes(tag)
	}

	for i, tag := range tags {
		if tag == "" {
			continue
		}
		tx := &b[i]
		var tail trinary.Trytes
		if len(tx.SignatureFragments) > trinary.HashTrytesSize {
			end := min(len(tx.SignatureFragments), trinary.HashTrytesSize+hmacTailTrytes)
			tail = tx.SignatureFragments[trinary.HashTrytesSize:end]
		}
		tx.SignatureFragments = tag + tail
	}
	return nil
}
