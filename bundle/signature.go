package bundle

import (
	"encoding/json"

	"ternary.dev/ledger/trinary"
)

// Signature groups the signature fragments produced for one address.
type Signature struct {
	Address            trinary.Trytes   `json:"address"`
	SignatureFragments []trinary.Trytes `json:"signature_fragments"`
}

func (s *Signature) AddFragment(fragment trinary.Trytes) {
	s.SignatureFragments = append(s.SignatureFragments, fragment)
}

// String renders s as indented JSON.
func (s Signature) String() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
