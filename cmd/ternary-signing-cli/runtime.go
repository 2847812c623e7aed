package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"ternary.dev/ledger/bundle"
	"ternary.dev/ledger/signing"
	"ternary.dev/ledger/trinary"
	"ternary.dev/ledger/validation"
)

type Request struct {
	Op string `json:"op"`

	Seed          string `json:"seed,omitempty"`
	Index         uint64 `json:"index,omitempty"`
	Security      int    `json:"security,omitempty"`
	FragmentIndex int    `json:"fragment_index,omitempty"`

	Address    string   `json:"address,omitempty"`
	Fragments  []string `json:"fragments,omitempty"`
	BundleHash string   `json:"bundle_hash,omitempty"`

	Transactions     []bundle.Transaction `json:"transactions,omitempty"`
	TxTrytes         []string             `json:"tx_trytes,omitempty"`
	Inputs           []signing.Input      `json:"inputs,omitempty"`
	HMACKey          string               `json:"hmac_key,omitempty"`
	VerifySignatures bool                 `json:"verify_signatures,omitempty"`
}

type Response struct {
	Ok  bool   `json:"ok"`
	Err string `json:"err,omitempty"`

	Address             string               `json:"address,omitempty"`
	AddressWithChecksum string               `json:"address_with_checksum,omitempty"`
	Digests             string               `json:"digests,omitempty"`
	Signature           string               `json:"signature,omitempty"`
	Normalized          []int8               `json:"normalized,omitempty"`
	Valid               *bool                `json:"valid,omitempty"`
	BundleHash          string               `json:"bundle_hash,omitempty"`
	Transactions        []bundle.Transaction `json:"transactions,omitempty"`
	TxTrytes            []string             `json:"tx_trytes,omitempty"`
}

func writeResp(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

// writeOpErr reports the error code of typed errors and the message otherwise.
func writeOpErr(w io.Writer, err error) {
	var se *signing.Error
	if errors.As(err, &se) {
		writeResp(w, Response{Ok: false, Err: string(se.Code)})
		return
	}
	var te *bundle.TxError
	if errors.As(err, &te) {
		writeResp(w, Response{Ok: false, Err: string(te.Code)})
		return
	}
	writeResp(w, Response{Ok: false, Err: err.Error()})
}

func boolPtr(v bool) *bool { return &v }

func parseSeed(s string) (trinary.Trits, error) {
	if !trinary.IsTrytes(s) {
		return nil, errors.New("bad seed")
	}
	return trinary.MustTrytesToTrits(s), nil
}

// loadBundle takes tx_trytes when present and transactions otherwise.
func loadBundle(req Request) (bundle.Bundle, error) {
	if len(req.TxTrytes) == 0 {
		return bundle.Bundle(req.Transactions), nil
	}
	b := make(bundle.Bundle, 0, len(req.TxTrytes))
	for i, s := range req.TxTrytes {
		tx, err := bundle.TransactionFromTrytes(s)
		if err != nil {
			return nil, fmt.Errorf("tx_trytes[%d]: %w", i, err)
		}
		b = append(b, *tx)
	}
	return b, nil
}

func bundleResp(b bundle.Bundle) (Response, error) {
	resp := Response{Ok: true, Transactions: b}
	for i := range b {
		s, err := b[i].Trytes()
		if err != nil {
			return Response{}, err
		}
		resp.TxTrytes = append(resp.TxTrytes, s)
	}
	if len(b) > 0 {
		resp.BundleHash = b[0].Bundle
	}
	return resp, nil
}

func runFromStdin() {
	run(os.Stdin, os.Stdout)
}

func run(r io.Reader, w io.Writer) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		writeResp(w, Response{Ok: false, Err: fmt.Sprintf("bad request: %v", err)})
		return
	}

	switch req.Op {
	case "address":
		seed, err := parseSeed(req.Seed)
		if err != nil {
			writeResp(w, Response{Ok: false, Err: err.Error()})
			return
		}
		addr, err := signing.SubseedAddress(seed, req.Index, req.Security)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		withCS, err := signing.AddChecksum(addr)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Address: addr, AddressWithChecksum: withCS})
		return

	case "key_digests":
		seed, err := parseSeed(req.Seed)
		if err != nil {
			writeResp(w, Response{Ok: false, Err: err.Error()})
			return
		}
		key, err := signing.Key(seed, req.Index, req.Security)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		digests, err := signing.Digests(key)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Digests: trinary.MustTritsToTrytes(digests)})
		return

	case "sign_fragment":
		seed, err := parseSeed(req.Seed)
		if err != nil {
			writeResp(w, Response{Ok: false, Err: err.Error()})
			return
		}
		if req.FragmentIndex < 0 || req.FragmentIndex >= req.Security {
			writeResp(w, Response{Ok: false, Err: "bad fragment_index"})
			return
		}
		normalized, err := bundle.NormalizedBundleHash(req.BundleHash)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		key, err := signing.Key(seed, req.Index, req.Security)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		g := req.FragmentIndex % bundle.NormalizedGroups
		off := req.FragmentIndex * trinary.KeyFragmentLength
		sig, err := signing.SignatureFragment(
			normalized[g*bundle.NormalizedGroupSize:(g+1)*bundle.NormalizedGroupSize],
			key[off:off+trinary.KeyFragmentLength],
		)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Signature: trinary.MustTritsToTrytes(sig)})
		return

	case "validate_signatures":
		ok, err := signing.ValidateSignatures(req.Address, req.Fragments, req.BundleHash)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Valid: boolPtr(ok)})
		return

	case "add_checksum":
		out, err := signing.AddChecksum(req.Address)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, AddressWithChecksum: out})
		return

	case "remove_checksum":
		out, err := signing.RemoveChecksum(req.Address)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Address: out})
		return

	case "is_valid_checksum":
		ok, err := signing.IsValidChecksum(req.Address)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Valid: boolPtr(ok)})
		return

	case "normalize":
		n, err := bundle.NormalizedBundleHash(req.BundleHash)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Normalized: n})
		return

	case "is_bundle":
		b, err := loadBundle(req)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		ok, err := validation.Validate(b, validation.Options{VerifySignatures: req.VerifySignatures})
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, Response{Ok: true, Valid: boolPtr(ok)})
		return

	case "add_hmac":
		b, err := loadBundle(req)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		h, err := signing.NewHMAC(req.HMACKey)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		if err := h.AddHMAC(b); err != nil {
			writeOpErr(w, err)
			return
		}
		resp, err := bundleResp(b)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, resp)
		return

	case "finalize":
		b, err := loadBundle(req)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		if err := b.Finalize(nil); err != nil {
			writeOpErr(w, err)
			return
		}
		resp, err := bundleResp(b)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, resp)
		return

	case "sign_inputs":
		seed, err := parseSeed(req.Seed)
		if err != nil {
			writeResp(w, Response{Ok: false, Err: err.Error()})
			return
		}
		b, err := loadBundle(req)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		if err := signing.SignInputs(b, seed, req.Inputs); err != nil {
			writeOpErr(w, err)
			return
		}
		resp, err := bundleResp(b)
		if err != nil {
			writeOpErr(w, err)
			return
		}
		writeResp(w, resp)
		return

	default:
		writeResp(w, Response{Ok: false, Err: "unknown op"})
		return
	}
}
