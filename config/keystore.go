package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"

	"ternary.dev/ledger/crypto"
	"ternary.dev/ledger/signing"
	"ternary.dev/ledger/trinary"
)

const (
	keystoreVersion = "TLKSv1"
	keystoreWrapAlg = "AES-256-KW"
	kekSize         = 32
)

// SeedKeystore is a seed sealed with AES-256-KW. KeyIDHex identifies the seed
// without revealing it: SHA3-256 of its security-2 address at index 0.
type SeedKeystore struct {
	Version        string `json:"version"`
	KeyIDHex       string `json:"key_id_hex"`
	WrapAlg        string `json:"wrap_alg"`
	SeedTrytes     int    `json:"seed_trytes"`
	WrappedSeedHex string `json:"wrapped_seed_hex"`
}

func hexDecodeStrict(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}

func seedKeyID(seed trinary.Trytes) (string, error) {
	trits, err := trinary.TrytesToTrits(seed)
	if err != nil {
		return "", err
	}
	addr, err := signing.SubseedAddress(trits, 0, 2)
	if err != nil {
		return "", err
	}
	id := sha3.Sum256([]byte(addr))
	return hex.EncodeToString(id[:]), nil
}

// WrapSeed seals seed under a 32-byte kek. The seed is padded with '9' to a
// multiple of 8 bytes before wrapping.
func WrapSeed(seed trinary.Trytes, kek []byte) (*SeedKeystore, error) {
	if !trinary.IsTrytes(seed) || len(seed)%trinary.HashTrytesSize != 0 {
		return nil, fmt.Errorf("keystore: seed must be a multiple of %d trytes", trinary.HashTrytesSize)
	}
	keyID, err := seedKeyID(seed)
	if err != nil {
		return nil, err
	}
	padded := trinary.Pad(seed, (len(seed)+7)/8*8)
	wrapped, err := crypto.AESKeyWrap(kek, []byte(padded))
	if err != nil {
		return nil, err
	}
	return &SeedKeystore{
		Version:        keystoreVersion,
		KeyIDHex:       keyID,
		WrapAlg:        keystoreWrapAlg,
		SeedTrytes:     len(seed),
		WrappedSeedHex: hex.EncodeToString(wrapped),
	}, nil
}

// Seed unwraps the keystore with kek and checks the result against KeyIDHex.
func (ks *SeedKeystore) Seed(kek []byte) (trinary.Trytes, error) {
	wrapped, err := hexDecodeStrict(ks.WrappedSeedHex)
	if err != nil {
		return "", fmt.Errorf("wrapped_seed_hex: %w", err)
	}
	plain, err := crypto.AESKeyUnwrap(kek, wrapped)
	if err != nil {
		return "", err
	}
	if ks.SeedTrytes <= 0 || ks.SeedTrytes > len(plain) {
		return "", fmt.Errorf("keystore: seed_trytes %d out of range", ks.SeedTrytes)
	}
	seed, pad := string(plain[:ks.SeedTrytes]), string(plain[ks.SeedTrytes:])
	if !trinary.IsTrytes(seed) || (pad != "" && !trinary.IsNineTrytes(pad)) {
		return "", fmt.Errorf("keystore: unwrapped seed is malformed")
	}
	keyID, err := seedKeyID(seed)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(keyID, ks.KeyIDHex) {
		return "", fmt.Errorf("keystore key_id mismatch: embedded=%s computed=%s", ks.KeyIDHex, keyID)
	}
	return seed, nil
}

func ReadKeystore(path string) (*SeedKeystore, error) {
	raw, err := readFileByPath(path)
	if err != nil {
		return nil, err
	}
	var ks SeedKeystore
	if err := json.Unmarshal(raw, &ks); err != nil {
		return nil, fmt.Errorf("parse keystore %s: %w", path, err)
	}
	if ks.Version != keystoreVersion {
		return nil, fmt.Errorf("unsupported keystore version: %q", ks.Version)
	}
	if !strings.EqualFold(ks.WrapAlg, keystoreWrapAlg) {
		return nil, fmt.Errorf("unsupported wrap_alg: %q", ks.WrapAlg)
	}
	return &ks, nil
}

func WriteKeystore(path string, ks *SeedKeystore) error {
	b, err := json.Marshal(ks)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o600)
}

// ReadKEKFile reads a hex-encoded 32-byte key encryption key. Whitespace is ignored.
func ReadKEKFile(path string) ([]byte, error) {
	raw, err := readFileByPath(path)
	if err != nil {
		return nil, fmt.Errorf("read kek: %w", err)
	}
	kek, err := hexDecodeStrict(string(raw))
	if err != nil {
		return nil, fmt.Errorf("kek file %s: %w", path, err)
	}
	if len(kek) != kekSize {
		return nil, fmt.Errorf("kek must be %d bytes (got %d)", kekSize, len(kek))
	}
	return kek, nil
}
