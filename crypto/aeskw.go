package crypto

import (
	"crypto/aes"
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// AES-256 Key Wrap (RFC 3394) for sealing seeds at rest.

var kwDefaultIV = [8]byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

const (
	kwKEKSize   = 32
	kwMinPlain  = 16
	kwMaxPlain  = 4096
	kwBlockSize = 8
)

var (
	ErrKEKSize       = errors.New("aeskw: kek must be 32 bytes (AES-256)")
	ErrWrapLength    = errors.New("aeskw: input must be 16..4096 bytes and a multiple of 8")
	ErrWrapIntegrity = errors.New("aeskw: integrity check failed")
)

// AESKeyWrap wraps plain under kek. The result is 8 bytes longer than plain.
func AESKeyWrap(kek, plain []byte) ([]byte, error) {
	if len(kek) != kwKEKSize {
		return nil, ErrKEKSize
	}
	if len(plain) < kwMinPlain || len(plain) > kwMaxPlain || len(plain)%kwBlockSize != 0 {
		return nil, ErrWrapLength
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	n := len(plain) / kwBlockSize
	out := make([]byte, kwBlockSize+len(plain))
	copy(out[:kwBlockSize], kwDefaultIV[:])
	copy(out[kwBlockSize:], plain)

	var b [16]byte
	for j := 0; j < 6; j++ {
		for i := 1; i <= n; i++ {
			r := out[i*kwBlockSize : (i+1)*kwBlockSize]
			copy(b[:8], out[:kwBlockSize])
			copy(b[8:], r)
			block.Encrypt(b[:], b[:])
			t := uint64(n*j + i)
			binary.BigEndian.PutUint64(out[:kwBlockSize], binary.BigEndian.Uint64(b[:8])^t)
			copy(r, b[8:])
		}
	}
	return out, nil
}

// AESKeyUnwrap reverses AESKeyWrap and fails with ErrWrapIntegrity if kek or
// wrapped is wrong.
func AESKeyUnwrap(kek, wrapped []byte) ([]byte, error) {
	if len(kek) != kwKEKSize {
		return nil, ErrKEKSize
	}
	if len(wrapped) < kwMinPlain+kwBlockSize || len(wrapped) > kwMaxPlain+kwBlockSize || len(wrapped)%kwBlockSize != 0 {
		return nil, ErrWrapLength
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	n := len(wrapped)/kwBlockSize - 1
	a := binary.BigEndian.Uint64(wrapped[:kwBlockSize])
	plain := make([]byte, n*kwBlockSize)
	copy(plain, wrapped[kwBlockSize:])

	var b [16]byte
	for j := 5; j >= 0; j-- {
		for i := n; i >= 1; i-- {
			r := plain[(i-1)*kwBlockSize : i*kwBlockSize]
			binary.BigEndian.PutUint64(b[:8], a^uint64(n*j+i))
			copy(b[8:], r)
			block.Decrypt(b[:], b[:])
			a = binary.BigEndian.Uint64(b[:8])
			copy(r, b[8:])
		}
	}

	var got [8]byte
	binary.BigEndian.PutUint64(got[:], a)
	if subtle.ConstantTimeCompare(got[:], kwDefaultIV[:]) != 1 {
		return nil, ErrWrapIntegrity
	}
	return plain, nil
}
