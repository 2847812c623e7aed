// Package store persists the addresses whose one-time keys have already signed,
// so a wallet never signs twice from the same address.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"ternary.dev/ledger/trinary"
)

var bucketSpent = []byte("spent_by_address")

// SpentRecord describes one spent address.
type SpentRecord struct {
	Address    trinary.Trytes `json:"address"`
	KeyIndex   uint64         `json:"key_index"`
	Security   uint8          `json:"security"`
	BundleHash trinary.Trytes `json:"bundle_hash"`
	SpentAt    time.Time      `json:"spent_at"`
}

type DB struct {
	datadir  string
	db       *bolt.DB
	manifest *Manifest
}

func Open(datadir string) (*DB, error) {
	if datadir == "" {
		return nil, fmt.Errorf("datadir required")
	}
	path := DBPath(datadir)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}

	d := &DB{datadir: datadir, db: bdb}
	if err := d.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSpent); err != nil {
			return fmt.Errorf("create bucket %s: %w", string(bucketSpent), err)
		}
		return nil
	}); err != nil {
		_ = bdb.Close()
		return nil, err
	}

	m, err := readManifest(datadir)
	switch {
	case os.IsNotExist(err):
		m = newManifest()
		if err := writeManifestAtomic(datadir, m); err != nil {
			_ = bdb.Close()
			return nil, err
		}
	case err != nil:
		_ = bdb.Close()
		return nil, fmt.Errorf("read manifest: %w", err)
	case m.SchemaVersion > SchemaVersionV1:
		_ = bdb.Close()
		return nil, fmt.Errorf("manifest schema_version %d > supported %d", m.SchemaVersion, SchemaVersionV1)
	}
	d.manifest = m
	return d, nil
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Dir() string { return d.datadir }

func (d *DB) Manifest() *Manifest {
	if d == nil {
		return nil
	}
	return d.manifest
}

// MarkSpent records address as spent now.
func (d *DB) MarkSpent(address trinary.Trytes, keyIndex uint64, security int, bundleHash trinary.Trytes) error {
	if security < 1 || security > 0xff {
		return fmt.Errorf("spent: security %d out of range", security)
	}
	return d.Put(SpentRecord{
		Address:    address,
		KeyIndex:   keyIndex,
		Security:   uint8(security), // #nosec G115 -- checked against 0xff above.
		BundleHash: bundleHash,
		SpentAt:    time.Now().UTC(),
	})
}

func (d *DB) Put(rec SpentRecord) error {
	if !trinary.IsHash(rec.Address) {
		return fmt.Errorf("spent: address must be 81 trytes")
	}
	val, err := encodeSpentRecord(rec)
	if err != nil {
		return err
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSpent).Put([]byte(rec.Address), val)
	})
}

func (d *DB) IsSpent(address trinary.Trytes) (bool, error) {
	_, ok, err := d.Get(address)
	return ok, err
}

func (d *DB) Get(address trinary.Trytes) (*SpentRecord, bool, error) {
	var out *SpentRecord
	err := d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSpent).Get([]byte(address))
		if v == nil {
			return nil
		}
		rec, err := decodeSpentRecord(address, v)
		if err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

// List returns every record ordered by address.
func (d *DB) List() ([]SpentRecord, error) {
	var out []SpentRecord
	err := d.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSpent).ForEach(func(k, v []byte) error {
			rec, err := decodeSpentRecord(string(k), v)
			if err != nil {
				return err
			}
			out = append(out, *rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

const spentRecordLen = 8 + 1 + 8 + trinary.HashTrytesSize

func encodeSpentRecord(rec SpentRecord) ([]byte, error) {
	if rec.BundleHash != "" && !trinary.IsHash(rec.BundleHash) {
		return nil, fmt.Errorf("spent: bundle hash must be 81 trytes")
	}
	// Layout:
	// key_index u64le | security u8 | spent_at_unix_nano i64le | bundle_hash 81
	out := make([]byte, spentRecordLen)
	binary.LittleEndian.PutUint64(out[0:8], rec.KeyIndex)
	out[8] = rec.Security
	binary.LittleEndian.PutUint64(out[9:17], uint64(rec.SpentAt.UnixNano())) // #nosec G115 -- two's complement round trip.
	copy(out[17:], trinary.Pad(rec.BundleHash, trinary.HashTrytesSize))
	return out, nil
}

func decodeSpentRecord(address string, b []byte) (*SpentRecord, error) {
	if len(b) != spentRecordLen {
		return nil, fmt.Errorf("spent: record length %d", len(b))
	}
	return &SpentRecord{
		Address:    address,
		KeyIndex:   binary.LittleEndian.Uint64(b[0:8]),
		Security:   b[8],
		SpentAt:    time.Unix(0, int64(binary.LittleEndian.Uint64(b[9:17]))).UTC(), // #nosec G115 -- two's complement round trip.
		BundleHash: string(b[17:]),
	}, nil
}
