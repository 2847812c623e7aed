package bundle

import (
	"fmt"
	"math"
	"strings"

	"ternary.dev/ledger/trinary"
)

type tryteWriter struct {
	sb  strings.Builder
	err error
}

func (w *tryteWriter) trytes(name string, v trinary.Trytes, size int) {
	if w.err != nil {
		return
	}
	if len(v) > size {
		w.err = txerr(TX_ERR_FIELD_OVERFLOW, fmt.Sprintf("%s: %d trytes exceeds %d", name, len(v), size))
		return
	}
	if v != "" && !trinary.IsTrytes(v) {
		w.err = txerr(TX_ERR_FIELD_INVALID, name+": not trytes")
		return
	}
	w.sb.WriteString(trinary.Pad(v, size))
}

func (w *tryteWriter) int(name string, v int64, size int) {
	if w.err != nil {
		return
	}
	trits := trinary.IntToTrits(v, size*trinary.TritsPerTryte)
	if len(trits) > size*trinary.TritsPerTryte {
		w.err = txerr(TX_ERR_FIELD_OVERFLOW, fmt.Sprintf("%s: %d does not fit %d trytes", name, v, size))
		return
	}
	w.sb.WriteString(trinary.MustTritsToTrytes(trits))
}

func (w *tryteWriter) uint(name string, v uint64, size int) {
	if v > math.MaxInt64 {
		if w.err == nil {
			w.err = txerr(TX_ERR_FIELD_OVERFLOW, fmt.Sprintf("%s: %d overflows int64", name, v))
		}
		return
	}
	w.int(name, int64(v), size)
}

// Trytes serialises tx into its 2673-tryte wire form. Short tryte fields are
// right-padded with '9'.
func (tx *Transaction) Trytes() (trinary.Trytes, error) {
	if tx == nil {
		return "", txerr(TX_ERR_PARSE, "nil transaction")
	}
	var w tryteWriter
	w.sb.Grow(TransactionTrytesSize)

	w.trytes("signature_fragments", tx.SignatureFragments, SignatureFragmentsTrytesSize)
	w.trytes("address", tx.Address, AddressTrytesSize)
	w.int("value", tx.Value, ValueTrytesSize)
	w.trytes("obsolete_tag", tx.ObsoleteTag, ObsoleteTagTrytesSize)
	w.uint("timestamp", tx.Timestamp, TimestampTrytesSize)
	w.uint("current_index", tx.CurrentIndex, CurrentIndexTrytesSize)
	w.uint("last_index", tx.LastIndex, LastIndexTrytesSize)
	w.trytes("bundle", tx.Bundle, BundleTrytesSize)
	w.trytes("trunk_transaction", tx.TrunkTransaction, TrunkTrytesSize)
	w.trytes("branch_transaction", tx.BranchTransaction, BranchTrytesSize)
	w.trytes("tag", tx.Tag, TagTrytesSize)
	w.uint("attachment_timestamp", tx.AttachmentTimestamp, AttachmentTimestampTrytesSize)
	w.uint("attachment_timestamp_lower_bound", tx.AttachmentTimestampLowerBound, LowerBoundTrytesSize)
	w.uint("attachment_timestamp_upper_bound", tx.AttachmentTimestampUpperBound, UpperBoundTrytesSize)
	w.trytes("nonce", tx.Nonce, NonceTrytesSize)

	if w.err != nil {
		return "", w.err
	}
	return w.sb.String(), nil
}

// Essence returns the trits of the address, value, obsolete tag, timestamp and
// index fields.
func (tx *Transaction) Essence() (trinary.Trits, error) {
	trytes, err := tx.Trytes()
	if err != nil {
		return nil, err
	}
	return trinary.TrytesToTrits(trytes[EssenceStart:EssenceEnd])
}

type tryteCursor struct {
	s   trinary.Trytes
	pos int
	err error
}

func (c *tryteCursor) next(size int) trinary.Trytes {
	v := c.s[c.pos : c.pos+size]
	c.pos += size
	return v
}

func (c *tryteCursor) int(name string, size int) int64 {
	trits := trinary.MustTrytesToTrits(c.next(size))
	for i := maxIntTrits; i < len(trits); i++ {
		if trits[i] != 0 && c.err == nil {
			c.err = txerr(TX_ERR_PARSE, name+": overflows int64")
			return 0
		}
	}
	return trinary.TritsToInt(trits)
}

func (c *tryteCursor) uint(name string, size int) uint64 {
	v := c.int(name, size)
	if v < 0 {
		if c.err == nil {
			c.err = txerr(TX_ERR_PARSE, name+": negative")
		}
		return 0
	}
	return uint64(v)
}

// TransactionFromTrytes parses the 2673-tryte wire form. It is the inverse of
// Trytes for transactions whose tryte fields are full width.
func TransactionFromTrytes(trytes trinary.Trytes) (*Transaction, error) {
	if len(trytes) != TransactionTrytesSize {
		return nil, txerr(TX_ERR_PARSE, fmt.Sprintf("length %d, want %d", len(trytes), TransactionTrytesSize))
	}
	if !trinary.IsTrytes(trytes) {
		return nil, txerr(TX_ERR_PARSE, "not trytes")
	}
	c := &tryteCursor{s: trytes}
	tx := &Transaction{}
	tx.SignatureFragments = c.next(SignatureFragmentsTrytesSize)
	tx.Address = c.next(AddressTrytesSize)
	tx.Value = c.int("value", ValueTrytesSize)
	tx.ObsoleteTag = c.next(ObsoleteTagTrytesSize)
	tx.Timestamp = c.uint("timestamp", TimestampTrytesSize)
	tx.CurrentIndex = c.uint("current_index", CurrentIndexTrytesSize)
	tx.LastIndex = c.uint("last_index", LastIndexTrytesSize)
	tx.Bundle = c.next(BundleTrytesSize)
	tx.TrunkTransaction = c.next(TrunkTrytesSize)
	tx.BranchTransaction = c.next(BranchTrytesSize)
	tx.Tag = c.next(TagTrytesSize)
	tx.AttachmentTimestamp = c.uint("attachment_timestamp", AttachmentTimestampTrytesSize)
	tx.AttachmentTimestampLowerBound = c.uint("attachment_timestamp_lower_bound", LowerBoundTrytesSize)
	tx.AttachmentTimestampUpperBound = c.uint("attachment_timestamp_upper_bound", UpperBoundTrytesSize)
	tx.Nonce = c.next(NonceTrytesSize)
	if c.err != nil {
		return nil, c.err
	}
	return tx, nil
}
