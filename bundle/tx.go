// Package bundle models ternary transactions, their 2673-tryte wire form and the
// bundles that group them.
package bundle

import "ternary.dev/ledger/trinary"

// Field widths of the transaction wire form, in trytes.
const (
	SignatureFragmentsTrytesSize  = 2187
	AddressTrytesSize             = trinary.HashTrytesSize
	ValueTrytesSize               = 27
	ObsoleteTagTrytesSize         = 27
	TimestampTrytesSize           = 9
	CurrentIndexTrytesSize        = 9
	LastIndexTrytesSize           = 9
	BundleTrytesSize              = trinary.HashTrytesSize
	TrunkTrytesSize               = trinary.HashTrytesSize
	BranchTrytesSize              = trinary.HashTrytesSize
	TagTrytesSize                 = 27
	AttachmentTimestampTrytesSize = 9
	LowerBoundTrytesSize          = 9
	UpperBoundTrytesSize          = 9
	NonceTrytesSize               = 27

	TransactionTrytesSize = 2673
)

// The essence is address through last index: the part of a transaction covered by
// the bundle hash.
const (
	EssenceStart      = SignatureFragmentsTrytesSize
	EssenceTrytesSize = AddressTrytesSize + ValueTrytesSize + ObsoleteTagTrytesSize +
		TimestampTrytesSize + CurrentIndexTrytesSize + LastIndexTrytesSize
	EssenceEnd = EssenceStart + EssenceTrytesSize
)

// Balanced integers of up to 39 trits fit in an int64.
const maxIntTrits = 39

type Transaction struct {
	SignatureFragments            trinary.Trytes `json:"signature_fragments"`
	Address                       trinary.Trytes `json:"address"`
	Value                         int64          `json:"value"`
	ObsoleteTag                   trinary.Trytes `json:"obsolete_tag"`
	Timestamp                     uint64         `json:"timestamp"`
	CurrentIndex                  uint64         `json:"current_index"`
	LastIndex                     uint64         `json:"last_index"`
	Bundle                        trinary.Trytes `json:"bundle"`
	TrunkTransaction              trinary.Trytes `json:"trunk_transaction"`
	BranchTransaction             trinary.Trytes `json:"branch_transaction"`
	Tag                           trinary.Trytes `json:"tag"`
	AttachmentTimestamp           uint64         `json:"attachment_timestamp"`
	AttachmentTimestampLowerBound uint64         `json:"attachment_timestamp_lower_bound"`
	AttachmentTimestampUpperBound uint64         `json:"attachment_timestamp_upper_bound"`
	Nonce                         trinary.Trytes `json:"nonce"`
}

// Bundle is an ordered group of transactions sharing one bundle hash.
type Bundle []Transaction

func optionalTrytes(s string, max int) bool {
	return s == "" || trinary.IsTrytesOfMaxLength(s, max)
}

// IsTransaction reports whether tx has the field shapes required to take part in
// bundle validation.
func IsTransaction(tx *Transaction) bool {
	if tx == nil {
		return false
	}
	if !optionalTrytes(tx.SignatureFragments, SignatureFragmentsTrytesSize) {
		return false
	}
	if !trinary.IsHash(tx.Address) || !trinary.IsHash(tx.Bundle) {
		return false
	}
	if !optionalTrytes(tx.ObsoleteTag, ObsoleteTagTrytesSize) || !optionalTrytes(tx.Tag, TagTrytesSize) {
		return false
	}
	if tx.TrunkTransaction != "" && !trinary.IsHash(tx.TrunkTransaction) {
		return false
	}
	if tx.BranchTransaction != "" && !trinary.IsHash(tx.BranchTransaction) {
		return false
	}
	if !optionalTrytes(tx.Nonce, NonceTrytesSize) {
		return false
	}
	return tx.CurrentIndex <= tx.LastIndex
}

// IsSliceOfTransactions reports whether b is non-empty and every element passes
// IsTransaction.
func IsSliceOfTransactions(b Bundle) bool {
	if len(b) == 0 {
		return false
	}
	for i := range b {
		if !IsTransaction(&b[i]) {
			return false
		}
	}
	return true
}
