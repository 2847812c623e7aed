package bundle

import "fmt"

type ErrorCode string

const (
	TX_ERR_PARSE          ErrorCode = "TX_ERR_PARSE"
	TX_ERR_FIELD_OVERFLOW ErrorCode = "TX_ERR_FIELD_OVERFLOW"
	TX_ERR_FIELD_INVALID  ErrorCode = "TX_ERR_FIELD_INVALID"

	BUNDLE_ERR_EMPTY        ErrorCode = "BUNDLE_ERR_EMPTY"
	BUNDLE_ERR_HASH_INVALID ErrorCode = "BUNDLE_ERR_HASH_INVALID"
)

type TxError struct {
	Code ErrorCode
	Msg  string
}

func (e *TxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func txerr(code ErrorCode, msg string) error {
	return &TxError{Code: code, Msg: msg}
}
