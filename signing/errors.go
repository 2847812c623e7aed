package signing

import "fmt"

type ErrorCode string

const (
	ERR_INVALID_SECURITY_LEVEL ErrorCode = "ERR_INVALID_SECURITY_LEVEL"
	ERR_INVALID_SEED           ErrorCode = "ERR_INVALID_SEED"
	ERR_INVALID_KEY_INDEX      ErrorCode = "ERR_INVALID_KEY_INDEX"
	ERR_INVALID_KEY_LENGTH     ErrorCode = "ERR_INVALID_KEY_LENGTH"
	ERR_INVALID_FRAGMENT       ErrorCode = "ERR_INVALID_FRAGMENT"
	ERR_INVALID_ADDRESS        ErrorCode = "ERR_INVALID_ADDRESS"
	ERR_INVALID_BUNDLE_HASH    ErrorCode = "ERR_INVALID_BUNDLE_HASH"
	ERR_INVALID_HMAC_KEY       ErrorCode = "ERR_INVALID_HMAC_KEY"

	ERR_ADDRESS_SPENT          ErrorCode = "ERR_ADDRESS_SPENT"
	ERR_INPUT_NOT_FOUND        ErrorCode = "ERR_INPUT_NOT_FOUND"
	ERR_INSUFFICIENT_FRAGMENTS ErrorCode = "ERR_INSUFFICIENT_FRAGMENTS"
)

type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func sigerr(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
