package validators

import "errors"

var (
	ErrUnknownSchema   = errors.New("unknown schema for validation")
	ErrNoSchema        = errors.New("no schema given for validation")
	ErrInvalidDocument = errors.New("document does not match schema")
)
