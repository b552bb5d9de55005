package loader

import "errors"

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrFetch         = errors.New("fetching collection")
	ErrDecode        = errors.New("decoding collection")
	ErrTrailingData  = errors.New("trailing data after JSON document")
)
