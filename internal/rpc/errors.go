package rpc

import (
	"errors"
)

var (
	ErrUnknownProcedure      = errors.New("unknown procedure")
	ErrUnsupportedStreamType = errors.New("unsupported stream type")
	ErrCredential            = errors.New("failed to obtain credential")
)
