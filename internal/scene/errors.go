package scene

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown scene format")
	ErrNoBodies      = errors.New("scene has no bodies")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownKind   = errors.New("unknown shape kind")
	ErrUnknownQuery  = errors.New("unknown query type")
	ErrUnknownMode   = errors.New("unknown solver mode")
	ErrUnknownBody   = errors.New("unknown body")
	ErrMissingField  = errors.New("missing field")
	ErrNotRaycast    = errors.New("shape cannot be raycast")
)
