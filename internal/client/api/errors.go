package api

import "errors"

// ErrInvalidResponseShape is returned when the products endpoint answers
// with a body that is neither a bare product array nor a products envelope.
var ErrInvalidResponseShape = errors.New("invalid products response shape")
