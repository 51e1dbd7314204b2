package scope

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
)
