package pricing

import "errors"

var (
	ErrCombinationNotFound  = errors.New("pricing combination not found")
	ErrCombinationExists    = errors.New("pricing combination already exists for this client, species and harvest type")
	ErrInvalidContainerNorm = errors.New("container norm must be positive")
)
