package species

import "errors"

var (
	ErrSpeciesNotFound = errors.New("species not found")
)
