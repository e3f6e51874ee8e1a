package field

import "errors"

var (
	ErrFieldNotFound = errors.New("field not found")
)
