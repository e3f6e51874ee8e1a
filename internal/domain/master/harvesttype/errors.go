package harvesttype

import "errors"

var (
	ErrHarvestTypeNotFound = errors.New("harvest type not found")
)
