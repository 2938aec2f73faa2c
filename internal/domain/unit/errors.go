package unit

import "errors"

var (
	ErrUnitNotFound   = errors.New("unit not found")
	ErrUnitNameExists = errors.New("unit name already exists")
)
