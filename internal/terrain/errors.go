package terrain

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid terrain configuration")
	ErrTriangulation       = errors.New("triangulation failed")
	ErrHeightFieldMismatch = errors.New("height field does not match triangulation")
)
