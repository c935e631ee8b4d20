package renderer

import "errors"

var (
	ErrNoTracers         = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrInvalidDimensions = errors.New("renderer: frame dimensions must be non-zero")
)
