package gallery

import "errors"

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrInvalidFilename = errors.New("invalid filename")
)
