package hearings

import "errors"

var (
	ErrHearingNotFound = errors.New("hearing not found")
	ErrProcessNotFound = errors.New("process not found")
)
