package gallery

import "time"

type Photo struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredFile is what the underlying store reports for one saved object.
type StoredFile struct {
	Name    string
	ModTime time.Time
}
