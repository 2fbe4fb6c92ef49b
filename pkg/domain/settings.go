package domain

import "time"

// Setting is one global key-value configuration entry.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	UpdatedAt time.Time `json:"updatedAt"`
}
