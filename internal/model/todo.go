package model

import "time"

// Todo is the domain model for a single task record.
// ID and CreatedAt are assigned once at creation and never change.
type Todo struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
