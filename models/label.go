package models

import "time"

// Label is attached to terms, not versions; links survive every version
// transition and only go away when the owning term is deleted.
type Label struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
