package models

import "time"

// Comment threads hang off the term, not a version. They are removed only
// when the term itself goes away with its last version.
type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TermID    uint      `json:"term_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	ParentID  *uint     `json:"parent_id"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
