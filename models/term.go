package models

import (
	"time"
)

// Term is the stable identity of a glossary entry. Content lives in its
// versions; ActiveVersionID points at the revision display layers read from.
// A term with no versions left is deleted outright, so rows here are hard
// deleted together with their children.
type Term struct {
	ID              uint          `json:"id" gorm:"primarykey"`
	Identifier      string        `json:"identifier" gorm:"uniqueIndex;not null"`
	CategoryID      uint          `json:"category_id" gorm:"not null"`
	Category        *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ActiveVersionID *uint         `json:"active_version_id"`
	ActiveVersion   *TermVersion  `json:"active_version,omitempty" gorm:"foreignKey:ActiveVersionID"`
	Versions        []TermVersion `json:"versions,omitempty" gorm:"foreignKey:TermID"`
	Labels          []Label       `json:"labels,omitempty" gorm:"many2many:term_labels;"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
