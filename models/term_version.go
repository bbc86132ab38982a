package models

import (
	"time"
)

type VersionStatus string

const (
	StatusDraft     VersionStatus = "DRAFT"
	StatusPublished VersionStatus = "PUBLISHED"
	StatusArchived  VersionStatus = "ARCHIVED"
)

// Priority orders statuses when a replacement active version has to be
// picked after a delete: published beats draft beats archived. Kept as an
// explicit table so the ordering never depends on the string values.
func (s VersionStatus) Priority() int {
	switch s {
	case StatusPublished:
		return 0
	case StatusDraft:
		return 1
	case StatusArchived:
		return 2
	}
	return 3
}

func (s VersionStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// TermVersion is one content revision of a term. VersionNumber is assigned
// as max+1 per term inside the creating transaction and never reused.
// At most one version per term is PUBLISHED at any time.
type TermVersion struct {
	ID             uint                     `json:"id" gorm:"primarykey"`
	TermID         uint                     `json:"term_id" gorm:"not null;uniqueIndex:idx_term_version_number,priority:1"`
	Term           *Term                    `json:"term,omitempty" gorm:"foreignKey:TermID"`
	VersionNumber  int                      `json:"version_number" gorm:"not null;uniqueIndex:idx_term_version_number,priority:2"`
	Status         VersionStatus            `json:"status" gorm:"not null;default:'DRAFT'"`
	ReadyToPublish bool                     `json:"ready_to_publish" gorm:"not null;default:false"`
	Translations   []TermVersionTranslation `json:"translations,omitempty" gorm:"foreignKey:TermVersionID"`
	PublishedAt    *time.Time               `json:"published_at"`
	ArchivedAt     *time.Time               `json:"archived_at"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}
