package models

import "time"

// TermVersionTranslation holds the localized name and description of one
// version in one language, keyed (version, language). Rows are created
// atomically with their parent version and only updated while it is a draft.
type TermVersionTranslation struct {
	TermVersionID uint      `json:"term_version_id" gorm:"primaryKey;autoIncrement:false"`
	LanguageID    string    `json:"language_id" gorm:"primaryKey;size:8"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
