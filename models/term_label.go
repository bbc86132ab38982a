package models

import "time"

type TermLabel struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TermID    uint      `json:"term_id" gorm:"not null;index"`
	LabelID   uint      `json:"label_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
