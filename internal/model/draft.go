package model

import "time"

// Draft is a stored, unsent email. Rows are append-only: drafts are never
// updated or deleted, and listing always returns them newest first by id.
type Draft struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	To        string    `gorm:"column:to;size:512" json:"to"`
	CC        string    `gorm:"column:cc;size:512" json:"cc"`
	BCC       string    `gorm:"column:bcc;size:512" json:"bcc"`
	Subject   string    `gorm:"size:512;not null" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (Draft) TableName() string {
	return "emails"
}
