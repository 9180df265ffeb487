package models

import "time"

// Comment represents a comment on a poem. Comments are insertion-ordered and
// lifecycle-bound to the parent poem: deleting the poem discards them.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PoemID    uint      `gorm:"not null;index" json:"poem_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
