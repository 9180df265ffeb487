package models

import "time"

// Like represents a user's like on a poem.
// The combination of UserID and PoemID must be unique; likes are hard-deleted
// when toggled off so the pair can be re-created.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_poem" json:"user_id"`
	PoemID    uint      `gorm:"not null;uniqueIndex:idx_user_poem" json:"poem_id"`
	CreatedAt time.Time `json:"created_at"`
}
