package models

import (
	"time"

	"gorm.io/gorm"
)

// Poem represents a published poem.
//
// AuthorID is the single ownership field: it is set at creation and never
// changes. Title and content are mutable by the author only.
type Poem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Comments []Comment `gorm:"foreignKey:PoemID" json:"comments"`

	// LikeUserIDs mirrors the likes table as a plain id set on the wire.
	LikeUserIDs []uint `gorm:"-" json:"likes"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this poem (computed)
	Liked bool `gorm:"->" json:"liked"`
}

// IsAuthor reports whether the given user owns the poem.
func (p *Poem) IsAuthor(userID uint) bool {
	return p.AuthorID == userID
}
