// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered poet.
//
// Password holds the bcrypt hash and is never serialized. ResetPasswordToken
// holds the SHA-256 hex digest of the raw reset token (the raw token is only
// ever delivered out of band) and ResetPasswordExpires its expiry; the two
// fields are set and cleared together.
type User struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Username             string         `gorm:"unique;not null" json:"username"`
	Email                string         `gorm:"unique;not null" json:"email"`
	Password             string         `gorm:"not null" json:"-"`
	Bio                  string         `gorm:"type:text;default:''" json:"bio"`
	ResetPasswordToken   *string        `json:"-"`
	ResetPasswordExpires *time.Time     `json:"-"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	Poems []Poem `gorm:"foreignKey:AuthorID" json:"poems,omitempty"`

	// Follower/following lists are materialized from the follows table by the
	// repository; they are not persisted columns.
	Followers      []UserSummary `gorm:"-" json:"followers,omitempty"`
	Following      []UserSummary `gorm:"-" json:"following,omitempty"`
	FollowersCount int           `gorm:"-" json:"followers_count"`
	FollowingCount int           `gorm:"-" json:"following_count"`
}

// UserSummary is the reduced user representation embedded in follower and
// following lists and in search results.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Summary returns the reduced representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

// HasActiveResetToken reports whether the user carries an unexpired reset token.
func (u *User) HasActiveResetToken(now time.Time) bool {
	return u.ResetPasswordToken != nil &&
		u.ResetPasswordExpires != nil &&
		u.ResetPasswordExpires.After(now)
}

// ClearResetToken removes the reset token state (after use, expiry, or a failed
// delivery rollback).
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordExpires = nil
}
