package models

import "time"

// Follow is a directed edge in the social graph: follower follows followee.
//
// A single row represents the edge, so A.following and B.followers are two
// reads of the same record and can never disagree. The composite unique index
// rules out duplicate edges; the no-self-follow rule is enforced in the
// service layer.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"-"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// FollowState is the refreshed edge state returned after a follow or unfollow:
// the actor's following list and the target's followers list.
type FollowState struct {
	Following []UserSummary `json:"following"`
	Followers []UserSummary `json:"followers"`
}
