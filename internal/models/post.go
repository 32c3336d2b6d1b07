package models

import (
	"time"
)

// Post represents a submitted link or text post.
//
// Points and CommentCount are denormalized counters: every mutation that
// changes the underlying relation (an upvote toggle, a comment insert)
// adjusts them inside the same transaction. Read paths never recompute them
// with a live COUNT.
type Post struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	User         User    `gorm:"foreignKey:UserID" json:"user"`
	Title        string  `gorm:"not null" json:"title"`
	Content      *string `gorm:"type:text" json:"content,omitempty"`
	URL          *string `json:"url,omitempty"`
	Points       int     `gorm:"not null;default:0" json:"points"`
	CommentCount int     `gorm:"not null;default:0" json:"comment_count"`
	// Upvoted indicates whether the requesting user has upvoted this post.
	// Computed per request, never stored.
	Upvoted   bool      `gorm:"->" json:"upvoted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
