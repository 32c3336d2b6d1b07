package models

import (
	"time"
)

// Comment represents a comment in a nested thread.
//
// Threading is a plain adjacency list: ParentID references the parent comment
// (NULL for a top-level comment) and Depth is always parent.Depth+1, or 0 at
// the top level. PostID always equals the parent's PostID. CommentCount holds
// the number of direct children only.
type Comment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PostID       uint   `gorm:"not null;index:idx_comments_post_parent,priority:1" json:"post_id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	User         User   `gorm:"foreignKey:UserID" json:"user"`
	ParentID     *uint  `gorm:"column:parent_comment_id;index:idx_comments_post_parent,priority:2" json:"parent_comment_id,omitempty"`
	Content      string `gorm:"type:text;not null" json:"content"`
	Depth        int    `gorm:"not null;default:0" json:"depth"`
	Points       int    `gorm:"not null;default:0" json:"points"`
	CommentCount int    `gorm:"not null;default:0" json:"comment_count"`
	// Upvoted indicates whether the requesting user has upvoted this comment.
	// Computed per request, never stored.
	Upvoted bool `gorm:"->" json:"upvoted"`
	// Children carries a bounded preview of direct replies on some read paths.
	Children  []*Comment `gorm:"-" json:"children,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
