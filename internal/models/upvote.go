package models

import (
	"time"
)

// PostUpvote records that a user has upvoted a post. The existence of the row
// is the vote state; there is no boolean flag to go stale. The composite
// unique index makes a concurrent double-toggle fail cleanly instead of
// corrupting the post's points counter.
type PostUpvote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_upvotes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_upvotes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentUpvote is the comment-scoped counterpart of PostUpvote, unique per
// (user, comment) pair.
type CommentUpvote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_upvotes_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_upvotes_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
