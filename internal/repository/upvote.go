package repository

import (
	"context"
	"errors"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/observability"

	"gorm.io/gorm"
)

// UpvoteRepository is the toggle engine for the "who upvoted what" relation.
//
// A toggle is one transaction: read the current vote row, derive the delta
// from it, apply the delta to the owning entity's points counter as a single
// relative UPDATE, then insert or delete the row. The caller never passes a
// direction; the stored state alone decides it. A unique-index violation on
// insert (two concurrent toggles both observing "no vote") surfaces as a
// conflict and rolls the counter update back.
type UpvoteRepository interface {
	TogglePost(ctx context.Context, postID, userID uint) (points int, upvoted bool, err error)
	ToggleComment(ctx context.Context, commentID, userID uint) (points int, upvoted bool, err error)
}

type upvoteRepository struct {
	db *gorm.DB
}

// NewUpvoteRepository creates a new UpvoteRepository
func NewUpvoteRepository(db *gorm.DB) UpvoteRepository {
	return &upvoteRepository{db: db}
}

func (r *upvoteRepository) TogglePost(ctx context.Context, postID, userID uint) (int, bool, error) {
	defer observability.TrackQuery("toggle", "post_upvotes")()

	var points int
	var upvoted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PostUpvote
		hadVote := true
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hadVote = false
		}

		delta := 1
		if hadVote {
			delta = -1
		}

		res := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("points", gorm.Expr("points + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", postID)
		}

		if hadVote {
			if err := tx.Delete(&models.PostUpvote{}, existing.ID).Error; err != nil {
				return err
			}
		} else {
			vote := models.PostUpvote{UserID: userID, PostID: postID}
			if err := tx.Create(&vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return models.NewConflictError("upvote already recorded")
				}
				return err
			}
		}

		var post models.Post
		if err := tx.Select("points").First(&post, postID).Error; err != nil {
			return err
		}
		points = post.Points
		upvoted = !hadVote
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	cache.Invalidate(ctx, cache.PostKey(postID))
	observability.VoteToggles.WithLabelValues("post", toggleAction(upvoted)).Inc()
	return points, upvoted, nil
}

func (r *upvoteRepository) ToggleComment(ctx context.Context, commentID, userID uint) (int, bool, error) {
	defer observability.TrackQuery("toggle", "comment_upvotes")()

	var points int
	var upvoted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CommentUpvote
		hadVote := true
		if err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hadVote = false
		}

		delta := 1
		if hadVote {
			delta = -1
		}

		res := tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("points", gorm.Expr("points + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("comment", commentID)
		}

		if hadVote {
			if err := tx.Delete(&models.CommentUpvote{}, existing.ID).Error; err != nil {
				return err
			}
		} else {
			vote := models.CommentUpvote{UserID: userID, CommentID: commentID}
			if err := tx.Create(&vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return models.NewConflictError("upvote already recorded")
				}
				return err
			}
		}

		var comment models.Comment
		if err := tx.Select("points").First(&comment, commentID).Error; err != nil {
			return err
		}
		points = comment.Points
		upvoted = !hadVote
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	observability.VoteToggles.WithLabelValues("comment", toggleAction(upvoted)).Inc()
	return points, upvoted, nil
}

func toggleAction(upvoted bool) string {
	if upvoted {
		return "add"
	}
	return "remove"
}
