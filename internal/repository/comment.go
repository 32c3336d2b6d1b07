package repository

import (
	"context"
	"errors"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/observability"

	"gorm.io/gorm"
)

// previewChildren bounds the eager-load used by the thread listing. This is
// a fixed preview for the "expand" affordance, not subtree recursion.
const previewChildren = 2

// CommentRepository defines the interface for threaded comment operations.
//
// Both create paths run inside one transaction that adjusts the owning
// entities' denormalized comment counters; a counter update that matches no
// row aborts the whole operation as not-found.
type CommentRepository interface {
	CreateTopLevel(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	CreateReply(ctx context.Context, parentID uint, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Comment, error)
	ListTopLevel(ctx context.Context, postID uint, viewerID uint, sort Sort, limit, offset int, withPreview bool) ([]*models.Comment, int64, error)
	ListChildren(ctx context.Context, parentID uint, viewerID uint, sort Sort, limit, offset int) ([]*models.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateTopLevel(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	defer observability.TrackQuery("create_top_level", "comments")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The counter update doubles as the existence check: zero rows
		// affected means the post is gone and the insert must not happen.
		res := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", comment.PostID)
		}

		comment.ParentID = nil
		comment.Depth = 0
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	observability.CommentsCreated.WithLabelValues("top_level").Inc()
	return r.GetByID(ctx, comment.ID, comment.UserID)
}

func (r *commentRepository) CreateReply(ctx context.Context, parentID uint, comment *models.Comment) (*models.Comment, error) {
	defer observability.TrackQuery("create_reply", "comments")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.Comment
		if err := tx.First(&parent, parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("comment", parentID)
			}
			return err
		}

		res := tx.Model(&models.Comment{}).
			Where("id = ?", parent.ID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("comment", parentID)
		}

		res = tx.Model(&models.Post{}).
			Where("id = ?", parent.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", parent.PostID)
		}

		parentRef := parent.ID
		comment.ParentID = &parentRef
		comment.PostID = parent.PostID
		comment.Depth = parent.Depth + 1
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	observability.CommentsCreated.WithLabelValues("reply").Inc()
	return r.GetByID(ctx, comment.ID, comment.UserID)
}

func (r *commentRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.applyViewer(r.db.WithContext(ctx), viewerID).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, postID uint, viewerID uint, sort Sort, limit, offset int, withPreview bool) ([]*models.Comment, int64, error) {
	defer observability.TrackQuery("list_top_level", "comments")()

	// Listing a thread of a missing post is a client error, not an empty page.
	var probe models.Post
	if err := r.db.WithContext(ctx).Select("id").First(&probe, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.NewNotFoundError("post", postID)
		}
		return nil, 0, err
	}

	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Comment{}).
			Where("comments.post_id = ? AND comments.parent_comment_id IS NULL", postID)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := r.applyViewer(filtered(), viewerID).
		Preload("User").
		Order(sort.Clause("comments")).
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	if withPreview {
		if err := r.loadChildrenPreview(ctx, comments, viewerID, sort); err != nil {
			return nil, 0, err
		}
	}
	return comments, total, nil
}

func (r *commentRepository) ListChildren(ctx context.Context, parentID uint, viewerID uint, sort Sort, limit, offset int) ([]*models.Comment, int64, error) {
	defer observability.TrackQuery("list_children", "comments")()

	// Direct children only: strict parent equality, never a depth filter.
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Comment{}).
			Where("comments.parent_comment_id = ?", parentID)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := r.applyViewer(filtered(), viewerID).
		Preload("User").
		Order(sort.Clause("comments")).
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// loadChildrenPreview attaches up to previewChildren direct replies to each
// comment, in the same sort order and with the same viewer annotation as the
// parent listing.
func (r *commentRepository) loadChildrenPreview(ctx context.Context, comments []*models.Comment, viewerID uint, sort Sort) error {
	for _, c := range comments {
		if c.CommentCount == 0 {
			continue
		}
		var children []*models.Comment
		err := r.applyViewer(
			r.db.WithContext(ctx).Model(&models.Comment{}).
				Where("comments.parent_comment_id = ?", c.ID),
			viewerID,
		).
			Preload("User").
			Order(sort.Clause("comments")).
			Limit(previewChildren).
			Find(&children).Error
		if err != nil {
			return err
		}
		c.Children = children
	}
	return nil
}

func (r *commentRepository) applyViewer(db *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID != 0 {
		return db.Select(
			"comments.*, EXISTS(SELECT 1 FROM comment_upvotes WHERE comment_upvotes.comment_id = comments.id AND comment_upvotes.user_id = ?) AS upvoted",
			viewerID,
		)
	}
	return db.Select("comments.*, FALSE AS upvoted")
}
