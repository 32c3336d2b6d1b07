package repository

import (
	"context"
	"errors"

	"alcove/internal/cache"
	"alcove/internal/models"
	"alcove/internal/observability"

	"gorm.io/gorm"
)

// PostFilters narrows a post listing. Both fields are optional.
type PostFilters struct {
	AuthorID *uint
	// Site matches posts whose URL contains the given host.
	Site string
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	List(ctx context.Context, filters PostFilters, sort Sort, limit, offset int, viewerID uint) ([]*models.Post, int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("create", "posts")()
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	defer observability.TrackQuery("get", "posts")()

	var post models.Post
	load := func() error {
		return r.applyViewer(r.db.WithContext(ctx), viewerID).
			Preload("User").
			First(&post, id).Error
	}

	var err error
	if viewerID == 0 {
		// Only the viewer-independent projection is cacheable.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, load)
	} else {
		err = load()
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filters PostFilters, sort Sort, limit, offset int, viewerID uint) ([]*models.Post, int64, error) {
	defer observability.TrackQuery("list", "posts")()

	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Post{})
		if filters.AuthorID != nil {
			q = q.Where("posts.user_id = ?", *filters.AuthorID)
		}
		if filters.Site != "" {
			q = q.Where("posts.url LIKE ?", "%"+filters.Site+"%")
		}
		return q
	}

	// Total count under the exact same predicate as the page query,
	// independent of the pagination window.
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := r.applyViewer(filtered(), viewerID).
		Preload("User").
		Order(sort.Clause("posts")).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// applyViewer adds the per-viewer upvote projection in a single query.
// The boolean is request-local state, never persisted.
func (r *postRepository) applyViewer(db *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID != 0 {
		return db.Select(
			"posts.*, EXISTS(SELECT 1 FROM post_upvotes WHERE post_upvotes.post_id = posts.id AND post_upvotes.user_id = ?) AS upvoted",
			viewerID,
		)
	}
	return db.Select("posts.*, FALSE AS upvoted")
}
