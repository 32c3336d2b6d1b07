package service

import (
	"context"
	"net/url"
	"strings"

	"alcove/internal/models"
	"alcove/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	URL     string
}

type ListPostsInput struct {
	Page     Page
	Sort     repository.Sort
	AuthorID *uint
	Site     string
	ViewerID uint
}

// PostPage is one page of posts plus the totals the envelope needs.
type PostPage struct {
	Posts      []*models.Post
	Page       int
	TotalPages int
	TotalCount int64
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300
	const maxContentLen = 50000

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}
	if in.URL != "" {
		parsed, err := url.ParseRequestURI(in.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return nil, models.NewValidationError("url must be a valid http(s) URL")
		}
	}

	post := &models.Post{
		UserID: in.UserID,
		Title:  title,
	}
	if in.Content != "" {
		content := in.Content
		post.Content = &content
	}
	if in.URL != "" {
		link := in.URL
		post.URL = &link
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	// Reload so the response carries the author and the viewer projection.
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, viewerID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*PostPage, error) {
	filters := repository.PostFilters{
		AuthorID: in.AuthorID,
		Site:     in.Site,
	}
	posts, total, err := s.postRepo.List(ctx, filters, in.Sort, in.Page.Limit, in.Page.Offset(), in.ViewerID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return &PostPage{
		Posts:      posts,
		Page:       in.Page.Number,
		TotalPages: in.Page.TotalPages(total),
		TotalCount: total,
	}, nil
}
