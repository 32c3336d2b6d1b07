package service

import (
	"context"
	"strings"

	"alcove/internal/models"
	"alcove/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type CreateReplyInput struct {
	UserID   uint
	ParentID uint
	Content  string
}

type ListCommentsInput struct {
	PostID       uint
	Page         Page
	Sort         repository.Sort
	ViewerID     uint
	WithChildren bool
}

type ListChildrenInput struct {
	ParentID uint
	Page     Page
	Sort     repository.Sort
	ViewerID uint
}

// CommentPage is one page of comments plus the totals the envelope needs.
type CommentPage struct {
	Comments   []*models.Comment
	Page       int
	TotalPages int
	TotalCount int64
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

func validateCommentContent(content string) error {
	const minContentLen = 3
	const maxContentLen = 10000

	trimmed := strings.TrimSpace(content)
	if len(trimmed) < minContentLen {
		return models.NewValidationError("Comment must be at least 3 characters")
	}
	if len(trimmed) > maxContentLen {
		return models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}
	return s.commentRepo.CreateTopLevel(ctx, &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: strings.TrimSpace(in.Content),
	})
}

func (s *CommentService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}
	return s.commentRepo.CreateReply(ctx, in.ParentID, &models.Comment{
		UserID:  in.UserID,
		Content: strings.TrimSpace(in.Content),
	})
}

func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) (*CommentPage, error) {
	comments, total, err := s.commentRepo.ListTopLevel(
		ctx, in.PostID, in.ViewerID, in.Sort, in.Page.Limit, in.Page.Offset(), in.WithChildren)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return &CommentPage{
		Comments:   comments,
		Page:       in.Page.Number,
		TotalPages: in.Page.TotalPages(total),
		TotalCount: total,
	}, nil
}

func (s *CommentService) ListChildren(ctx context.Context, in ListChildrenInput) (*CommentPage, error) {
	comments, total, err := s.commentRepo.ListChildren(
		ctx, in.ParentID, in.ViewerID, in.Sort, in.Page.Limit, in.Page.Offset())
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return &CommentPage{
		Comments:   comments,
		Page:       in.Page.Number,
		TotalPages: in.Page.TotalPages(total),
		TotalCount: total,
	}, nil
}
