package service

import (
	"context"

	"alcove/internal/repository"
)

// VoteService exposes the upvote toggle. There is no separate "remove" call;
// toggling an existing vote retracts it.
type VoteService struct {
	upvoteRepo repository.UpvoteRepository
}

// ToggleResult is the post-toggle state of the voted entity.
type ToggleResult struct {
	Points  int  `json:"points"`
	Upvoted bool `json:"upvoted"`
}

func NewVoteService(upvoteRepo repository.UpvoteRepository) *VoteService {
	return &VoteService{upvoteRepo: upvoteRepo}
}

func (s *VoteService) TogglePostVote(ctx context.Context, postID, userID uint) (*ToggleResult, error) {
	points, upvoted, err := s.upvoteRepo.TogglePost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Points: points, Upvoted: upvoted}, nil
}

func (s *VoteService) ToggleCommentVote(ctx context.Context, commentID, userID uint) (*ToggleResult, error) {
	points, upvoted, err := s.upvoteRepo.ToggleComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Points: points, Upvoted: upvoted}, nil
}
