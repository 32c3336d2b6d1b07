package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleUpvotePost handles POST /api/posts/:id/upvote
func (s *Server) ToggleUpvotePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.voteService.TogglePostVote(c.Context(), postID, viewerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ToggleUpvoteComment handles POST /api/comments/:id/upvote
func (s *Server) ToggleUpvoteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.voteService.ToggleCommentVote(c.Context(), commentID, viewerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
