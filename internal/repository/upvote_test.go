package repository

import (
	"testing"

	"alcove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTogglePost_AddThenRemove(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "Post")

	repo := NewUpvoteRepository(db)

	points, upvoted, err := repo.TogglePost(ctxBG(), post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, points)
	assert.True(t, upvoted)

	points, upvoted, err = repo.TogglePost(ctxBG(), post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, points)
	assert.False(t, upvoted)

	// The full pair must leave no vote row behind.
	var votes int64
	require.NoError(t, db.Model(&models.PostUpvote{}).Count(&votes).Error)
	assert.Zero(t, votes)
}

func TestTogglePost_IndependentVoters(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "Post")

	repo := NewUpvoteRepository(db)

	_, _, err := repo.TogglePost(ctxBG(), post.ID, alice.ID)
	require.NoError(t, err)
	points, upvoted, err := repo.TogglePost(ctxBG(), post.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, points)
	assert.True(t, upvoted)

	// Bob retracting must not touch Alice's vote.
	points, _, err = repo.TogglePost(ctxBG(), post.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, points)
}

func TestTogglePost_MissingPost(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	repo := NewUpvoteRepository(db)
	_, _, err := repo.TogglePost(ctxBG(), 321, user.ID)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	var votes int64
	require.NoError(t, db.Model(&models.PostUpvote{}).Count(&votes).Error)
	assert.Zero(t, votes)
}

func TestToggleComment_AddThenRemove(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "Post")

	comments := NewCommentRepository(db)
	comment, err := comments.CreateTopLevel(ctxBG(), &models.Comment{
		PostID: post.ID, UserID: user.ID, Content: "comment",
	})
	require.NoError(t, err)

	repo := NewUpvoteRepository(db)

	points, upvoted, err := repo.ToggleComment(ctxBG(), comment.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, points)
	assert.True(t, upvoted)

	points, upvoted, err = repo.ToggleComment(ctxBG(), comment.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, points)
	assert.False(t, upvoted)
}

func TestToggleComment_MissingComment(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	repo := NewUpvoteRepository(db)
	_, _, err := repo.ToggleComment(ctxBG(), 555, user.ID)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostUpvote_UniquePerUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	post := createTestPost(t, db, user.ID, "Post")

	// The composite unique index is what turns the losing side of a
	// concurrent toggle into a detectable duplicate-key error.
	require.NoError(t, db.Create(&models.PostUpvote{UserID: user.ID, PostID: post.ID}).Error)
	err := db.Create(&models.PostUpvote{UserID: user.ID, PostID: post.ID}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
