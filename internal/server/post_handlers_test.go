package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alcove/internal/models"
	"alcove/internal/repository"
	"alcove/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, filters repository.PostFilters, sort repository.Sort, limit, offset int, viewerID uint) ([]*models.Post, int64, error) {
	args := m.Called(ctx, filters, sort, limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Post), args.Get(1).(int64), args.Error(2)
}

func newPostTestApp(repo repository.PostRepository, authed bool) *fiber.App {
	app := fiber.New()
	s := &Server{postService: service.NewPostService(repo)}

	if authed {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", uint(1))
			return c.Next()
		})
	}
	app.Post("/posts", s.CreatePost)
	app.Get("/posts", s.GetPosts)
	app.Get("/posts/:id", s.GetPost)
	return app
}

func TestCreatePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app := newPostTestApp(mockRepo, true)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"title":   "New Post",
				"content": "Hello world",
			},
			mockSetup: func() {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
				mockRepo.On("GetByID", mock.Anything, mock.Anything, uint(1)).
					Return(&models.Post{ID: 1, Title: "New Post"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Title",
			body: map[string]string{
				"content": "no title",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad URL",
			body: map[string]string{
				"title": "Linked",
				"url":   "::not-a-url::",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetPost_NotFoundMapsTo404(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("GetByID", mock.Anything, uint(99), uint(0)).
		Return(nil, models.NewNotFoundError("post", 99))

	app := newPostTestApp(mockRepo, false)

	req := httptest.NewRequest(http.MethodGet, "/posts/99", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestGetPost_InvalidID(t *testing.T) {
	app := newPostTestApp(new(MockPostRepository), false)

	req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPosts_Envelope(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("List", mock.Anything, mock.Anything, repository.Sort{By: repository.SortByPoints, Order: repository.SortAsc}, 10, 10, uint(0)).
		Return([]*models.Post{{ID: 1}, {ID: 2}}, int64(12), nil)

	app := newPostTestApp(mockRepo, false)

	req := httptest.NewRequest(http.MethodGet, "/posts?page=2&limit=10&sortBy=points&order=asc", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Posts      []models.Post `json:"posts"`
		Page       int           `json:"page"`
		TotalPages int           `json:"totalPages"`
		TotalCount int64         `json:"totalCount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Posts, 2)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 2, body.TotalPages)
	assert.EqualValues(t, 12, body.TotalCount)
}
