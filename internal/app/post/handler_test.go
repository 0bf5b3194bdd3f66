package post_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forum/internal/app/post"
	"forum/internal/middleware"
	"forum/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListTopicPosts(ctx context.Context, boardID, topicID uint64, actorID uint64, page, limit int) (*post.Post, []*post.Post, int64, error) {
	args := m.Called(ctx, boardID, topicID, actorID, page, limit)
	if args.Get(0) == nil {
		return nil, nil, 0, args.Error(3)
	}
	return args.Get(0).(*post.Post), args.Get(1).([]*post.Post), args.Get(2).(int64), args.Error(3)
}

func (m *MockPostService) CreateReply(ctx context.Context, boardID, topicID uint64, actorID uint64, message string) (*post.Post, error) {
	args := m.Called(ctx, boardID, topicID, actorID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, boardID, topicID, postID uint64, actorID uint64, message string) (*post.Post, error) {
	args := m.Called(ctx, boardID, topicID, postID, actorID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.Post), args.Error(1)
}

func setupHandlerTest() (*gin.Engine, *MockPostService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.IdentityMiddleware())

	mockSvc := new(MockPostService)
	handler := post.NewHandler(mockSvc, 2, 50)
	post.RegisterRoutes(r.Group("/api"), handler)

	return r, mockSvc
}

func TestListTopicPosts_PassesActorFromHeader(t *testing.T) {
	router, mockSvc := setupHandlerTest()

	opening := &post.Post{ID: 11, TopicID: 7, Message: "Lorem ipsum dolor sit amet"}
	mockSvc.On("ListTopicPosts", mock.Anything, uint64(1), uint64(7), uint64(4), 1, 2).
		Return(opening, []*post.Post{}, int64(0), nil)

	req, _ := http.NewRequest("GET", "/api/boards/1/topics/7/posts", nil)
	req.Header.Set("X-User-ID", "4")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body post.PostListResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, uint64(11), body.OpeningPost.ID)
	assert.Empty(t, body.Replies)
	mockSvc.AssertExpectations(t)
}

func TestListTopicPosts_AnonymousActorIsZero(t *testing.T) {
	router, mockSvc := setupHandlerTest()

	opening := &post.Post{ID: 11, TopicID: 7}
	mockSvc.On("ListTopicPosts", mock.Anything, uint64(1), uint64(7), uint64(0), 1, 2).
		Return(opening, []*post.Post{}, int64(0), nil)

	req, _ := http.NewRequest("GET", "/api/boards/1/topics/7/posts", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestCreateReply_RequiresAuthentication(t *testing.T) {
	router, mockSvc := setupHandlerTest()

	body, _ := json.Marshal(post.CreatePostRequest{Message: "Hello, world!"})
	req, _ := http.NewRequest("POST", "/api/boards/1/topics/7/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateReply")
}

func TestUpdatePost_NonOwnerGets404(t *testing.T) {
	router, mockSvc := setupHandlerTest()

	mockSvc.On("UpdatePost", mock.Anything, uint64(1), uint64(7), uint64(12), uint64(9), "hijack").
		Return(nil, utils.ErrNotFound)

	body, _ := json.Marshal(post.UpdatePostRequest{Message: "hijack"})
	req, _ := http.NewRequest("PUT", "/api/boards/1/topics/7/posts/12", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "9")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Ownership failures are indistinguishable from a missing post.
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdatePost_Owner(t *testing.T) {
	router, mockSvc := setupHandlerTest()

	actor := uint64(3)
	mockSvc.On("UpdatePost", mock.Anything, uint64(1), uint64(7), uint64(12), actor, "fixed").
		Return(&post.Post{ID: 12, TopicID: 7, CreatedBy: actor, Message: "fixed", UpdatedBy: &actor}, nil)

	body, _ := json.Marshal(post.UpdatePostRequest{Message: "fixed"})
	req, _ := http.NewRequest("PUT", "/api/boards/1/topics/7/posts/12", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "3")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var updated post.Post
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "fixed", updated.Message)
	assert.Equal(t, &actor, updated.UpdatedBy)
	mockSvc.AssertExpectations(t)
}
