package post

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/middleware"
	"forum/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListTopicPosts(c *gin.Context)
	CreateReply(c *gin.Context)
	UpdatePost(c *gin.Context)
}

type handler struct {
	service      Service
	defaultLimit int
	maxLimit     int
}

func NewHandler(service Service, defaultLimit, maxLimit int) Handler {
	return &handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// @Summary List posts of a topic
// @Description Opening post plus paginated replies; records the view for an authenticated actor
// @Tags Post
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param topic_id path int true "Topic ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} PostListResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/topics/{topic_id}/posts [get]
func (h *handler) ListTopicPosts(c *gin.Context) {
	boardID, topicID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	page, limit := h.pageParams(c)
	actorID, _ := middleware.ActorID(c)

	opening, replies, total, err := h.service.ListTopicPosts(c.Request.Context(), boardID, topicID, actorID, page, limit)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get posts"})
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, PostListResponse{
		OpeningPost: opening,
		Replies:     replies,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// @Summary Reply to a topic
// @Description Create a reply post; the topic's last update advances
// @Tags Post
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param topic_id path int true "Topic ID"
// @Param request body CreatePostRequest true "Reply"
// @Success 201 {object} Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/topics/{topic_id}/posts [post]
func (h *handler) CreateReply(c *gin.Context) {
	boardID, topicID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	reply, err := h.service.CreateReply(c.Request.Context(), boardID, topicID, actorID, req.Message)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// @Summary Edit a post
// @Description Replace the message of a post; only the original author may edit
// @Tags Post
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param topic_id path int true "Topic ID"
// @Param post_id path int true "Post ID"
// @Param request body UpdatePostRequest true "New message"
// @Success 200 {object} Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/topics/{topic_id}/posts/{post_id} [put]
func (h *handler) UpdatePost(c *gin.Context) {
	boardID, topicID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post ID"})
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), boardID, topicID, postID, actorID, req.Message)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *handler) writeServiceError(c *gin.Context, err error) {
	var verr *utils.ValidationError
	switch {
	case errors.Is(err, utils.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func (h *handler) pathIDs(c *gin.Context) (uint64, uint64, bool) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return 0, 0, false
	}
	topicID, err := strconv.ParseUint(c.Param("topic_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic ID"})
		return 0, 0, false
	}
	return boardID, topicID, true
}

func (h *handler) pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultLimit)))
	if err != nil || limit < 1 || limit > h.maxLimit {
		limit = h.defaultLimit
	}

	return page, limit
}
