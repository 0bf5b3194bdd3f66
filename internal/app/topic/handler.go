package topic

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/middleware"
	"forum/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListTopics(c *gin.Context)
	CreateTopic(c *gin.Context)
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

// @Summary List topics of a board
// @Description Topics ordered by last update, annotated with reply and view counts
// @Tags Topic
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} TopicListResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/topics [get]
func (h *handler) ListTopics(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	page, limit := h.pageParams(c)

	topics, total, err := h.service.ListTopics(c.Request.Context(), boardID, page, limit)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get topics"})
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, TopicListResponse{
		Topics: topics,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// @Summary Create topic
// @Description Create a topic and its opening post atomically
// @Tags Topic
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Param request body CreateTopicRequest true "Topic"
// @Success 201 {object} Topic
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id}/topics [post]
func (h *handler) CreateTopic(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	topic, err := h.service.CreateTopic(c.Request.Context(), boardID, actorID, req.Subject, req.Message)
	if err != nil {
		var verr *utils.ValidationError
		switch {
		case errors.Is(err, utils.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create topic"})
		}
		return
	}

	c.JSON(http.StatusCreated, topic)
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
