package board

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
	GetBoardByID(c *gin.Context)
	CreateBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get all boards
// @Description Get all boards with topic/post counters and last post time
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {object} BoardListResponse
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.GetAllBoards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, BoardListResponse{Boards: boards})
}

// @Summary Get board by id
// @Description Get a single board
// @Tags Board
// @Accept json
// @Produce json
// @Param board_id path int true "Board ID"
// @Success 200 {object} Board
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board_id} [get]
func (h *handler) GetBoardByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board ID"})
		return
	}

	board, err := h.service.GetBoardByID(id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Create board
// @Description Create a new board; board names are unique
// @Tags Board
// @Accept json
// @Produce json
// @Param request body CreateBoardRequest true "Board"
// @Success 201 {object} Board
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = "is required"
			}
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	board, err := h.service.CreateBoard(req.Name, req.Description)
	if err != nil {
		var verr *utils.ValidationError
		var cerr *utils.ConflictError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
		case errors.As(err, &cerr):
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{cerr.Field: cerr.Message}})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create board"})
		}
		return
	}
	c.JSON(http.StatusCreated, board)
}
