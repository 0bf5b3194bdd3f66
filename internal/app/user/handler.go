package user

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler interface {
	Register(c *gin.Context)
	GetUserByID(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Register user
// @Description Create the backing record for an externally authenticated user
// @Tags User
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/users [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				if fe.Tag() == "email" {
					fields[fe.Field()] = "must be a valid email address"
				} else {
					fields[fe.Field()] = "is required"
				}
			}
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.service.Register(req.Username, req.Email)
	if err != nil {
		var verr *utils.ValidationError
		var cerr *utils.ConflictError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
		case errors.As(err, &cerr):
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{cerr.Field: cerr.Message}})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, toResponse(user))
}

// @Summary Get user profile
// @Description Get a user's public profile
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (h *handler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
		return
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, toResponse(user))
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL(),
		CreatedAt: u.CreatedAt,
	}
}
