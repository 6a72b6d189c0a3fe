package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/pkg/response"
	"filmorate/internal/pkg/validator"
	"filmorate/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", h.List)
	users.POST("", h.Create)
	users.PUT("", h.Update)
	users.DELETE("/reset", h.Reset)
	users.GET("/:id", h.GetByID)
	users.GET("/:id/friends", h.Friends)
	users.GET("/:id/friends/common/:otherId", h.CommonFriends)
	users.PUT("/:id/friends/:friendId", h.AddFriend)
	users.DELETE("/:id/friends/:friendId", h.DeleteFriend)
}

// Create godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body UserRequest true "User to create"
// @Success 201 {object} map[string]interface{}
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if fields := req.Validate(validator.Validate(&req)); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user payload", fields)
		return
	}

	u, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// Update godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body UserRequest true "Full user record; absent fields keep their value"
// @Success 200 {object} map[string]interface{}
// @Router /users [put]
func (h *Handler) Update(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if fields := req.Validate(validator.Validate(&req)); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user payload", fields)
		return
	}

	u, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// AddFriend godoc
// @Summary Send or confirm a friend request
// @Tags Users
// @Param id path int true "Requester id"
// @Param friendId path int true "Addressee id"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/friends/{friendId} [put]
func (h *Handler) AddFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	u, err := h.svc.AddFriend(c.Request.Context(), id, friendID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) DeleteFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	u, err := h.svc.DeleteFriend(c.Request.Context(), id, friendID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) Friends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friends, err := h.svc.Friends(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, friends)
}

func (h *Handler) CommonFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}
	friends, err := h.svc.CommonFriends(c.Request.Context(), id, otherID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, friends)
}

// Reset wipes all users; kept for test isolation, not a production surface.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": "users"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrFriendshipNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrIDForbidden),
		errors.Is(err, ErrIDRequired),
		errors.Is(err, ErrSelfFriendship),
		errors.Is(err, ErrRequestAlreadySent),
		errors.Is(err, ErrAlreadyFriends),
		errors.Is(err, repository.ErrEmailTaken),
		errors.Is(err, repository.ErrLoginTaken):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+name)
		return 0, false
	}
	return id, true
}
