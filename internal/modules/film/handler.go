package film

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/pkg/response"
	"filmorate/internal/pkg/validator"
)

const defaultPopularCount = 10

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	films := rg.Group("/films")
	films.GET("", h.List)
	films.POST("", h.Create)
	films.PUT("", h.Update)
	films.GET("/popular", h.Popular)
	films.DELETE("/reset", h.Reset)
	films.GET("/:id", h.GetByID)
	films.PUT("/:id/like/:userId", h.AddLike)
	films.DELETE("/:id/like/:userId", h.RemoveLike)
}

// Create godoc
// @Summary Add a film
// @Tags Films
// @Accept json
// @Produce json
// @Param body body FilmRequest true "Film to create"
// @Success 201 {object} map[string]interface{}
// @Router /films [post]
func (h *Handler) Create(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if fields := req.Validate(validator.Validate(&req)); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid film payload", fields)
		return
	}

	f, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

func (h *Handler) Update(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if fields := req.Validate(validator.Validate(&req)); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid film payload", fields)
		return
	}

	f, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) List(c *gin.Context) {
	films, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// AddLike godoc
// @Summary Like a film
// @Tags Films
// @Param id path int true "Film id"
// @Param userId path int true "User id"
// @Success 200 {object} map[string]interface{} "Current like count"
// @Router /films/{id}/like/{userId} [put]
func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	count, err := h.svc.AddLike(c.Request.Context(), filmID, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes_count": count})
}

func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	count, err := h.svc.RemoveLike(c.Request.Context(), filmID, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes_count": count})
}

// Popular godoc
// @Summary Most liked films
// @Tags Films
// @Param count query int false "Maximum films to return (default 10)"
// @Success 200 {object} map[string]interface{}
// @Router /films/popular [get]
func (h *Handler) Popular(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultPopularCount)))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid count")
		return
	}
	films, err := h.svc.Popular(c.Request.Context(), count)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

// Reset wipes all films; kept for test isolation, not a production surface.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": "films"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrMpaNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrIDForbidden),
		errors.Is(err, ErrIDRequired),
		errors.Is(err, ErrInvalidCount):
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
