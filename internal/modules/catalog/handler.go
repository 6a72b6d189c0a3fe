package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.Genres)
	rg.GET("/genres/:id", h.GenreByID)
	rg.GET("/mpa", h.MpaRatings)
	rg.GET("/mpa/:id", h.MpaByID)
}

func (h *Handler) Genres(c *gin.Context) {
	genres, err := h.svc.Genres(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genres)
}

func (h *Handler) GenreByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.svc.GenreByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) MpaRatings(c *gin.Context) {
	ratings, err := h.svc.MpaRatings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) MpaByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.MpaByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGenreNotFound), errors.Is(err, ErrMpaNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid id")
		return 0, false
	}
	return id, true
}
