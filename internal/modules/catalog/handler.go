package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/internal/pkg/response"
	pkgvalidator "filmorate/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.Genres)
	rg.GET("/genres/:id", h.Genre)
	rg.GET("/mpa", h.MpaRatings)
	rg.GET("/mpa/:id", h.MpaRating)
	rg.GET("/directors", h.Directors)
	rg.GET("/directors/:id", h.Director)
	rg.POST("/directors", h.CreateDirector)
	rg.PUT("/directors", h.UpdateDirector)
	rg.DELETE("/directors/:id", h.DeleteDirector)
}

// Genres handles GET /api/v1/genres
func (h *Handler) Genres(c *gin.Context) {
	genres, err := h.service.Genres(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genres)
}

// Genre handles GET /api/v1/genres/:id
func (h *Handler) Genre(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	g, err := h.service.Genre(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

// MpaRatings handles GET /api/v1/mpa
func (h *Handler) MpaRatings(c *gin.Context) {
	ratings, err := h.service.MpaRatings(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

// MpaRating handles GET /api/v1/mpa/:id
func (h *Handler) MpaRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.service.MpaRating(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Directors handles GET /api/v1/directors
func (h *Handler) Directors(c *gin.Context) {
	directors, err := h.service.Directors(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, directors)
}

// Director handles GET /api/v1/directors/:id
func (h *Handler) Director(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.service.Director(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// CreateDirector handles POST /api/v1/directors
func (h *Handler) CreateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid director", errs)
		return
	}
	d, err := h.service.CreateDirector(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// UpdateDirector handles PUT /api/v1/directors (id in body)
func (h *Handler) UpdateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid director", errs)
		return
	}
	d, err := h.service.UpdateDirector(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// DeleteDirector handles DELETE /api/v1/directors/:id
func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteDirector(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrMpaNotFound),
		errors.Is(err, ErrDirectorNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
