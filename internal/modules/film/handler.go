package film

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/internal/pkg/response"
	pkgvalidator "filmorate/internal/pkg/validator"
	"filmorate/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/films", h.Create)
	rg.PUT("/films", h.Update)
	rg.GET("/films", h.List)
	rg.GET("/films/popular", h.Popular)
	rg.GET("/films/common", h.CommonWithFriend)
	rg.GET("/films/search", h.Search)
	rg.GET("/films/director/:directorId", h.ByDirector)
	rg.GET("/films/:id", h.Get)
	rg.DELETE("/films/:id", h.Delete)
	rg.PUT("/films/:id/like/:userId", h.Like)
	rg.DELETE("/films/:id/like/:userId", h.Unlike)
}

// Create handles POST /api/v1/films
func (h *Handler) Create(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid film", errs)
		return
	}
	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// Update handles PUT /api/v1/films (id in body)
func (h *Handler) Update(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid film", errs)
		return
	}
	f, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// List handles GET /api/v1/films
func (h *Handler) List(c *gin.Context) {
	films, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

// Get handles GET /api/v1/films/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Delete handles DELETE /api/v1/films/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Like handles PUT /api/v1/films/:id/like/:userId
func (h *Handler) Like(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.service.Like(c.Request.Context(), filmID, userID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"film_id": filmID, "user_id": userID})
}

// Unlike handles DELETE /api/v1/films/:id/like/:userId
func (h *Handler) Unlike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.service.Unlike(c.Request.Context(), filmID, userID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"film_id": filmID, "user_id": userID})
}

// Popular handles GET /api/v1/films/popular?count=&genreId=&year=
func (h *Handler) Popular(c *gin.Context) {
	var filter repository.PopularFilter
	if count := c.Query("count"); count != "" {
		if v, err := strconv.Atoi(count); err == nil {
			filter.Count = v
		}
	}
	if genre := c.Query("genreId"); genre != "" {
		v, err := strconv.ParseInt(genre, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid genreId")
			return
		}
		filter.GenreID = &v
	}
	if year := c.Query("year"); year != "" {
		v, err := strconv.Atoi(year)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid year")
			return
		}
		filter.Year = &v
	}
	films, err := h.service.Popular(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

// CommonWithFriend handles GET /api/v1/films/common?userId=&friendId=
func (h *Handler) CommonWithFriend(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid userId")
		return
	}
	friendID, err := strconv.ParseInt(c.Query("friendId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid friendId")
		return
	}
	films, err := h.service.CommonWithFriend(c.Request.Context(), userID, friendID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

// Search handles GET /api/v1/films/search?query=&by=
func (h *Handler) Search(c *gin.Context) {
	films, err := h.service.Search(c.Request.Context(), c.Query("query"), c.Query("by"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

// ByDirector handles GET /api/v1/films/director/:directorId?sortBy=
func (h *Handler) ByDirector(c *gin.Context) {
	directorID, ok := pathID(c, "directorId")
	if !ok {
		return
	}
	films, err := h.service.ByDirector(c.Request.Context(), directorID, c.Query("sortBy"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFilmNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrDirectorNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAttributeUnknown),
		errors.Is(err, ErrInvalidSearchBy),
		errors.Is(err, ErrInvalidSortBy):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
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
