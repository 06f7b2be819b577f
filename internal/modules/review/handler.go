package review

import (
	"context"
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
	rg.POST("/reviews", h.Create)
	rg.PUT("/reviews", h.Update)
	rg.GET("/reviews", h.List)
	rg.GET("/reviews/:id", h.Get)
	rg.DELETE("/reviews/:id", h.Delete)
	rg.PUT("/reviews/:id/like/:userId", h.Like)
	rg.DELETE("/reviews/:id/like/:userId", h.DeleteLike)
	rg.PUT("/reviews/:id/dislike/:userId", h.Dislike)
	rg.DELETE("/reviews/:id/dislike/:userId", h.DeleteDislike)
}

// Create handles POST /api/v1/reviews
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}
	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

// Update handles PUT /api/v1/reviews (id in body)
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}
	rv, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// List handles GET /api/v1/reviews?filmId=&count=
func (h *Handler) List(c *gin.Context) {
	var filmID int64
	if raw := c.Query("filmId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid filmId")
			return
		}
		filmID = v
	}
	var count int
	if raw := c.Query("count"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			count = v
		}
	}
	reviews, err := h.service.List(c.Request.Context(), filmID, count)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

// Get handles GET /api/v1/reviews/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// Delete handles DELETE /api/v1/reviews/:id
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

// Like handles PUT /api/v1/reviews/:id/like/:userId
func (h *Handler) Like(c *gin.Context) {
	h.gradeRoute(c, h.service.Like)
}

// Dislike handles PUT /api/v1/reviews/:id/dislike/:userId
func (h *Handler) Dislike(c *gin.Context) {
	h.gradeRoute(c, h.service.Dislike)
}

// DeleteLike handles DELETE /api/v1/reviews/:id/like/:userId
func (h *Handler) DeleteLike(c *gin.Context) {
	h.gradeRoute(c, h.service.DeleteLike)
}

// DeleteDislike handles DELETE /api/v1/reviews/:id/dislike/:userId
func (h *Handler) DeleteDislike(c *gin.Context) {
	h.gradeRoute(c, h.service.DeleteDislike)
}

func (h *Handler) gradeRoute(c *gin.Context, op func(ctx context.Context, reviewID, userID int64) error) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := op(c.Request.Context(), reviewID, userID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"review_id": reviewID, "user_id": userID})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFilmNotFound):
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
