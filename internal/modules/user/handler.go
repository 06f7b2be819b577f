package user

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
	rg.POST("/users", h.Create)
	rg.PUT("/users", h.Update)
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
	rg.DELETE("/users/:id", h.Delete)
	rg.PUT("/users/:id/friends/:friendId", h.AddFriend)
	rg.DELETE("/users/:id/friends/:friendId", h.RemoveFriend)
	rg.GET("/users/:id/friends", h.Friends)
	rg.GET("/users/:id/friends/common/:otherId", h.CommonFriends)
	rg.GET("/users/:id/recommendations", h.Recommendations)
}

// Create handles POST /api/v1/users
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user", errs)
		return
	}
	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// Update handles PUT /api/v1/users (id in body)
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := pkgvalidator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user", errs)
		return
	}
	u, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// List handles GET /api/v1/users
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Get handles GET /api/v1/users/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Delete handles DELETE /api/v1/users/:id
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

// AddFriend handles PUT /api/v1/users/:id/friends/:friendId
func (h *Handler) AddFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	if err := h.service.AddFriend(c.Request.Context(), id, friendID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": id, "friend_id": friendID})
}

// RemoveFriend handles DELETE /api/v1/users/:id/friends/:friendId
func (h *Handler) RemoveFriend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}
	if err := h.service.RemoveFriend(c.Request.Context(), id, friendID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": id, "friend_id": friendID})
}

// Friends handles GET /api/v1/users/:id/friends
func (h *Handler) Friends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friends, err := h.service.Friends(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, friends)
}

// CommonFriends handles GET /api/v1/users/:id/friends/common/:otherId
func (h *Handler) CommonFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}
	common, err := h.service.CommonFriends(c.Request.Context(), id, otherID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, common)
}

// Recommendations handles GET /api/v1/users/:id/recommendations
func (h *Handler) Recommendations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	films, err := h.service.Recommendations(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSelfFriend):
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
