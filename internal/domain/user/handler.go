package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cookbook/internal/middleware"
	"cookbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidUsername:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrEmailTaken:
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", err.Error())
		case ErrUsernameTaken:
			response.Error(c, http.StatusBadRequest, "USERNAME_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  toResponse(u, false),
		"token": token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toResponse(u, false),
		"token": token,
	})
}

// Me returns the authenticated requester's own profile.
func (h *Handler) Me(c *gin.Context) {
	requesterID := middleware.RequesterID(c)
	resp, err := h.service.Profile(c.Request.Context(), requesterID, requesterID)
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// GetUser godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Profile(c.Request.Context(), middleware.RequesterID(c), id)
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := pagination(c)
	users, total, err := h.service.ListProfiles(c.Request.Context(), middleware.RequesterID(c), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Subscribe godoc
// @Summary Subscribe to an author
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Truncate the author's recipe list"
// @Success 201 {object} SubscriptionResponse
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Subscribe(
		c.Request.Context(),
		middleware.RequesterID(c),
		authorID,
		recipesLimit(c),
	)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
		case ErrSelfSubscription:
			response.Error(c, http.StatusBadRequest, "SELF_SUBSCRIPTION", err.Error())
		case ErrAlreadySubscribed:
			response.Error(c, http.StatusBadRequest, "ALREADY_SUBSCRIBED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "SUBSCRIBE_FAILED", "Failed to subscribe")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Unsubscribe godoc
// @Summary Unsubscribe from an author
// @Tags Subscriptions
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204
// @Router /users/{id}/subscribe [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Unsubscribe(c.Request.Context(), middleware.RequesterID(c), authorID)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
		case ErrNotSubscribed:
			response.Error(c, http.StatusBadRequest, "NOT_SUBSCRIBED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UNSUBSCRIBE_FAILED", "Failed to unsubscribe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscriptions godoc
// @Summary List subscribed-to authors
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param recipes_limit query int false "Truncate each author's recipe list"
// @Success 200 {object} map[string]interface{}
// @Router /users/subscriptions [get]
func (h *Handler) Subscriptions(c *gin.Context) {
	page, limit := pagination(c)
	subs, total, err := h.service.Subscriptions(
		c.Request.Context(),
		middleware.RequesterID(c),
		recipesLimit(c),
		page,
		limit,
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list subscriptions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscriptions": subs,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func recipesLimit(c *gin.Context) int {
	n, _ := strconv.Atoi(c.Query("recipes_limit"))
	if n < 0 {
		return 0
	}
	return n
}
