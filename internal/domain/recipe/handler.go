package recipe

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cookbook/internal/middleware"
	"cookbook/internal/pkg/images"
	"cookbook/internal/pkg/response"
	"cookbook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List recipes, newest first
// @Tags Recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param author query int false "Filter by author ID"
// @Param tags query []string false "Filter by tag slugs (any match)"
// @Param is_favorited query bool false "Only the requester's favorites"
// @Param is_in_shopping_cart query bool false "Only the requester's cart"
// @Success 200 {object} map[string]interface{}
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	page, limit := pagination(c)
	f := Filter{
		TagSlugs:    c.QueryArray("tags"),
		Favorited:   truthy(c.Query("is_favorited")),
		InCart:      truthy(c.Query("is_in_shopping_cart")),
		RequesterID: middleware.RequesterID(c),
	}
	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseInt(author, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid author ID")
			return
		}
		f.AuthorID = id
	}

	recipes, total, err := h.service.List(c.Request.Context(), f, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list recipes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"recipes": recipes,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// Get godoc
// @Summary Get a recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} Response
// @Router /recipes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), middleware.RequesterID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Create godoc
// @Summary Create a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body WriteRequest true "Recipe payload"
// @Success 201 {object} Response
// @Router /recipes [post]
func (h *Handler) Create(c *gin.Context) {
	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.RequesterID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Update godoc
// @Summary Update a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param body body WriteRequest true "Recipe payload"
// @Success 200 {object} Response
// @Router /recipes/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := bindWriteRequest(c)
	if !ok {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), middleware.RequesterID(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.RequesterID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrRecipeNotFound:
		response.Error(c, http.StatusNotFound, "RECIPE_NOT_FOUND", err.Error())
	case ErrNotAuthor:
		response.Error(c, http.StatusForbidden, "NOT_AUTHOR", err.Error())
	case ErrNoIngredients, ErrInvalidAmount, ErrDuplicateIngredient,
		ErrNoTags, ErrDuplicateTag, ErrMissingImage,
		ErrUnknownIngredient, ErrUnknownTag:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case images.ErrEmptyImage, images.ErrInvalidDataURI, images.ErrUnsupportedFormat:
		response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "RECIPE_FAILED", "Failed to process recipe")
	}
}

func bindWriteRequest(c *gin.Context) (WriteRequest, bool) {
	var req WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return WriteRequest{}, false
	}
	if violations := validator.Validate(req); violations != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe payload", violations)
		return WriteRequest{}, false
	}
	return req, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
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

func truthy(v string) bool {
	return v == "1" || v == "true"
}
