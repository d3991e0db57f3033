package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cookbook/internal/domain/recipe"
	"cookbook/internal/middleware"
	"cookbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// @Summary Add a recipe to favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} recipe.Minimal
// @Router /recipes/{id}/favorite [post]
func (h *Handler) Add(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	m, err := h.service.Add(c.Request.Context(), middleware.RequesterID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Remove godoc
// @Summary Remove a recipe from favorites
// @Tags Favorites
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id}/favorite [delete]
func (h *Handler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.RequesterID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case recipe.ErrRecipeNotFound:
		response.Error(c, http.StatusNotFound, "RECIPE_NOT_FOUND", err.Error())
	case ErrAlreadyFavorited:
		response.Error(c, http.StatusBadRequest, "ALREADY_FAVORITED", err.Error())
	case ErrNotFavorited:
		response.Error(c, http.StatusBadRequest, "NOT_FAVORITED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "FAVORITE_FAILED", "Failed to update favorites")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}
