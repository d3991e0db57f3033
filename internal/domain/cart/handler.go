package cart

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
// @Summary Add a recipe to the shopping cart
// @Tags ShoppingCart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} recipe.Minimal
// @Router /recipes/{id}/shopping_cart [post]
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
// @Summary Remove a recipe from the shopping cart
// @Tags ShoppingCart
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id}/shopping_cart [delete]
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

// Download godoc
// @Summary Download the aggregated shopping list as a text file
// @Tags ShoppingCart
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	text, err := h.service.ShoppingList(c.Request.Context(), middleware.RequesterID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Failed to build shopping list")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case recipe.ErrRecipeNotFound:
		response.Error(c, http.StatusNotFound, "RECIPE_NOT_FOUND", err.Error())
	case ErrAlreadyInCart:
		response.Error(c, http.StatusBadRequest, "ALREADY_IN_CART", err.Error())
	case ErrNotInCart:
		response.Error(c, http.StatusBadRequest, "NOT_IN_CART", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "CART_FAILED", "Failed to update shopping cart")
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
