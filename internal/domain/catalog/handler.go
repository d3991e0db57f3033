package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cookbook/internal/pkg/response"
)

type Handler struct {
	tags        TagRepository
	ingredients IngredientRepository
}

func NewHandler(tags TagRepository, ingredients IngredientRepository) *Handler {
	return &Handler{tags: tags, ingredients: ingredients}
}

// ListTags godoc
// @Summary List all tags
// @Tags Catalog
// @Produce json
// @Success 200 {array} Tag
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

// GetTag godoc
// @Summary Get a tag
// @Tags Catalog
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} Tag
// @Router /tags/{id} [get]
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tag, err := h.tags.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrTagNotFound {
			response.Error(c, http.StatusNotFound, "TAG_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load tag")
		return
	}
	response.Success(c, http.StatusOK, tag)
}

// ListIngredients godoc
// @Summary List ingredients, optionally filtered by name prefix
// @Tags Catalog
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} Ingredient
// @Router /ingredients [get]
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load ingredients")
		return
	}
	response.Success(c, http.StatusOK, ingredients)
}

// GetIngredient godoc
// @Summary Get an ingredient
// @Tags Catalog
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} Ingredient
// @Router /ingredients/{id} [get]
func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ing, err := h.ingredients.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrIngredientNotFound {
			response.Error(c, http.StatusNotFound, "INGREDIENT_NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load ingredient")
		return
	}
	response.Success(c, http.StatusOK, ing)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
