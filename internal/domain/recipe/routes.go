package recipe

import "github.com/gin-gonic/gin"

// RegisterOptionalRoutes are public reads; requester identity, when
// present, scopes the is_favorited and is_in_shopping_cart fields.
func (h *Handler) RegisterOptionalRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.List)
	rg.GET("/recipes/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes", h.Create)
	rg.PATCH("/recipes/:id", h.Update)
	rg.DELETE("/recipes/:id", h.Delete)
}
