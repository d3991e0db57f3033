package recipe

import (
	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/user"
)

// IngredientAmount is one ingredient reference in a write payload.
// Amount bounds are enforced by the service.
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// WriteRequest is the payload for both create and update. Image carries a
// base64 data URI; it may be empty on update to keep the stored image.
type WriteRequest struct {
	Ingredients []IngredientAmount `json:"ingredients"`
	Tags        []int64            `json:"tags"`
	Image       string             `json:"image"`
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"required,min=1"`
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Response is the full recipe read shape. IsFavorited and IsInShoppingCart
// are derived per request and always false for anonymous readers.
type Response struct {
	ID               int64                `json:"id"`
	Tags             []catalog.Tag        `json:"tags"`
	Author           user.Response        `json:"author"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
}

// Minimal is the compact recipe shape used by favorites and the
// shopping cart.
type Minimal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func minimalOf(r *Recipe) Minimal {
	return Minimal{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}
