package user

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Response is the user read shape. IsSubscribed is derived per request:
// does the requester subscribe to this user; always false for anonymous.
type Response struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// AuthorRecipe is the minimal recipe shape embedded in subscription
// responses. Filled by the recipe package through RecipeSource.
type AuthorRecipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// SubscriptionResponse is an author profile augmented with their recipes.
// RecipesCount ignores the recipes_limit truncation.
type SubscriptionResponse struct {
	Response
	Recipes      []AuthorRecipe `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}

func toResponse(u *User, isSubscribed bool) Response {
	return Response{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
