package user

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// usernamePattern mirrors the allowed-character rule for usernames:
// word characters plus . @ + -
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

// RecipeSource is implemented by the recipe repository; it supplies the
// minimal recipe shapes and counts for subscription responses.
type RecipeSource interface {
	AuthorRecipes(ctx context.Context, authorID int64, limit int) ([]AuthorRecipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type Service struct {
	users   Repository
	subs    SubscriptionRepository
	recipes RecipeSource
	jwt     tokenIssuer
}

func NewService(users Repository, subs SubscriptionRepository, recipes RecipeSource, jwt tokenIssuer) *Service {
	return &Service{users: users, subs: subs, recipes: recipes, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, "", ErrInvalidUsername
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if err != ErrUserNotFound {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == ErrUserNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Profile builds the user read shape for one user. requesterID == 0 means
// anonymous, which always yields is_subscribed=false.
func (s *Service) Profile(ctx context.Context, requesterID, userID int64) (Response, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Response{}, err
	}
	subscribed, err := s.isSubscribed(ctx, requesterID, u.ID)
	if err != nil {
		return Response{}, err
	}
	return toResponse(u, subscribed), nil
}

func (s *Service) ListProfiles(ctx context.Context, requesterID int64, page, limit int) ([]Response, int64, error) {
	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Response, 0, len(users))
	for _, u := range users {
		subscribed, err := s.isSubscribed(ctx, requesterID, u.ID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, toResponse(u, subscribed))
	}
	return out, total, nil
}

// Subscribe adds the edge requester → author and returns the author's
// augmented profile. Order of failures: unknown author (404), self (400),
// duplicate (400).
func (s *Service) Subscribe(ctx context.Context, requesterID, authorID int64, recipesLimit int) (SubscriptionResponse, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	if requesterID == authorID {
		return SubscriptionResponse{}, ErrSelfSubscription
	}

	exists, err := s.subs.Exists(ctx, requesterID, authorID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if exists {
		return SubscriptionResponse{}, ErrAlreadySubscribed
	}

	if err := s.subs.Create(ctx, &Subscription{UserID: requesterID, AuthorID: authorID}); err != nil {
		return SubscriptionResponse{}, err
	}

	return s.authorProfile(ctx, requesterID, author, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, requesterID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.subs.Delete(ctx, requesterID, authorID)
}

// Subscriptions lists the authors the requester follows, each with their
// recipes truncated to recipesLimit (0 = no truncation).
func (s *Service) Subscriptions(ctx context.Context, requesterID int64, recipesLimit, page, limit int) ([]SubscriptionResponse, int64, error) {
	authors, total, err := s.subs.ListAuthors(ctx, requesterID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		resp, err := s.authorProfile(ctx, requesterID, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *Service) authorProfile(ctx context.Context, requesterID int64, author *User, recipesLimit int) (SubscriptionResponse, error) {
	subscribed, err := s.isSubscribed(ctx, requesterID, author.ID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	resp := SubscriptionResponse{
		Response: toResponse(author, subscribed),
		Recipes:  []AuthorRecipe{},
	}

	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	resp.RecipesCount = count

	if requesterID != 0 {
		recipes, err := s.recipes.AuthorRecipes(ctx, author.ID, recipesLimit)
		if err != nil {
			return SubscriptionResponse{}, err
		}
		resp.Recipes = recipes
	}

	return resp, nil
}

func (s *Service) isSubscribed(ctx context.Context, requesterID, authorID int64) (bool, error) {
	if requesterID == 0 {
		return false, nil
	}
	return s.subs.Exists(ctx, requesterID, authorID)
}
