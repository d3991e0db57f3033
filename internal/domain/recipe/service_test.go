package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cookbook/internal/database"
	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/user"
)

type stubImages struct{}

func (stubImages) Save(string) (string, error) { return "stored.png", nil }

type stubIssuer struct{}

func (stubIssuer) GenerateToken(int64) (string, error) { return "token", nil }

// favoriteTable and cartTable stand in for the real join entities so the
// package under test does not import its dependents.
type favoriteTable struct {
	ID       int64 `gorm:"primaryKey"`
	UserID   int64 `gorm:"uniqueIndex:idx_fav_pair"`
	RecipeID int64 `gorm:"uniqueIndex:idx_fav_pair"`
}

func (favoriteTable) TableName() string { return "favorites" }

type cartTable struct {
	ID       int64 `gorm:"primaryKey"`
	UserID   int64 `gorm:"uniqueIndex:idx_cart_pair"`
	RecipeID int64 `gorm:"uniqueIndex:idx_cart_pair"`
}

func (cartTable) TableName() string { return "shopping_carts" }

type pairRepo struct {
	db    *gorm.DB
	table string
}

func (r pairRepo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

type fixture struct {
	db     *gorm.DB
	svc    *Service
	author user.User
	other  user.User
	mod    user.User

	salt  catalog.Ingredient
	sugar catalog.Ingredient

	breakfast catalog.Tag
	lunch     catalog.Tag
	dinner    catalog.Tag
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.SetupJoinTable(&Recipe{}, "Tags", &RecipeTag{}))
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&user.Subscription{},
		&catalog.Tag{},
		&catalog.Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&RecipeTag{},
		&favoriteTable{},
		&cartTable{},
	))

	f := &fixture{
		db:        db,
		author:    user.User{Email: "chef@example.com", Username: "chef", PasswordHash: "x"},
		other:     user.User{Email: "guest@example.com", Username: "guest", PasswordHash: "x"},
		mod:       user.User{Email: "mod@example.com", Username: "mod", PasswordHash: "x", IsStaff: true},
		salt:      catalog.Ingredient{Name: "salt", MeasurementUnit: "g"},
		sugar:     catalog.Ingredient{Name: "sugar", MeasurementUnit: "g"},
		breakfast: catalog.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		lunch:     catalog.Tag{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
		dinner:    catalog.Tag{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}
	require.NoError(t, db.Create(&f.author).Error)
	require.NoError(t, db.Create(&f.other).Error)
	require.NoError(t, db.Create(&f.mod).Error)
	require.NoError(t, db.Create(&f.salt).Error)
	require.NoError(t, db.Create(&f.sugar).Error)
	require.NoError(t, db.Create(&f.breakfast).Error)
	require.NoError(t, db.Create(&f.lunch).Error)
	require.NoError(t, db.Create(&f.dinner).Error)

	userRepo := user.NewRepository(db)
	subRepo := user.NewSubscriptionRepository(db)
	recipeRepo := NewRepository(db)
	userService := user.NewService(userRepo, subRepo, recipeRepo, stubIssuer{})

	f.svc = NewService(
		recipeRepo,
		catalog.NewTagRepository(db),
		catalog.NewIngredientRepository(db),
		userRepo,
		userService,
		pairRepo{db: db, table: "favorites"},
		pairRepo{db: db, table: "shopping_carts"},
		stubImages{},
	)
	return f
}

func (f *fixture) validRequest() WriteRequest {
	return WriteRequest{
		Ingredients: []IngredientAmount{{ID: f.salt.ID, Amount: 10}},
		Tags:        []int64{f.breakfast.ID},
		Image:       "data:image/png;base64,aGk=",
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 15,
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*WriteRequest)
		wantErr error
	}{
		{"no ingredients", func(r *WriteRequest) { r.Ingredients = nil }, ErrNoIngredients},
		{"amount below minimum", func(r *WriteRequest) { r.Ingredients[0].Amount = 0 }, ErrInvalidAmount},
		{"amount above maximum", func(r *WriteRequest) { r.Ingredients[0].Amount = 10000 }, ErrInvalidAmount},
		{"duplicate ingredient", func(r *WriteRequest) {
			r.Ingredients = append(r.Ingredients, IngredientAmount{ID: f.salt.ID, Amount: 5})
		}, ErrDuplicateIngredient},
		{"no tags", func(r *WriteRequest) { r.Tags = nil }, ErrNoTags},
		{"duplicate tag", func(r *WriteRequest) { r.Tags = []int64{f.breakfast.ID, f.breakfast.ID} }, ErrDuplicateTag},
		{"missing image", func(r *WriteRequest) { r.Image = "" }, ErrMissingImage},
		{"unknown ingredient", func(r *WriteRequest) { r.Ingredients[0].ID = 999 }, ErrUnknownIngredient},
		{"unknown tag", func(r *WriteRequest) { r.Tags = []int64{999} }, ErrUnknownTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.validRequest()
			tt.mutate(&req)
			_, err := f.svc.Create(ctx, f.author.ID, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAmountBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, amount := range []int{1, 9999} {
		req := f.validRequest()
		req.Ingredients[0].Amount = amount

		resp, err := f.svc.Create(ctx, f.author.ID, req)
		require.NoError(t, err)
		require.Len(t, resp.Ingredients, 1)
		assert.Equal(t, amount, resp.Ingredients[0].Amount)
	}
}

func TestGetAnonymousBooleansFalseDespiteMarks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.db.Create(&favoriteTable{UserID: f.other.ID, RecipeID: created.ID}).Error)
	require.NoError(t, f.db.Create(&cartTable{UserID: f.other.ID, RecipeID: created.ID}).Error)

	resp, err := f.svc.Get(ctx, 0, created.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsFavorited)
	assert.False(t, resp.IsInShoppingCart)

	resp, err = f.svc.Get(ctx, f.other.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsFavorited)
	assert.True(t, resp.IsInShoppingCart)
}

func TestCreateRendersFullShape(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), f.author.ID, f.validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", resp.Name)
	assert.Equal(t, "/media/stored.png", resp.Image)
	assert.Equal(t, 15, resp.CookingTime)
	assert.Equal(t, "chef", resp.Author.Username)
	assert.False(t, resp.Author.IsSubscribed)
	assert.False(t, resp.IsFavorited)
	assert.False(t, resp.IsInShoppingCart)

	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "salt", resp.Ingredients[0].Name)
	assert.Equal(t, "g", resp.Ingredients[0].MeasurementUnit)
	assert.Equal(t, 10, resp.Ingredients[0].Amount)

	require.Len(t, resp.Tags, 1)
	assert.Equal(t, "breakfast", resp.Tags[0].Slug)
}

func TestUpdateReplacesIngredientAndTagSets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.validRequest()
	req.Tags = []int64{f.breakfast.ID, f.lunch.ID}
	created, err := f.svc.Create(ctx, f.author.ID, req)
	require.NoError(t, err)

	update := f.validRequest()
	update.Image = ""
	update.Ingredients = []IngredientAmount{{ID: f.sugar.ID, Amount: 42}}
	update.Tags = []int64{f.lunch.ID, f.dinner.ID}

	resp, err := f.svc.Update(ctx, f.author.ID, created.ID, update)
	require.NoError(t, err)

	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "sugar", resp.Ingredients[0].Name)
	assert.Equal(t, 42, resp.Ingredients[0].Amount)

	slugs := make([]string, 0, len(resp.Tags))
	for _, tag := range resp.Tags {
		slugs = append(slugs, tag.Slug)
	}
	assert.ElementsMatch(t, []string{"lunch", "dinner"}, slugs)

	var joinCount int64
	require.NoError(t, f.db.Model(&RecipeTag{}).Where("recipe_id = ?", created.ID).Count(&joinCount).Error)
	assert.EqualValues(t, 2, joinCount)
}

func TestUpdateKeepsImageWhenEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	update := f.validRequest()
	update.Image = ""
	resp, err := f.svc.Update(ctx, f.author.ID, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.Image, resp.Image)
}

func TestUpdatePermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.other.ID, created.ID, f.validRequest())
	assert.ErrorIs(t, err, ErrNotAuthor)

	_, err = f.svc.Update(ctx, f.mod.ID, created.ID, f.validRequest())
	assert.NoError(t, err)
}

func TestDeleteByNonAuthorForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.other.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestDeleteRemovesRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.author.ID, created.ID))

	_, err = f.svc.Get(ctx, 0, created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	listed, total, err := f.svc.List(ctx, Filter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestListFilterByTagSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.validRequest()
	req.Tags = []int64{f.breakfast.ID}
	breakfastRecipe, err := f.svc.Create(ctx, f.author.ID, req)
	require.NoError(t, err)

	req = f.validRequest()
	req.Tags = []int64{f.dinner.ID}
	_, err = f.svc.Create(ctx, f.author.ID, req)
	require.NoError(t, err)

	listed, total, err := f.svc.List(ctx, Filter{TagSlugs: []string{"breakfast"}}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, breakfastRecipe.ID, listed[0].ID)
}

func TestListFilterByAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.other.ID, f.validRequest())
	require.NoError(t, err)

	listed, total, err := f.svc.List(ctx, Filter{AuthorID: f.author.ID}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, mine.ID, listed[0].ID)
}

func TestListFavoritedFilterIgnoredForAnonymous(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	_, total, err := f.svc.List(ctx, Filter{Favorited: true}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestListFavoritedFilterForRequester(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	liked, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.db.Create(&favoriteTable{UserID: f.other.ID, RecipeID: liked.ID}).Error)

	listed, total, err := f.svc.List(ctx, Filter{Favorited: true, RequesterID: f.other.ID}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, liked.ID, listed[0].ID)
	assert.True(t, listed[0].IsFavorited)
}

func TestGetRendersSubscribedAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.db.Create(&user.Subscription{UserID: f.other.ID, AuthorID: f.author.ID}).Error)

	resp, err := f.svc.Get(ctx, f.other.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.Author.IsSubscribed)
}
