package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cookbook/internal/database"
	"cookbook/internal/domain/recipe"
	"cookbook/internal/domain/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &recipe.Recipe{}, &Favorite{}))
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB) *recipe.Recipe {
	t.Helper()
	author := user.User{Email: "chef@example.com", Username: "chef", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	rec := recipe.Recipe{
		AuthorID:    author.ID,
		Name:        "Pancakes",
		Text:        "Mix and fry",
		Image:       "/media/pancakes.png",
		CookingTime: 15,
	}
	require.NoError(t, db.Create(&rec).Error)
	return &rec
}

func TestAddReturnsMinimalShape(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db), recipe.NewRepository(db))
	rec := seedRecipe(t, db)

	m, err := svc.Add(context.Background(), 7, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, m.ID)
	assert.Equal(t, "Pancakes", m.Name)
	assert.Equal(t, "/media/pancakes.png", m.Image)
	assert.Equal(t, 15, m.CookingTime)
}

func TestAddUnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db), recipe.NewRepository(db))

	_, err := svc.Add(context.Background(), 7, 999)
	assert.ErrorIs(t, err, recipe.ErrRecipeNotFound)
}

func TestAddTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db), recipe.NewRepository(db))
	rec := seedRecipe(t, db)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, rec.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, 7, rec.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestRemoveAbsentFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db), recipe.NewRepository(db))
	rec := seedRecipe(t, db)

	err := svc.Remove(context.Background(), 7, rec.ID)
	assert.ErrorIs(t, err, ErrNotFavorited)
}

func TestRemoveThenExistsFalse(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, recipe.NewRepository(db))
	rec := seedRecipe(t, db)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, rec.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, 7, rec.ID))

	exists, err := repo.Exists(ctx, 7, rec.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
