package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"cookbook/internal/config"
	"cookbook/internal/database"
	"cookbook/internal/domain/cart"
	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/favorite"
	"cookbook/internal/domain/recipe"
	"cookbook/internal/domain/user"
	"cookbook/internal/middleware"
	"cookbook/internal/pkg/images"
	"cookbook/internal/pkg/jwt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)
	imageStore := images.NewStore(cfg.MediaDir)

	userRepo := user.NewRepository(db)
	subRepo := user.NewSubscriptionRepository(db)
	tagRepo := catalog.NewTagRepository(db)
	ingredientRepo := catalog.NewIngredientRepository(db)
	recipeRepo := recipe.NewRepository(db)
	favoriteRepo := favorite.NewRepository(db)
	cartRepo := cart.NewRepository(db)

	userService := user.NewService(userRepo, subRepo, recipeRepo, jwtService)
	recipeService := recipe.NewService(
		recipeRepo, tagRepo, ingredientRepo,
		userRepo, userService, favoriteRepo, cartRepo, imageStore,
	)
	favoriteService := favorite.NewService(favoriteRepo, recipeRepo)
	cartService := cart.NewService(cartRepo, recipeRepo)

	userHandler := user.NewHandler(userService)
	catalogHandler := catalog.NewHandler(tagRepo, ingredientRepo)
	recipeHandler := recipe.NewHandler(recipeService)
	favoriteHandler := favorite.NewHandler(favoriteService)
	cartHandler := cart.NewHandler(cartService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Static("/media", cfg.MediaDir)

	api := r.Group("/api/v1")

	public := api.Group("")
	userHandler.RegisterPublicRoutes(public)
	catalogHandler.RegisterRoutes(public)

	optional := api.Group("")
	optional.Use(middleware.OptionalJWTAuth(jwtService))
	userHandler.RegisterOptionalRoutes(optional)
	recipeHandler.RegisterOptionalRoutes(optional)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	userHandler.RegisterProtectedRoutes(protected)
	recipeHandler.RegisterProtectedRoutes(protected)
	favoriteHandler.RegisterRoutes(protected)
	cartHandler.RegisterRoutes(protected)

	log.Printf("Starting server on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&recipe.Recipe{}, "Tags", &recipe.RecipeTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&user.User{},
		&user.Subscription{},
		&catalog.Tag{},
		&catalog.Ingredient{},
		&recipe.Recipe{},
		&recipe.RecipeIngredient{},
		&recipe.RecipeTag{},
		&favorite.Favorite{},
		&cart.ShoppingCart{},
	)
}
