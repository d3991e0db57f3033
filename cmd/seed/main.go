package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"cookbook/internal/database"
	"cookbook/internal/domain/cart"
	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/favorite"
	"cookbook/internal/domain/recipe"
	"cookbook/internal/domain/user"
)

var defaultTags = []catalog.Tag{
	{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
}

func main() {
	csvPath := flag.String("ingredients", "data/ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(dsn) == "" {
		dsn = "cookbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedTags(db)
	seedIngredients(db, *csvPath)

	log.Println("Seeding completed")
}

func seedTags(db *gorm.DB) {
	for _, tag := range defaultTags {
		if err := db.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error; err != nil {
			log.Printf("Failed to seed tag %q: %v", tag.Slug, err)
			continue
		}
		log.Printf("Seeded tag %q", tag.Slug)
	}
}

// seedIngredients imports "name,measurement_unit" rows. Malformed rows
// are logged and skipped so one bad line does not abort the import.
func seedIngredients(db *gorm.DB, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Skipping ingredients import: %v", err)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	var created, skipped int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping malformed row: %v", err)
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		unit := strings.TrimSpace(row[1])
		if name == "" || unit == "" {
			skipped++
			continue
		}

		ing := catalog.Ingredient{Name: name, MeasurementUnit: unit}
		res := db.Where("name = ? AND measurement_unit = ?", name, unit).FirstOrCreate(&ing)
		if res.Error != nil {
			log.Printf("Failed to seed ingredient %q: %v", name, res.Error)
			skipped++
			continue
		}
		if res.RowsAffected > 0 {
			created++
		}
	}

	log.Printf("Ingredients imported: %d created, %d skipped", created, skipped)
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
