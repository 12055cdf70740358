package config

import (
	"os"
	"time"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/routes"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/internal/utils"
	"recipe-catalog/internal/utils/storage"
	"recipe-catalog/pkg/category"
	"recipe-catalog/pkg/ingredient"
	"recipe-catalog/pkg/recipe"
	"recipe-catalog/pkg/unit"
	"recipe-catalog/pkg/userrecipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	userRecipeRepository := userrecipe.NewUserRecipeRepository(db)
	unitRepository := unit.NewUnitRepository(db)

	// Service
	categoryService := category.NewCategoryService(categoryRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	userRecipeService := userrecipe.NewUserRecipeService(userRecipeRepository)
	unitService := unit.NewUnitService(unitRepository)

	// Handler
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	userRecipeHandler := handlers.NewUserRecipeHandler(userRecipeService, validator)
	unitHandler := handlers.NewUnitHandler(unitService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		CategoryHandler:   categoryHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		UserRecipeHandler: userRecipeHandler,
		UnitHandler:       unitHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()

	return app, nil
}
