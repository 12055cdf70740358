package routes

import (
	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	CategoryHandler   handlers.CategoryHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	UserRecipeHandler handlers.UserRecipeHandler
	UnitHandler       handlers.UnitHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Categories()
	c.Ingredients()
	c.Recipes()
	c.UserRecipes()
	c.Units()
	c.GuestRoute()
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/ingredient_categories")
	{
		categories.Post("", c.CategoryHandler.CreateCategory)
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:id", c.CategoryHandler.GetCategoryByID)
		categories.Put("/:id", c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredientByID)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) UserRecipes() {
	userRecipes := c.App.Group("/api/v1/user_recipes")
	{
		userRecipes.Post("", c.UserRecipeHandler.CreateUserRecipe)
		userRecipes.Get("", c.UserRecipeHandler.GetUserRecipes)
		userRecipes.Get("/:id", c.UserRecipeHandler.GetUserRecipeByID)
		userRecipes.Put("/:id", c.UserRecipeHandler.UpdateUserRecipe)
		userRecipes.Delete("/:id", c.UserRecipeHandler.DeleteUserRecipe)
	}
}

func (c *Config) Units() {
	units := c.App.Group("/api/v1/units")
	{
		units.Post("", c.UnitHandler.CreateUnit)
		units.Get("", c.UnitHandler.GetUnits)
		units.Get("/:id", c.UnitHandler.GetUnitByID)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
