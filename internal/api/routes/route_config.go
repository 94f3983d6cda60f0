package routes

import (
	"Recipe-Hub/internal/api/handlers"
	"Recipe-Hub/internal/middleware"
	"Recipe-Hub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	TagHandler        handlers.TagHandler
	ReviewHandler     handlers.ReviewHandler
	CommentHandler    handlers.CommentHandler
	CollectionHandler handlers.CollectionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Categories()
	c.Tags()
	c.Collections()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// public catalog, published recipes only
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Get("/featured", c.RecipeHandler.GetFeaturedRecipes)
	recipes.Get("/trending", c.RecipeHandler.GetTrendingRecipes)
	recipes.Get("/slug/:slug", c.RecipeHandler.GetRecipeBySlug)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/reviews", c.ReviewHandler.GetRecipeReviews)
	recipes.Get("/:id/comments", c.CommentHandler.GetRecipeComments)

	// authoring
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)

	// publishing and curation flags are admin only
	admin := c.Middleware.AdminMiddleware()
	recipes.Patch("/:id/published", auth, admin, c.RecipeHandler.SetPublished)
	recipes.Patch("/:id/featured", auth, admin, c.RecipeHandler.SetFeatured)
	recipes.Patch("/:id/trending", auth, admin, c.RecipeHandler.SetTrending)

	// the admin catalog can see drafts
	adminRecipes := c.App.Group("/api/v1/admin/recipes", auth, admin)
	adminRecipes.Get("", c.RecipeHandler.GetAllRecipes)
	adminRecipes.Get("/:id", c.RecipeHandler.GetRecipeDetailAdmin)

	// reviews and comments
	reviews := c.App.Group("/api/v1/reviews", auth)
	reviews.Post("", c.ReviewHandler.CreateReview)
	reviews.Patch("/:id", c.ReviewHandler.UpdateReview)
	reviews.Delete("/:id", c.ReviewHandler.DeleteReview)

	comments := c.App.Group("/api/v1/comments", auth)
	comments.Post("", c.CommentHandler.CreateComment)
	comments.Patch("/:id", c.CommentHandler.UpdateComment)
	comments.Delete("/:id", c.CommentHandler.DeleteComment)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")

	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/all", c.CategoryHandler.GetAllCategories)
	categories.Get("/slug/:slug", c.CategoryHandler.GetCategoryBySlug)

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminMiddleware()
	categories.Post("", auth, admin, c.CategoryHandler.CreateCategory)
	categories.Patch("/:id", auth, admin, c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", auth, admin, c.CategoryHandler.DeleteCategory)
}

func (c *Config) Tags() {
	tags := c.App.Group("/api/v1/tags")

	tags.Get("", c.TagHandler.GetTags)
	tags.Get("/all", c.TagHandler.GetAllTags)

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminMiddleware()
	tags.Post("", auth, admin, c.TagHandler.CreateTag)
	tags.Patch("/:id", auth, admin, c.TagHandler.UpdateTag)
	tags.Delete("/:id", auth, admin, c.TagHandler.DeleteTag)
}

func (c *Config) Collections() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	collections := c.App.Group("/api/v1/collections", auth)

	collections.Get("", c.CollectionHandler.GetMyCollections)
	collections.Post("", c.CollectionHandler.CreateCollection)
	collections.Patch("/:id", c.CollectionHandler.UpdateCollection)
	collections.Delete("/:id", c.CollectionHandler.DeleteCollection)

	saved := c.App.Group("/api/v1/saved-recipes", auth)
	saved.Get("", c.CollectionHandler.GetSavedRecipes)
	saved.Post("", c.CollectionHandler.SaveRecipe)
	saved.Delete("/:id", c.CollectionHandler.UnsaveRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
