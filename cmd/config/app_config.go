package config

import (
	"Recipe-Hub/internal/api/handlers"
	"Recipe-Hub/internal/api/routes"
	"Recipe-Hub/internal/middleware"
	"Recipe-Hub/internal/utils"
	"Recipe-Hub/pkg/category"
	"Recipe-Hub/pkg/collection"
	"Recipe-Hub/pkg/comment"
	"Recipe-Hub/pkg/jwt"
	"Recipe-Hub/pkg/recipe"
	"Recipe-Hub/pkg/review"
	"Recipe-Hub/pkg/tag"
	"Recipe-Hub/pkg/user"
	"os"
	"time"

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	tagRepository := tag.NewTagRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository)
	categoryService := category.NewCategoryService(categoryRepository)
	tagService := tag.NewTagService(tagRepository)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	commentService := comment.NewCommentService(commentRepository, recipeRepository)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		TagHandler:        tagHandler,
		ReviewHandler:     reviewHandler,
		CommentHandler:    commentHandler,
		CollectionHandler: collectionHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
