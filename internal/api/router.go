// Package api wires the HTTP surface: routes, middleware, and error mapping.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/4lucard7/BlogApi/docs"
	"github.com/4lucard7/BlogApi/internal/api/handler"
	"github.com/4lucard7/BlogApi/internal/api/middleware"
	"github.com/4lucard7/BlogApi/internal/core/ports"
	"github.com/4lucard7/BlogApi/internal/core/service"
	"github.com/4lucard7/BlogApi/internal/core/token"
	mongorepo "github.com/4lucard7/BlogApi/internal/infrastructure/db/mongo"
	redisrepo "github.com/4lucard7/BlogApi/internal/infrastructure/db/redis"
)

// Deps carries the external dependencies the router needs.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Blobs     ports.BlobStore
	JWTSecret string
	Uploads   handler.UploadConfig
	// FeedPageSize is the fixed page size for post feed listings.
	FeedPageSize int
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blogapi"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	postRepo := mongorepo.NewPostRepository(deps.DB)
	commentRepo := mongorepo.NewCommentRepository(deps.DB)
	categoryRepo := mongorepo.NewCategoryRepository(deps.DB)
	eventRepo := mongorepo.NewEventRepository(deps.DB)
	contactRepo := mongorepo.NewContactRepository(deps.DB)
	counts := redisrepo.NewCountCache(deps.Redis)

	// --- Services ---
	codec := token.NewCodec(deps.JWTSecret)
	authService := service.NewAuthService(userRepo, codec, deps.Log)
	userService := service.NewUserService(userRepo, postRepo, commentRepo, deps.Blobs, counts, deps.Log)
	postService := service.NewPostService(postRepo, deps.Blobs, counts, deps.FeedPageSize, deps.Log)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, counts, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo, deps.Log)
	eventService := service.NewEventService(eventRepo, deps.Blobs, counts, deps.Log)
	contactService := service.NewContactService(contactRepo, counts, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, deps.Uploads)
	postHandler := handler.NewPostHandler(postService, deps.Uploads)
	commentHandler := handler.NewCommentHandler(commentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	eventHandler := handler.NewEventHandler(eventService, deps.Uploads)
	contactHandler := handler.NewContactHandler(contactService)

	auth := middleware.Auth(codec)
	admin := middleware.RequireAdmin()

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// --- Users ---
	api.GET("/users/profiles", userHandler.Profiles, auth, admin)
	api.GET("/users/count", userHandler.Count, auth, admin)
	api.GET("/users/profile/:id", userHandler.Profile)
	api.PUT("/users/profile/:id", userHandler.UpdateProfile, auth, middleware.RequireSelf("id"))
	api.DELETE("/users/profile/:id", userHandler.Delete, auth, middleware.RequireSelfOrAdmin("id"))
	api.POST("/users/profile/profile-photo-upload", userHandler.UploadProfilePhoto, auth)

	// --- Posts ---
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)
	api.POST("/posts", postHandler.Create, auth)
	api.GET("/posts/count", postHandler.Count, auth, admin)
	api.PUT("/posts/:id", postHandler.Update, auth)
	api.PUT("/posts/update-image/:id", postHandler.UpdateImage, auth)
	api.PUT("/posts/like/:id", postHandler.ToggleLike, auth)
	api.DELETE("/posts/:id", postHandler.Delete, auth)

	// --- Comments ---
	comments := api.Group("/comments", auth)
	comments.POST("", commentHandler.Create)
	comments.GET("", commentHandler.GetAll, admin)
	comments.GET("/count", commentHandler.Count, admin)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Categories ---
	api.GET("/categories", categoryHandler.GetAll)
	api.POST("/categories", categoryHandler.Create, auth, admin)
	api.DELETE("/categories/:id", categoryHandler.Delete, auth, admin)

	// --- Events ---
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.POST("/events", eventHandler.Create, auth, admin)
	api.GET("/events/count", eventHandler.Count, auth, admin)
	api.PUT("/events/:id", eventHandler.Update, auth, admin)
	api.DELETE("/events/:id", eventHandler.Delete, auth, admin)

	// --- Contact ---
	api.POST("/contact", contactHandler.Create)
	contact := api.Group("/contact", auth, admin)
	contact.GET("", contactHandler.GetAll)
	contact.GET("/count", contactHandler.Count)
	contact.GET("/:id", contactHandler.Get)
	contact.PUT("/:id", contactHandler.MarkRead)
	contact.DELETE("/:id", contactHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
