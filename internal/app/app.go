package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidtubeHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/cache"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vidtube/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger) {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// The notification queue is optional; the API runs without it.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notifications disabled: %v", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	// Initialize use cases
	var notifications usecase.NotificationPublisher
	if queueClient != nil {
		notifications = queueClient
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	userUseCase := usecase.NewUserUseCase(userRepo, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, s3Client, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, notifications, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, notifications, log)

	// Initialize HTTP handlers
	authHandler := vidtubeHTTP.NewAuthHandler(authUseCase, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	userHandler := vidtubeHTTP.NewUserHandler(userUseCase, log)
	videoHandler := vidtubeHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := vidtubeHTTP.NewCommentHandler(commentUseCase, log)
	tweetHandler := vidtubeHTTP.NewTweetHandler(tweetUseCase, log)
	playlistHandler := vidtubeHTTP.NewPlaylistHandler(playlistUseCase, log)
	subscriptionHandler := vidtubeHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	likeHandler := vidtubeHTTP.NewLikeHandler(likeUseCase, log)

	r := setupRouter(cfg, log, redisClient, jwtService,
		authHandler, userHandler, videoHandler, commentHandler,
		tweetHandler, playlistHandler, subscriptionHandler, likeHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Vidtube API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down Vidtube API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Vidtube API exited")
}

func setupRouter(
	cfg *config.Config,
	log *logger.Logger,
	redisClient *redis.Client,
	jwtService *jwt.Service,
	authHandler *vidtubeHTTP.AuthHandler,
	userHandler *vidtubeHTTP.UserHandler,
	videoHandler *vidtubeHTTP.VideoHandler,
	commentHandler *vidtubeHTTP.CommentHandler,
	tweetHandler *vidtubeHTTP.TweetHandler,
	playlistHandler *vidtubeHTTP.PlaylistHandler,
	subscriptionHandler *vidtubeHTTP.SubscriptionHandler,
	likeHandler *vidtubeHTTP.LikeHandler,
) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	auth := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)

	users := api.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh-token", authHandler.Refresh)
		users.POST("/logout", auth, authHandler.Logout)
		users.POST("/change-password", auth, authHandler.ChangePassword)
		users.GET("/current-user", auth, userHandler.GetCurrentUser)
		users.PATCH("/update-account", auth, userHandler.UpdateAccount)
		users.PATCH("/avatar", auth, userHandler.UpdateAvatar)
		users.PATCH("/cover-image", auth, userHandler.UpdateCoverImage)
		users.GET("/c/:username", optionalAuth, userHandler.GetChannelProfile)
		users.GET("/history", auth, userHandler.GetWatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", optionalAuth, videoHandler.ListVideos)
		videos.POST("", auth, videoHandler.PublishVideo)
		videos.GET("/:id", auth, videoHandler.GetVideo)
		videos.PATCH("/:id", auth, videoHandler.UpdateVideo)
		videos.DELETE("/:id", auth, videoHandler.DeleteVideo)
		videos.PATCH("/:id/toggle-publish", auth, videoHandler.TogglePublish)
	}

	comments := api.Group("/comments", auth)
	{
		comments.GET("/:videoId", commentHandler.ListComments)
		comments.POST("/:videoId", commentHandler.AddComment)
		comments.PATCH("/c/:id", commentHandler.UpdateComment)
		comments.DELETE("/c/:id", commentHandler.DeleteComment)
	}

	tweets := api.Group("/tweets", auth)
	{
		tweets.POST("", tweetHandler.CreateTweet)
		tweets.GET("/user/:userId", tweetHandler.ListUserTweets)
		tweets.PATCH("/:id", tweetHandler.UpdateTweet)
		tweets.DELETE("/:id", tweetHandler.DeleteTweet)
	}

	playlists := api.Group("/playlists", auth)
	{
		playlists.POST("", playlistHandler.CreatePlaylist)
		playlists.GET("/user/:userId", playlistHandler.ListUserPlaylists)
		playlists.GET("/:id", playlistHandler.GetPlaylist)
		playlists.PATCH("/:id", playlistHandler.UpdatePlaylist)
		playlists.DELETE("/:id", playlistHandler.DeletePlaylist)
		playlists.PATCH("/:id/videos/:videoId", playlistHandler.AddVideoToPlaylist)
		playlists.DELETE("/:id/videos/:videoId", playlistHandler.RemoveVideoFromPlaylist)
	}

	subscriptions := api.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", subscriptionHandler.ToggleSubscription)
		subscriptions.GET("/c/:channelId", subscriptionHandler.ListChannelSubscribers)
		subscriptions.GET("/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
		likes.GET("/videos", likeHandler.ListLikedVideos)
	}

	return r
}
