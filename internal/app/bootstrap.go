package app

import (
	"forum/internal/app/board"
	"forum/internal/app/health"
	"forum/internal/app/post"
	"forum/internal/app/topic"
	"forum/internal/app/user"
	"forum/internal/config"
	"forum/internal/db"
	"forum/internal/db/seeder"
	"forum/internal/gateways/websocket"
	"forum/internal/providers/redis"
	"forum/internal/router"
	"forum/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	boardRepo := board.NewRepository(dbConn)
	userRepo := user.NewRepository(dbConn)
	topicRepo := topic.NewRepository(dbConn)
	postRepo := post.NewRepository(dbConn)

	boardService := board.NewService(boardRepo)
	userService := user.NewService(userRepo)
	topicService := topic.NewService(topicRepo, boardService, dbConn, redisProvider, eventBus, logger)
	postService := post.NewService(postRepo, topicService, dbConn, eventBus, logger)

	hub := websocket.NewHub(logger, eventBus)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	boardHandler := board.NewHandler(boardService)
	userHandler := user.NewHandler(userService)
	topicHandler := topic.NewHandler(topicService, cfg.TopicPageSize, cfg.MaxPageSize)
	postHandler := post.NewHandler(postService, cfg.ReplyPageSize, cfg.MaxPageSize)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterTopicRoutes(topicHandler)
	r.RegisterPostRoutes(postHandler)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
