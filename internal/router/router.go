package router

import (
	"forum/internal/app/board"
	"forum/internal/app/health"
	"forum/internal/app/post"
	"forum/internal/app/topic"
	"forum/internal/app/user"
	"forum/internal/gateways/websocket"
	"forum/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(middleware.IdentityMiddleware())
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterTopicRoutes(handler topic.Handler) {
	topic.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterPostRoutes(handler post.Handler) {
	post.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
