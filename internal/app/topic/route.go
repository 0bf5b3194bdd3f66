package topic

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	topics := rg.Group("/boards/:board_id/topics")
	{
		topics.GET("", handler.ListTopics)
		topics.POST("", handler.CreateTopic)
	}
}
