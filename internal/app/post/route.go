package post

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	posts := rg.Group("/boards/:board_id/topics/:topic_id/posts")
	{
		posts.GET("", handler.ListTopicPosts)
		posts.POST("", handler.CreateReply)
		posts.PUT("/:post_id", handler.UpdatePost)
	}
}
