package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	boards := rg.Group("/boards")
	{
		boards.GET("", handler.GetAllBoards)
		boards.POST("", handler.CreateBoard)
		boards.GET("/:board_id", handler.GetBoardByID)
	}
}
