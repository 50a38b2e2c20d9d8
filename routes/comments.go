package routes

import (
	"snapfeed-backend/handlers/posts/comments"
	"snapfeed-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CommentsRoutes(r *gin.Engine) {
	commentsRoutes := r.Group("/comments")
	commentsRoutes.Use(middleware.JWTAuth())
	{
		commentsRoutes.PATCH("/:id", comments.UpdateComment)
		commentsRoutes.DELETE("/:id", comments.DeleteComment)

		commentsRoutes.POST("/:id/like", comments.LikeComment)
		commentsRoutes.DELETE("/:id/like", comments.UnlikeComment)
	}
}
