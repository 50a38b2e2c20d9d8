package routes

import (
	"snapfeed-backend/handlers/posts"
	"snapfeed-backend/handlers/posts/comments"
	"snapfeed-backend/handlers/posts/likes"
	"snapfeed-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.GET("/feed", posts.GetFeed)
		postsRoutes.GET("/:id", posts.GetPostByID)
		postsRoutes.PATCH("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)

		// Routes des interactions
		postsRoutes.POST("/:id/like", likes.LikePost)
		postsRoutes.DELETE("/:id/like", likes.UnlikePost)

		postsRoutes.POST("/:id/comments", comments.CreateComment)
		postsRoutes.GET("/:id/comments", comments.GetComments)
	}
}
