package routes

import (
	"snapfeed-backend/handlers/users"
	"snapfeed-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/me", users.GetMe)
		usersRoutes.PATCH("/me", users.UpdateMe)
	}
}
