package routes

import (
	"github.com/dukahq/duka-api/controllers"
	"github.com/gin-gonic/gin"
)

func SessionRoutes(server *gin.Engine) {
	server.POST("/session", controllers.CreateSession)
}
