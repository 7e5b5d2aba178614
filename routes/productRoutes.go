package routes

import (
	"github.com/dukahq/duka-api/controllers"
	"github.com/dukahq/duka-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.POST("/products/:productId/rate", middlewares.RequireSession(), controllers.RateProduct)
}
