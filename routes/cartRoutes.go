package routes

import (
	"github.com/dukahq/duka-api/controllers"
	"github.com/dukahq/duka-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/cart/items", middlewares.RequireSession(), controllers.AddToCart)
	server.GET("/cart", middlewares.RequireSession(), controllers.GetCart)
	server.POST("/cart/abandon", middlewares.RequireSession(), controllers.AbandonCart)
	server.POST("/checkout", middlewares.RequireSession(), controllers.Checkout)
}
