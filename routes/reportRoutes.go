package routes

import (
	"github.com/dukahq/duka-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReportRoutes(server *gin.Engine) {
	server.GET("/reports/top-rated", controllers.GetTopRated)
	server.GET("/reports/top-selling", controllers.GetTopSelling)
	server.GET("/reports/repeat-customers", controllers.GetRepeatCustomers)
	server.GET("/reports/abandoned", controllers.GetAbandonedProducts)
}
