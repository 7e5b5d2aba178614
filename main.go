package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dukahq/duka-api/controllers"
	"github.com/dukahq/duka-api/initializers"
	"github.com/dukahq/duka-api/routes"
	"github.com/dukahq/duka-api/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	controllers.Init(store.NewGormStore(initializers.DB))

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.SessionRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.ReportRoutes(server)

	server.Run()
}
