package initializers

import (
	"log/slog"
	"os"

	"github.com/dukahq/duka-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Session{},
	)
	if err != nil {
		slog.Error("failed to sync database", "err", err)
		os.Exit(1)
	}
	slog.Info("database synced successfully")
}
