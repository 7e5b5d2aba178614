package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dukahq/duka-api/datagen"
)

func main() {
	cfg := datagen.DefaultConfig()

	out := flag.String("out", "database/dummy_data.sql", "output file")
	seed := flag.Uint64("seed", 0, "random seed (0 means non-deterministic)")
	flag.IntVar(&cfg.NumUsers, "users", cfg.NumUsers, "number of users")
	flag.IntVar(&cfg.NumProducts, "products", cfg.NumProducts, "number of products")
	flag.IntVar(&cfg.NumOrders, "orders", cfg.NumOrders, "number of orders")
	flag.IntVar(&cfg.NumReviews, "reviews", cfg.NumReviews, "number of reviews")
	flag.IntVar(&cfg.NumCarts, "carts", cfg.NumCarts, "number of carts")
	flag.IntVar(&cfg.NumSessions, "sessions", cfg.NumSessions, "number of sessions")
	flag.Parse()

	cfg.Seed = *seed

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		slog.Error("failed to create output directory", "err", err)
		os.Exit(1)
	}

	file, err := os.Create(*out)
	if err != nil {
		slog.Error("failed to create output file", "err", err, "path", *out)
		os.Exit(1)
	}
	defer file.Close()

	ds := datagen.Generate(cfg)
	if err := datagen.WriteSQL(file, ds); err != nil {
		slog.Error("failed to write dataset", "err", err)
		os.Exit(1)
	}

	slog.Info("dummy data written",
		"path", *out,
		"users", len(ds.Users),
		"products", len(ds.Products),
		"orders", len(ds.Orders),
		"order_items", len(ds.OrderItems),
		"reviews", len(ds.Reviews),
		"carts", len(ds.Carts),
		"cart_items", len(ds.CartItems),
		"sessions", len(ds.Sessions),
	)
}
