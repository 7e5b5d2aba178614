package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-resty/resty/v2"
)

// A small walkthrough client: starts a session, browses the catalog, fills a
// cart, rates a product and checks out against a running API.

type sessionResponse struct {
	Token string `json:"token"`
}

type productsResponse struct {
	Products []struct {
		ProductID string `json:"productId"`
		Name      string `json:"name"`
		Price     string `json:"price"`
	} `json:"products"`
}

type cartResponse struct {
	Items []struct {
		ProductID string `json:"productId"`
		Name      string `json:"name"`
		Price     string `json:"price"`
	} `json:"items"`
}

type addResponse struct {
	Message string `json:"message"`
	CartID  string `json:"cartId"`
	Token   string `json:"token"`
}

type checkoutResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
	Token   string `json:"token"`
}

func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	userID := flag.String("user", "", "user id to shop as (required)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: demo -user <user_id> [-base <url>]")
		os.Exit(2)
	}

	client := resty.New().SetBaseURL(*base)

	var session sessionResponse
	resp, err := client.R().
		SetBody(map[string]string{"userId": *userID}).
		SetResult(&session).
		Post("/session")
	must(err, resp, "start session")
	client.SetAuthToken(session.Token)
	slog.Info("session started", "user_id", *userID)

	var catalog productsResponse
	resp, err = client.R().SetResult(&catalog).Get("/products")
	must(err, resp, "list products")
	if len(catalog.Products) == 0 {
		slog.Error("catalog is empty, seed the database first")
		os.Exit(1)
	}
	slog.Info("catalog fetched", "products", len(catalog.Products))

	for i, product := range catalog.Products {
		if i == 3 {
			break
		}
		var added addResponse
		resp, err = client.R().
			SetBody(map[string]string{"productId": product.ProductID}).
			SetResult(&added).
			Post("/cart/items")
		must(err, resp, "add to cart")
		if added.Token != "" {
			client.SetAuthToken(added.Token)
		}
		slog.Info("added to cart", "product", product.Name, "cart_id", added.CartID)
	}

	var cart cartResponse
	resp, err = client.R().SetResult(&cart).Get("/cart")
	must(err, resp, "view cart")
	slog.Info("cart contents", "items", len(cart.Items))

	resp, err = client.R().
		SetBody(map[string]any{"rating": 5, "comment": "Rated from the demo client"}).
		Post("/products/" + catalog.Products[0].ProductID + "/rate")
	must(err, resp, "rate product")
	slog.Info("product rated", "product", catalog.Products[0].Name)

	var checkout checkoutResponse
	resp, err = client.R().SetResult(&checkout).Post("/checkout")
	must(err, resp, "checkout")
	slog.Info("checkout complete", "order_id", checkout.OrderID)
}

func must(err error, resp *resty.Response, step string) {
	if err != nil {
		slog.Error(step+" failed", "err", err)
		os.Exit(1)
	}
	if resp.IsError() {
		slog.Error(step+" failed", "status", resp.StatusCode(), "body", string(resp.Body()))
		os.Exit(1)
	}
}
