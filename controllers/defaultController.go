package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Duka API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

SESSION
- POST "/session" - Start a shopping session for a user

STORE
- GET "/products" - List active products
- POST "/cart/items" - Add a product to the session cart
- GET "/cart" - View the session cart
- POST "/cart/abandon" - Abandon the session cart
- POST "/checkout" - Convert the session cart into an order
- POST "/products/{productId}/rate" - Rate a product

REPORTS
- GET "/reports/top-rated" - Top 10 products by average rating
- GET "/reports/top-selling" - Top 10 products sold this quarter
- GET "/reports/repeat-customers" - Monthly repeat customer counts
- GET "/reports/abandoned" - Top 5 products left in abandoned carts`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
