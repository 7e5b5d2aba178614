package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukahq/duka-api/services"
	"github.com/gin-gonic/gin"
)

// coerceRating accepts the loosely typed rating values clients send (a JSON
// number or a numeric string) and turns them into an int. Anything else is
// invalid input and must fail before any write happens.
func coerceRating(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		return strconv.Atoi(v)
	default:
		return 0, errors.New("rating is not a number")
	}
}

// RateProduct appends a review for the product in the URL, attributed to the
// session's user.
func RateProduct(ctx *gin.Context) {
	productID := ctx.Param("productId")

	var body struct {
		Rating  any    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	rating, err := coerceRating(body.Rating)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid rating")
		return
	}

	sess, ok := sessionFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Session token required")
		return
	}

	reviewID, err := reviewSvc.Rate(ctx.Request.Context(), sess.UserID, productID, rating, body.Comment)
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		sendErrorResponse(ctx, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	case err != nil:
		slog.Error("failed to save review", "err", err, "product_id", productID)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save review")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Thank you for rating!",
		"reviewId": reviewID,
	})
}
