package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukahq/duka-api/services"
	"github.com/gin-gonic/gin"
)

// Checkout converts the session's cart into an order and clears the cart
// binding. Without a bound cart there is nothing to convert and nothing is
// written.
func Checkout(ctx *gin.Context) {
	sess, ok := sessionFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Session token required")
		return
	}
	if sess.CartID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty.")
		return
	}

	orderID, err := checkoutSvc.Checkout(ctx.Request.Context(), sess.CartID)
	switch {
	case errors.Is(err, services.ErrCartEmpty):
		sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty.")
		return
	case errors.Is(err, services.ErrCartNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	case errors.Is(err, services.ErrCartNotActive):
		sendErrorResponse(ctx, http.StatusConflict, "Cart is already closed")
		return
	case err != nil:
		slog.Error("checkout failed", "err", err, "cart_id", sess.CartID)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Checkout failed")
		return
	}

	sess.CartID = ""
	token, err := rebindSession(ctx, sess)
	if err != nil {
		slog.Error("failed to rebind session", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update session")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Purchase completed successfully!",
		"orderId": orderID,
		"token":   token,
	})
}
