package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukahq/duka-api/services"
	"github.com/gin-gonic/gin"
)

// AddToCart appends a product to the session's cart, creating and binding a
// cart first when the session has none. Repeated calls reuse the bound cart,
// so one browsing session produces exactly one cart row.
func AddToCart(ctx *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	sess, ok := sessionFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Session token required")
		return
	}

	rebound := false
	if sess.CartID == "" {
		cart, err := cartSvc.Create(ctx.Request.Context(), sess.UserID)
		if err != nil {
			slog.Error("failed to create cart", "err", err, "user_id", sess.UserID)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart")
			return
		}
		sess.CartID = cart.CartID
		rebound = true
	}

	cartItemID, err := cartSvc.AddItem(ctx.Request.Context(), sess.CartID, body.ProductID)
	if err != nil {
		// Unknown product ids land here as foreign key violations; they are
		// not recovered, only surfaced.
		slog.Error("failed to add cart item", "err", err, "cart_id", sess.CartID, "product_id", body.ProductID)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to add item to cart")
		return
	}

	response := gin.H{
		"message":    "Item added to cart!",
		"cartId":     sess.CartID,
		"cartItemId": cartItemID,
	}
	if rebound {
		token, err := rebindSession(ctx, sess)
		if err != nil {
			slog.Error("failed to rebind session", "err", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update session")
			return
		}
		response["token"] = token
	}

	sendJSONResponse(ctx, http.StatusCreated, response)
}

// GetCart returns the active lines of the session's cart; an unbound session
// sees an empty cart, not an error.
func GetCart(ctx *gin.Context) {
	sess, ok := sessionFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Session token required")
		return
	}

	items, err := cartSvc.ActiveItems(ctx.Request.Context(), sess.CartID)
	if err != nil {
		slog.Error("failed to fetch cart", "err", err, "cart_id", sess.CartID)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

// AbandonCart marks the bound cart abandoned and clears the binding.
func AbandonCart(ctx *gin.Context) {
	sess, ok := sessionFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Session token required")
		return
	}
	if sess.CartID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "No active cart to abandon.")
		return
	}

	err := cartSvc.Abandon(ctx.Request.Context(), sess.CartID)
	switch {
	case errors.Is(err, services.ErrCartNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		return
	case errors.Is(err, services.ErrCartNotActive):
		sendErrorResponse(ctx, http.StatusConflict, "Cart is already closed")
		return
	case err != nil:
		slog.Error("failed to abandon cart", "err", err, "cart_id", sess.CartID)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to abandon cart")
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
		"message": "You abandoned your cart.",
		"token":   token,
	})
}
