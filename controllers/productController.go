package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts lists the active catalog, newest first.
func GetProducts(ctx *gin.Context) {
	products, err := db.ListActiveProducts(ctx.Request.Context())
	if err != nil {
		slog.Error("failed to list products", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}
