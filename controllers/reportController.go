package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Report handlers are thin: each one runs a single aggregation and returns
// the rows.

func GetTopRated(ctx *gin.Context) {
	rows, err := reportSvc.TopRated(ctx.Request.Context())
	if err != nil {
		slog.Error("top rated report failed", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build report")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": rows})
}

func GetTopSelling(ctx *gin.Context) {
	rows, err := reportSvc.TopSelling(ctx.Request.Context())
	if err != nil {
		slog.Error("top selling report failed", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build report")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": rows})
}

func GetRepeatCustomers(ctx *gin.Context) {
	rows, err := reportSvc.RepeatCustomers(ctx.Request.Context())
	if err != nil {
		slog.Error("repeat customers report failed", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build report")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"stats": rows})
}

func GetAbandonedProducts(ctx *gin.Context) {
	rows, err := reportSvc.AbandonedProducts(ctx.Request.Context())
	if err != nil {
		slog.Error("abandoned products report failed", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to build report")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": rows})
}
