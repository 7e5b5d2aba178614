package controllers

import (
	"log/slog"
	"net/http"

	"github.com/dukahq/duka-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateSession issues an anonymous-auth session token for the given user.
// There is no credential check — authentication is out of scope, but the
// user attribution is explicit rather than picked at random server side.
func CreateSession(ctx *gin.Context) {
	var body struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	token, err := rebindSession(ctx, utils.SessionClaims{UserID: body.UserID})
	if err != nil {
		slog.Error("failed to sign session token", "err", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create session")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"token": token})
}
